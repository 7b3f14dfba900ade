package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"bitespot/internal/app"
	"bitespot/internal/domain"
)

type Handlers struct{ S *app.SearchService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/search", h.search)
	s.mux.Get("/v1/surprise", h.surprise)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

type searchResponse struct {
	Success bool `json:"success"`
	app.SearchResult
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	var req app.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be JSON with a query string and optional excludeIngredients array")
		return
	}

	res, err := h.S.Search(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			writeProblem(w, http.StatusBadRequest, "Invalid query", "please provide a search query or ingredients to exclude")
			return
		}
		log.Error().Err(err).Str("query", req.Query).Msg("search failed")
		writeProblem(w, http.StatusInternalServerError, "Search failed", "error processing search")
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Success: true, SearchResult: res})
}

type surpriseResponse struct {
	Success         bool               `json:"success"`
	CurrentMealTime domain.MealTime    `json:"currentMealTime"`
	Data            app.SurpriseResult `json:"data"`
	UsingFallback   bool               `json:"usingFallback"`
}

func (h *Handlers) surprise(w http.ResponseWriter, r *http.Request) {
	res, err := h.S.Surprise(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "no highly rated restaurants in the catalog")
			return
		}
		log.Error().Err(err).Msg("surprise failed")
		writeProblem(w, http.StatusInternalServerError, "Surprise failed", "error generating surprise")
		return
	}

	writeJSON(w, http.StatusOK, surpriseResponse{
		Success:         true,
		CurrentMealTime: res.CurrentMealTime,
		Data:            res,
		UsingFallback:   res.UsingFallback,
	})
}
