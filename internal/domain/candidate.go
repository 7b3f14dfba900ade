package domain

// RankedCandidate is a restaurant annotated with request-scoped match flags.
// It lives only for the duration of response assembly.
type RankedCandidate struct {
	Restaurant
	MatchesCurrentTime bool     `json:"matchesCurrentTime"`
	MatchesWeather     bool     `json:"matchesWeather"`
	AllergySafe        bool     `json:"allergySafe,omitempty"`
	SafeFor            []string `json:"safeFor,omitempty"`
	SafeForMessage     string   `json:"safeForMessage,omitempty"`
}
