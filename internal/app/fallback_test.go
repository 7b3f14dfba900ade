package app_test

import (
	"strings"
	"testing"

	"bitespot/internal/app"
	"bitespot/internal/domain"
)

func rankedFixture() []domain.RankedCandidate {
	return []domain.RankedCandidate{
		{Restaurant: domain.Restaurant{Name: "Annapoorna", Description: "Legendary sambar and filter coffee", PriceRange: domain.PriceBudget, SpecialtyDishes: []string{"Sambar Idli"}, Rating: 4.6}, MatchesCurrentTime: true},
		{Restaurant: domain.Restaurant{Name: "Zaitoon", Description: "Grills and shawarma", PriceRange: domain.PriceModerate, SpecialtyDishes: []string{"Shawarma"}, Rating: 4.4}},
		{Restaurant: domain.Restaurant{Name: "Green Bowl", Description: "Salads and smoothies", PriceRange: domain.PriceModerate, SpecialtyDishes: []string{"Buddha Bowl"}, Rating: 4.2}},
		{Restaurant: domain.Restaurant{Name: "Fourth Place", Description: "Should not appear", PriceRange: domain.PriceBudget, Rating: 4.0}},
	}
}

func TestFallbackNarrative_TopThreeOnly(t *testing.T) {
	weather := rainySnapshot()
	text := app.FallbackNarrative("comfort food", rankedFixture(), domain.Lunch, &weather, lunchtime())

	for _, name := range []string{"Annapoorna", "Zaitoon", "Green Bowl"} {
		if !strings.Contains(text, name) {
			t.Fatalf("narrative missing %q:\n%s", name, text)
		}
	}
	if strings.Contains(text, "Fourth Place") {
		t.Fatalf("narrative must stop at three restaurants:\n%s", text)
	}
	if !strings.Contains(text, `"comfort food"`) {
		t.Fatalf("narrative must echo the query:\n%s", text)
	}
	if !strings.Contains(text, "Perfect for lunch") {
		t.Fatalf("meal-time match line missing:\n%s", text)
	}
	if !strings.Contains(text, "Light rain (22°C)") {
		t.Fatalf("weather line missing:\n%s", text)
	}
	if !strings.Contains(text, "Must-try: Sambar Idli") {
		t.Fatalf("specialty line missing:\n%s", text)
	}
}

func TestFallbackNarrative_NilWeather(t *testing.T) {
	text := app.FallbackNarrative("anything", rankedFixture()[:1], domain.Dinner, nil, lunchtime())
	if strings.Contains(text, "Weather:") {
		t.Fatalf("no weather line expected without a snapshot:\n%s", text)
	}
}

func TestFallbackNarrative_TruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("x", 200)
	cands := []domain.RankedCandidate{
		{Restaurant: domain.Restaurant{Name: "Wordy", Description: long, PriceRange: domain.PriceBudget}},
	}
	text := app.FallbackNarrative("anything", cands, domain.Lunch, nil, lunchtime())
	if strings.Contains(text, long) {
		t.Fatal("description was not truncated")
	}
	if !strings.Contains(text, strings.Repeat("x", 150)+"...") {
		t.Fatal("expected 150-rune cut with ellipsis")
	}
}

func TestFallbackExclusionNarrative(t *testing.T) {
	cands := rankedFixture()[:2]
	for i := range cands {
		cands[i].SafeForMessage = "Safe: No Dairy"
	}
	cands[0].AllergenFriendly = []string{"vegan options available"}

	text := app.FallbackExclusionNarrative([]string{"dairy"}, cands, lunchtime())
	if !strings.Contains(text, "found 2 restaurants that avoid dairy") {
		t.Fatalf("count line missing:\n%s", text)
	}
	if !strings.Contains(text, "Safe: No Dairy") {
		t.Fatalf("safety note missing:\n%s", text)
	}
	if !strings.Contains(text, "vegan options available") {
		t.Fatalf("allergen-friendly line missing:\n%s", text)
	}
}

func TestFallbackSurprisePitch(t *testing.T) {
	got := app.FallbackSurprisePitch(domain.Restaurant{
		Name:            "Polar Bear",
		Description:     "Sundaes and shakes",
		SpecialtyDishes: []string{"Hot Chocolate Fudge"},
	})
	if !strings.Contains(got, "Polar Bear") || !strings.Contains(got, "Hot Chocolate Fudge") {
		t.Fatalf("pitch missing essentials: %q", got)
	}

	noDish := app.FallbackSurprisePitch(domain.Restaurant{Name: "Mystery", Description: "?"})
	if !strings.Contains(noDish, "the house special") {
		t.Fatalf("expected house-special default: %q", noDish)
	}
}
