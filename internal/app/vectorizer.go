package app

import (
	"math"
	"math/rand"
	"strings"
)

/********** keyword-weight table (single source of truth) **********/

type keywordWeight struct {
	word   string
	weight float64
}

// keywordTable is ordered; the position of each entry is its vector dimension.
var keywordTable = []keywordWeight{
	{"comfort", 5}, {"sad", 5}, {"happy", 3}, {"celebrate", 4}, {"celebration", 4},
	{"romantic", 5}, {"date", 5}, {"cozy", 4}, {"relax", 3},
	{"cheap", 5}, {"budget", 5}, {"expensive", 5}, {"affordable", 4}, {"pricey", 4},
	{"spicy", 4}, {"cheesy", 5}, {"sweet", 4}, {"healthy", 4}, {"fried", 3},
	{"grilled", 3}, {"biryani", 5}, {"pizza", 5}, {"burger", 5}, {"pasta", 4},
	{"chinese", 4}, {"italian", 4}, {"indian", 4}, {"mexican", 4},
	{"quick", 4}, {"fast", 4}, {"lunch", 3}, {"dinner", 3}, {"breakfast", 4},
	{"group", 3}, {"family", 3}, {"friends", 3},
	{"casual", 3}, {"fine", 4}, {"elegant", 4}, {"traditional", 3},
	{"modern", 3}, {"authentic", 4},
	{"tangy", 4}, {"savory", 4}, {"creamy", 4}, {"crispy", 4}, {"smoky", 4},
	{"rich", 4}, {"mild", 3}, {"flavorful", 4},
	{"outdoor", 4}, {"wifi", 4}, {"parking", 4}, {"ac", 3}, {"takeaway", 3},
	{"delivery", 3}, {"live-music", 4}, {"music", 4}, {"buffet", 4}, {"bar", 4},
	{"pet-friendly", 4}, {"pets", 4},
	{"vegetarian", 4}, {"veg", 4}, {"non-veg", 4}, {"meat", 4}, {"vegan", 4},
	{"gluten-free", 4}, {"gluten", 4}, {"jain", 4},
	{"quiet", 4}, {"peaceful", 4}, {"lively", 4}, {"energetic", 4}, {"fun", 4},
	{"study", 4}, {"work", 4},
	{"soup", 4}, {"hot-soup", 5}, {"chai", 5}, {"pakoras", 5}, {"hot-beverages", 4},
	{"cold-desserts", 5}, {"ice-cream", 5}, {"juices", 4}, {"refreshing", 4}, {"chilled", 4},
	{"hot-meals", 4}, {"warm-food", 4}, {"warm", 4},
}

// noiseDims keeps near-equal similarities from tying perfectly stably.
const noiseDims = 20

// Vectorizer turns free text into a fixed-dimension feature vector: one
// dimension per keyword plus noiseDims jitter dimensions drawn from the
// injected source. A nil noise source yields zero jitter, which makes
// vectorization deterministic (used by tests; changes tie-breaking among
// near-equal restaurants, see DESIGN.md).
type Vectorizer struct {
	noise func() float64
}

func NewVectorizer() *Vectorizer {
	return &Vectorizer{noise: func() float64 { return rand.Float64() * 0.1 }}
}

func NewDeterministicVectorizer() *Vectorizer { return &Vectorizer{} }

// Dim is the total vector length.
func Dim() int { return len(keywordTable) + noiseDims }

// Embed lower-cases text and sets each keyword dimension to its weight iff
// the keyword occurs as a substring.
func (v *Vectorizer) Embed(text string) []float64 {
	lower := strings.ToLower(text)
	vec := make([]float64, 0, Dim())
	for _, kw := range keywordTable {
		if strings.Contains(lower, kw.word) {
			vec = append(vec, kw.weight)
		} else {
			vec = append(vec, 0)
		}
	}
	for i := 0; i < noiseDims; i++ {
		if v.noise != nil {
			vec = append(vec, v.noise())
		} else {
			vec = append(vec, 0)
		}
	}
	return vec
}

// CosineSimilarity returns the cosine of the angle between a and b.
// A zero-magnitude vector yields 0 rather than dividing by zero.
func CosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, x := range a {
		magA += x * x
	}
	for _, x := range b {
		magB += x * x
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
