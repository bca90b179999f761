package services

import (
	"math/rand"
)

// Suggestion is a ticker worth a look, with a short reason.
type Suggestion struct {
	Ticker string `json:"ticker"`
	Reason string `json:"reason"`
}

// Suggester produces stock suggestions. Nothing in the system currently
// drives these from real market signals; the interface exists so a real
// recommendation source can replace the static catalog later.
type Suggester interface {
	Suggest() []Suggestion
}

// StaticSuggester picks 1-2 entries at random, without replacement, from a
// fixed catalog per call.
type StaticSuggester struct {
	Catalog []Suggestion
	rand    *rand.Rand
}

// NewStaticSuggester returns a suggester over the default catalog.
func NewStaticSuggester(seed int64) *StaticSuggester {
	return &StaticSuggester{
		Catalog: []Suggestion{
			{Ticker: "AKBNK", Reason: "Strong technical breakout and positive sector outlook"},
			{Ticker: "SISE", Reason: "Trading at attractive valuation with solid dividend history"},
			{Ticker: "PGSUS", Reason: "Potential growth opportunity with increasing travel demand"},
			{Ticker: "ASELS", Reason: "Strategic sector position with new government contracts"},
		},
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Suggest returns 1-2 random catalog entries without repeats.
func (s *StaticSuggester) Suggest() []Suggestion {
	remaining := make([]Suggestion, len(s.Catalog))
	copy(remaining, s.Catalog)

	count := s.rand.Intn(2) + 1
	if count > len(remaining) {
		count = len(remaining)
	}

	var picked []Suggestion
	for i := 0; i < count; i++ {
		index := s.rand.Intn(len(remaining))
		picked = append(picked, remaining[index])
		remaining = append(remaining[:index], remaining[index+1:]...)
	}
	return picked
}
