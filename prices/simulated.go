package prices

import (
	"context"
	"math"
	"math/rand"
	"sync"
)

// DefaultBasePrice is used for tickers the simulated source has no base
// price for.
const DefaultBasePrice = 50.0

// Simulated perturbs a table of base prices by a uniformly random ±3%
// per fetch, rounded to 2 decimal places. It stands in for a live market
// feed during development and demos.
type Simulated struct {
	// Default is the base price for unknown tickers. Zero means
	// DefaultBasePrice.
	Default float64

	mu    sync.Mutex
	bases map[string]float64
	rand  *rand.Rand
}

// NewSimulated returns a simulated source seeded with the BIST base
// prices the club tracks.
func NewSimulated(seed int64) *Simulated {
	return &Simulated{
		bases: map[string]float64{
			"TUPRS": 142.7,
			"THYAO": 57.85,
			"KCHOL": 80.15,
			"GARAN": 32.45,
			"SAHOL": 46.3,
			"AKBNK": 28.74,
			"ISCTR": 254.60,
			"SISE":  35.22,
			"PGSUS": 412.80,
			"ASELS": 51.35,
		},
		rand: rand.New(rand.NewSource(seed)),
	}
}

// FetchPrices returns a price for every requested ticker: the ticker's
// base price with a ±3% fluctuation applied, 2-decimal rounded.
func (s *Simulated) FetchPrices(_ context.Context, tickers []string) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]float64, len(tickers))
	for _, ticker := range tickers {
		base, ok := s.bases[ticker]
		if !ok {
			base = s.Default
			if base == 0 {
				base = DefaultBasePrice
			}
		}
		fluctuation := base * (s.rand.Float64()*0.06 - 0.03)
		result[ticker] = math.Round((base+fluctuation)*100) / 100
	}
	return result, nil
}
