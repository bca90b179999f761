// Package prices provides pluggable price lookup backends for tracked
// tickers. A Source returns whatever prices it could resolve; tickers it
// omits simply keep their previous price upstream.
package prices

import (
	"context"
)

// Source resolves current prices for a set of tickers. The returned map
// may be missing tickers that could not be resolved; callers must not
// treat a partial result as an error.
type Source interface {
	FetchPrices(ctx context.Context, tickers []string) (map[string]float64, error)
}
