package prices

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const cacheExpiration = 5 * time.Minute

// Cached is a read-through Redis cache in front of another Source.
// Cache failures are logged and ignored; the wrapped source is the
// authority.
type Cached struct {
	source Source
	rdb    *redis.Client
	log    *logrus.Logger
}

// NewCached wraps source with a Redis price cache.
func NewCached(source Source, rdb *redis.Client, log *logrus.Logger) *Cached {
	return &Cached{source: source, rdb: rdb, log: log}
}

func cacheKey(ticker string) string {
	return fmt.Sprintf("stock:%s:price", ticker)
}

func (c *Cached) FetchPrices(ctx context.Context, tickers []string) (map[string]float64, error) {
	result := make(map[string]float64, len(tickers))
	var missing []string
	for _, ticker := range tickers {
		cached, err := c.rdb.Get(ctx, cacheKey(ticker)).Result()
		if err != nil {
			missing = append(missing, ticker)
			continue
		}
		price, err := strconv.ParseFloat(cached, 64)
		if err != nil {
			missing = append(missing, ticker)
			continue
		}
		result[ticker] = price
	}

	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := c.source.FetchPrices(ctx, missing)
	if err != nil {
		return nil, err
	}
	for ticker, price := range fetched {
		result[ticker] = price
		c.Store(ctx, ticker, price)
	}
	return result, nil
}

// Store writes a freshly observed price so lookups within the TTL see it
// instead of a pre-refresh value.
func (c *Cached) Store(ctx context.Context, ticker string, price float64) {
	if err := c.rdb.Set(ctx, cacheKey(ticker), strconv.FormatFloat(price, 'f', -1, 64), cacheExpiration).Err(); err != nil {
		c.log.Warnf("Failed to cache price for %s: %v", ticker, err)
	}
}
