package prices

import (
	"context"
	"math"
	"testing"
)

func TestSimulatedFetchPrices(t *testing.T) {
	source := NewSimulated(1)
	tickers := []string{"TUPRS", "THYAO", "GARAN"}

	priceData, err := source.FetchPrices(context.Background(), tickers)
	if err != nil {
		t.Fatalf("FetchPrices: %v", err)
	}

	if len(priceData) != len(tickers) {
		t.Fatalf("got %d prices, want %d", len(priceData), len(tickers))
	}
	for _, ticker := range tickers {
		if _, ok := priceData[ticker]; !ok {
			t.Errorf("missing price for %s", ticker)
		}
	}
}

func TestSimulatedStaysWithinFluctuationBand(t *testing.T) {
	source := NewSimulated(42)
	base := source.bases["TUPRS"]

	for i := 0; i < 100; i++ {
		priceData, err := source.FetchPrices(context.Background(), []string{"TUPRS"})
		if err != nil {
			t.Fatalf("FetchPrices: %v", err)
		}
		price := priceData["TUPRS"]
		// Round the band edges outward by a cent to allow for the
		// 2-decimal rounding of the result.
		if price < base*0.97-0.01 || price > base*1.03+0.01 {
			t.Fatalf("price %v outside ±3%% of base %v", price, base)
		}
		if rounded := math.Round(price*100) / 100; rounded != price {
			t.Fatalf("price %v not rounded to 2 decimal places", price)
		}
	}
}

func TestSimulatedUnknownTickerUsesDefaultBase(t *testing.T) {
	source := NewSimulated(7)

	priceData, err := source.FetchPrices(context.Background(), []string{"NOSUCH"})
	if err != nil {
		t.Fatalf("FetchPrices: %v", err)
	}
	price := priceData["NOSUCH"]
	if price < DefaultBasePrice*0.97-0.01 || price > DefaultBasePrice*1.03+0.01 {
		t.Errorf("unknown ticker price %v not near default base %v", price, DefaultBasePrice)
	}

	source.Default = 200
	priceData, err = source.FetchPrices(context.Background(), []string{"NOSUCH"})
	if err != nil {
		t.Fatalf("FetchPrices: %v", err)
	}
	price = priceData["NOSUCH"]
	if price < 200*0.97-0.01 || price > 200*1.03+0.01 {
		t.Errorf("unknown ticker price %v not near configured base 200", price)
	}
}
