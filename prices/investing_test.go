package prices

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

const pricePage = `<html>
<body>
<div class="header">Garanti Bankası</div>
<div class="instrument">
<span class="text-5xl font-bold">%s</span>
<span class="change">+1,2%%</span>
</div>
</body>
</html>`

func TestParsePricePage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"comma decimal", "32,45", 32.45},
		{"thousands separator", "1.254,60", 1254.60},
		{"whitespace around", " 57,85 ", 57.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := parsePricePage([]byte(fmt.Sprintf(pricePage, tt.text)))
			if err != nil {
				t.Fatalf("parsePricePage: %v", err)
			}
			if price != tt.want {
				t.Errorf("price = %v, want %v", price, tt.want)
			}
		})
	}
}

func TestParsePricePageMissingElement(t *testing.T) {
	page := `<html><body><div class="header">no price here</div></body></html>`
	if _, err := parsePricePage([]byte(page)); err == nil {
		t.Fatal("expected error for page without price element")
	}
}

func TestInvestingSkipsFailedTickers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/garan"):
			fmt.Fprintf(w, pricePage, "32,45")
		case strings.HasPrefix(r.URL.Path, "/broken"):
			w.WriteHeader(http.StatusNotFound)
		default:
			fmt.Fprint(w, "<html><body>no price</body></html>")
		}
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	source := NewInvesting(server.URL, logger)

	priceData, err := source.FetchPrices(context.Background(), []string{"GARAN", "BROKEN", "EMPTY"})
	if err != nil {
		t.Fatalf("FetchPrices: %v", err)
	}

	if len(priceData) != 1 {
		t.Fatalf("got %d prices, want 1: %v", len(priceData), priceData)
	}
	if priceData["GARAN"] != 32.45 {
		t.Errorf("GARAN price = %v, want 32.45", priceData["GARAN"])
	}
}
