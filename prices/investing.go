package prices

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// priceClass marks the page element carrying the quoted price. This is
// coupled to the site's markup and will break when the page changes;
// the source is deliberately replaceable behind the Source interface.
const priceClass = "text-5xl"

// Investing scrapes current prices from an investing.com-style equity
// page, one request per ticker. A ticker whose page cannot be fetched or
// parsed is left out of the result rather than failing the batch.
type Investing struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

// NewInvesting returns a scraping source rooted at baseURL, e.g.
// "https://tr.investing.com/equities".
func NewInvesting(baseURL string, log *logrus.Logger) *Investing {
	return &Investing{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

func (s *Investing) FetchPrices(ctx context.Context, tickers []string) (map[string]float64, error) {
	result := make(map[string]float64, len(tickers))
	for _, ticker := range tickers {
		price, err := s.fetchOne(ctx, ticker)
		if err != nil {
			s.log.Warnf("Failed to fetch price for %s: %v", ticker, err)
			continue
		}
		result[ticker] = price
	}
	return result, nil
}

func (s *Investing) fetchOne(ctx context.Context, ticker string) (float64, error) {
	url := fmt.Sprintf("%s/%s-technical", s.baseURL, strings.ToLower(ticker))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	return parsePricePage(body)
}

// parsePricePage extracts the quoted price from the page markup: the text
// of the first element whose class list contains priceClass, with the
// Turkish decimal comma normalized.
func parsePricePage(body []byte) (float64, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(body); err != nil {
		return 0, fmt.Errorf("failed to parse page: %w", err)
	}

	element := findByClass(&doc.Element, priceClass)
	if element == nil {
		return 0, fmt.Errorf("price element not found in page")
	}

	text := strings.TrimSpace(element.Text())
	text = strings.ReplaceAll(text, ".", "")
	text = strings.ReplaceAll(text, ",", ".")
	price, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price %q: %w", element.Text(), err)
	}
	return price, nil
}

func findByClass(element *etree.Element, class string) *etree.Element {
	if attr := element.SelectAttr("class"); attr != nil {
		for _, c := range strings.Fields(attr.Value) {
			if c == class {
				return element
			}
		}
	}
	for _, child := range element.ChildElements() {
		if found := findByClass(child, class); found != nil {
			return found
		}
	}
	return nil
}
