package price

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBinanceURL = "https://api.binance.com/api/v3/ticker/24hr"

// binanceTicker is the Binance 24hr ticker response.
// All prices arrive string-encoded
type binanceTicker struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	BidPrice           string `json:"bidPrice"`
	AskPrice           string `json:"askPrice"`
	Volume             string `json:"volume"`
	PriceChangePercent string `json:"priceChangePercent"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
}

// BinanceSource fetches the CC/USDT ticker from Binance, which exposes
// bid / ask / high / low natively
type BinanceSource struct {
	client *http.Client
	url    string
	symbol string
}

// NewBinanceSource creates a new Binance price source
func NewBinanceSource(symbol string, timeout time.Duration) *BinanceSource {
	return &BinanceSource{
		client: &http.Client{
			Timeout: timeout,
		},
		url:    defaultBinanceURL,
		symbol: symbol,
	}
}

func (s *BinanceSource) Name() string {
	return "Binance"
}

func (s *BinanceSource) Fetch(ctx context.Context) (*Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create GET request: %w", err)
	}

	req.URL.RawQuery = url.Values{
		"symbol": []string{s.symbol},
	}.Encode()

	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to execute GET request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invalid status code received: %d", resp.StatusCode)
	}

	var ticker binanceTicker

	if err := json.NewDecoder(resp.Body).Decode(&ticker); err != nil {
		return nil, fmt.Errorf("unable to decode response: %w", err)
	}

	if ticker.LastPrice == "" {
		return nil, fmt.Errorf("last price missing for %s", s.symbol)
	}

	symbol := ticker.Symbol
	if symbol == "" {
		symbol = s.symbol
	}

	return &Quote{
		Symbol:    symbol,
		LastPrice: parsePrice(ticker.LastPrice),
		BidPrice:  parsePrice(ticker.BidPrice),
		AskPrice:  parsePrice(ticker.AskPrice),
		Volume24h: parsePrice(ticker.Volume),
		Change24h: parsePrice(ticker.PriceChangePercent),
		High24h:   parsePrice(ticker.HighPrice),
		Low24h:    parsePrice(ticker.LowPrice),
	}, nil
}

// parsePrice parses a string-encoded price, zero when absent or bad
func parsePrice(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return parsed
}
