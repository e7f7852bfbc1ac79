package price

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBybitURL = "https://api.bybit.com/v5/market/tickers"

// bybitResponse is the Bybit v5 market tickers envelope
type bybitResponse struct {
	RetCode int    `json:"retCode"`
	RetMsg  string `json:"retMsg"`
	Result  struct {
		List []bybitTicker `json:"list"`
	} `json:"result"`
}

// bybitTicker is a single Bybit spot ticker.
// price24hPcnt arrives as a fraction, not a percentage
type bybitTicker struct {
	Symbol       string `json:"symbol"`
	LastPrice    string `json:"lastPrice"`
	Bid1Price    string `json:"bid1Price"`
	Ask1Price    string `json:"ask1Price"`
	Volume24h    string `json:"volume24h"`
	Price24hPcnt string `json:"price24hPcnt"`
	HighPrice24h string `json:"highPrice24h"`
	LowPrice24h  string `json:"lowPrice24h"`
}

// BybitSource fetches the CC/USDT spot ticker from Bybit
type BybitSource struct {
	client *http.Client
	url    string
	symbol string
}

// NewBybitSource creates a new Bybit price source
func NewBybitSource(symbol string, timeout time.Duration) *BybitSource {
	return &BybitSource{
		client: &http.Client{
			Timeout: timeout,
		},
		url:    defaultBybitURL,
		symbol: symbol,
	}
}

func (s *BybitSource) Name() string {
	return "Bybit"
}

func (s *BybitSource) Fetch(ctx context.Context) (*Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create GET request: %w", err)
	}

	req.URL.RawQuery = url.Values{
		"category": []string{"spot"},
		"symbol":   []string{s.symbol},
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

	var apiResp bybitResponse

	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("unable to decode response: %w", err)
	}

	if apiResp.RetCode != 0 {
		return nil, fmt.Errorf("bad return code %d: %s", apiResp.RetCode, apiResp.RetMsg)
	}

	if len(apiResp.Result.List) == 0 {
		return nil, fmt.Errorf("no ticker returned for %s", s.symbol)
	}

	ticker := apiResp.Result.List[0]

	symbol := ticker.Symbol
	if symbol == "" {
		symbol = s.symbol
	}

	return &Quote{
		Symbol:    symbol,
		LastPrice: parsePrice(ticker.LastPrice),
		BidPrice:  parsePrice(ticker.Bid1Price),
		AskPrice:  parsePrice(ticker.Ask1Price),
		Volume24h: parsePrice(ticker.Volume24h),
		Change24h: parsePrice(ticker.Price24hPcnt) * 100, // fraction -> percent
		High24h:   parsePrice(ticker.HighPrice24h),
		Low24h:    parsePrice(ticker.LowPrice24h),
	}, nil
}
