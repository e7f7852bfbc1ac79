package price

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const defaultCoinGeckoURL = "https://api.coingecko.com/api/v3/simple/price"

// CC/USDT spread synthesized around the last price, since CoinGecko
// exposes no order book
const syntheticSpread = 0.0005

var errCoinZeroPrice = errors.New("coin price is not positive")

// coinGeckoPrice is the per-coin price block in the CoinGecko response
type coinGeckoPrice struct {
	USD       float64 `json:"usd"`
	Change24h float64 `json:"usd_24h_change"`
	Volume24h float64 `json:"usd_24h_vol"`
	High24h   float64 `json:"usd_24h_high"`
	Low24h    float64 `json:"usd_24h_low"`
}

// CoinGeckoSource fetches the CC price from the CoinGecko aggregator.
//
// CoinGecko only exposes the last price with 24h change and volume, so
// bid / ask are synthesized around the last price with a fixed spread,
// and high / low are sanity-checked against the last price and
// synthesized from the change percentage when the source omits them
type CoinGeckoSource struct {
	client *http.Client
	url    string
	coinID string
	symbol string
}

// NewCoinGeckoSource creates a new CoinGecko price source
func NewCoinGeckoSource(coinID, symbol string, timeout time.Duration) *CoinGeckoSource {
	return &CoinGeckoSource{
		client: &http.Client{
			Timeout: timeout,
		},
		url:    defaultCoinGeckoURL,
		coinID: coinID,
		symbol: symbol,
	}
}

func (s *CoinGeckoSource) Name() string {
	return "CoinGecko"
}

func (s *CoinGeckoSource) Fetch(ctx context.Context) (*Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create GET request: %w", err)
	}

	query := url.Values{
		"ids":                 []string{s.coinID},
		"vs_currencies":       []string{"usd"},
		"include_24hr_change": []string{"true"},
		"include_24hr_vol":    []string{"true"},
		"include_24hr_high":   []string{"true"},
		"include_24hr_low":    []string{"true"},
	}

	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to execute GET request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invalid status code received: %d", resp.StatusCode)
	}

	var data map[string]coinGeckoPrice

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("unable to decode response: %w", err)
	}

	coin, ok := data[s.coinID]
	if !ok {
		return nil, fmt.Errorf("coin %q missing from response", s.coinID)
	}

	if coin.USD <= 0 {
		return nil, errCoinZeroPrice
	}

	high, low := synthesizeBounds(coin.USD, coin.Change24h, coin.High24h, coin.Low24h)

	return &Quote{
		Symbol:    s.symbol,
		LastPrice: coin.USD,
		BidPrice:  coin.USD * (1 - syntheticSpread),
		AskPrice:  coin.USD * (1 + syntheticSpread),
		Volume24h: coin.Volume24h,
		Change24h: coin.Change24h,
		High24h:   high,
		Low24h:    low,
	}, nil
}

// synthesizeBounds returns usable 24h high / low values. Source values
// are kept when sane (high at or above the last price, low at or
// below); otherwise bounds are derived from the change percentage, or
// a fixed ±1% band when the change points the other way.
// The derivation is a presentation approximation, not a guaranteed
// bound
func synthesizeBounds(last, changePct, high, low float64) (float64, float64) {
	if high <= 0 || high < last {
		if changePct > 0 {
			high = last * (1 + math.Abs(changePct)/100)
		} else {
			high = last * 1.01
		}
	}

	if low <= 0 || low > last {
		if changePct < 0 {
			low = last * (1 - math.Abs(changePct)/100)
		} else {
			low = last * 0.99
		}
	}

	return high, low
}
