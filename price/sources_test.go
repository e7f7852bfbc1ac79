package price

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSymbol = "CCUSDT"

func TestCoinGeckoSource_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("quote normalized", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "canton-network", r.URL.Query().Get("ids"))
				assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))

				_, _ = w.Write([]byte(
					`{"canton-network": {
						"usd": 0.1,
						"usd_24h_change": 2.5,
						"usd_24h_vol": 1000000,
						"usd_24h_high": 0.11,
						"usd_24h_low": 0.09
					}}`,
				))
			}),
		)
		defer srv.Close()

		s := NewCoinGeckoSource("canton-network", testSymbol, time.Second*5)
		s.url = srv.URL

		quote, err := s.Fetch(context.Background())
		require.NoError(t, err)
		require.NotNil(t, quote)

		assert.Equal(t, testSymbol, quote.Symbol)
		assert.InDelta(t, 0.1, quote.LastPrice, 0.0001)

		// Bid / ask are synthesized around the last price
		assert.InDelta(t, 0.1*(1-syntheticSpread), quote.BidPrice, 0.000001)
		assert.InDelta(t, 0.1*(1+syntheticSpread), quote.AskPrice, 0.000001)

		// Sane source bounds survive
		assert.InDelta(t, 0.11, quote.High24h, 0.0001)
		assert.InDelta(t, 0.09, quote.Low24h, 0.0001)
	})

	t.Run("bounds synthesized from change", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(
					`{"canton-network": {"usd": 0.1, "usd_24h_change": 5}}`,
				))
			}),
		)
		defer srv.Close()

		s := NewCoinGeckoSource("canton-network", testSymbol, time.Second*5)
		s.url = srv.URL

		quote, err := s.Fetch(context.Background())
		require.NoError(t, err)

		// Positive change derives the high, the low falls to the fixed band
		assert.InDelta(t, 0.1*1.05, quote.High24h, 0.000001)
		assert.InDelta(t, 0.1*0.99, quote.Low24h, 0.000001)
	})

	t.Run("zero price rejected", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"canton-network": {"usd": 0}}`))
			}),
		)
		defer srv.Close()

		s := NewCoinGeckoSource("canton-network", testSymbol, time.Second*5)
		s.url = srv.URL

		_, err := s.Fetch(context.Background())

		assert.ErrorIs(t, err, errCoinZeroPrice)
	})

	t.Run("coin missing from response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			}),
		)
		defer srv.Close()

		s := NewCoinGeckoSource("canton-network", testSymbol, time.Second*5)
		s.url = srv.URL

		_, err := s.Fetch(context.Background())

		assert.ErrorContains(t, err, "missing from response")
	})
}

func TestBinanceSource_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("quote normalized", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, testSymbol, r.URL.Query().Get("symbol"))

				_, _ = w.Write([]byte(
					`{
						"symbol": "CCUSDT",
						"lastPrice": "0.10000000",
						"bidPrice": "0.09990000",
						"askPrice": "0.10010000",
						"volume": "1000000",
						"priceChangePercent": "-1.25",
						"highPrice": "0.11",
						"lowPrice": "0.09"
					}`,
				))
			}),
		)
		defer srv.Close()

		s := NewBinanceSource(testSymbol, time.Second*5)
		s.url = srv.URL

		quote, err := s.Fetch(context.Background())
		require.NoError(t, err)

		assert.Equal(t, testSymbol, quote.Symbol)
		assert.InDelta(t, 0.1, quote.LastPrice, 0.0001)
		assert.InDelta(t, 0.0999, quote.BidPrice, 0.0001)
		assert.InDelta(t, -1.25, quote.Change24h, 0.0001)
	})

	t.Run("missing last price", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"symbol": "CCUSDT"}`))
			}),
		)
		defer srv.Close()

		s := NewBinanceSource(testSymbol, time.Second*5)
		s.url = srv.URL

		_, err := s.Fetch(context.Background())

		assert.ErrorContains(t, err, "last price missing")
	})
}

func TestBybitSource_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("quote normalized", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "spot", r.URL.Query().Get("category"))
				assert.Equal(t, testSymbol, r.URL.Query().Get("symbol"))

				_, _ = w.Write([]byte(
					`{
						"retCode": 0,
						"retMsg": "OK",
						"result": {
							"list": [{
								"symbol": "CCUSDT",
								"lastPrice": "0.1",
								"bid1Price": "0.0999",
								"ask1Price": "0.1001",
								"volume24h": "500000",
								"price24hPcnt": "0.025",
								"highPrice24h": "0.11",
								"lowPrice24h": "0.09"
							}]
						}
					}`,
				))
			}),
		)
		defer srv.Close()

		s := NewBybitSource(testSymbol, time.Second*5)
		s.url = srv.URL

		quote, err := s.Fetch(context.Background())
		require.NoError(t, err)

		assert.InDelta(t, 0.1, quote.LastPrice, 0.0001)

		// The change fraction is scaled to a percentage
		assert.InDelta(t, 2.5, quote.Change24h, 0.0001)
	})

	t.Run("bad return code", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(
					`{"retCode": 10001, "retMsg": "params error", "result": {"list": []}}`,
				))
			}),
		)
		defer srv.Close()

		s := NewBybitSource(testSymbol, time.Second*5)
		s.url = srv.URL

		_, err := s.Fetch(context.Background())

		assert.ErrorContains(t, err, "bad return code 10001")
	})

	t.Run("empty ticker list", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"retCode": 0, "result": {"list": []}}`))
			}),
		)
		defer srv.Close()

		s := NewBybitSource(testSymbol, time.Second*5)
		s.url = srv.URL

		_, err := s.Fetch(context.Background())

		assert.ErrorContains(t, err, "no ticker returned")
	})
}
