package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantonwatch/cantonbot/price"
)

type mockQuoteProvider struct {
	latestFn func() *price.Quote
}

func (m *mockQuoteProvider) Latest() *price.Quote {
	if m.latestFn != nil {
		return m.latestFn()
	}

	return nil
}

func TestHandlers_LatestPrice(t *testing.T) {
	t.Parallel()

	t.Run("no price yet", func(t *testing.T) {
		t.Parallel()

		s := &Server{
			quotes: &mockQuoteProvider{},
			logger: noopLogger,
		}

		w := httptest.NewRecorder()
		s.LatestPrice(w, httptest.NewRequest(http.MethodGet, "/v1/price", http.NoBody))

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse

		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, errNoPriceAvailable.Error(), resp.Error)
	})

	t.Run("latest price returned", func(t *testing.T) {
		t.Parallel()

		expected := &price.Quote{
			Symbol:    "CCUSDT",
			LastPrice: 0.1,
			BidPrice:  0.0999,
			AskPrice:  0.1001,
		}

		s := &Server{
			quotes: &mockQuoteProvider{
				latestFn: func() *price.Quote {
					return expected
				},
			},
			logger: noopLogger,
		}

		w := httptest.NewRecorder()
		s.LatestPrice(w, httptest.NewRequest(http.MethodGet, "/v1/price", http.NoBody))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var quote price.Quote

		require.NoError(t, json.NewDecoder(w.Body).Decode(&quote))

		assert.Equal(t, expected.Symbol, quote.Symbol)
		assert.InDelta(t, expected.LastPrice, quote.LastPrice, 0.0001)
	})
}
