package serve

import (
	"time"

	"github.com/cantonwatch/cantonbot/price"
)

// requestTimeout is the per-request timeout for upstream API calls
const requestTimeout = time.Second * 10

// defaultSources returns the default price sources, in fallback order
func defaultSources() []price.Source {
	var (
		// CoinGecko spot price
		coinGeckoSource = price.NewCoinGeckoSource(
			"canton-network",
			"CCUSDT",
			requestTimeout,
		)

		// Binance 24h ticker
		binanceSource = price.NewBinanceSource(
			"CCUSDT",
			requestTimeout,
		)

		// Bybit spot ticker
		bybitSource = price.NewBybitSource(
			"CCUSDT",
			requestTimeout,
		)
	)

	return []price.Source{
		coinGeckoSource,
		binanceSource,
		bybitSource,
	}
}
