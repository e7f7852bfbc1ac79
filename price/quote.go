package price

import "context"

// Quote is a normalized CC/USDT price record. Each upstream ticker
// exposes its own shape; sources normalize into this one before the
// quote reaches rendering or the status API
type Quote struct {
	Symbol    string  `json:"symbol"`
	LastPrice float64 `json:"last_price"`
	BidPrice  float64 `json:"bid_price"`
	AskPrice  float64 `json:"ask_price"`
	Volume24h float64 `json:"volume_24h"`
	Change24h float64 `json:"price_change_24h"` // percent
	High24h   float64 `json:"high_24h"`
	Low24h    float64 `json:"low_24h"`
}

// Source is a single upstream price ticker
type Source interface {
	// Name returns the human-readable name of the source
	Name() string

	// Fetch returns the source's current normalized quote
	Fetch(ctx context.Context) (*Quote, error)
}
