package price

import (
	"fmt"

	"github.com/cantonwatch/cantonbot/format"
)

// manualCheckURL is suggested to users when no source can produce a
// price
const manualCheckURL = "https://ru.tradingview.com/chart/?symbol=BYBIT%3ACCUSDT"

// Message renders a quote as the verbose interactive chat message.
// A nil quote renders the all-sources-exhausted explanation with a
// manual-check link instead of a bare error
func Message(quote *Quote) string {
	if quote == nil {
		return "❌ Failed to get CC/USDT price\n\n" +
			"Possible reasons:\n" +
			"• Geographic restrictions on exchange APIs\n" +
			"• CC/USDT token may be unavailable on selected exchanges\n" +
			"• Temporary connection issues\n\n" +
			"Please try again later or check price at " + manualCheckURL
	}

	glyph := "📈"
	if quote.Change24h < 0 {
		glyph = "📉"
	}

	message := fmt.Sprintf("%s <b>CC/USDT Price</b>\n\n", glyph)
	message += fmt.Sprintf("💰 <b>Current Price:</b> $%.6f\n", quote.LastPrice)
	message += fmt.Sprintf("📊 <b>24h Change:</b> %+.2f%%\n", quote.Change24h)
	message += fmt.Sprintf("⬆️ <b>24h High:</b> $%.6f\n", quote.High24h)
	message += fmt.Sprintf("⬇️ <b>24h Low:</b> $%.6f\n", quote.Low24h)
	message += fmt.Sprintf("💵 <b>Bid:</b> $%.6f\n", quote.BidPrice)
	message += fmt.Sprintf("💵 <b>Ask:</b> $%.6f\n", quote.AskPrice)
	message += fmt.Sprintf("📦 <b>24h Volume:</b> %s CC\n", format.GroupFloat(quote.Volume24h))

	return message
}

// Simple renders just the formatted price for unattended broadcast,
// empty when there is nothing worth sending
func Simple(quote *Quote) string {
	if quote == nil || quote.LastPrice <= 0 {
		return ""
	}

	return fmt.Sprintf("$%.6f", quote.LastPrice)
}
