package format

import (
	"fmt"
	"strings"

	"github.com/cantonwatch/cantonbot/explorer"
)

// txShownFields are the transaction fields handled explicitly before
// the generic leftover pass
var txShownFields = map[string]struct{}{
	"id":             {},
	"tx_id":          {},
	"transaction_id": {},
	"timestamp":      {},
	"time":           {},
	"created_at":     {},
	"date":           {},
	"status":         {},
	"state":          {},
	"error":          {},
}

// txCurrencyFields always render currency style, even when the key
// falls outside the balance vocabulary
var txCurrencyFields = map[string]struct{}{
	"fee": {},
}

// TransactionDetails formats a single transaction, showing only the
// essential fields. Balance-like fields render currency style with the
// CC unit suffix; nested values are skipped entirely
func TransactionDetails(res *explorer.Result) string {
	if res.Failed() {
		return "❌ Error: " + res.Err
	}

	details, ok := res.Object()
	if !ok {
		return "❌ Error: Invalid response from API"
	}

	header := "💸 <b>Transaction Details</b>\n\n"

	var sb strings.Builder

	sb.WriteString(header)

	if id, ok := firstString(details, "id", "tx_id", "transaction_id"); ok {
		fmt.Fprintf(&sb, "🆔 <b>ID:</b> <code>%s</code>\n", Elide(id, 60))
	}

	if ts, ok := firstString(details, "timestamp", "time", "created_at", "date"); ok {
		fmt.Fprintf(&sb, "🕐 <b>Time:</b> %s\n", ts)
	}

	if status, ok := firstString(details, "status", "state"); ok {
		fmt.Fprintf(&sb, "%s <b>Status:</b> %s\n", txStatusGlyph(status), status)
	}

	for _, key := range sortedKeys(details) {
		if _, shown := txShownFields[key]; shown {
			continue
		}

		value := details[key]
		if value == nil {
			continue
		}

		// Nested objects and lists are never recursed into
		switch value.(type) {
		case map[string]any, []any:
			continue
		}

		_, currency := txCurrencyFields[key]

		switch {
		case currency || IsBalanceKey(key):
			fmt.Fprintf(&sb, "💰 <b>%s:</b> %s CC\n", TitleKey(key), Balance(value))
		default:
			switch v := value.(type) {
			case float64:
				fmt.Fprintf(&sb, "📊 <b>%s:</b> %s\n", TitleKey(key), groupNumber(v))
			case string:
				if len(v) < 80 {
					fmt.Fprintf(&sb, "📌 <b>%s:</b> %s\n", TitleKey(key), v)
				}
			case bool:
				fmt.Fprintf(&sb, "📌 <b>%s:</b> %v\n", TitleKey(key), v)
			}
		}
	}

	if sb.Len() == len(header) {
		sb.WriteString("No additional information available")
	}

	return sb.String()
}

// txStatusGlyph maps a transaction status word to its glyph
func txStatusGlyph(status string) string {
	switch strings.ToLower(status) {
	case "success", "completed", "confirmed", "successful":
		return "✅"
	case "pending", "processing", "in_progress":
		return "⏳"
	default:
		return "❌"
	}
}
