package format

import (
	"fmt"
	"strings"

	"github.com/cantonwatch/cantonbot/explorer"
)

// DefaultPartyListLimit bounds the party transaction / transfer lists
const DefaultPartyListLimit = 20

// partyShownFields are the party fields handled explicitly before the
// generic leftover pass
var partyShownFields = map[string]struct{}{
	"id":            {},
	"party_id":      {},
	"party":         {},
	"error":         {},
	"balance":       {},
	"total_balance": {},
	"balances":      {},

	// handled by the dedicated balance resolution
	"total_available_coin": {},
	"amulet_balance":       {},
}

// PartyInfo formats a party record. The available balance may live at
// multiple spots across API versions; the known locations are probed in
// order and a missing balance renders as zero
func PartyInfo(res *explorer.Result) string {
	if res.Failed() {
		return "❌ Error: " + res.Err
	}

	info, ok := res.Object()
	if !ok {
		return "❌ Error: Invalid response from API"
	}

	var sb strings.Builder

	sb.WriteString("👥 <b>Party Information</b>\n\n")

	if id, ok := firstString(info, "id", "party_id", "party"); ok {
		fmt.Fprintf(&sb, "🆔 <b>ID:</b> <code>%s</code>\n", Elide(id, 60))
	}

	if balance, found := partyBalance(info); found {
		fmt.Fprintf(&sb, "💰 <b>Balance:</b> %s CC\n", balanceString(balance))
	} else {
		sb.WriteString("💰 <b>Balance:</b> 0.00 CC\n")
	}

	for _, key := range sortedKeys(info) {
		if _, shown := partyShownFields[key]; shown {
			continue
		}

		value := info[key]
		if value == nil {
			continue
		}

		switch value.(type) {
		case map[string]any, []any:
			continue
		}

		switch {
		case IsBalanceKey(key):
			fmt.Fprintf(&sb, "💰 <b>%s:</b> %s CC\n", TitleKey(key), Balance(value))
		default:
			switch v := value.(type) {
			case float64:
				fmt.Fprintf(&sb, "📊 <b>%s:</b> %s\n", TitleKey(key), groupNumber(v))
			case string:
				if len(v) < 80 {
					fmt.Fprintf(&sb, "📌 <b>%s:</b> %s\n", TitleKey(key), v)
				}
			}
		}
	}

	return sb.String()
}

// balanceString renders a resolved balance value, with blank strings
// coerced to zero
func balanceString(balance any) string {
	if s, ok := balance.(string); ok && strings.TrimSpace(s) == "" {
		return GroupFloat(0)
	}

	return Balance(balance)
}

// partyBalance resolves the party's available coin balance, probing the
// known locations across API shapes in order
func partyBalance(info map[string]any) (any, bool) {
	if v, ok := info["total_available_coin"]; ok {
		return v, true
	}

	if amulet, ok := info["amulet_balance"].(map[string]any); ok {
		if balance, ok := amulet["balance"].(map[string]any); ok {
			if v, ok := balance["total_available_coin"]; ok {
				return v, true
			}
		}

		return nil, false
	}

	if balance, ok := info["balance"].(map[string]any); ok {
		if v, ok := balance["total_available_coin"]; ok {
			return v, true
		}
	}

	return nil, false
}

// PartyTransactions formats a party's transaction list, rendering at
// most limit records and linking back to the explorer
func PartyTransactions(res *explorer.Result, limit int, explorerURL string) string {
	if res.Failed() {
		return "❌ Error: " + res.Err
	}

	var sb strings.Builder

	sb.WriteString("💸 <b>Party Transactions</b>\n\n")

	list, found := pickList(res.Value, "transactions", "data", "tx")
	if !found || len(list) == 0 {
		return sb.String() + "No transactions available"
	}

	writePagination(&sb, res)

	for i, raw := range truncateList(list, limit) {
		tx, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		fmt.Fprintf(&sb, "<b>%d.</b> ", i+1)

		if id, ok := firstString(tx, "update_id", "id", "tx_id", "transaction_id"); ok {
			fmt.Fprintf(&sb, "<code>%s</code>\n", ElideBothEnds(id, 50, 25, 20))
		}

		if choice, ok := firstString(tx, "choice"); ok && choice != "" {
			fmt.Fprintf(&sb, "   🔹 <b>Operation:</b> %s\n", TitleKey(choice))
		}

		if ts, ok := firstString(tx, "effective_at", "record_time", "timestamp", "time", "created_at"); ok {
			fmt.Fprintf(&sb, "   🕐 <b>Time:</b> %s\n", cleanTimestamp(ts))
		}

		if consuming, ok := tx["consuming"].(bool); ok {
			if consuming {
				sb.WriteString("   🔄 <b>Consuming</b>\n")
			} else {
				sb.WriteString("   ✅ <b>Non-consuming</b>\n")
			}
		}

		if contractID, ok := firstString(tx, "contract_id"); ok && contractID != "" {
			fmt.Fprintf(&sb, "   📄 <b>Contract:</b> <code>%s</code>\n", ElideBothEnds(contractID, 50, 25, 20))
		}

		if parties, ok := tx["acting_parties"].([]any); ok && len(parties) > 0 {
			if len(parties) == 1 {
				party := toString(parties[0])
				fmt.Fprintf(&sb, "   👤 <b>Party:</b> <code>%s</code>\n", ElideBothEnds(party, 40, 20, 15))
			} else {
				fmt.Fprintf(&sb, "   👥 <b>Parties:</b> %d\n", len(parties))
			}
		}

		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "\n🔗 <a href='%s'>View on Explorer</a>", explorerURL)

	return sb.String()
}

// transferKnownFields are the transfer fields with dedicated rendering
var transferKnownFields = map[string]struct{}{
	"id":          {},
	"transfer_id": {},
	"timestamp":   {},
	"time":        {},
	"from":        {},
	"from_party":  {},
	"to":          {},
	"to_party":    {},
}

// PartyTransfers formats a party's transfer list, rendering at most
// limit records and linking back to the explorer
func PartyTransfers(res *explorer.Result, limit int, explorerURL string) string {
	if res.Failed() {
		return "❌ Error: " + res.Err
	}

	var sb strings.Builder

	sb.WriteString("🔄 <b>Party Transfers</b>\n\n")

	list, found := pickList(res.Value, "transfers", "data", "transfer", "items")
	if !found || len(list) == 0 {
		return sb.String() + noTransfersMessage(res)
	}

	writePagination(&sb, res)

	for i, raw := range truncateList(list, limit) {
		transfer, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		fmt.Fprintf(&sb, "<b>%d. Transfer</b>\n", i+1)

		if id, ok := firstString(transfer, "id", "transfer_id"); ok {
			fmt.Fprintf(&sb, "   🆔 <b>ID:</b> <code>%s</code>\n", Elide(id, 50))
		}

		if ts, ok := firstString(transfer, "timestamp", "time"); ok {
			fmt.Fprintf(&sb, "   🕐 <b>Time:</b> %s\n", ts)
		}

		if from, ok := firstString(transfer, "from", "from_party"); ok {
			fmt.Fprintf(&sb, "   📤 <b>From:</b> <code>%s</code>\n", Elide(from, 50))
		}

		if to, ok := firstString(transfer, "to", "to_party"); ok {
			fmt.Fprintf(&sb, "   📥 <b>To:</b> <code>%s</code>\n", Elide(to, 50))
		}

		for _, key := range sortedKeys(transfer) {
			if _, known := transferKnownFields[key]; known {
				continue
			}

			value := transfer[key]

			switch {
			case IsBalanceKey(key):
				fmt.Fprintf(&sb, "   💰 <b>%s:</b> %s CC\n", TitleKey(key), Balance(value))
			default:
				if v, ok := value.(float64); ok {
					fmt.Fprintf(&sb, "   📊 <b>%s:</b> %s\n", TitleKey(key), groupNumber(v))
				}
			}
		}

		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "\n🔗 <a href='%s'>View on Explorer</a>", explorerURL)

	return sb.String()
}

// noTransfersMessage explains an empty transfer response. When the
// response is an object whose shape simply wasn't recognized, its key
// inventory is included as a debugging aid
func noTransfersMessage(res *explorer.Result) string {
	obj, ok := res.Object()
	if !ok {
		return "No transfers available"
	}

	keys := sortedKeys(obj)
	if len(keys) > 10 {
		keys = keys[:10]
	}

	descriptions := make([]string, 0, len(keys))

	for _, key := range keys {
		descriptions = append(descriptions, key+": "+describeValue(obj[key]))
	}

	return "No transfers available.\nResponse structure: " + strings.Join(descriptions, ", ")
}

// describeValue names a payload value's type, with length for lists
func describeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return fmt.Sprintf("list (len=%d)", len(val))
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// writePagination renders the pagination hint row when the payload
// carries pagination info
func writePagination(sb *strings.Builder, res *explorer.Result) {
	obj, ok := res.Object()
	if !ok {
		return
	}

	pagination, ok := obj["pagination"].(map[string]any)
	if !ok {
		return
	}

	hasNext, _ := pagination["has_next"].(bool)
	hasPrevious, _ := pagination["has_previous"].(bool)

	if !hasNext && !hasPrevious {
		return
	}

	sb.WriteString("📄 <b>Pagination:</b> ")

	if hasPrevious {
		sb.WriteString("◀️ Previous ")
	}

	if hasNext {
		sb.WriteString("Next ▶️")
	}

	sb.WriteString("\n\n")
}
