package format

import (
	"fmt"
	"strings"

	"github.com/cantonwatch/cantonbot/explorer"
)

// DefaultListLimit bounds short list renders (rounds, governance)
const DefaultListLimit = 5

// roundKnownFields are the round fields with dedicated rendering,
// skipped during the generic leftover pass
var roundKnownFields = map[string]struct{}{
	"id":              {},
	"round_id":        {},
	"timestamp":       {},
	"time":            {},
	"transactions":    {},
	"tx_count":        {},
	"validators":      {},
	"validator_count": {},
}

// Rounds formats the latest rounds into a chat message, rendering at
// most limit records
func Rounds(res *explorer.Result, limit int) string {
	if res.Failed() {
		return "❌ Error getting rounds: " + res.Err
	}

	var sb strings.Builder

	sb.WriteString("🔄 <b>Latest Rounds</b>\n\n")

	list, found := pickList(res.Value, "rounds", "data")
	if !found || len(list) == 0 {
		return sb.String() + "No rounds data available"
	}

	for _, raw := range truncateList(list, limit) {
		round, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		if id, ok := firstString(round, "id", "round_id"); ok {
			fmt.Fprintf(&sb, "<b>Round %s</b>\n", id)
			fmt.Fprintf(&sb, "   🆔 <b>ID:</b> <code>%s</code>\n", Elide(id, 50))
		} else {
			sb.WriteString("<b>Round</b>\n")
		}

		if ts, ok := firstString(round, "timestamp", "time"); ok {
			fmt.Fprintf(&sb, "   🕐 <b>Time:</b> %s\n", ts)
		}

		if v, ok := firstValue(round, "transactions", "tx_count"); ok {
			fmt.Fprintf(&sb, "   💸 <b>Transactions:</b> %s\n", GroupInt(SafeInt(v, 0)))
		}

		if v, ok := firstValue(round, "validators", "validator_count"); ok {
			fmt.Fprintf(&sb, "   🔐 <b>Validators:</b> %s\n", GroupInt(SafeInt(v, 0)))
		}

		for _, key := range sortedKeys(round) {
			if _, known := roundKnownFields[key]; known {
				continue
			}

			switch v := round[key].(type) {
			case float64:
				fmt.Fprintf(&sb, "   • <b>%s:</b> %s\n", TitleKey(key), groupNumber(v))
			case string:
				if len(v) < 100 {
					fmt.Fprintf(&sb, "   • <b>%s:</b> %s\n", TitleKey(key), v)
				}
			}
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
