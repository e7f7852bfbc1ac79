package format

import (
	"fmt"
	"strings"

	"github.com/cantonwatch/cantonbot/explorer"
)

// Validator activity thresholds, applied to the "rounds missed" count
const (
	recentMissThreshold = 10

	// missing miss_round data is treated as worst case
	defaultMissRounds = 999
)

// Validators formats the validator roster into an aggregate message,
// classifying every validator into exactly one of three activity
// buckets based on its missed-round count
func Validators(res *explorer.Result) string {
	if res.Failed() {
		return "❌ Error getting validators: " + res.Err
	}

	var sb strings.Builder

	sb.WriteString("🔐 <b>Validators Statistics</b>\n\n")

	list, found := pickList(res.Value, "validators", "data")

	total := int64(len(list))

	if obj, ok := res.Object(); ok {
		if v, present := obj["count"]; present {
			total = SafeInt(v, total)
		}
	}

	fmt.Fprintf(&sb, "📊 <b>Total Validators:</b> %s\n\n", GroupInt(total))

	if !found || len(list) == 0 {
		sb.WriteString("✅ <b>Active:</b> N/A\n")
		sb.WriteString("🔄 <b>Recent:</b> N/A\n")
		sb.WriteString("⏸️ <b>Inactive:</b> N/A\n")

		return sb.String()
	}

	var active, recent, inactive int64

	for _, raw := range list {
		validator, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		missed := int64(defaultMissRounds)
		if v, present := validator["miss_round"]; present {
			missed = SafeInt(v, 0)
		}

		switch {
		case missed == 0:
			active++
		case missed < recentMissThreshold:
			recent++
		default:
			inactive++
		}
	}

	fmt.Fprintf(&sb, "✅ <b>Active:</b> %s\n", GroupInt(active))
	fmt.Fprintf(&sb, "🔄 <b>Recent:</b> %s\n", GroupInt(recent))
	fmt.Fprintf(&sb, "⏸️ <b>Inactive:</b> %s\n", GroupInt(inactive))

	return sb.String()
}
