package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cantonwatch/cantonbot/explorer"
)

// statsKnownFields is the fixed priority order of the network statistics
// fields that get dedicated rendering
var statsKnownFields = []string{
	"total_cc",
	"total_reward",
	"cc_price",
	"total_validator",
	"total_sv",
	"total_transaction",
	"total_parties",
	"version",
	"migration",
	"featured_app_count",
}

// Stats formats the network statistics payload into a chat message
func Stats(res *explorer.Result) string {
	if res.Failed() {
		return "❌ Error getting statistics: " + res.Err
	}

	stats, ok := res.Object()
	if !ok {
		return "❌ Error: Invalid response from API"
	}

	var sb strings.Builder

	sb.WriteString("📊 <b>Canton Network Statistics</b>\n\n")

	if v, ok := stats["total_cc"]; ok {
		fmt.Fprintf(&sb, "💰 <b>Total CC:</b> %s\n", GroupFloat(SafeFloat(v, 0)))
	}

	if v, ok := stats["total_reward"]; ok {
		fmt.Fprintf(&sb, "🎁 <b>Total Reward:</b> %s\n", GroupFloat(SafeFloat(v, 0)))
	}

	if v, ok := stats["cc_price"]; ok {
		fmt.Fprintf(&sb, "💵 <b>CC Price:</b> $%.6f\n", SafeFloat(v, 0))
	}

	if v, ok := stats["total_validator"]; ok {
		fmt.Fprintf(&sb, "🔐 <b>Total Validators:</b> %s\n", GroupInt(SafeInt(v, 0)))
	}

	if v, ok := stats["total_sv"]; ok {
		fmt.Fprintf(&sb, "⭐ <b>Total SV:</b> %s\n", GroupInt(SafeInt(v, 0)))
	}

	if v, ok := stats["total_transaction"]; ok {
		fmt.Fprintf(&sb, "💸 <b>Total Transactions:</b> %s\n", GroupInt(SafeInt(v, 0)))
	}

	if v, ok := stats["total_parties"]; ok {
		fmt.Fprintf(&sb, "👥 <b>Total Parties:</b> %s\n", GroupInt(SafeInt(v, 0)))
	}

	if v, ok := stats["version"]; ok {
		fmt.Fprintf(&sb, "🔢 <b>Version:</b> %s\n", toString(v))
	}

	if v, ok := stats["migration"]; ok {
		fmt.Fprintf(&sb, "🔄 <b>Migration:</b> %d\n", SafeInt(v, 0))
	}

	if v, ok := stats["featured_app_count"]; ok {
		fmt.Fprintf(&sb, "⭐ <b>Featured Apps:</b> %d\n", SafeInt(v, 0))
	}

	// Anything not covered above is appended generically, title-cased
	// from its key, in a stable order
	skip := make(map[string]struct{}, len(statsKnownFields)+2)
	for _, key := range statsKnownFields {
		skip[key] = struct{}{}
	}

	skip["durations"] = struct{}{}
	skip["error"] = struct{}{}

	for _, key := range sortedKeys(stats) {
		if _, known := skip[key]; known {
			continue
		}

		switch v := stats[key].(type) {
		case float64:
			fmt.Fprintf(&sb, "📌 <b>%s:</b> %s\n", TitleKey(key), groupNumber(v))
		case string:
			fmt.Fprintf(&sb, "📌 <b>%s:</b> %s\n", TitleKey(key), renderNumericString(v))
		}
	}

	return sb.String()
}

// renderNumericString renders a string that may hold a number, grouped
// when it parses and verbatim otherwise
func renderNumericString(s string) string {
	cleaned := cleanNumeric(s)
	if cleaned == "" {
		return s
	}

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return s
	}

	if strings.Contains(cleaned, ".") {
		return GroupFloat(parsed)
	}

	return GroupInt(int64(parsed))
}

// sortedKeys returns the object's keys in stable order
func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
