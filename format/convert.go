package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BalanceVocabulary is the set of key fragments that mark a field as a
// currency amount. Matching is case-insensitive and substring based
var BalanceVocabulary = []string{
	"balance",
	"amount",
	"value",
	"cc",
	"reward",
	"stake",
	"transfer",
	"deposit",
	"withdraw",
}

// SafeFloat coerces an arbitrary decoded JSON value into a float64.
// Strings may carry thousands separators ("123,456.78").
// Values that cannot be coerced yield the fallback, so the conversion
// never fails
func SafeFloat(value any, fallback float64) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(cleanNumeric(v), 64)
		if err != nil {
			return fallback
		}

		return parsed
	default:
		return fallback
	}
}

// SafeInt coerces an arbitrary decoded JSON value into an int64,
// truncating any fractional part. Values that cannot be coerced yield
// the fallback
func SafeInt(value any, fallback int64) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case string:
		parsed, err := strconv.ParseFloat(cleanNumeric(v), 64)
		if err != nil {
			return fallback
		}

		return int64(parsed)
	default:
		return fallback
	}
}

// Balance renders a numeric-or-string value as a fixed two-decimal,
// thousands-grouped string ("1,234.50"). Values that cannot be coerced
// fall back to their raw string representation
func Balance(value any) string {
	switch v := value.(type) {
	case float64, float32, int, int64:
		return GroupFloat(SafeFloat(v, 0))
	case string:
		parsed, err := strconv.ParseFloat(cleanNumeric(v), 64)
		if err != nil {
			return v
		}

		return GroupFloat(parsed)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// IsBalanceKey reports whether the field name suggests a balance /
// amount field, driving currency-style rendering downstream
func IsBalanceKey(key string) bool {
	lower := strings.ToLower(key)

	for _, keyword := range BalanceVocabulary {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// GroupInt renders an integer with thousands separators
func GroupInt(n int64) string {
	return groupDigits(strconv.FormatInt(n, 10))
}

// GroupFloat renders a float with thousands separators and two decimals
func GroupFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)

	dot := strings.IndexByte(s, '.')

	return groupDigits(s[:dot]) + s[dot:]
}

// groupNumber renders a leftover numeric value. Whole values group as
// integers, fractional ones keep two decimals
func groupNumber(f float64) string {
	if f == math.Trunc(f) {
		return GroupInt(int64(f))
	}

	return GroupFloat(f)
}

// groupDigits inserts thousands separators into a (possibly signed)
// decimal digit run
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	if len(s) <= 3 {
		return sign + s
	}

	var sb strings.Builder

	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}

	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(s[i : i+3])
	}

	return sign + sb.String()
}

// cleanNumeric strips thousands separators and whitespace from a
// string-encoded number
func cleanNumeric(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")

	return strings.ReplaceAll(s, " ", "")
}
