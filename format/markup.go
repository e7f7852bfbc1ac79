package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleKey turns a snake_case JSON key into a display label:
// "total_cc" -> "Total Cc"
func TitleKey(key string) string {
	words := strings.Split(key, "_")

	for i, word := range words {
		if word == "" {
			continue
		}

		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])

		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}

// Elide truncates a string to at most max runes, marking the cut with a
// trailing ellipsis so the surviving prefix stays recognizable
func Elide(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)

	return string(runes[:max-3]) + "..."
}

// ElideBothEnds truncates a string to a head and tail around an ellipsis,
// keeping both ends of long identifiers recognizable
func ElideBothEnds(s string, max, head, tail int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)

	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}

// pickList locates the record list within a decoded payload.
// A top-level array wins outright; otherwise the candidate keys are
// probed in priority order and the first list-typed hit is used
func pickList(value any, keys ...string) ([]any, bool) {
	if list, ok := value.([]any); ok {
		return list, true
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}

	for _, key := range keys {
		if list, ok := obj[key].([]any); ok {
			return list, true
		}
	}

	return nil, false
}

// truncateList bounds the record list to the display limit
func truncateList(list []any, limit int) []any {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}

	return list
}

// firstValue returns the first present, non-nil value among the
// candidate keys
func firstValue(obj map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}

	return nil, false
}

// firstString returns the first present candidate value, rendered as a
// string
func firstString(obj map[string]any, keys ...string) (string, bool) {
	v, ok := firstValue(obj, keys...)
	if !ok {
		return "", false
	}

	return toString(v), true
}

// toString renders a scalar payload value the way it arrived, with
// string values verbatim and numbers without exponent noise
func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return trimFloat(val)
	default:
		return stringify(v)
	}
}

// trimFloat renders a float without exponent noise or trailing zeros
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}

// cleanTimestamp makes an ISO timestamp readable:
// "2025-12-05T13:01:59.960736Z" -> "2025-12-05 13:01:59"
func cleanTimestamp(s string) string {
	i := strings.IndexByte(s, 'T')
	if i == -1 {
		return s
	}

	date, clock := s[:i], s[i+1:]

	if j := strings.IndexByte(clock, '.'); j != -1 {
		clock = clock[:j]
	}

	clock = strings.TrimSuffix(clock, "Z")

	return date + " " + clock
}
