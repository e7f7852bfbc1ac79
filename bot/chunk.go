package bot

import "strings"

// MaxMessageLength is the delivery-size budget per message. Telegram
// caps messages at 4096 characters; some margin is left for the part
// prefix
const MaxMessageLength = 4000

// SplitMessage splits a rendered message into delivery-sized parts.
// Splitting happens on line boundaries; a single line longer than the
// limit is hard-split. Order is preserved and no content is dropped
func SplitMessage(message string, limit int) []string {
	if runeLen(message) <= limit {
		return []string{message}
	}

	var (
		parts       []string
		currentPart strings.Builder
	)

	flush := func() {
		if currentPart.Len() > 0 {
			parts = append(parts, strings.TrimSpace(currentPart.String()))
			currentPart.Reset()
		}
	}

	for _, line := range strings.Split(message, "\n") {
		lineLen := runeLen(line)

		switch {
		case lineLen > limit:
			// The line itself is oversized, hard-split it
			flush()

			runes := []rune(line)
			for len(runes) > limit {
				parts = append(parts, string(runes[:limit]))
				runes = runes[limit:]
			}

			if len(runes) > 0 {
				currentPart.WriteString(string(runes))
				currentPart.WriteByte('\n')
			}
		case runeLen(currentPart.String())+lineLen+1 <= limit:
			currentPart.WriteString(line)
			currentPart.WriteByte('\n')
		default:
			flush()

			currentPart.WriteString(line)
			currentPart.WriteByte('\n')
		}
	}

	flush()

	return parts
}

func runeLen(s string) int {
	return len([]rune(s))
}
