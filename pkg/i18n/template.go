package i18n

import "strings"

// parsedTemplate holds the three pluralization variants of a message,
// each trimmed of surrounding whitespace.
type parsedTemplate struct {
	zero     string
	singular string
	plural   string
}

// parseTemplate splits a raw message into pluralization variants on "|"
// delimiters. A delimiter preceded by an odd number of backslashes is
// literal: the escaping backslash is removed and the "|" kept in the
// segment. An even run of backslashes does not suppress the split.
//
// Segment policy:
//   - one segment: all three variants share it
//   - two segments: singular is the first, zero and plural share the second
//   - three or more: zero, singular, plural in order, the rest is dropped
func parseTemplate(raw string) parsedTemplate {
	segments := splitVariants(raw)

	switch len(segments) {
	case 1:
		s := strings.TrimSpace(segments[0])
		return parsedTemplate{zero: s, singular: s, plural: s}
	case 2:
		rest := strings.TrimSpace(segments[1])
		return parsedTemplate{
			zero:     rest,
			singular: strings.TrimSpace(segments[0]),
			plural:   rest,
		}
	default:
		return parsedTemplate{
			zero:     strings.TrimSpace(segments[0]),
			singular: strings.TrimSpace(segments[1]),
			plural:   strings.TrimSpace(segments[2]),
		}
	}
}

// splitVariants splits on unescaped "|" while resolving "\|" escapes.
// It always returns at least one segment.
func splitVariants(raw string) []string {
	var segments []string
	var current strings.Builder
	backslashes := 0

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if c == '|' {
			if backslashes%2 == 1 {
				// Literal pipe: drop the escaping backslash.
				s := current.String()
				current.Reset()
				current.WriteString(s[:len(s)-1])
				current.WriteByte('|')
			} else {
				segments = append(segments, current.String())
				current.Reset()
			}
			backslashes = 0
			continue
		}

		if c == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
		current.WriteByte(c)
	}

	return append(segments, current.String())
}

// variant selects the message for a pluralization count. Only exact zero and
// exact one are special; every other value, including negative and
// fractional counts, selects the plural form.
func (t parsedTemplate) variant(n float64) string {
	switch n {
	case 0:
		return t.zero
	case 1:
		return t.singular
	}
	return t.plural
}
