package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

// Params carries interpolation values keyed by placeholder name.
type Params map[string]any

// interpolate replaces "{name}" placeholders in msg with parameter values.
// Placeholder names match case-insensitively and may be padded with
// whitespace inside the braces. A placeholder whose opening brace is
// preceded by a backslash is kept as literal text with the backslash
// removed. Numeric values go through formatNumber; strings are substituted
// verbatim; nil becomes an empty string; anything else uses its generic
// display form. Unmatched placeholders are left untouched. The result is
// trimmed of surrounding whitespace.
func interpolate(msg string, params Params, formatNumber func(float64) string) string {
	result := msg
	for name, value := range params {
		pattern := regexp.MustCompile(`(?i)\\?\{\s*` + regexp.QuoteMeta(name) + `\s*\}`)
		replacement := renderValue(value, formatNumber)
		result = pattern.ReplaceAllStringFunc(result, func(match string) string {
			if strings.HasPrefix(match, `\`) {
				return match[1:]
			}
			return replacement
		})
	}
	return strings.TrimSpace(result)
}

// renderValue converts a parameter value to its display string, routing
// numeric types through the locale number formatter.
func renderValue(value any, formatNumber func(float64) string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case int:
		return formatNumber(float64(v))
	case int8:
		return formatNumber(float64(v))
	case int16:
		return formatNumber(float64(v))
	case int32:
		return formatNumber(float64(v))
	case int64:
		return formatNumber(float64(v))
	case uint:
		return formatNumber(float64(v))
	case uint8:
		return formatNumber(float64(v))
	case uint16:
		return formatNumber(float64(v))
	case uint32:
		return formatNumber(float64(v))
	case uint64:
		return formatNumber(float64(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
