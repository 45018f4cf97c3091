package i18n

import (
	"slices"
	"strings"
)

// DefaultLang is the default fallback language used when no default language
// is specified at construction.
const DefaultLang = "en"

// Locale identifies a spoken language with an optional region narrowing it
// to a territory, e.g. {Language: "de", Region: "DE"}. Tags are opaque: no
// validation is applied beyond string comparison during lookups.
type Locale struct {
	Language string
	Region   string
}

// ParseLocale splits a tag such as "de-DE" into language and region parts.
// Underscore separators are accepted ("de_DE"). Only the first separator is
// significant; anything after a second separator is kept as part of the
// region.
func ParseLocale(tag string) Locale {
	tag = strings.TrimSpace(tag)
	lang, region, _ := strings.Cut(strings.ReplaceAll(tag, "_", "-"), "-")
	return Locale{Language: lang, Region: region}
}

// String returns the canonical "language-REGION" form, or just the language
// when no region is set.
func (l Locale) String() string {
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "-" + l.Region
}

// fallbackOrder returns the languages to try when resolving a translation,
// highest precedence first: "language-REGION" when a region is set, then the
// bare language, then the default language when it differs from both.
// The result always has at least one entry.
func (l Locale) fallbackOrder(defaultLang string) []string {
	order := make([]string, 0, 3)
	if l.Region != "" {
		order = append(order, l.String())
	}
	order = append(order, l.Language)

	if defaultLang != "" && !slices.Contains(order, defaultLang) {
		order = append(order, defaultLang)
	}

	return order
}
