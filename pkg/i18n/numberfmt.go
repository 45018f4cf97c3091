package i18n

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberSpec selects how a numeric value is rendered. Exactly one of the
// concrete variants applies per call: Currency for an ISO 4217 amount,
// NumberOptions for explicit formatting options, or NumberAlias for an
// option set registered on the translator. A nil spec renders a plain
// locale-formatted decimal.
type NumberSpec interface {
	numberSpec()
}

// Currency formats the value as an amount in the given ISO 4217 currency
// code, e.g. Currency("EUR").
type Currency string

func (Currency) numberSpec() {}

// NumberAlias names a number option set registered on the translator via
// WithNumberAlias.
type NumberAlias string

func (NumberAlias) numberSpec() {}

// NumberOptions holds explicit number formatting options.
type NumberOptions struct {
	MinFractionDigits int
	MaxFractionDigits int
	NoGrouping        bool // suppress thousand separators
	Percent           bool // render as a percentage (0.5 -> "50%")
}

func (NumberOptions) numberSpec() {}

func (o NumberOptions) options() []number.Option {
	var opts []number.Option
	if o.MinFractionDigits > 0 {
		opts = append(opts, number.MinFractionDigits(o.MinFractionDigits))
	}
	if o.MaxFractionDigits > 0 {
		opts = append(opts, number.MaxFractionDigits(o.MaxFractionDigits))
	}
	if o.NoGrouping {
		opts = append(opts, number.NoSeparator())
	}
	return opts
}

// NumberFormatter renders numeric values according to a locale. The spec is
// either nil, Currency, or NumberOptions; aliases are resolved by the
// translator before the formatter is called.
type NumberFormatter interface {
	Format(locale Locale, value float64, spec NumberSpec) string
}

// TextNumberFormatter renders numbers through golang.org/x/text, which
// applies per-locale grouping and decimal separator conventions.
type TextNumberFormatter struct{}

// Format implements NumberFormatter.
func (TextNumberFormatter) Format(locale Locale, value float64, spec NumberSpec) string {
	p := message.NewPrinter(localeTag(locale))

	switch s := spec.(type) {
	case Currency:
		unit, err := currency.ParseISO(string(s))
		if err != nil {
			// Unknown code: keep it visible next to a plain amount.
			return p.Sprintf("%s %v", string(s), number.Decimal(value, number.Scale(2)))
		}
		return p.Sprintf("%v", currency.Symbol(unit.Amount(value)))
	case NumberOptions:
		if s.Percent {
			return p.Sprintf("%v", number.Percent(value, s.options()...))
		}
		return p.Sprintf("%v", number.Decimal(value, s.options()...))
	default:
		return p.Sprintf("%v", number.Decimal(value))
	}
}

// localeTag converts a Locale into a BCP 47 tag for the x/text printers,
// falling back to the bare language and then to English when parsing fails.
func localeTag(l Locale) language.Tag {
	if tag, err := language.Parse(l.String()); err == nil {
		return tag
	}
	if tag, err := language.Parse(l.Language); err == nil {
		return tag
	}
	return language.English
}
