package i18n

import "time"

// DateStyle picks which components of a date/time value are rendered.
type DateStyle int

const (
	StyleDateTime DateStyle = iota
	StyleDate
	StyleTime
)

// DateSpec selects how a date/time value is rendered: DateOptions for
// explicit options or DateAlias for an option set registered on the
// translator.
type DateSpec interface {
	dateSpec()
}

// DateAlias names a date option set registered on the translator via
// WithDateAlias.
type DateAlias string

func (DateAlias) dateSpec() {}

// DateOptions holds explicit date formatting options.
type DateOptions struct {
	Style  DateStyle
	Layout string // explicit Go time layout; overrides the locale layouts
}

func (DateOptions) dateSpec() {}

// DateFormatter renders date/time values according to a locale. Aliases are
// resolved by the translator before the formatter is called.
type DateFormatter interface {
	Format(locale Locale, t time.Time, opts DateOptions) string
}

// LayoutSet holds the Go time layouts a locale renders dates and times with.
type LayoutSet struct {
	Date     string
	Time     string
	DateTime string
}

// LayoutDateFormatter formats dates and times through per-locale Go time
// layouts. Lookup tries the exact locale tag first, then the bare language,
// then the fallback set. It is immutable after creation and safe for
// concurrent use.
type LayoutDateFormatter struct {
	layouts  map[string]LayoutSet
	fallback LayoutSet
}

// LayoutOption configures a LayoutDateFormatter during construction.
type LayoutOption func(*LayoutDateFormatter)

// NewLayoutDateFormatter creates a date formatter preloaded with the
// built-in locale layout sets and a US English fallback.
func NewLayoutDateFormatter(opts ...LayoutOption) *LayoutDateFormatter {
	f := &LayoutDateFormatter{
		layouts:  DefaultLayouts(),
		fallback: LayoutSet{Date: "01/02/2006", Time: "3:04 PM", DateTime: "01/02/2006 3:04 PM"},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithLayoutSet registers or replaces the layout set for a locale tag.
func WithLayoutSet(locale string, set LayoutSet) LayoutOption {
	return func(f *LayoutDateFormatter) {
		f.layouts[locale] = set
	}
}

// WithFallbackLayoutSet replaces the layout set used when no locale matches.
func WithFallbackLayoutSet(set LayoutSet) LayoutOption {
	return func(f *LayoutDateFormatter) {
		f.fallback = set
	}
}

// DefaultLayouts returns the built-in locale layout sets.
func DefaultLayouts() map[string]LayoutSet {
	return map[string]LayoutSet{
		"en":    {Date: "01/02/2006", Time: "3:04 PM", DateTime: "01/02/2006 3:04 PM"},
		"en-US": {Date: "01/02/2006", Time: "3:04 PM", DateTime: "01/02/2006 3:04 PM"},
		"en-GB": {Date: "02/01/2006", Time: "15:04", DateTime: "02/01/2006 15:04"},
		"de":    {Date: "02.01.2006", Time: "15:04", DateTime: "02.01.2006 15:04"},
		"fr":    {Date: "02/01/2006", Time: "15:04", DateTime: "02/01/2006 15:04"},
		"es":    {Date: "02/01/2006", Time: "15:04", DateTime: "02/01/2006 15:04"},
		"pt-BR": {Date: "02/01/2006", Time: "15:04", DateTime: "02/01/2006 15:04"},
		"ja":    {Date: "2006/01/02", Time: "15:04", DateTime: "2006/01/02 15:04"},
		"zh":    {Date: "2006-01-02", Time: "15:04", DateTime: "2006-01-02 15:04"},
		"ko":    {Date: "2006.01.02", Time: "15:04", DateTime: "2006.01.02 15:04"},
		"pl":    {Date: "02.01.2006", Time: "15:04", DateTime: "02.01.2006 15:04"},
		"ru":    {Date: "02.01.2006", Time: "15:04", DateTime: "02.01.2006 15:04"},
	}
}

// Format implements DateFormatter.
func (f *LayoutDateFormatter) Format(l Locale, t time.Time, opts DateOptions) string {
	if opts.Layout != "" {
		return t.Format(opts.Layout)
	}

	set := f.lookup(l)
	switch opts.Style {
	case StyleDate:
		return t.Format(set.Date)
	case StyleTime:
		return t.Format(set.Time)
	default:
		return t.Format(set.DateTime)
	}
}

func (f *LayoutDateFormatter) lookup(l Locale) LayoutSet {
	if set, ok := f.layouts[l.String()]; ok {
		return set
	}
	if set, ok := f.layouts[l.Language]; ok {
		return set
	}
	return f.fallback
}
