package i18n

import (
	"fmt"
	"maps"
	"sync"

	"golang.org/x/text/language"
)

// Translator is the public translation facade. It composes the fallback
// resolver, template cache, variant selection, and interpolation around a
// translation table, and holds the mutable active locale.
//
// The locale is guarded by a read-write lock and the template cache by its
// own lock, so a Translator is safe for concurrent use. Formatters, aliases,
// and the diagnostic handler are fixed at construction.
type Translator struct {
	table         *Table
	cache         *templateCache
	numbers       NumberFormatter
	dates         DateFormatter
	diagnostics   DiagnosticHandler
	numberAliases map[string]NumberOptions
	dateAliases   map[string]DateOptions
	defaultLang   string
	initialTag    string
	locale        Locale
	mu            sync.RWMutex
}

// Option configures the Translator during construction.
type Option func(*Translator) error

// New creates a Translator over the given translation table. A nil table is
// treated as empty. The active locale starts at the default language unless
// WithLocale overrides it.
func New(table *Table, opts ...Option) (*Translator, error) {
	if table == nil {
		table = NewTable(nil)
	}

	tr := &Translator{
		table:         table,
		cache:         newTemplateCache(),
		numbers:       TextNumberFormatter{},
		dates:         NewLayoutDateFormatter(),
		numberAliases: make(map[string]NumberOptions),
		dateAliases:   make(map[string]DateOptions),
		defaultLang:   DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(tr); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	tr.defaultLang = ParseLocale(tr.defaultLang).String()

	// Applied after the options so WithDiagnosticHandler is already in
	// place when the initial tag is validated.
	if tr.initialTag != "" {
		tr.SetLocale(tr.initialTag)
	} else {
		tr.locale = ParseLocale(tr.defaultLang)
	}

	return tr, nil
}

// WithDefaultLanguage sets the default/fallback language. The tag is
// normalized to "language" or "language-REGION" form at construction.
func WithDefaultLanguage(lang string) Option {
	return func(tr *Translator) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		tr.defaultLang = lang
		return nil
	}
}

// WithLocale sets the initial active locale, e.g. "de-DE".
func WithLocale(tag string) Option {
	return func(tr *Translator) error {
		tr.initialTag = tag
		return nil
	}
}

// WithDiagnosticHandler sets the sink invoked for soft diagnostics such as
// unknown keys and unregistered format aliases.
func WithDiagnosticHandler(handler DiagnosticHandler) Option {
	return func(tr *Translator) error {
		tr.diagnostics = handler
		return nil
	}
}

// WithNumberFormatter replaces the number formatting collaborator.
func WithNumberFormatter(f NumberFormatter) Option {
	return func(tr *Translator) error {
		if f == nil {
			return fmt.Errorf("i18n: number formatter cannot be nil")
		}
		tr.numbers = f
		return nil
	}
}

// WithDateFormatter replaces the date formatting collaborator.
func WithDateFormatter(f DateFormatter) Option {
	return func(tr *Translator) error {
		if f == nil {
			return fmt.Errorf("i18n: date formatter cannot be nil")
		}
		tr.dates = f
		return nil
	}
}

// WithNumberAlias registers a named number option set usable as
// NumberAlias(name) in N calls.
func WithNumberAlias(name string, opts NumberOptions) Option {
	return func(tr *Translator) error {
		tr.numberAliases[name] = opts
		return nil
	}
}

// WithDateAlias registers a named date option set usable as
// DateAlias(name) in D, Date, and Time calls.
func WithDateAlias(name string, opts DateOptions) Option {
	return func(tr *Translator) error {
		tr.dateAliases[name] = opts
		return nil
	}
}

// Locale returns the active locale.
func (tr *Translator) Locale() Locale {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.locale
}

// Language returns the active language tag.
func (tr *Translator) Language() string {
	return tr.Locale().Language
}

// Region returns the active region tag, or an empty string.
func (tr *Translator) Region() string {
	return tr.Locale().Region
}

// SetLanguage changes the active language while preserving the region.
func (tr *Translator) SetLanguage(lang string) {
	tr.mu.Lock()
	tr.locale.Language = lang
	loc := tr.locale
	tr.mu.Unlock()

	tr.validateLocale(loc)
}

// SetRegion changes the active region while preserving the language.
// An empty region clears it.
func (tr *Translator) SetRegion(region string) {
	tr.mu.Lock()
	tr.locale.Region = region
	loc := tr.locale
	tr.mu.Unlock()

	tr.validateLocale(loc)
}

// SetLocale replaces the active locale wholesale from a tag such as "de-DE".
func (tr *Translator) SetLocale(tag string) {
	loc := ParseLocale(tag)

	tr.mu.Lock()
	tr.locale = loc
	tr.mu.Unlock()

	tr.validateLocale(loc)
}

// DefaultLanguage returns the normalized default/fallback language.
func (tr *Translator) DefaultLanguage() string {
	return tr.defaultLang
}

// Table returns the active translation table.
func (tr *Translator) Table() *Table {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.table
}

// SetTable swaps the translation table. Cached templates belonging to the
// previous table are evicted; entries for the new table fill lazily.
func (tr *Translator) SetTable(table *Table) {
	if table == nil {
		table = NewTable(nil)
	}

	tr.mu.Lock()
	old := tr.table
	tr.table = table
	tr.mu.Unlock()

	if old != nil && old != table {
		tr.cache.dropTable(old.id)
	}
}

// T translates a key with a pluralization count of one.
// An empty key is the single hard failure and returns ErrEmptyKey.
func (tr *Translator) T(key string, params ...Params) (string, error) {
	return tr.Tn(key, 1, params...)
}

// Tn translates a key with a pluralization count. The count selects the
// zero, singular, or plural variant and is exposed to interpolation as the
// "{n}" parameter; an explicitly supplied "n" parameter wins for display,
// while the count argument always drives variant selection.
func (tr *Translator) Tn(key string, n float64, params ...Params) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	tr.mu.RLock()
	table := tr.table
	order := tr.locale.fallbackOrder(tr.defaultLang)
	tr.mu.RUnlock()

	tpl := tr.cache.getOrParse(table.id, order[0], key, func() parsedTemplate {
		return tr.resolveKey(table, key, order)
	})

	return tr.render(tpl, n, params), nil
}

// TEntry translates an inline entry with a pluralization count of one.
// Inline entries bypass the table and the cache.
func (tr *Translator) TEntry(entry Entry, params ...Params) string {
	return tr.TnEntry(entry, 1, params...)
}

// TnEntry translates an inline entry with a pluralization count.
func (tr *Translator) TnEntry(entry Entry, n float64, params ...Params) string {
	tr.mu.RLock()
	order := tr.locale.fallbackOrder(tr.defaultLang)
	tr.mu.RUnlock()

	var tpl parsedTemplate
	if raw, ok := entry.resolve(order); ok {
		tpl = parseTemplate(raw)
	} else {
		tr.diag(Diagnostic{Kind: DiagnosticMissingLanguage, Language: tr.defaultLang})
	}

	return tr.render(tpl, n, params)
}

// N formats a numeric value for the active locale. A nil value yields an
// empty string. Numeric strings are coerced; anything else non-numeric
// yields an empty string. The optional spec is a Currency code, explicit
// NumberOptions, or a registered NumberAlias.
func (tr *Translator) N(value any, spec ...NumberSpec) string {
	v, ok := toFloat(value)
	if !ok {
		return ""
	}

	var s NumberSpec
	if len(spec) > 0 {
		s = spec[0]
	}
	if alias, isAlias := s.(NumberAlias); isAlias {
		opts, found := tr.numberAliases[string(alias)]
		if !found {
			tr.diag(Diagnostic{Kind: DiagnosticUnknownAlias, Alias: string(alias)})
			s = nil
		} else {
			s = opts
		}
	}

	return tr.numbers.Format(tr.Locale(), v, s)
}

// D formats a date/time value (date and time components) for the active
// locale. Nil, empty-string, and uncoercible values yield an empty string.
func (tr *Translator) D(value any, spec ...DateSpec) string {
	return tr.formatDate(value, StyleDateTime, spec)
}

// Date formats only the date component of a value for the active locale.
func (tr *Translator) Date(value any, spec ...DateSpec) string {
	return tr.formatDate(value, StyleDate, spec)
}

// Time formats only the time component of a value for the active locale.
func (tr *Translator) Time(value any, spec ...DateSpec) string {
	return tr.formatDate(value, StyleTime, spec)
}

func (tr *Translator) formatDate(value any, style DateStyle, specs []DateSpec) string {
	t, ok := toTime(value)
	if !ok {
		return ""
	}

	opts := DateOptions{Style: style}
	if len(specs) > 0 {
		switch s := specs[0].(type) {
		case DateAlias:
			if o, found := tr.dateAliases[string(s)]; found {
				opts = o
			} else {
				tr.diag(Diagnostic{Kind: DiagnosticUnknownAlias, Alias: string(s)})
			}
		case DateOptions:
			opts = s
		}
	}

	return tr.dates.Format(tr.Locale(), t, opts)
}

// resolveKey resolves a raw message from the table and parses it. Runs on
// cache misses only, so each diagnostic fires once per cached triple.
func (tr *Translator) resolveKey(table *Table, key string, order []string) parsedTemplate {
	entry, ok := table.entries[key]
	if !ok {
		tr.diag(Diagnostic{Kind: DiagnosticMissingKey, Key: key, Language: order[0]})
		// An untranslated key displays as itself: synthesize an entry
		// mapping the last fallback language to the key literal.
		entry = Entry{order[len(order)-1]: key}
	}

	raw, ok := entry.resolve(order)
	if !ok {
		tr.diag(Diagnostic{Kind: DiagnosticMissingLanguage, Key: key, Language: tr.defaultLang})
		return parsedTemplate{}
	}

	return parseTemplate(raw)
}

func (tr *Translator) render(tpl parsedTemplate, n float64, params []Params) string {
	merged := make(Params, len(params)+1)
	merged["n"] = n
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return interpolate(tpl.variant(n), merged, tr.plainNumber)
}

func (tr *Translator) plainNumber(v float64) string {
	return tr.numbers.Format(tr.Locale(), v, nil)
}

func (tr *Translator) validateLocale(loc Locale) {
	if _, err := language.Parse(loc.String()); err != nil {
		tr.diag(Diagnostic{Kind: DiagnosticUnknownLocale, Language: loc.String()})
	}
}

func (tr *Translator) diag(d Diagnostic) {
	if tr.diagnostics != nil {
		tr.diagnostics(d)
	}
}
