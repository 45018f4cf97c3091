// Package i18n provides locale-aware message translation and formatting
// around a mutable-locale translator facade.
//
// A Translator resolves messages from an immutable translation table through
// a language fallback chain, selects a pluralization variant, interpolates
// parameters, and formats numbers and dates for the active locale. Parsed
// message templates are cached per table identity, language, and key.
//
// # Basic Usage
//
// Build a table mapping message keys to per-language messages, create a
// Translator, and translate:
//
//	table := i18n.NewTable(map[string]i18n.Entry{
//		"hello": {
//			"en":    "Hello, World!",
//			"de":    "Hallo, Welt!",
//			"de-DE": "Hallo, Deutschland!",
//		},
//	})
//
//	tr, err := i18n.New(table, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		// ...
//	}
//
//	tr.SetLanguage("de")
//	tr.SetRegion("DE")
//	msg, _ := tr.T("hello")
//	// Output: "Hallo, Deutschland!"
//
// Lookups try "de-DE" first, then "de", then the default language. An
// unknown key renders as the key itself; only an empty key is a hard
// failure (ErrEmptyKey).
//
// # Pluralization
//
// Messages hold up to three variants separated by "|" in zero, singular,
// plural order ("\|" is a literal pipe). Two variants mean singular and
// plural, with the plural form reused for zero:
//
//	"no cats | one cat | {n} cats"
//
//	tr.Tn("cats", 0)       // "no cats"
//	tr.Tn("cats", 1)       // "one cat"
//	tr.Tn("cats", 1234.56) // "1,234.56 cats"
//
// The count is selected by exact comparison: 0 picks zero, 1 picks
// singular, and everything else, including negative and fractional counts,
// picks plural.
//
// # Interpolation
//
// Parameters replace "{name}" placeholders case-insensitively. Numeric
// values are formatted for the active locale; "\{name}" keeps the literal
// text:
//
//	msg, _ := tr.T("goodbye", i18n.Params{"name": "Jan"})
//
// # Inline Entries
//
// An Entry passed directly bypasses the table and the cache:
//
//	tr.TEntry(i18n.Entry{"en": "Saved", "de": "Gespeichert"})
//
// # Number and Date Formatting
//
// N, D, Date, and Time delegate to locale-aware collaborators. Numbers are
// rendered through golang.org/x/text; dates through per-locale Go time
// layouts:
//
//	tr.N(1234.5)                        // "1,234.5"
//	tr.N(19.99, i18n.Currency("EUR"))   // currency amount
//	tr.D(time.Now())                    // "02.01.2006 15:04" style for "de"
//
// Named aliases registered at construction select preconfigured option
// sets:
//
//	tr, _ := i18n.New(table,
//		i18n.WithNumberAlias("precise", i18n.NumberOptions{MinFractionDigits: 2, MaxFractionDigits: 2}),
//		i18n.WithDateAlias("short", i18n.DateOptions{Style: i18n.StyleDate}),
//	)
//	tr.N(3.1, i18n.NumberAlias("precise"))
//
// # Diagnostics
//
// Non-fatal anomalies (unknown key, missing default-language message,
// unknown alias, unparseable locale tag) are reported to an optional
// handler and the call proceeds with a defined fallback:
//
//	tr, _ := i18n.New(table,
//		i18n.WithDiagnosticHandler(i18n.SlogDiagnostics(slog.Default())),
//	)
//
// # Host Integration
//
// NewContext and FromContext carry a Translator through a context tree, and
// FuncMap exposes t/tc/n/d bindings for text and HTML templates.
//
// # Table Verification
//
// Verify replaces compile-time completeness checking: call it from a test
// to assert every key covers the configured language set:
//
//	if err := table.Verify("en", "de"); err != nil {
//		t.Fatal(err)
//	}
package i18n
