package i18n

import "log/slog"

// DiagnosticKind identifies the category of a soft diagnostic.
type DiagnosticKind string

const (
	// DiagnosticMissingKey fires when a key is absent from the table; the
	// call proceeds with the key itself as the message.
	DiagnosticMissingKey DiagnosticKind = "missing_key"
	// DiagnosticMissingLanguage fires when an entry has no message for any
	// language of the fallback order; the call proceeds with an empty string.
	DiagnosticMissingLanguage DiagnosticKind = "missing_language"
	// DiagnosticUnknownAlias fires when a format alias is not registered;
	// formatting proceeds with default options.
	DiagnosticUnknownAlias DiagnosticKind = "unknown_alias"
	// DiagnosticUnknownLocale fires when a language or region code cannot be
	// parsed as a locale tag; the raw codes are still used for lookups.
	DiagnosticUnknownLocale DiagnosticKind = "unknown_locale"
)

// Diagnostic describes a non-fatal translation or formatting anomaly.
// Fields other than Kind are populated when applicable.
type Diagnostic struct {
	Kind     DiagnosticKind
	Key      string // message key involved
	Language string // language or locale tag involved
	Alias    string // format alias involved
}

// DiagnosticHandler receives soft diagnostics. Handlers are purely
// observational: they must not panic, and the translation call proceeds
// with its defined fallback regardless of what the handler does.
type DiagnosticHandler func(Diagnostic)

// SlogDiagnostics returns a DiagnosticHandler that logs every diagnostic as
// a warning through the given slog logger.
func SlogDiagnostics(log *slog.Logger) DiagnosticHandler {
	return func(d Diagnostic) {
		attrs := make([]any, 0, 3)
		if d.Key != "" {
			attrs = append(attrs, slog.String("key", d.Key))
		}
		if d.Language != "" {
			attrs = append(attrs, slog.String("language", d.Language))
		}
		if d.Alias != "" {
			attrs = append(attrs, slog.String("alias", d.Alias))
		}
		log.Warn("i18n: "+string(d.Kind), attrs...)
	}
}
