package i18n

import "context"

type ctxKey struct{}

// NewContext returns a context carrying the translator, making a single
// instance available throughout a request or component tree.
func NewContext(ctx context.Context, tr *Translator) context.Context {
	return context.WithValue(ctx, ctxKey{}, tr)
}

// FromContext extracts the translator stored with NewContext.
// The boolean is false when the context carries none.
func FromContext(ctx context.Context) (*Translator, bool) {
	tr, ok := ctx.Value(ctxKey{}).(*Translator)
	return tr, ok
}
