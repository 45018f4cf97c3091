package i18n

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Entry maps language tags to raw message strings for a single key.
// An Entry passed directly to the translator acts as an inline translation:
// it bypasses the table and is never cached.
type Entry map[string]string

// resolve returns the raw message for the first language of the fallback
// order present in the entry.
func (e Entry) resolve(order []string) (string, bool) {
	for _, lang := range order {
		if msg, ok := e[lang]; ok {
			return msg, true
		}
	}
	return "", false
}

// Table is an immutable mapping from message keys to translation entries.
// Each table carries an opaque identity assigned at construction, so parsed
// templates cached against one table never collide with another's.
type Table struct {
	id      string
	entries map[string]Entry
}

// NewTable creates a translation table from the given entries. The input is
// deep-copied; later mutations of the argument do not affect the table.
func NewTable(entries map[string]Entry) *Table {
	copied := make(map[string]Entry, len(entries))
	for key, entry := range entries {
		e := make(Entry, len(entry))
		maps.Copy(e, entry)
		copied[key] = e
	}
	return &Table{id: uuid.NewString(), entries: copied}
}

// Entry returns a copy of the translation entry for the given key.
func (t *Table) Entry(key string) (Entry, bool) {
	entry, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	e := make(Entry, len(entry))
	maps.Copy(e, entry)
	return e, true
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns all message keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Verify walks the table and reports every key that lacks a message for any
// of the given languages. It replaces compile-time completeness checking:
// run it from a test to assert the table covers the configured language set.
func (t *Table) Verify(langs ...string) error {
	var errs []error
	for _, key := range t.Keys() {
		entry := t.entries[key]
		for _, lang := range langs {
			if _, ok := entry[lang]; !ok {
				errs = append(errs, fmt.Errorf("%w: key %q has no %q translation", ErrIncompleteTable, key, lang))
			}
		}
	}
	return errors.Join(errs...)
}
