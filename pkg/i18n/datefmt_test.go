package i18n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/polyglot/pkg/i18n"
)

func TestLayoutDateFormatter(t *testing.T) {
	t.Parallel()

	f := i18n.NewLayoutDateFormatter()
	moment := time.Date(2026, time.August, 23, 14, 5, 0, 0, time.UTC)

	t.Run("datetime per locale", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "08/23/2026 2:05 PM", f.Format(i18n.Locale{Language: "en", Region: "US"}, moment, i18n.DateOptions{}))
		assert.Equal(t, "23.08.2026 14:05", f.Format(i18n.Locale{Language: "de", Region: "DE"}, moment, i18n.DateOptions{}))
	})

	t.Run("date only", func(t *testing.T) {
		t.Parallel()
		got := f.Format(i18n.Locale{Language: "de"}, moment, i18n.DateOptions{Style: i18n.StyleDate})
		assert.Equal(t, "23.08.2026", got)
	})

	t.Run("time only", func(t *testing.T) {
		t.Parallel()
		got := f.Format(i18n.Locale{Language: "ja", Region: "JP"}, moment, i18n.DateOptions{Style: i18n.StyleTime})
		assert.Equal(t, "14:05", got)
	})

	t.Run("region falls back to base language", func(t *testing.T) {
		t.Parallel()
		got := f.Format(i18n.Locale{Language: "de", Region: "AT"}, moment, i18n.DateOptions{Style: i18n.StyleDate})
		assert.Equal(t, "23.08.2026", got)
	})

	t.Run("unknown locale uses fallback set", func(t *testing.T) {
		t.Parallel()
		got := f.Format(i18n.Locale{Language: "xx"}, moment, i18n.DateOptions{Style: i18n.StyleDate})
		assert.Equal(t, "08/23/2026", got)
	})

	t.Run("explicit layout wins", func(t *testing.T) {
		t.Parallel()
		got := f.Format(i18n.Locale{Language: "de"}, moment, i18n.DateOptions{Layout: "2006-01-02"})
		assert.Equal(t, "2026-08-23", got)
	})

	t.Run("custom layout set", func(t *testing.T) {
		t.Parallel()
		custom := i18n.NewLayoutDateFormatter(
			i18n.WithLayoutSet("xx", i18n.LayoutSet{Date: "02 Jan 2006", Time: "15:04", DateTime: "02 Jan 2006 15:04"}),
		)
		got := custom.Format(i18n.Locale{Language: "xx"}, moment, i18n.DateOptions{Style: i18n.StyleDate})
		assert.Equal(t, "23 Aug 2026", got)
	})

	t.Run("custom fallback set", func(t *testing.T) {
		t.Parallel()
		custom := i18n.NewLayoutDateFormatter(
			i18n.WithFallbackLayoutSet(i18n.LayoutSet{Date: "2006/01/02", Time: "15:04", DateTime: "2006/01/02 15:04"}),
		)
		got := custom.Format(i18n.Locale{Language: "zz"}, moment, i18n.DateOptions{Style: i18n.StyleDate})
		assert.Equal(t, "2026/08/23", got)
	})
}
