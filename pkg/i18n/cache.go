package i18n

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// templateCache memoizes parsed templates per (table identity, primary
// fallback language, message key). Entries are filled lazily on first
// lookup and never expire; swapping a translator's table drops the previous
// table's entries wholesale, which keeps the cache from outliving tables it
// can no longer serve.
type templateCache struct {
	entries map[string]parsedTemplate
	group   singleflight.Group
	mu      sync.RWMutex
}

func newTemplateCache() *templateCache {
	return &templateCache{entries: make(map[string]parsedTemplate)}
}

func cacheKey(tableID, lang, key string) string {
	return tableID + ":" + lang + ":" + key
}

// getOrParse returns the cached template for the triple, computing and
// storing it via parse on a miss. Concurrent misses for the same triple are
// deduplicated with singleflight, so parse runs at most once per in-flight
// key and its diagnostics fire once.
func (c *templateCache) getOrParse(tableID, lang, key string, parse func() parsedTemplate) parsedTemplate {
	ck := cacheKey(tableID, lang, key)

	c.mu.RLock()
	tpl, ok := c.entries[ck]
	c.mu.RUnlock()
	if ok {
		return tpl
	}

	v, _, _ := c.group.Do(ck, func() (any, error) {
		// Another goroutine may have filled the entry between the read
		// above and winning the flight.
		c.mu.RLock()
		tpl, ok := c.entries[ck]
		c.mu.RUnlock()
		if ok {
			return tpl, nil
		}

		tpl = parse()

		c.mu.Lock()
		c.entries[ck] = tpl
		c.mu.Unlock()

		return tpl, nil
	})

	return v.(parsedTemplate)
}

// dropTable evicts every entry belonging to the given table identity.
func (c *templateCache) dropTable(tableID string) {
	prefix := tableID + ":"

	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

// len reports the number of cached templates.
func (c *templateCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
