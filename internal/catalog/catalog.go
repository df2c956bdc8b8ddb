// Package catalog holds the read-only table of UI components and the two
// ways of finding things in it: a first-hit lookup (FindComponent) and a
// scored ranking (Search). The two intentionally disagree on precedence.
package catalog

import (
	"fmt"
	"maps"
	"strings"
	"sync"
)

// Catalog is an immutable component table. Iteration order is insertion
// order and is part of the contract: lookup ties and ranking ties resolve by it.
type Catalog struct {
	records []ComponentRecord
	index   map[string]int
	aliases map[string]string
}

// CategoryCount pairs a category with the number of components in it.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// New validates records and aliases and builds a Catalog. Keys must be
// unique, aliases must point at existing keys and must not shadow a key.
func New(records []ComponentRecord, aliases map[string]string) (*Catalog, error) {
	c := &Catalog{
		records: make([]ComponentRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
		aliases: make(map[string]string, len(aliases)),
	}

	for _, r := range records {
		if err := r.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[r.Key]; dup {
			return nil, fmt.Errorf("duplicate component key %q", r.Key)
		}
		c.index[r.Key] = len(c.records)
		c.records = append(c.records, r.clone())
	}

	for alias, target := range aliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" {
			return nil, fmt.Errorf("empty alias for %q", target)
		}
		if _, isKey := c.index[alias]; isKey {
			return nil, fmt.Errorf("alias %q shadows a component key", alias)
		}
		if _, ok := c.index[target]; !ok {
			return nil, fmt.Errorf("alias %q points at unknown component %q", alias, target)
		}
		c.aliases[alias] = target
	}

	return c, nil
}

// MustNew is New that panics on invalid input. Used for the built-in table.
func MustNew(records []ComponentRecord, aliases map[string]string) *Catalog {
	c, err := New(records, aliases)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustNew(builtinComponents(), builtinAliases())
	})
	return defaultCatalog
}

// WithExtensions returns a new Catalog holding c's records followed by extra.
// Extra records whose key collides with an existing key or alias are left
// out and reported in rejected. c itself is left untouched.
func (c *Catalog) WithExtensions(extra []ComponentRecord) (ext *Catalog, rejected []string, err error) {
	if len(extra) == 0 {
		return c, nil, nil
	}
	all := make([]ComponentRecord, 0, len(c.records)+len(extra))
	all = append(all, c.records...)
	taken := make(map[string]bool, len(all)+len(extra))
	for k := range c.index {
		taken[k] = true
	}
	for a := range c.aliases {
		taken[a] = true
	}
	for _, r := range extra {
		if taken[r.Key] {
			rejected = append(rejected, r.Key)
			continue
		}
		taken[r.Key] = true
		all = append(all, r)
	}
	ext, err = New(all, c.aliases)
	if err != nil {
		return nil, rejected, err
	}
	return ext, rejected, nil
}

// Len returns the number of components.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Get returns the component with exactly this key.
func (c *Catalog) Get(key string) (ComponentRecord, bool) {
	i, ok := c.index[key]
	if !ok {
		return ComponentRecord{}, false
	}
	return c.records[i].clone(), true
}

// Records returns copies of all records in table order.
func (c *Catalog) Records() []ComponentRecord {
	out := make([]ComponentRecord, len(c.records))
	for i, r := range c.records {
		out[i] = r.clone()
	}
	return out
}

// Aliases returns a copy of the alias table.
func (c *Catalog) Aliases() map[string]string {
	return maps.Clone(c.aliases)
}

// List is the "return all" path: every component, optionally restricted to
// one category, truncated to limit when limit > 0.
func (c *Catalog) List(category Category, limit int) []ComponentRecord {
	var out []ComponentRecord
	for _, r := range c.records {
		if category != "" && r.Category != category {
			continue
		}
		out = append(out, r.clone())
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// CategoryCounts returns the number of components per category, in display order.
func (c *Catalog) CategoryCounts() []CategoryCount {
	counts := make(map[Category]int)
	for _, r := range c.records {
		counts[r.Category]++
	}
	out := make([]CategoryCount, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		out = append(out, CategoryCount{Category: cat, Count: counts[cat]})
	}
	return out
}
