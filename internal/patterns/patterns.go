// Package patterns infers UI components from free-text page analysis by
// matching keyword clusters ("hero", "pricing", ...) against the text.
package patterns

import (
	"fmt"
	"sort"
	"strings"

	"compkit/internal/catalog"
	"compkit/internal/logging"
)

// DefaultPriority is the priority given to the fallback suggestions.
const DefaultPriority = 1

// Pattern is a named keyword cluster and the components it suggests.
type Pattern struct {
	Name       string   `json:"name"`
	Keywords   []string `json:"keywords"`
	Components []string `json:"components"`
	Priority   int      `json:"priority"`
}

// Suggestion is one suggested component with the highest priority among the
// patterns that proposed it.
type Suggestion struct {
	Key      string   `json:"key"`
	Priority int      `json:"priority"`
	Patterns []string `json:"patterns,omitempty"`
}

// Hit records which keyword triggered a pattern.
type Hit struct {
	Pattern string `json:"pattern"`
	Keyword string `json:"keyword"`
}

// Result is the outcome of Match.
type Result struct {
	Suggestions []Suggestion `json:"suggestions"`
	Hits        []Hit        `json:"hits"`

	// Defaulted is true when no pattern matched and the fallback set was used.
	Defaulted bool `json:"defaulted"`
}

// Keys returns the suggested component keys in ranked order.
func (r Result) Keys() []string {
	keys := make([]string, len(r.Suggestions))
	for i, s := range r.Suggestions {
		keys[i] = s.Key
	}
	return keys
}

// Matcher holds an immutable pattern table.
type Matcher struct {
	patterns []Pattern
	defaults []string
	logger   *logging.AppLogger
}

// NewMatcher builds a Matcher. Keywords are lowercased; a pattern without
// keywords or components is rejected, as is an empty default set.
func NewMatcher(patterns []Pattern, defaults []string, logger *logging.AppLogger) (*Matcher, error) {
	if len(defaults) == 0 {
		return nil, fmt.Errorf("default suggestion set is empty")
	}
	if logger == nil {
		logger = logging.GetDefault()
	}

	m := &Matcher{
		patterns: make([]Pattern, 0, len(patterns)),
		defaults: append([]string(nil), defaults...),
		logger:   logger,
	}
	for _, p := range patterns {
		if p.Name == "" {
			return nil, fmt.Errorf("pattern name is empty")
		}
		if len(p.Keywords) == 0 || len(p.Components) == 0 {
			return nil, fmt.Errorf("pattern %q needs keywords and components", p.Name)
		}
		kw := make([]string, len(p.Keywords))
		for i, k := range p.Keywords {
			kw[i] = strings.ToLower(k)
		}
		m.patterns = append(m.patterns, Pattern{
			Name:       p.Name,
			Keywords:   kw,
			Components: append([]string(nil), p.Components...),
			Priority:   p.Priority,
		})
	}
	return m, nil
}

// Default returns a Matcher over the built-in pattern table.
func Default(logger *logging.AppLogger) *Matcher {
	m, err := NewMatcher(builtinPatterns(), builtinDefaults(), logger)
	if err != nil {
		panic(fmt.Sprintf("patterns: %v", err))
	}
	return m
}

// Patterns returns a copy of the pattern table.
func (m *Matcher) Patterns() []Pattern {
	out := make([]Pattern, len(m.patterns))
	for i, p := range m.patterns {
		p.Keywords = append([]string(nil), p.Keywords...)
		p.Components = append([]string(nil), p.Components...)
		out[i] = p
	}
	return out
}

// Match returns the union of components of every pattern with a keyword
// found in analysis, ranked by priority. With no hit it returns the default
// set at DefaultPriority.
func (m *Matcher) Match(analysis string) Result {
	text := strings.ToLower(analysis)

	var res Result
	index := make(map[string]int)
	for _, p := range m.patterns {
		keyword, ok := firstHit(text, p.Keywords)
		if !ok {
			continue
		}
		m.logger.Debug("Pattern matched", "pattern", p.Name, "keyword", keyword)
		res.Hits = append(res.Hits, Hit{Pattern: p.Name, Keyword: keyword})

		for _, key := range p.Components {
			if i, seen := index[key]; seen {
				s := &res.Suggestions[i]
				if p.Priority > s.Priority {
					s.Priority = p.Priority
				}
				s.Patterns = append(s.Patterns, p.Name)
				continue
			}
			index[key] = len(res.Suggestions)
			res.Suggestions = append(res.Suggestions, Suggestion{
				Key:      key,
				Priority: p.Priority,
				Patterns: []string{p.Name},
			})
		}
	}

	if len(res.Suggestions) == 0 {
		res.Defaulted = true
		for _, key := range m.defaults {
			res.Suggestions = append(res.Suggestions, Suggestion{Key: key, Priority: DefaultPriority})
		}
		return res
	}

	sort.SliceStable(res.Suggestions, func(i, j int) bool {
		return res.Suggestions[i].Priority > res.Suggestions[j].Priority
	})
	return res
}

func firstHit(text string, keywords []string) (string, bool) {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return k, true
		}
	}
	return "", false
}

// Validate checks that every component a pattern or the default set names
// exists in c.
func (m *Matcher) Validate(c *catalog.Catalog) error {
	for _, key := range m.defaults {
		if _, ok := c.Get(key); !ok {
			return fmt.Errorf("default suggestion %q is not in the catalog", key)
		}
	}
	for _, p := range m.patterns {
		for _, key := range p.Components {
			if _, ok := c.Get(key); !ok {
				return fmt.Errorf("pattern %q suggests unknown component %q", p.Name, key)
			}
		}
	}
	return nil
}

// Resolve pairs each suggestion with its catalog record, dropping keys the
// catalog does not know.
func Resolve(c *catalog.Catalog, suggestions []Suggestion) []catalog.ComponentRecord {
	out := make([]catalog.ComponentRecord, 0, len(suggestions))
	for _, s := range suggestions {
		if r, ok := c.Get(s.Key); ok {
			out = append(out, r)
		}
	}
	return out
}
