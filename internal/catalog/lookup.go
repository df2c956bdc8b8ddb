package catalog

import "strings"

// MatchRule names the rule that produced a FindComponent hit.
type MatchRule string

const (
	MatchExact MatchRule = "exact"
	MatchAlias MatchRule = "alias"
	MatchTag   MatchRule = "tag"
	MatchKey   MatchRule = "key"
)

// normalizeQuery lowercases and trims a free-text query.
func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// FindComponent returns at most one component for a free-text query using
// the first rule that hits: exact key, alias, tag overlap, key overlap. It
// does no scoring, so its answer can differ from Search's top result.
// A miss is a valid empty result, not an error.
func (c *Catalog) FindComponent(query string) (ComponentRecord, bool) {
	r, _, ok := c.FindComponentRule(query)
	return r, ok
}

// FindComponentRule is FindComponent that also reports which rule matched.
func (c *Catalog) FindComponentRule(query string) (ComponentRecord, MatchRule, bool) {
	q := normalizeQuery(query)
	if q == "" {
		return ComponentRecord{}, "", false
	}

	if i, ok := c.index[q]; ok {
		return c.records[i].clone(), MatchExact, true
	}

	if target, ok := c.aliases[q]; ok {
		return c.records[c.index[target]].clone(), MatchAlias, true
	}

	for _, r := range c.records {
		for _, tag := range r.Tags {
			tag = strings.ToLower(tag)
			if tag == "" {
				continue
			}
			if strings.Contains(q, tag) || strings.Contains(tag, q) {
				return r.clone(), MatchTag, true
			}
		}
	}

	for _, r := range c.records {
		if strings.Contains(q, r.Key) || strings.Contains(r.Key, q) {
			return r.clone(), MatchKey, true
		}
	}

	return ComponentRecord{}, "", false
}
