package catalog

import (
	"sort"
	"strings"
)

// Tier scores. Only the first matching tier applies.
const (
	ScoreExactKey      = 100
	ScoreExactName     = 90
	ScoreKeyPrefix     = 80
	ScoreNamePrefix    = 70
	ScoreKeyContains   = 60
	ScoreNameContains  = 50
	ScoreExactTag      = 40
	ScoreTagContains   = 30
	ScoreDescContains  = 20
	ScoreDescWordBonus = 5

	scoreNoMatch = 0
)

// SearchOptions narrows and truncates a ranked search.
type SearchOptions struct {
	// Category keeps only components whose category equals it. Empty means all.
	Category Category
	// Limit truncates the result when > 0.
	Limit int
}

// ScoredComponent is one ranked search hit.
type ScoredComponent struct {
	Component ComponentRecord `json:"component"`
	Score     int             `json:"score"`
}

// Search ranks components against query, highest score first. Ties keep
// table order. Components scoring zero are dropped. An empty query ranks
// nothing; callers wanting everything use List.
func (c *Catalog) Search(query string, opts SearchOptions) []ScoredComponent {
	q := normalizeQuery(query)
	if q == "" {
		return nil
	}

	var words []string
	if fields := strings.Fields(q); len(fields) > 1 {
		words = dedupe(fields)
	}

	var results []ScoredComponent
	for _, r := range c.records {
		if opts.Category != "" && r.Category != opts.Category {
			continue
		}

		score := tierScore(r, q)
		if len(words) > 0 {
			desc := strings.ToLower(r.Description)
			for _, w := range words {
				if strings.Contains(desc, w) {
					score += ScoreDescWordBonus
				}
			}
		}
		if score == scoreNoMatch {
			continue
		}
		results = append(results, ScoredComponent{Component: r.clone(), Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}

// tierScore applies the match ladder to one record. q is already normalized.
func tierScore(r ComponentRecord, q string) int {
	name := strings.ToLower(r.DisplayName)

	switch {
	case r.Key == q:
		return ScoreExactKey
	case name == q:
		return ScoreExactName
	case strings.HasPrefix(r.Key, q):
		return ScoreKeyPrefix
	case strings.HasPrefix(name, q):
		return ScoreNamePrefix
	case strings.Contains(r.Key, q):
		return ScoreKeyContains
	case strings.Contains(name, q):
		return ScoreNameContains
	}

	for _, tag := range r.Tags {
		if strings.ToLower(tag) == q {
			return ScoreExactTag
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return ScoreTagContains
		}
	}

	if strings.Contains(strings.ToLower(r.Description), q) {
		return ScoreDescContains
	}
	return scoreNoMatch
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := words[:0:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
