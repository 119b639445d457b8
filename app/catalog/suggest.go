package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 3

// SuggestTools returns up to three tool names close to name.
func (c *Catalog) SuggestTools(name string) []string {
	var names []string
	for _, t := range c.Tools() {
		names = append(names, t.Name)
	}
	return closest(name, names)
}

// SuggestCommands returns up to three command names close to name, qualified
// as "tool/command".
func (c *Catalog) SuggestCommands(name string) []string {
	var names []string
	for _, t := range c.Tools() {
		for _, cmd := range t.Commands {
			names = append(names, t.Name+"/"+cmd.Name)
		}
	}
	return closest(name, names)
}

// closest ranks candidates by edit distance against the lowercased query,
// comparing both the full candidate and its part after the last "/". A
// candidate is kept when it contains the query or the distance is at most a
// third of the query length.
func closest(query string, candidates []string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	type scored struct {
		name string
		dist int
	}
	var hits []scored
	for _, cand := range candidates {
		lower := strings.ToLower(cand)
		d := levenshtein.ComputeDistance(query, lower)
		if i := strings.LastIndex(lower, "/"); i >= 0 {
			if short := levenshtein.ComputeDistance(query, lower[i+1:]); short < d {
				d = short
			}
		}
		limit := len(query) / 3
		if limit < 1 {
			limit = 1
		}
		if d <= limit || strings.Contains(lower, query) {
			hits = append(hits, scored{name: cand, dist: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	if len(hits) > maxSuggestions {
		hits = hits[:maxSuggestions]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}
