package core

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// suggestBase, suggestSlack and suggestCap bound the "did you mean" candidate list per
// spec.md §7: a candidate survives only if its edit distance is below
// 2 + 1.2*best, and at most 10 candidates are ever returned.
const (
	suggestSlack = 1.2
	suggestBase  = 2.0
	suggestCap   = 10
)

// Suggest returns the candidates from pool nearest to name by Levenshtein
// distance, nearest first, for use in a diagnostic's "did you mean" list.
// Grounded on spec.md §7's cutoff rule; github.com/agnivade/levenshtein
// supplies the distance metric.
func Suggest(name string, pool []string) []string {
	if len(pool) == 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	all := make([]scored, 0, len(pool))
	best := -1
	for _, candidate := range pool {
		d := levenshtein.ComputeDistance(name, candidate)
		all = append(all, scored{name: candidate, dist: d})
		if best == -1 || d < best {
			best = d
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].dist != all[j].dist {
			return all[i].dist < all[j].dist
		}
		return all[i].name < all[j].name
	})

	cutoff := suggestBase + suggestSlack*float64(best)

	out := make([]string, 0, suggestCap)
	for _, c := range all {
		if float64(c.dist) >= cutoff {
			break
		}
		out = append(out, c.name)
		if len(out) >= suggestCap {
			break
		}
	}
	return out
}
