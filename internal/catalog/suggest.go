package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the catalog name closest to query, if any is close enough
// to be a likely typo. Matching ignores case.
func (c *Catalog) Suggest(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, name := range c.names {
		candidate := strings.ToLower(name)
		dist := levenshtein.ComputeDistance(q, candidate)
		if dist > distanceLimit(len([]rune(candidate))) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = name
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
