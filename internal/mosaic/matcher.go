package mosaic

import (
	"math"
)

// FindNearest scans candidates linearly and returns the identity whose mean
// color has the smallest Euclidean distance to target.
//
// The best match only changes on a strictly smaller distance. Callers pass
// candidates sorted by identity (as Catalog does), so among equidistant
// candidates the lexicographically smallest identity wins.
func FindNearest(candidates []Candidate, target Color) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}

	best := ""
	minDistance := math.Inf(1)
	for _, c := range candidates {
		d := Distance(target, c.Mean)
		if d < minDistance {
			best = c.ID
			minDistance = d
		}
	}
	return best, nil
}
