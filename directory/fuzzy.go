package directory

import (
	"math"

	"github.com/agnivade/levenshtein"
)

// Searcher ranks candidate display names against a query. It only has to
// surface the closest candidate with its distance score; the matcher owns
// the accept/reject decision.
type Searcher interface {
	Best(query string, candidates []string) (name string, distance int)
}

type levenshteinSearcher struct{}

// Best returns the candidate with the lowest edit distance. Ties keep the
// earliest candidate, so handing in a sorted slice makes results stable.
func (levenshteinSearcher) Best(query string, candidates []string) (string, int) {
	best := ""
	bestDistance := math.MaxInt
	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(query, candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best, bestDistance
}
