package scan

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// DefaultMatchThreshold accepts fairly distant name matches. The permissive
// setting trades occasional false-positive merges for fewer near-duplicate
// catalog rows; downstream consumers tolerate both.
const DefaultMatchThreshold = 0.6

type (
	// CatalogCandidate is the projection of a food reference the index
	// matches against.
	CatalogCandidate struct {
		ID                   uuid.UUID
		Name                 string
		FoodGroup            string
		UnitType             string
		ShelfLifePantryDays  int
		ShelfLifeFridgeDays  int
		ShelfLifeFreezerDays int
		ImageURL             *string
	}

	indexEntry struct {
		candidate      CatalogCandidate
		normalizedName string
	}

	// Index is a point-in-time fuzzy-match view of all non-deleted catalog
	// entries. It is immutable once built; a fresh snapshot requires a new
	// BuildIndex call.
	Index struct {
		threshold float64
		entries   []indexEntry
	}
)

// NormalizeName is the canonical form used on both sides of a match.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func BuildIndex(candidates []CatalogCandidate, threshold float64) *Index {
	entries := make([]indexEntry, 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, indexEntry{
			candidate:      c,
			normalizedName: NormalizeName(c.Name),
		})
	}
	return &Index{threshold: threshold, entries: entries}
}

func (ix *Index) Len() int {
	return len(ix.entries)
}

// Search returns the single best candidate for an already-normalized name.
// Score is the Levenshtein distance divided by the longer name's rune
// length, so 0 is exact and 1 shares nothing. A best score above the
// threshold counts as no match.
func (ix *Index) Search(normalizedName string) (CatalogCandidate, float64, bool) {
	if normalizedName == "" || len(ix.entries) == 0 {
		return CatalogCandidate{}, 0, false
	}

	best := -1
	bestScore := 2.0
	for i, entry := range ix.entries {
		score := nameDistance(normalizedName, entry.normalizedName)
		if score < bestScore {
			bestScore = score
			best = i
		}
	}

	if best < 0 || bestScore > ix.threshold {
		return CatalogCandidate{}, bestScore, false
	}
	return ix.entries[best].candidate, bestScore, true
}

func nameDistance(a, b string) float64 {
	if a == b {
		return 0
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
