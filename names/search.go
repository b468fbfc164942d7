package names

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Search returns entries whose names fuzzily match query, best matches first.
// A non-positive limit returns every match.
func (t *Table) Search(query string, limit int) []Entry {
	query = NormalizeName(query)
	if query == "" {
		return nil
	}

	ranks := fuzzy.RankFindNormalizedFold(query, t.Names())
	slices.SortFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return strings.Compare(a.Target, b.Target)
	})

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) Entry {
		return t.sorted[r.OriginalIndex]
	})
}

// Closest returns the entry whose name has the smallest edit distance to input.
func (t *Table) Closest(input string) mo.Option[Entry] {
	if len(t.sorted) == 0 {
		return mo.None[Entry]()
	}

	input = NormalizeName(input)
	closest := lo.MinBy(t.sorted, func(a, b Entry) bool {
		return levenshtein.Distance(input, a.Name) < levenshtein.Distance(input, b.Name)
	})

	return mo.Some(closest)
}
