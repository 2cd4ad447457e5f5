package search

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/mo"
)

// Suggest returns the candidate closest to term, for "did you mean" hints
// after a search came back empty.
func Suggest(term string, candidates []string) mo.Option[string] {
	if term == "" || len(candidates) == 0 {
		return mo.None[string]()
	}

	ranks := fuzzy.RankFindNormalizedFold(term, candidates)
	if len(ranks) == 0 {
		return mo.None[string]()
	}

	sort.Stable(ranks)
	return mo.Some(ranks[0].Target)
}
