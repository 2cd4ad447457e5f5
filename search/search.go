// Package search filters podcasts and episodes by title.
//
// Matching is case-insensitive substring containment. The term is always
// taken literally, so "C++" or "(live)" match the characters they contain.
// Results keep the relative order of their input, and an empty term
// returns the input unchanged.
package search

import (
	"strings"

	"github.com/podspy-cli/podspy/feed"
	"github.com/samber/lo"
)

// Podcasts returns the podcasts whose title contains term.
func Podcasts(podcasts []*feed.Podcast, term string) []*feed.Podcast {
	if term == "" {
		return podcasts
	}

	matches := matcher(term)
	return lo.Filter(podcasts, func(p *feed.Podcast, _ int) bool {
		return matches(p.Title)
	})
}

// Episodes returns the episodes whose title contains term.
func Episodes(episodes []*feed.Episode, term string) []*feed.Episode {
	if term == "" {
		return episodes
	}

	matches := matcher(term)
	return lo.Filter(episodes, func(e *feed.Episode, _ int) bool {
		return matches(e.Title)
	})
}

// EpisodesAcross searches every podcast's episodes in turn and concatenates
// the results in podcast order, then episode order.
func EpisodesAcross(podcasts []*feed.Podcast, term string) []*feed.Episode {
	return lo.FlatMap(podcasts, func(p *feed.Podcast, _ int) []*feed.Episode {
		return Episodes(p.Episodes, term)
	})
}

// matcher folds both sides to lower case. Invalid UTF-8 bytes become U+FFFD on both sides.
func matcher(term string) func(string) bool {
	needle := strings.ToLower(term)
	return func(title string) bool {
		return strings.Contains(strings.ToLower(title), needle)
	}
}
