// Package feed derives the display view of the post collection. A projection
// is disposable: it is recomputed from the canonical collection whenever the
// collection or the filter inputs change, never patched in place.
package feed

import (
	"sort"
	"strings"

	"echowall/internal/models"
)

// SortMode selects the display ordering of the projected feed.
type SortMode string

const (
	SortLatest    SortMode = "latest"
	SortOldest    SortMode = "oldest"
	SortMostLiked SortMode = "mostLiked"
	SortNone      SortMode = "none"
)

// Project returns the posts whose text or author name contains term
// (case-insensitive), ordered per mode. An empty or whitespace-only term
// matches everything. An unrecognized mode preserves the filtered canonical
// order. The input is never modified, and sorts are stable so mostLiked ties
// keep canonical order.
func Project(posts []models.Post, term string, mode SortMode) []models.Post {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if term == "" ||
			strings.Contains(strings.ToLower(p.Text), term) ||
			strings.Contains(strings.ToLower(p.UserName), term) {
			out = append(out, p)
		}
	}

	switch mode {
	case SortLatest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	case SortMostLiked:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	}
	return out
}
