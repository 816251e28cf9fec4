package feed

import (
	"sort"
	"time"
)

// Item kinds in the merged timeline
const (
	KindAlert  = "alert"
	KindReport = "report"
	KindPage   = "page"
)

type Item struct {
	Kind     string    `json:"kind"`
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary,omitempty"`
	District string    `json:"district,omitempty"`
	Severity string    `json:"severity,omitempty"`
	At       time.Time `json:"at"`
}

// Merge flattens the given streams into one timeline, newest first. Ties are
// broken by kind then id so the order is stable across requests. A limit of 0
// means no cap.
func Merge(limit int, streams ...[]Item) []Item {
	total := 0
	for _, s := range streams {
		total += len(s)
	}

	merged := make([]Item, 0, total)
	for _, s := range streams {
		merged = append(merged, s...)
	}

	sort.Slice(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if !a.At.Equal(b.At) {
			return a.At.After(b.At)
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.ID < b.ID
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
