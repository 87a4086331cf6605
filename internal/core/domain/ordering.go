package domain

import "sort"

// MediaOrderUpdate is one pending order write produced by NormalizeMediaOrder.
type MediaOrderUpdate struct {
	MediaID uint64
	Order   int
}

// NormalizeMediaOrder reassigns a task's media order to a dense 1..N,
// preserving the relative order of the input (current order ascending, ties
// keep input position). Only rows whose stored order differs from the
// computed one are returned, so running it on an already dense list yields
// nothing and repeated runs are no-ops.
func NormalizeMediaOrder(media []Media) []MediaOrderUpdate {
	sorted := make([]Media, len(media))
	copy(sorted, media)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	var updates []MediaOrderUpdate
	for i, m := range sorted {
		if want := i + 1; m.Order != want {
			updates = append(updates, MediaOrderUpdate{MediaID: m.ID, Order: want})
		}
	}
	return updates
}

// Archivable is satisfied by soft-deletable entities.
type Archivable interface {
	Archived() bool
}

// SortArchivedLast moves archived entries after active ones in place. The
// sort is stable: the relative order within each group is whatever the
// caller supplied.
func SortArchivedLast[T Archivable](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return !items[i].Archived() && items[j].Archived()
	})
}
