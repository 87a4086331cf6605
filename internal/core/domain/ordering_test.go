package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeMediaOrder_FillsGaps(t *testing.T) {
	media := []Media{
		{ID: 1, Order: 2},
		{ID: 2, Order: 5},
		{ID: 3, Order: 9},
	}

	updates := NormalizeMediaOrder(media)

	require.Equal(t, []MediaOrderUpdate{
		{MediaID: 1, Order: 1},
		{MediaID: 2, Order: 2},
		{MediaID: 3, Order: 3},
	}, updates)
}

func TestNormalizeMediaOrder_AlreadyDense(t *testing.T) {
	media := []Media{
		{ID: 1, Order: 1},
		{ID: 2, Order: 2},
		{ID: 3, Order: 3},
	}

	require.Empty(t, NormalizeMediaOrder(media))
}

func TestNormalizeMediaOrder_OnlyChangedRowsEmitted(t *testing.T) {
	media := []Media{
		{ID: 1, Order: 1},
		{ID: 2, Order: 2},
		{ID: 3, Order: 7},
	}

	updates := NormalizeMediaOrder(media)

	require.Equal(t, []MediaOrderUpdate{{MediaID: 3, Order: 3}}, updates)
}

func TestNormalizeMediaOrder_DuplicatesKeepInputPosition(t *testing.T) {
	media := []Media{
		{ID: 4, Order: 2},
		{ID: 5, Order: 2},
		{ID: 6, Order: 1},
	}

	updates := NormalizeMediaOrder(media)

	// 6 stays first, then 4 and 5 in input order.
	require.Equal(t, []MediaOrderUpdate{
		{MediaID: 4, Order: 2},
		{MediaID: 5, Order: 3},
	}, updates)
}

func TestNormalizeMediaOrder_Idempotent(t *testing.T) {
	media := []Media{
		{ID: 1, Order: 3},
		{ID: 2, Order: 3},
		{ID: 3, Order: 10},
	}

	updates := NormalizeMediaOrder(media)
	byID := make(map[uint64]int)
	for _, u := range updates {
		byID[u.MediaID] = u.Order
	}

	applied := make([]Media, len(media))
	copy(applied, media)
	for i := range applied {
		if order, ok := byID[applied[i].ID]; ok {
			applied[i].Order = order
		}
	}

	require.Empty(t, NormalizeMediaOrder(applied))
}

func TestSortArchivedLast(t *testing.T) {
	archived := time.Now()
	tasks := []Task{
		{ID: 1, ArchivedAt: &archived},
		{ID: 2},
		{ID: 3, ArchivedAt: &archived},
		{ID: 4},
	}

	SortArchivedLast(tasks)

	require.Equal(t, uint64(2), tasks[0].ID)
	require.Equal(t, uint64(4), tasks[1].ID)
	require.Equal(t, uint64(1), tasks[2].ID)
	require.Equal(t, uint64(3), tasks[3].ID)
}

func TestSortArchivedLast_StableWithinGroups(t *testing.T) {
	archived := time.Now()
	customers := []Customer{
		{ID: 10},
		{ID: 20, ArchivedAt: &archived},
		{ID: 30},
		{ID: 40, ArchivedAt: &archived},
	}

	SortArchivedLast(customers)

	require.Equal(t, uint64(10), customers[0].ID)
	require.Equal(t, uint64(30), customers[1].ID)
	require.Equal(t, uint64(20), customers[2].ID)
	require.Equal(t, uint64(40), customers[3].ID)
}
