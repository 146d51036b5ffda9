package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"space_fleet/internal/app/ds"
)

func numbered(n int) []ds.Ship {
	ships := make([]ds.Ship, n)
	for i := range ships {
		ships[i].ShipID = int64(i + 1)
	}
	return ships
}

func TestPageLengths(t *testing.T) {
	ships := numbered(7)
	tests := []struct {
		page, size int
		want       []int64
	}{
		{0, 3, []int64{1, 2, 3}},
		{1, 3, []int64{4, 5, 6}},
		{2, 3, []int64{7}},
		{3, 3, []int64{}},
		{0, 10, []int64{1, 2, 3, 4, 5, 6, 7}},
		{6, 1, []int64{7}},
		{7, 1, []int64{}},
	}
	for _, tt := range tests {
		got := Page(ships, tt.page, tt.size)
		assert.Equal(t, tt.want, ids(got), "page %d size %d", tt.page, tt.size)
		want := min(tt.size, max(0, len(ships)-tt.page*tt.size))
		assert.Len(t, got, want)
	}
}

func TestPagesConcatenateToInput(t *testing.T) {
	ships := numbered(10)
	for size := 1; size <= 11; size++ {
		var all []ds.Ship
		for p := 0; ; p++ {
			page := Page(ships, p, size)
			if len(page) == 0 {
				break
			}
			all = append(all, page...)
		}
		assert.Equal(t, ships, all, "size %d", size)
	}
}

func TestPageOutOfContract(t *testing.T) {
	ships := numbered(3)
	assert.Empty(t, Page(ships, -1, 3))
	assert.Empty(t, Page(ships, 0, 0))
	assert.Empty(t, Page(nil, 0, 3))
	assert.NotNil(t, Page(nil, 0, 3))
	// page*size would wrap around to 0
	assert.Empty(t, Page(ships, 1<<62, 4))
	assert.Empty(t, Page(ships, math.MaxInt, 2))
}
