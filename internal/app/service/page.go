package service

import "space_fleet/internal/app/ds"

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

// Page returns ships[page*size : min(page*size+size, len)].
// size must be positive; the HTTP layer rejects anything else.
func Page(ships []ds.Ship, page, size int) []ds.Ship {
	if size <= 0 || page < 0 || len(ships) == 0 || page > (len(ships)-1)/size {
		return []ds.Ship{}
	}
	from := page * size
	to := min(from+size, len(ships))
	return ships[from:to]
}
