package service

import (
	"cmp"
	"slices"

	"space_fleet/internal/app/ds"
)

// Sort returns a copy of ships in ascending order of the given key.
// Equal keys keep their relative order; an unknown key leaves the order as is.
func Sort(ships []ds.Ship, order ds.ShipOrder) []ds.Ship {
	out := slices.Clone(ships)
	var compare func(a, b ds.Ship) int
	switch order {
	case ds.OrderID:
		compare = func(a, b ds.Ship) int { return cmp.Compare(a.ShipID, b.ShipID) }
	case ds.OrderDate:
		compare = func(a, b ds.Ship) int { return a.ProdDate.Compare(b.ProdDate) }
	case ds.OrderSpeed:
		compare = func(a, b ds.Ship) int { return cmp.Compare(a.Speed, b.Speed) }
	case ds.OrderRating:
		compare = func(a, b ds.Ship) int { return cmp.Compare(a.Rating, b.Rating) }
	default:
		return out
	}
	slices.SortStableFunc(out, compare)
	return out
}
