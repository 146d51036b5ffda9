package service

import (
	"strings"

	"space_fleet/internal/app/ds"
)

type predicate func(ds.Ship) bool

// Filter returns the ships matching every supplied field of f.
// The input slice is not modified.
func Filter(ships []ds.Ship, f ds.ShipFilter) []ds.Ship {
	preds := predicates(f)
	out := make([]ds.Ship, 0, len(ships))
next:
	for _, s := range ships {
		for _, p := range preds {
			if !p(s) {
				continue next
			}
		}
		out = append(out, s)
	}
	return out
}

func predicates(f ds.ShipFilter) []predicate {
	var preds []predicate
	if f.Name != nil {
		name := *f.Name
		preds = append(preds, func(s ds.Ship) bool { return strings.Contains(s.Name, name) })
	}
	if f.Planet != nil {
		planet := *f.Planet
		preds = append(preds, func(s ds.Ship) bool { return strings.Contains(s.Planet, planet) })
	}
	if f.ShipType != nil {
		t := *f.ShipType
		preds = append(preds, func(s ds.Ship) bool { return s.ShipType == t })
	}
	if f.After != nil {
		after := *f.After
		preds = append(preds, func(s ds.Ship) bool { return s.ProdDate.After(after) })
	}
	if f.Before != nil {
		before := *f.Before
		preds = append(preds, func(s ds.Ship) bool { return s.ProdDate.Before(before) })
	}
	if f.IsUsed != nil {
		used := *f.IsUsed
		preds = append(preds, func(s ds.Ship) bool { return s.IsUsed == used })
	}
	if f.MinSpeed != nil {
		v := *f.MinSpeed
		preds = append(preds, func(s ds.Ship) bool { return s.Speed >= v })
	}
	if f.MaxSpeed != nil {
		v := *f.MaxSpeed
		preds = append(preds, func(s ds.Ship) bool { return s.Speed <= v })
	}
	if f.MinCrewSize != nil {
		n := *f.MinCrewSize
		preds = append(preds, func(s ds.Ship) bool { return s.CrewSize >= n })
	}
	if f.MaxCrewSize != nil {
		n := *f.MaxCrewSize
		preds = append(preds, func(s ds.Ship) bool { return s.CrewSize <= n })
	}
	if f.MinRating != nil {
		v := *f.MinRating
		preds = append(preds, func(s ds.Ship) bool { return s.Rating >= v })
	}
	if f.MaxRating != nil {
		v := *f.MaxRating
		preds = append(preds, func(s ds.Ship) bool { return s.Rating <= v })
	}
	return preds
}
