package service

import (
	"math"
	"time"
)

const (
	ratingFactor = 80.0
	usedPenalty  = 0.5
)

// Rating computes round2(80 * speed * k / (3019 - year + 1)), k = 0.5 for used ships.
// A non-positive denominator can only come from an unvalidated date and yields 0.
func Rating(speed float64, isUsed bool, prodDate time.Time) float64 {
	k := 1.0
	if isUsed {
		k = usedPenalty
	}
	denominator := float64(MaxProdYear - prodYear(prodDate) + 1)
	if denominator <= 0 {
		return 0
	}
	return round2(ratingFactor * speed * k / denominator)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
