package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func year(y int) time.Time {
	return time.Date(y, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestRating(t *testing.T) {
	tests := []struct {
		name   string
		speed  float64
		isUsed bool
		date   time.Time
		want   float64
	}{
		{"new ship of the last year", 0.5, false, year(3019), 40},
		{"used ship halves the rating", 0.5, true, year(3019), 20},
		{"one year older", 0.2, false, year(3018), 8},
		{"rounded to two decimals", 0.33, false, year(3000), 1.32},
		{"rounds half up", 0.25, false, year(2860), 0.13},
		{"tiny rating rounds to zero", 0.01, true, year(2800), 0},
		{"year past range has no denominator", 0.5, false, year(3020), 0},
		{"negative denominator", 0.5, false, year(3030), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rating(tt.speed, tt.isUsed, tt.date))
		})
	}
}

func TestRatingUsesUTCYear(t *testing.T) {
	// 3019-01-01 01:00 in UTC+3 is still 3018 in UTC
	zone := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(3019, 1, 1, 1, 0, 0, 0, zone)
	assert.Equal(t, 20.0, Rating(0.5, false, date))
}
