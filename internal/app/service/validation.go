package service

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"space_fleet/internal/app/ds"
)

// Field bounds, shared by Create and UpdateByID. All ranges are inclusive.
const (
	MaxNameLength   = 50
	MaxPlanetLength = 50
	MinProdYear     = 2800
	MaxProdYear     = 3019
	MinSpeed        = 0.01
	MaxSpeed        = 0.99
	MinCrewSize     = 1
	MaxCrewSize     = 9999
)

func ValidName(name *string) bool {
	return name != nil && validLength(*name, MaxNameLength)
}

func ValidPlanet(planet *string) bool {
	return planet != nil && validLength(*planet, MaxPlanetLength)
}

func ValidShipType(t *ds.ShipType) bool {
	return t != nil && t.Valid()
}

func ValidProdYear(date *time.Time) bool {
	if date == nil {
		return false
	}
	year := prodYear(*date)
	return year >= MinProdYear && year <= MaxProdYear
}

func ValidCrewSize(n *int) bool {
	return n != nil && *n >= MinCrewSize && *n <= MaxCrewSize
}

func ValidSpeed(v *float64) bool {
	return v != nil && *v >= MinSpeed && *v <= MaxSpeed
}

// ValidID reports whether text is a positive integer id without a decimal point.
func ValidID(text string) bool {
	_, ok := parseID(text)
	return ok
}

func parseID(text string) (int64, bool) {
	if text == "" || strings.Contains(text, ".") {
		return 0, false
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// validLength counts UTF-16 code units, so a character outside the BMP takes two.
func validLength(s string, max int) bool {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n > 0 && n <= max
}

// prodYear is the production year in UTC, the only meaningful part of prodDate.
func prodYear(date time.Time) int {
	return date.UTC().Year()
}
