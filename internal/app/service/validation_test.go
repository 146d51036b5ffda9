package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"space_fleet/internal/app/ds"
)

func ptr[T any](v T) *T { return &v }

func TestValidID(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"42", true},
		{"1", true},
		{"+7", true},
		{"0", false},
		{"-5", false},
		{"12.0", false},
		{"", false},
		{"abc", false},
		{" 1", false},
		{"1e3", false},
		{"9223372036854775808", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidID(tt.text))
		})
	}
}

func TestValidName(t *testing.T) {
	assert.False(t, ValidName(nil))
	assert.False(t, ValidName(ptr("")))
	assert.True(t, ValidName(ptr("A")))
	assert.True(t, ValidName(ptr(strings.Repeat("a", 50))))
	assert.False(t, ValidName(ptr(strings.Repeat("a", 51))))
	// length counts UTF-16 units, not bytes
	assert.True(t, ValidName(ptr(strings.Repeat("я", 50))))
	assert.True(t, ValidName(ptr(strings.Repeat("🚀", 25))))
	assert.False(t, ValidName(ptr(strings.Repeat("🚀", 26))))
	assert.False(t, ValidPlanet(ptr(strings.Repeat("p", 49)+"🚀")))
}

func TestValidPlanet(t *testing.T) {
	assert.False(t, ValidPlanet(nil))
	assert.False(t, ValidPlanet(ptr("")))
	assert.True(t, ValidPlanet(ptr("Earth")))
	assert.True(t, ValidPlanet(ptr(strings.Repeat("p", 50))))
	assert.False(t, ValidPlanet(ptr(strings.Repeat("p", 51))))
}

func TestValidShipType(t *testing.T) {
	assert.False(t, ValidShipType(nil))
	assert.True(t, ValidShipType(ptr(ds.ShipTypeTransport)))
	assert.True(t, ValidShipType(ptr(ds.ShipTypeMilitary)))
	assert.True(t, ValidShipType(ptr(ds.ShipTypeMerchant)))
	assert.False(t, ValidShipType(ptr(ds.ShipType("FIGHTER"))))
}

func TestValidProdYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"first valid instant", time.Date(2800, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"last valid instant", time.Date(3019, 12, 31, 23, 59, 59, 0, time.UTC), true},
		{"mid range", time.Date(2950, 6, 15, 12, 0, 0, 0, time.UTC), true},
		{"year before range", time.Date(2799, 12, 31, 23, 59, 59, 0, time.UTC), false},
		{"year after range", time.Date(3020, 1, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidProdYear(&tt.date))
		})
	}
	assert.False(t, ValidProdYear(nil))
}

func TestValidCrewSize(t *testing.T) {
	assert.False(t, ValidCrewSize(nil))
	assert.False(t, ValidCrewSize(ptr(0)))
	assert.True(t, ValidCrewSize(ptr(1)))
	assert.True(t, ValidCrewSize(ptr(9999)))
	assert.False(t, ValidCrewSize(ptr(10000)))
	assert.False(t, ValidCrewSize(ptr(-3)))
}

func TestValidSpeed(t *testing.T) {
	assert.False(t, ValidSpeed(nil))
	assert.True(t, ValidSpeed(ptr(0.01)))
	assert.True(t, ValidSpeed(ptr(0.5)))
	assert.True(t, ValidSpeed(ptr(0.99)))
	assert.False(t, ValidSpeed(ptr(0.009)))
	assert.False(t, ValidSpeed(ptr(0.991)))
	assert.False(t, ValidSpeed(ptr(1.0)))
}
