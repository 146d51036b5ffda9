package ds

import (
	"encoding/json"
	"fmt"
	"time"
)

// ShipType - класс корабля
type ShipType string

const (
	ShipTypeTransport ShipType = "TRANSPORT"
	ShipTypeMilitary  ShipType = "MILITARY"
	ShipTypeMerchant  ShipType = "MERCHANT"
)

// Valid reports whether t is one of the known ship types.
func (t ShipType) Valid() bool {
	switch t {
	case ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant:
		return true
	}
	return false
}

// ParseShipType converts a query or payload value into a ShipType.
func ParseShipType(s string) (ShipType, error) {
	t := ShipType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown ship type %q", s)
	}
	return t, nil
}

func (t *ShipType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseShipType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ShipOrder - ключ сортировки списка
type ShipOrder string

const (
	OrderID     ShipOrder = "ID"
	OrderDate   ShipOrder = "DATE"
	OrderSpeed  ShipOrder = "SPEED"
	OrderRating ShipOrder = "RATING"
)

// ParseShipOrder converts the "order" query value. Empty means OrderID.
func ParseShipOrder(s string) (ShipOrder, error) {
	if s == "" {
		return OrderID, nil
	}
	switch o := ShipOrder(s); o {
	case OrderID, OrderDate, OrderSpeed, OrderRating:
		return o, nil
	}
	return "", fmt.Errorf("unknown order %q", s)
}

// @Schema(description="Ship model representing a registered spaceship")
type Ship struct {
	ShipID   int64     `gorm:"primaryKey;column:ship_id"`
	Name     string    `gorm:"column:name;size:50;not null"`
	Planet   string    `gorm:"column:planet;size:50;not null"`
	ShipType ShipType  `gorm:"column:ship_type;size:16;not null"`
	ProdDate time.Time `gorm:"column:prod_date;not null"`
	IsUsed   bool      `gorm:"column:is_used;not null"`
	Speed    float64   `gorm:"column:speed;not null"`
	CrewSize int       `gorm:"column:crew_size;not null"`
	Rating   float64   `gorm:"column:rating;not null"`
	PhotoURL string    `gorm:"column:photo_url"`
}

func (Ship) TableName() string {
	return "ships"
}

// shipJSON is the wire form of Ship; prodDate travels as epoch milliseconds.
type shipJSON struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Planet   string   `json:"planet"`
	ShipType ShipType `json:"shipType"`
	ProdDate int64    `json:"prodDate"`
	IsUsed   bool     `json:"isUsed"`
	Speed    float64  `json:"speed"`
	CrewSize int      `json:"crewSize"`
	Rating   float64  `json:"rating"`
	PhotoURL string   `json:"photoUrl,omitempty"`
}

func (s Ship) MarshalJSON() ([]byte, error) {
	return json.Marshal(shipJSON{
		ID:       s.ShipID,
		Name:     s.Name,
		Planet:   s.Planet,
		ShipType: s.ShipType,
		ProdDate: s.ProdDate.UnixMilli(),
		IsUsed:   s.IsUsed,
		Speed:    s.Speed,
		CrewSize: s.CrewSize,
		Rating:   s.Rating,
		PhotoURL: s.PhotoURL,
	})
}

func (s *Ship) UnmarshalJSON(data []byte) error {
	var w shipJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = Ship{
		ShipID:   w.ID,
		Name:     w.Name,
		Planet:   w.Planet,
		ShipType: w.ShipType,
		ProdDate: time.UnixMilli(w.ProdDate).UTC(),
		IsUsed:   w.IsUsed,
		Speed:    w.Speed,
		CrewSize: w.CrewSize,
		Rating:   w.Rating,
		PhotoURL: w.PhotoURL,
	}
	return nil
}

// ShipInput - тело запроса на создание или частичное обновление.
// nil означает, что поле не передано.
type ShipInput struct {
	Name     *string   `json:"name"`
	Planet   *string   `json:"planet"`
	ShipType *ShipType `json:"shipType"`
	ProdDate *int64    `json:"prodDate"`
	IsUsed   *bool     `json:"isUsed"`
	Speed    *float64  `json:"speed"`
	CrewSize *int      `json:"crewSize"`
}

// ShipFilter - необязательные фильтры списка и счётчика
type ShipFilter struct {
	Name        *string
	Planet      *string
	ShipType    *ShipType
	After       *time.Time
	Before      *time.Time
	IsUsed      *bool
	MinSpeed    *float64
	MaxSpeed    *float64
	MinCrewSize *int
	MaxCrewSize *int
	MinRating   *float64
	MaxRating   *float64
}

// ShipQuery - фильтр плюс сортировка и страница
type ShipQuery struct {
	Filter     ShipFilter
	Order      ShipOrder
	PageNumber int
	PageSize   int
}
