package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"space_fleet/internal/app/ds"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("ship not found")
)

// Store is the persistence collaborator of ShipService.
type Store interface {
	// CreateShip saves a new ship and assigns ship.ShipID.
	CreateShip(ctx context.Context, ship *ds.Ship) error
	// UpdateShip overwrites the stored ship with the same ShipID.
	UpdateShip(ctx context.Context, ship *ds.Ship) error
	GetShip(ctx context.Context, id int64) (ds.Ship, bool, error)
	GetShips(ctx context.Context) ([]ds.Ship, error)
	DeleteShip(ctx context.Context, id int64) error
}

// ShipService owns validation and rating of ships; the Store owns durability.
type ShipService struct {
	store Store
	log   *logrus.Entry
}

func New(store Store) *ShipService {
	return &ShipService{
		store: store,
		log:   logrus.WithField("component", "ship_service"),
	}
}

// Create validates a complete ship, computes its rating and stores it.
func (s *ShipService) Create(ctx context.Context, in ds.ShipInput) (ds.Ship, error) {
	var prodDate *time.Time
	if in.ProdDate != nil {
		t := time.UnixMilli(*in.ProdDate).UTC()
		prodDate = &t
	}

	switch {
	case !ValidName(in.Name):
		return ds.Ship{}, badRequest("name must be 1-%d characters", MaxNameLength)
	case !ValidCrewSize(in.CrewSize):
		return ds.Ship{}, badRequest("crewSize must be within [%d, %d]", MinCrewSize, MaxCrewSize)
	case !ValidPlanet(in.Planet):
		return ds.Ship{}, badRequest("planet must be 1-%d characters", MaxPlanetLength)
	case !ValidProdYear(prodDate):
		return ds.Ship{}, badRequest("prodDate year must be within [%d, %d]", MinProdYear, MaxProdYear)
	case !ValidShipType(in.ShipType):
		return ds.Ship{}, badRequest("shipType is required")
	case !ValidSpeed(in.Speed):
		return ds.Ship{}, badRequest("speed must be within [%.2f, %.2f]", MinSpeed, MaxSpeed)
	}

	ship := ds.Ship{
		Name:     *in.Name,
		Planet:   *in.Planet,
		ShipType: *in.ShipType,
		ProdDate: *prodDate,
		Speed:    *in.Speed,
		CrewSize: *in.CrewSize,
	}
	if in.IsUsed != nil {
		ship.IsUsed = *in.IsUsed
	}
	ship.Rating = Rating(ship.Speed, ship.IsUsed, ship.ProdDate)

	if err := s.store.CreateShip(ctx, &ship); err != nil {
		return ds.Ship{}, fmt.Errorf("create ship: %w", err)
	}
	s.log.WithField("ship_id", ship.ShipID).Info("ship created")
	return ship, nil
}

// List filters, sorts and paginates a snapshot of the stored ships.
func (s *ShipService) List(ctx context.Context, q ds.ShipQuery) ([]ds.Ship, error) {
	ships, err := s.store.GetShips(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ships: %w", err)
	}
	order := q.Order
	if order == "" {
		order = ds.OrderID
	}
	size := q.PageSize
	if size == 0 {
		size = DefaultPageSize
	}
	return Page(Sort(Filter(ships, q.Filter), order), q.PageNumber, size), nil
}

// Count returns how many stored ships match f.
func (s *ShipService) Count(ctx context.Context, f ds.ShipFilter) (int, error) {
	ships, err := s.store.GetShips(ctx)
	if err != nil {
		return 0, fmt.Errorf("count ships: %w", err)
	}
	return len(Filter(ships, f)), nil
}

func (s *ShipService) GetByID(ctx context.Context, idText string) (ds.Ship, error) {
	id, err := shipID(idText)
	if err != nil {
		return ds.Ship{}, err
	}
	return s.find(ctx, id)
}

// UpdateByID applies the present fields of in to a copy of the stored ship.
// The stored ship changes only if every present field is valid.
func (s *ShipService) UpdateByID(ctx context.Context, idText string, in *ds.ShipInput) (ds.Ship, error) {
	id, err := shipID(idText)
	if err != nil {
		return ds.Ship{}, err
	}
	if in == nil {
		return ds.Ship{}, badRequest("update payload is required")
	}
	ship, err := s.find(ctx, id)
	if err != nil {
		return ds.Ship{}, err
	}

	if in.Name != nil {
		if !ValidName(in.Name) {
			return ds.Ship{}, badRequest("name must be 1-%d characters", MaxNameLength)
		}
		ship.Name = *in.Name
	}
	if in.Planet != nil {
		if !ValidPlanet(in.Planet) {
			return ds.Ship{}, badRequest("planet must be 1-%d characters", MaxPlanetLength)
		}
		ship.Planet = *in.Planet
	}
	if in.ShipType != nil {
		if !ValidShipType(in.ShipType) {
			return ds.Ship{}, badRequest("unknown shipType %q", *in.ShipType)
		}
		ship.ShipType = *in.ShipType
	}
	if in.ProdDate != nil {
		t := time.UnixMilli(*in.ProdDate).UTC()
		if !ValidProdYear(&t) {
			return ds.Ship{}, badRequest("prodDate year must be within [%d, %d]", MinProdYear, MaxProdYear)
		}
		ship.ProdDate = t
	}
	if in.IsUsed != nil {
		ship.IsUsed = *in.IsUsed
	}
	if in.Speed != nil {
		if !ValidSpeed(in.Speed) {
			return ds.Ship{}, badRequest("speed must be within [%.2f, %.2f]", MinSpeed, MaxSpeed)
		}
		ship.Speed = *in.Speed
	}
	if in.CrewSize != nil {
		if !ValidCrewSize(in.CrewSize) {
			return ds.Ship{}, badRequest("crewSize must be within [%d, %d]", MinCrewSize, MaxCrewSize)
		}
		ship.CrewSize = *in.CrewSize
	}
	ship.Rating = Rating(ship.Speed, ship.IsUsed, ship.ProdDate)

	if err := s.store.UpdateShip(ctx, &ship); err != nil {
		return ds.Ship{}, fmt.Errorf("update ship %d: %w", id, err)
	}
	s.log.WithField("ship_id", id).Info("ship updated")
	return ship, nil
}

func (s *ShipService) DeleteByID(ctx context.Context, idText string) error {
	id, err := shipID(idText)
	if err != nil {
		return err
	}
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteShip(ctx, id); err != nil {
		return fmt.Errorf("delete ship %d: %w", id, err)
	}
	s.log.WithField("ship_id", id).Info("ship deleted")
	return nil
}

// AttachImage records objectName as the ship photo and returns the updated
// ship together with the photo it replaced, if any.
func (s *ShipService) AttachImage(ctx context.Context, idText, objectName string) (ds.Ship, string, error) {
	id, err := shipID(idText)
	if err != nil {
		return ds.Ship{}, "", err
	}
	ship, err := s.find(ctx, id)
	if err != nil {
		return ds.Ship{}, "", err
	}
	previous := ship.PhotoURL
	ship.PhotoURL = objectName
	if err := s.store.UpdateShip(ctx, &ship); err != nil {
		return ds.Ship{}, "", fmt.Errorf("attach image to ship %d: %w", id, err)
	}
	return ship, previous, nil
}

func (s *ShipService) find(ctx context.Context, id int64) (ds.Ship, error) {
	ship, ok, err := s.store.GetShip(ctx, id)
	if err != nil {
		return ds.Ship{}, fmt.Errorf("get ship %d: %w", id, err)
	}
	if !ok {
		return ds.Ship{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return ship, nil
}

func shipID(text string) (int64, error) {
	id, ok := parseID(text)
	if !ok {
		return 0, badRequest("invalid ship id %q", text)
	}
	return id, nil
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}
