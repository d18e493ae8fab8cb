package inventory

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemType = errors.New("invalid item type")
	ErrNegativePrice   = errors.New("price per day cannot be negative")
)

type ItemType string

const (
	ItemTypeApartment ItemType = "apartment"
	ItemTypeCar       ItemType = "car"
)

func (t ItemType) String() string {
	return string(t)
}

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeApartment, ItemTypeCar:
		return true
	default:
		return false
	}
}

func ParseItemType(s string) (ItemType, error) {
	t := ItemType(s)
	if !t.IsValid() {
		return "", ErrInvalidItemType
	}
	return t, nil
}

// BookableItem is anything a booking can target.
type BookableItem interface {
	ID() uuid.UUID
	Type() ItemType
	PricePerDay() int64
	IsAvailable() bool
}

type item struct {
	id          uuid.UUID
	name        string
	pricePerDay int64
	available   bool
}

func (i item) ID() uuid.UUID      { return i.id }
func (i item) Name() string       { return i.name }
func (i item) PricePerDay() int64 { return i.pricePerDay }
func (i item) IsAvailable() bool  { return i.available }

type Apartment struct {
	item
	zone      string
	rooms     int
	bathrooms int
	surface   float64
}

type ApartmentSpec struct {
	ID          uuid.UUID
	Name        string
	Zone        string
	Rooms       int
	Bathrooms   int
	Surface     float64
	PricePerDay int64
	Available   bool
}

func NewApartment(spec ApartmentSpec) (*Apartment, error) {
	if spec.PricePerDay < 0 {
		return nil, ErrNegativePrice
	}
	return &Apartment{
		item:      item{id: spec.ID, name: spec.Name, pricePerDay: spec.PricePerDay, available: spec.Available},
		zone:      spec.Zone,
		rooms:     spec.Rooms,
		bathrooms: spec.Bathrooms,
		surface:   spec.Surface,
	}, nil
}

func (a *Apartment) Type() ItemType   { return ItemTypeApartment }
func (a *Apartment) Zone() string     { return a.zone }
func (a *Apartment) Rooms() int       { return a.rooms }
func (a *Apartment) Bathrooms() int   { return a.bathrooms }
func (a *Apartment) Surface() float64 { return a.surface }

type Car struct {
	item
	brand string
	model string
	year  int
	seats int
}

type CarSpec struct {
	ID          uuid.UUID
	Name        string
	Brand       string
	Model       string
	Year        int
	Seats       int
	PricePerDay int64
	Available   bool
}

func NewCar(spec CarSpec) (*Car, error) {
	if spec.PricePerDay < 0 {
		return nil, ErrNegativePrice
	}
	return &Car{
		item:  item{id: spec.ID, name: spec.Name, pricePerDay: spec.PricePerDay, available: spec.Available},
		brand: spec.Brand,
		model: spec.Model,
		year:  spec.Year,
		seats: spec.Seats,
	}, nil
}

func (c *Car) Type() ItemType { return ItemTypeCar }
func (c *Car) Brand() string  { return c.brand }
func (c *Car) Model() string  { return c.model }
func (c *Car) Year() int      { return c.year }
func (c *Car) Seats() int     { return c.seats }
