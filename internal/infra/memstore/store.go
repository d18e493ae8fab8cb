// Package memstore keeps bookings and the catalog in process memory. It backs
// STORE_BACKEND=memory for local demos and mirrors the SQL store's semantics.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/infra"
	"dakar-rentals/internal/usecase/queries"

	"github.com/google/uuid"
)

type Store struct {
	mu         sync.RWMutex
	bookings   map[uuid.UUID]*booking.Booking
	apartments []*inventory.Apartment
	cars       []*inventory.Car
}

func New() *Store {
	return &Store{bookings: make(map[uuid.UUID]*booking.Booking)}
}

func (s *Store) UpsertApartment(_ context.Context, spec inventory.ApartmentSpec) error {
	a, err := inventory.NewApartment(spec)
	if err != nil {
		return infra.WrapRepoErr("invalid apartment "+spec.Name, err, infra.KindDBFailure)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apartments = upsert(s.apartments, a)
	return nil
}

func (s *Store) UpsertCar(_ context.Context, spec inventory.CarSpec) error {
	c, err := inventory.NewCar(spec)
	if err != nil {
		return infra.WrapRepoErr("invalid car "+spec.Name, err, infra.KindDBFailure)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars = upsert(s.cars, c)
	return nil
}

func upsert[T inventory.BookableItem](items []T, item T) []T {
	for i, existing := range items {
		if existing.ID() == item.ID() {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func (s *Store) ItemByID(_ context.Context, itemType inventory.ItemType, id uuid.UUID) (inventory.BookableItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch itemType {
	case inventory.ItemTypeApartment:
		for _, a := range s.apartments {
			if a.ID() == id {
				return a, nil
			}
		}
	case inventory.ItemTypeCar:
		for _, c := range s.cars {
			if c.ID() == id {
				return c, nil
			}
		}
	}
	return nil, infra.WrapRepoErr(itemType.String()+" not found", nil, infra.KindNotFound)
}

func (s *Store) ListApartments(_ context.Context) ([]*inventory.Apartment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.apartments), nil
}

func (s *Store) ListCars(_ context.Context) ([]*inventory.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cars), nil
}

func (s *Store) Insert(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	s.bookings[b.ID()] = b
	return nil
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (s *Store) TransitionStatus(_ context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if b.Status() != from {
		return nil, infra.WrapRepoErr("booking is no longer "+from.String(), nil, infra.KindConflict)
	}

	pending, err := b.Pending()
	if err != nil {
		return nil, infra.WrapRepoErr("booking is no longer pending", err, infra.KindConflict)
	}
	next, err := pending.Transition(to, at)
	if err != nil {
		return nil, infra.WrapRepoErr("illegal status "+to.String(), err, infra.KindConflict)
	}
	s.bookings[id] = next
	return next, nil
}

func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(s.bookings, id)
	return nil
}

// BookingViews adapts the store to the read side.
type BookingViews struct {
	store *Store
}

func NewBookingViews(store *Store) *BookingViews {
	return &BookingViews{store: store}
}

func (v *BookingViews) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, err := v.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.NewBookingView(b), nil
}

func (v *BookingViews) List(_ context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	v.store.mu.RLock()
	views := make([]*queries.BookingView, 0, len(v.store.bookings))
	for _, b := range v.store.bookings {
		view := queries.NewBookingView(b)
		if filter.Matches(view) {
			views = append(views, view)
		}
	}
	v.store.mu.RUnlock()

	slices.SortFunc(views, func(a, b *queries.BookingView) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID.String(), a.ID.String())
	})
	return views, nil
}
