package booking

import (
	"errors"
	"time"

	"dakar-rentals/internal/domain/inventory"

	"github.com/google/uuid"
)

var ErrInvalidStateTransition = errors.New("booking is no longer pending")

type Booking struct {
	id            uuid.UUID
	itemType      inventory.ItemType
	entityID      uuid.UUID
	contact       Contact
	dates         DateRange
	total         Money
	status        Status
	paymentMethod string
	note          Note
	createdAt     time.Time
	updatedAt     time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	itemType inventory.ItemType,
	entityID uuid.UUID,
	contact Contact,
	dates DateRange,
	total Money,
	status Status,
	paymentMethod string,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		itemType:      itemType,
		entityID:      entityID,
		contact:       contact,
		dates:         dates,
		total:         total,
		status:        status,
		paymentMethod: paymentMethod,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ItemType() inventory.ItemType { return b.itemType }
func (b *Booking) EntityID() uuid.UUID          { return b.entityID }
func (b *Booking) Contact() Contact             { return b.contact }
func (b *Booking) Dates() DateRange             { return b.dates }
func (b *Booking) Total() Money                 { return b.total }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentMethod() string        { return b.paymentMethod }
func (b *Booking) Note() Note                   { return b.note }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

func (b *Booking) DurationDays() int {
	return b.dates.Days()
}

// Pending returns the handle through which a pending booking is transitioned.
func (b *Booking) Pending() (Pending, error) {
	if b.status != StatusPending {
		return Pending{}, ErrInvalidStateTransition
	}
	return Pending{b: b}, nil
}

// Pending is a booking known to be in the pending state.
type Pending struct {
	b *Booking
}

func (p Pending) Confirm(at time.Time) *Booking {
	return p.to(StatusConfirmed, at)
}

func (p Pending) Cancel(at time.Time) *Booking {
	return p.to(StatusCancelled, at)
}

// Transition dispatches on the requested terminal status.
func (p Pending) Transition(to Status, at time.Time) (*Booking, error) {
	if !StatusPending.CanTransitionTo(to) {
		return nil, ErrInvalidStateTransition
	}
	return p.to(to, at), nil
}

func (p Pending) to(status Status, at time.Time) *Booking {
	next := *p.b
	next.status = status
	next.updatedAt = at
	return &next
}
