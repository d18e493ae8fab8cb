package commands

import (
	"context"
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../mock/commands/ports.go -package=commandsmock

// BookingRepository is the write side of the booking store.
type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// TransitionStatus updates the row only while it still has status from.
	// A row in another status yields KindConflict, a missing row KindNotFound.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (*booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InventoryReader interface {
	ItemByID(ctx context.Context, itemType inventory.ItemType, id uuid.UUID) (inventory.BookableItem, error)
}

type LifecycleRecorder interface {
	BookingCreated(itemType inventory.ItemType)
	StatusChanged(from, to booking.Status)
	TransitionRejected(to booking.Status)
	BookingDeleted()
}
