package booking

import (
	"errors"

	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrItemTypeMismatch = errors.New("item does not match booking type")

type Policy struct {
	// StrictDateRange rejects end dates before the start date.
	StrictDateRange bool
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Policy          Policy
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator, policy Policy) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
		Policy:          policy,
	}
}

type Draft struct {
	ItemType      inventory.ItemType
	Contact       Contact
	Dates         DateRange
	PaymentMethod string
	Note          Note
}

// NewBooking prices the draft against item and returns it as pending.
func (f *Factory) NewBooking(d Draft, item inventory.BookableItem) (*Booking, error) {
	if !d.ItemType.IsValid() {
		return nil, inventory.ErrInvalidItemType
	}
	if item.Type() != d.ItemType {
		return nil, ErrItemTypeMismatch
	}
	if f.Policy.StrictDateRange {
		if err := d.Dates.RequireOrdered(); err != nil {
			return nil, err
		}
	}

	total, err := NewMoney(f.PriceCalculator.Total(d.Dates, item.PricePerDay()))
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	return &Booking{
		id:            uuid.New(),
		itemType:      d.ItemType,
		entityID:      item.ID(),
		contact:       d.Contact,
		dates:         d.Dates,
		total:         total,
		status:        StatusPending,
		paymentMethod: d.PaymentMethod,
		note:          d.Note,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}
