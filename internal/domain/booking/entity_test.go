//go:build unit

package booking_test

import (
	"testing"
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)

func newFactory(minDays int, strict bool) *booking.Factory {
	return booking.NewFactory(
		clock.NewMockClock(fixedNow),
		booking.NewDailyRateCalculator(minDays),
		booking.Policy{StrictDateRange: strict},
	)
}

func newApartment(t *testing.T, pricePerDay int64) *inventory.Apartment {
	t.Helper()
	a, err := inventory.NewApartment(inventory.ApartmentSpec{
		ID: uuid.New(), Name: "Studio Plateau", Zone: "Plateau", PricePerDay: pricePerDay, Available: true,
	})
	require.NoError(t, err)
	return a
}

func draft(start, end string) booking.Draft {
	return booking.Draft{
		ItemType: inventory.ItemTypeApartment,
		Contact:  booking.NewContact(" Awa Diallo ", "awa@example.sn", "+221 77 000 00 00"),
		Dates:    booking.NewDateRange(date(start), date(end)),
	}
}

func TestFactory_NewBooking(t *testing.T) {
	testCases := []struct {
		name          string
		factory       *booking.Factory
		draft         booking.Draft
		price         int64
		expectedTotal int64
		expectedErr   error
	}{
		{name: "three days at 25000", factory: newFactory(0, false), draft: draft("2024-05-01", "2024-05-04"), price: 25000, expectedTotal: 75000},
		{name: "inverted range tolerated by default", factory: newFactory(0, false), draft: draft("2024-05-04", "2024-05-01"), price: 25000, expectedTotal: 75000},
		{name: "inverted range rejected in strict mode", factory: newFactory(0, true), draft: draft("2024-05-04", "2024-05-01"), price: 25000, expectedErr: booking.ErrInvalidDateRange},
		{name: "same day priced at zero", factory: newFactory(0, false), draft: draft("2024-05-01", "2024-05-01"), price: 25000, expectedTotal: 0},
		{name: "same day with one day floor", factory: newFactory(1, false), draft: draft("2024-05-01", "2024-05-01"), price: 25000, expectedTotal: 25000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := newApartment(t, tc.price)

			b, err := tc.factory.NewBooking(tc.draft, item)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, b.ID())
			assert.Equal(t, booking.StatusPending, b.Status())
			assert.Equal(t, item.ID(), b.EntityID())
			assert.Equal(t, tc.expectedTotal, b.Total().Amount())
			assert.Equal(t, fixedNow, b.CreatedAt())
			assert.Equal(t, "Awa Diallo", b.Contact().Name())
		})
	}
}

func TestFactory_NewBooking_TypeMismatch(t *testing.T) {
	car, err := inventory.NewCar(inventory.CarSpec{ID: uuid.New(), PricePerDay: 30000, Available: true})
	require.NoError(t, err)

	_, err = newFactory(0, false).NewBooking(draft("2024-05-01", "2024-05-02"), car)
	assert.ErrorIs(t, err, booking.ErrItemTypeMismatch)
}

func TestBooking_PendingTransitions(t *testing.T) {
	b, err := newFactory(0, false).NewBooking(draft("2024-05-01", "2024-05-04"), newApartment(t, 25000))
	require.NoError(t, err)
	later := fixedNow.Add(time.Hour)

	t.Run("confirm from pending", func(t *testing.T) {
		p, err := b.Pending()
		require.NoError(t, err)

		confirmed := p.Confirm(later)

		assert.Equal(t, booking.StatusConfirmed, confirmed.Status())
		assert.Equal(t, later, confirmed.UpdatedAt())
		assert.Equal(t, b.Total(), confirmed.Total())
		assert.Equal(t, booking.StatusPending, b.Status(), "original value is not mutated")

		_, err = confirmed.Pending()
		assert.ErrorIs(t, err, booking.ErrInvalidStateTransition)
	})

	t.Run("cancel from pending", func(t *testing.T) {
		p, err := b.Pending()
		require.NoError(t, err)

		cancelled := p.Cancel(later)

		assert.Equal(t, booking.StatusCancelled, cancelled.Status())
		_, err = cancelled.Pending()
		assert.ErrorIs(t, err, booking.ErrInvalidStateTransition)
	})

	t.Run("transition to pending is rejected", func(t *testing.T) {
		p, err := b.Pending()
		require.NoError(t, err)

		_, err = p.Transition(booking.StatusPending, later)
		assert.ErrorIs(t, err, booking.ErrInvalidStateTransition)
	})
}

func TestParseDate(t *testing.T) {
	d, err := booking.ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, date("2024-05-01"), d)

	d, err = booking.ParseDate("2024-05-01T23:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, date("2024-05-01"), d)

	for _, raw := range []string{"", "  ", "01/05/2024", "2024-13-01"} {
		_, err := booking.ParseDate(raw)
		assert.ErrorIs(t, err, booking.ErrInvalidDate, raw)
	}
}
