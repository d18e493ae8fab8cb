//go:build unit

package supabase

import (
	"strings"
	"testing"
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/pkg/errs"
	"dakar-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBookingJSON = `[{
	"id": "6f1c2b0e-8d7a-4c61-9b0a-3e5b7a1d2c40",
	"type": "car",
	"entity_id": "0b7e9a52-1f3c-4d8e-a6b2-5c9d0e1f2a3b",
	"user_name": "Awa Ndiaye",
	"user_email": "awa@example.sn",
	"user_phone": "+221770000000",
	"start_date": "2024-05-01",
	"end_date": "2024-05-04",
	"total_amount": 75000,
	"status": "pending",
	"payment_method": "wave",
	"notes": null,
	"created_at": "2024-04-20T10:15:30.123456+00:00",
	"updated_at": "2024-04-20T10:15:30.123456+00:00"
}]`

func TestDecodeRows_Booking(t *testing.T) {
	rows, err := decodeRows[bookingRow]([]byte(sampleBookingJSON))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	b, err := rows[0].toDomain()
	require.NoError(t, err)

	assert.Equal(t, inventory.ItemTypeCar, b.ItemType())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, int64(75000), b.Total().Amount())
	assert.Equal(t, 3, b.DurationDays())
	assert.Nil(t, b.Note().Value())
	assert.Equal(t, "Awa Ndiaye", b.Contact().Name())
}

func TestDecodeRows_Empty(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "empty body", raw: ""},
		{name: "empty array", raw: "[]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := decodeRows[bookingRow]([]byte(tc.raw))
			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	}
}

func TestDecodeRows_MalformedKeepsStack(t *testing.T) {
	rows, err := decodeRows[bookingRow]([]byte(`{"id":`))

	require.Error(t, err)
	assert.Nil(t, rows)
	assert.Contains(t, err.Error(), "failed to decode rows")
	stack := strings.Join(errs.ExtractStackLines(err, 0), "\n")
	assert.Contains(t, stack, "supabase.decodeRows")
}

func TestBookingRow_RoundTripThroughDomain(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	note := "late arrival"
	original := booking.ReconstructBooking(
		uuid.New(),
		inventory.ItemTypeApartment,
		uuid.New(),
		booking.NewContact("Moussa Diop", "moussa@example.sn", "+221781111111"),
		booking.NewDateRange(start, start.AddDate(0, 0, 2)),
		mustMoney(t, 50000),
		booking.StatusConfirmed,
		"orange_money",
		booking.NewNote(&note),
		start,
		start,
	)

	got, err := bookingToRow(original).toDomain()
	require.NoError(t, err)

	assert.Equal(t, queries.NewBookingView(original), queries.NewBookingView(got))
}

func TestBookingRow_RejectsCorruptRows(t *testing.T) {
	valid := bookingRow{
		ID:          uuid.New(),
		Type:        "car",
		EntityID:    uuid.New(),
		StartDate:   "2024-05-01",
		EndDate:     "2024-05-02",
		TotalAmount: 1000,
		Status:      "pending",
	}

	testCases := []struct {
		name   string
		mutate func(*bookingRow)
	}{
		{name: "unknown type", mutate: func(r *bookingRow) { r.Type = "boat" }},
		{name: "unknown status", mutate: func(r *bookingRow) { r.Status = "archived" }},
		{name: "bad start date", mutate: func(r *bookingRow) { r.StartDate = "01/05/2024" }},
		{name: "negative amount", mutate: func(r *bookingRow) { r.TotalAmount = -1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row := valid
			tc.mutate(&row)
			_, err := row.toDomain()
			assert.Error(t, err)
		})
	}
}

func TestFilterViews_SearchAndOrder(t *testing.T) {
	older := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	rows := []bookingRow{
		{ID: uuid.New(), Type: "car", StartDate: "2024-05-01", EndDate: "2024-05-02", Status: "pending", UserName: "Awa Ndiaye", CreatedAt: older},
		{ID: uuid.New(), Type: "car", StartDate: "2024-05-01", EndDate: "2024-05-02", Status: "pending", UserName: "AWA Sow", CreatedAt: newer},
		{ID: uuid.New(), Type: "car", StartDate: "2024-05-01", EndDate: "2024-05-02", Status: "pending", UserName: "Moussa", CreatedAt: newer},
	}

	views, err := filterViews(rows, queries.BookingFilter{Search: " awa "})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "AWA Sow", views[0].UserName)
	assert.Equal(t, "Awa Ndiaye", views[1].UserName)
}

func TestInventoryRows_ConvertToSpecs(t *testing.T) {
	id := uuid.New()
	apt := apartmentRow{ID: id, Name: "Almadies F3", Zone: "Almadies", Rooms: 3, Bathrooms: 2, Surface: 95.5, PricePerDay: 45000, Available: true}

	a, err := decodeApartment(apt)
	require.NoError(t, err)
	assert.Equal(t, id, a.ID())
	assert.Equal(t, "Almadies", a.Zone())
	assert.Equal(t, apt, apartmentRow(apt.spec()))

	_, err = decodeCar(carRow{ID: uuid.New(), PricePerDay: -5})
	assert.Error(t, err)
}

func mustMoney(t *testing.T, amount int64) booking.Money {
	t.Helper()
	m, err := booking.NewMoney(amount)
	require.NoError(t, err)
	return m
}
