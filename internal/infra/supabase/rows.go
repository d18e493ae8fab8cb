package supabase

import (
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

type bookingRow struct {
	ID            uuid.UUID `json:"id"`
	Type          string    `json:"type"`
	EntityID      uuid.UUID `json:"entity_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserPhone     string    `json:"user_phone"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalAmount   int64     `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func bookingToRow(b *booking.Booking) bookingRow {
	return bookingRow{
		ID:            b.ID(),
		Type:          b.ItemType().String(),
		EntityID:      b.EntityID(),
		UserName:      b.Contact().Name(),
		UserEmail:     b.Contact().Email(),
		UserPhone:     b.Contact().Phone(),
		StartDate:     b.Dates().Start().Format(booking.DateLayout),
		EndDate:       b.Dates().End().Format(booking.DateLayout),
		TotalAmount:   b.Total().Amount(),
		Status:        b.Status().String(),
		PaymentMethod: b.PaymentMethod(),
		Notes:         b.Note().Value(),
		CreatedAt:     b.CreatedAt().UTC(),
		UpdatedAt:     b.UpdatedAt().UTC(),
	}
}

func (r bookingRow) toDomain() (*booking.Booking, error) {
	itemType, err := inventory.ParseItemType(r.Type)
	if err != nil {
		return nil, errs.Wrap(err, "booking row "+r.ID.String())
	}
	status, err := booking.ParseStatus(r.Status)
	if err != nil {
		return nil, errs.Wrap(err, "booking row "+r.ID.String())
	}
	start, err := booking.ParseDate(r.StartDate)
	if err != nil {
		return nil, errs.Wrap(err, "booking row "+r.ID.String()+" start_date")
	}
	end, err := booking.ParseDate(r.EndDate)
	if err != nil {
		return nil, errs.Wrap(err, "booking row "+r.ID.String()+" end_date")
	}
	total, err := booking.NewMoney(r.TotalAmount)
	if err != nil {
		return nil, errs.Wrap(err, "booking row "+r.ID.String())
	}

	return booking.ReconstructBooking(
		r.ID,
		itemType,
		r.EntityID,
		booking.NewContact(r.UserName, r.UserEmail, r.UserPhone),
		booking.NewDateRange(start, end),
		total,
		status,
		r.PaymentMethod,
		booking.NewNote(r.Notes),
		r.CreatedAt,
		r.UpdatedAt,
	), nil
}

type apartmentRow struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Zone        string    `json:"zone"`
	Rooms       int       `json:"rooms"`
	Bathrooms   int       `json:"bathrooms"`
	Surface     float64   `json:"surface"`
	PricePerDay int64     `json:"price_per_day"`
	Available   bool      `json:"available"`
}

func (r apartmentRow) spec() inventory.ApartmentSpec {
	return inventory.ApartmentSpec(r)
}

type carRow struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Seats       int       `json:"seats"`
	PricePerDay int64     `json:"price_per_day"`
	Available   bool      `json:"available"`
}

func (r carRow) spec() inventory.CarSpec {
	return inventory.CarSpec(r)
}
