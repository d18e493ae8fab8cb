package queries

import (
	"strings"
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"

	"github.com/google/uuid"
)

// BookingView is the read model shared by the admin list and single lookups.
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	Type          string    `json:"type"`
	EntityID      uuid.UUID `json:"entity_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserPhone     string    `json:"user_phone"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	DurationDays  int       `json:"duration_days"`
	TotalAmount   int64     `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:            b.ID(),
		Type:          b.ItemType().String(),
		EntityID:      b.EntityID(),
		UserName:      b.Contact().Name(),
		UserEmail:     b.Contact().Email(),
		UserPhone:     b.Contact().Phone(),
		StartDate:     b.Dates().Start(),
		EndDate:       b.Dates().End(),
		DurationDays:  b.DurationDays(),
		TotalAmount:   b.Total().Amount(),
		Status:        b.Status().String(),
		PaymentMethod: b.PaymentMethod(),
		Notes:         b.Note().Value(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

// BookingFilter narrows the booking list; every set criterion must hold.
type BookingFilter struct {
	Type   *inventory.ItemType
	Status *booking.Status
	// Search is a case-insensitive substring of name, email or phone.
	Search string
}

func (f BookingFilter) Matches(v *BookingView) bool {
	if f.Type != nil && v.Type != f.Type.String() {
		return false
	}
	if f.Status != nil && v.Status != f.Status.String() {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	for _, field := range []string{v.UserName, v.UserEmail, v.UserPhone} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

type ApartmentView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Zone        string    `json:"zone"`
	Rooms       int       `json:"rooms"`
	Bathrooms   int       `json:"bathrooms"`
	Surface     float64   `json:"surface"`
	PricePerDay int64     `json:"price_per_day"`
	Available   bool      `json:"available"`
}

type CarView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Seats       int       `json:"seats"`
	PricePerDay int64     `json:"price_per_day"`
	Available   bool      `json:"available"`
}

// QuoteView reports calendar days like BookingView does; BillableDays is the
// count actually charged once the minimum-stay floor applies.
type QuoteView struct {
	Type         string    `json:"type"`
	EntityID     uuid.UUID `json:"entity_id"`
	PricePerDay  int64     `json:"price_per_day"`
	DurationDays int       `json:"duration_days"`
	BillableDays int       `json:"billable_days"`
	TotalAmount  int64     `json:"total_amount"`
}
