package response

import (
	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ApartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Zone        string    `json:"zone"`
	Rooms       int       `json:"rooms"`
	Bathrooms   int       `json:"bathrooms"`
	Surface     float64   `json:"surface"`
	PricePerDay int64     `json:"pricePerDay"`
	Available   bool      `json:"available"`
}

type CarResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Seats       int       `json:"seats"`
	PricePerDay int64     `json:"pricePerDay"`
	Available   bool      `json:"available"`
}

type QuoteResponse struct {
	Type                 string    `json:"type"`
	EntityID             uuid.UUID `json:"entityId"`
	PricePerDay          int64     `json:"pricePerDay"`
	DurationDays         int       `json:"durationDays"`
	BillableDays         int       `json:"billableDays"`
	TotalAmount          int64     `json:"totalAmount"`
	TotalAmountFormatted string    `json:"totalAmountFormatted"`
}

func FromApartmentViews(vs []*queries.ApartmentView) ([]ApartmentResponse, error) {
	out := make([]ApartmentResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromCarViews(vs []*queries.CarView) ([]CarResponse, error) {
	out := make([]CarResponse, 0, len(vs))
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromQuoteView(v *queries.QuoteView) (*QuoteResponse, error) {
	out := &QuoteResponse{}
	if err := copier.Copy(out, v); err != nil {
		return nil, err
	}
	out.TotalAmountFormatted = booking.FormatXOF(v.TotalAmount)
	return out, nil
}
