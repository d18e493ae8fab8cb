package response

import (
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                   uuid.UUID `json:"id"`
	Type                 string    `json:"type"`
	EntityID             uuid.UUID `json:"entityId"`
	UserName             string    `json:"userName"`
	UserEmail            string    `json:"userEmail"`
	UserPhone            string    `json:"userPhone"`
	StartDate            string    `json:"startDate"`
	EndDate              string    `json:"endDate"`
	DurationDays         int       `json:"durationDays"`
	TotalAmount          int64     `json:"totalAmount"`
	TotalAmountFormatted string    `json:"totalAmountFormatted"`
	Status               string    `json:"status"`
	PaymentMethod        string    `json:"paymentMethod,omitempty"`
	Notes                *string   `json:"notes,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                   v.ID,
		Type:                 v.Type,
		EntityID:             v.EntityID,
		UserName:             v.UserName,
		UserEmail:            v.UserEmail,
		UserPhone:            v.UserPhone,
		StartDate:            v.StartDate.Format(booking.DateLayout),
		EndDate:              v.EndDate.Format(booking.DateLayout),
		DurationDays:         v.DurationDays,
		TotalAmount:          v.TotalAmount,
		TotalAmountFormatted: booking.FormatXOF(v.TotalAmount),
		Status:               v.Status,
		PaymentMethod:        v.PaymentMethod,
		Notes:                v.Notes,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}
