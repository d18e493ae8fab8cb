package request

import "strings"

type CreateBookingRequest struct {
	Type          string  `json:"type" validate:"required,oneof=apartment car"`
	EntityID      string  `json:"entity_id" validate:"required"`
	UserName      string  `json:"user_name" validate:"required"`
	UserEmail     string  `json:"user_email" validate:"required,email"`
	UserPhone     string  `json:"user_phone" validate:"required"`
	StartDate     string  `json:"start_date" validate:"required"`
	EndDate       string  `json:"end_date" validate:"required"`
	PaymentMethod string  `json:"payment_method"`
	Notes         *string `json:"notes,omitempty"`
}

// Normalize trims every text field so blank input counts as missing.
func (r CreateBookingRequest) Normalize() CreateBookingRequest {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.EntityID = strings.TrimSpace(r.EntityID)
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.TrimSpace(r.UserEmail)
	r.UserPhone = strings.TrimSpace(r.UserPhone)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
	return r
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
