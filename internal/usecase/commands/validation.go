package commands

import (
	"errors"
	"reflect"
	"strings"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	reqdto "dakar-rentals/internal/handler/dto/request"
	"dakar-rentals/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type parsedBooking struct {
	itemType inventory.ItemType
	entityID uuid.UUID
	draft    booking.Draft
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseCreateRequest reports every offending field at once.
func parseCreateRequest(v *validator.Validate, req reqdto.CreateBookingRequest) (*parsedBooking, error) {
	req = req.Normalize()

	var fields []string
	if err := v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, errs.Wrap(err, "validate booking request")
		}
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
	}

	entityID, idErr := uuid.Parse(req.EntityID)
	if idErr != nil && req.EntityID != "" {
		fields = append(fields, "entity_id")
	}
	start, startErr := booking.ParseDate(req.StartDate)
	if startErr != nil && req.StartDate != "" {
		fields = append(fields, "start_date")
	}
	end, endErr := booking.ParseDate(req.EndDate)
	if endErr != nil && req.EndDate != "" {
		fields = append(fields, "end_date")
	}

	if len(fields) > 0 {
		return nil, errs.NewValidationError("invalid booking request", fields...)
	}

	return &parsedBooking{
		itemType: inventory.ItemType(req.Type),
		entityID: entityID,
		draft: booking.Draft{
			ItemType:      inventory.ItemType(req.Type),
			Contact:       booking.NewContact(req.UserName, req.UserEmail, req.UserPhone),
			Dates:         booking.NewDateRange(start, end),
			PaymentMethod: req.PaymentMethod,
			Note:          booking.NewNote(req.Notes),
		},
	}, nil
}
