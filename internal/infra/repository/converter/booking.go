package converter

import (
	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	sqlc "dakar-rentals/internal/infra/sqlc/generated"
	"dakar-rentals/internal/pkg/errs"
	"dakar-rentals/internal/pkg/pgconv"
)

func BookingToInsertParams(b *booking.Booking) sqlc.InsertBookingParams {
	return sqlc.InsertBookingParams{
		ID:            b.ID(),
		Type:          b.ItemType().String(),
		EntityID:      b.EntityID(),
		UserName:      b.Contact().Name(),
		UserEmail:     b.Contact().Email(),
		UserPhone:     b.Contact().Phone(),
		StartDate:     pgconv.DateToPgtype(b.Dates().Start()),
		EndDate:       pgconv.DateToPgtype(b.Dates().End()),
		TotalAmount:   b.Total().Amount(),
		Status:        b.Status().String(),
		PaymentMethod: b.PaymentMethod(),
		Notes:         pgconv.StringPtrToPgtype(b.Note().Value()),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Booking) (*booking.Booking, error) {
	itemType, err := inventory.ParseItemType(row.Type)
	if err != nil {
		return nil, errs.Wrap(err, "booking row "+row.ID.String())
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "booking row "+row.ID.String())
	}
	total, err := booking.NewMoney(row.TotalAmount)
	if err != nil {
		return nil, errs.Wrap(err, "booking row "+row.ID.String())
	}

	return booking.ReconstructBooking(
		row.ID,
		itemType,
		row.EntityID,
		booking.NewContact(row.UserName, row.UserEmail, row.UserPhone),
		booking.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate)),
		total,
		status,
		row.PaymentMethod,
		booking.NewNote(pgconv.StringPtrFromPgtype(row.Notes)),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
