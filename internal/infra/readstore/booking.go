package readstore

import (
	"context"
	"strings"

	"dakar-rentals/internal/infra"
	"dakar-rentals/internal/infra/repository/converter"
	sqlc "dakar-rentals/internal/infra/sqlc/generated"
	"dakar-rentals/internal/pkg/pgconv"
	"dakar-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=booking.go -destination=../../mock/readstore/booking.go -package=readstoremock

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.Booking, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rowToBookingView(row)
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, r.db, ListParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToBookingView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func ListParams(filter queries.BookingFilter) sqlc.ListBookingsParams {
	var params sqlc.ListBookingsParams
	if filter.Type != nil {
		params.Type = pgtype.Text{String: filter.Type.String(), Valid: true}
	}
	if filter.Status != nil {
		params.Status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}
	params.Search = pgconv.OptionalText(pgconv.EscapeLike(strings.TrimSpace(filter.Search)))
	return params
}

func rowToBookingView(row sqlc.Booking) (*queries.BookingView, error) {
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return queries.NewBookingView(b), nil
}
