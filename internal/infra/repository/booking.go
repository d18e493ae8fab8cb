package repository

import (
	"context"
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/infra"
	"dakar-rentals/internal/infra/repository/converter"
	sqlc "dakar-rentals/internal/infra/sqlc/generated"
	"dakar-rentals/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../mock/repository/booking.go -package=repositorymock

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingParams) error
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booking, error)
	UpdateBookingStatusIfCurrent(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusIfCurrentParams) (sqlc.Booking, error)
	BookingExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.InsertBooking(ctx, r.db, converter.BookingToInsertParams(b)); err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

// TransitionStatus is a single compare-and-set UPDATE; concurrent callers
// racing on the same booking see exactly one success.
func (r *BookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (*booking.Booking, error) {
	row, err := r.queries.UpdateBookingStatusIfCurrent(ctx, r.db, sqlc.UpdateBookingStatusIfCurrentParams{
		NewStatus:     to.String(),
		UpdatedAt:     pgconv.TimeToPgtype(at),
		ID:            id,
		CurrentStatus: from.String(),
	})
	if err != nil {
		if !pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("failed to update booking status", err)
		}
		return nil, r.explainNoUpdate(ctx, id, from)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) explainNoUpdate(ctx context.Context, id uuid.UUID, from booking.Status) error {
	exists, err := r.queries.BookingExists(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to check booking existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("booking is no longer "+from.String(), nil, infra.KindConflict)
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
