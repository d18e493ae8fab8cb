package queries

import (
	"context"

	"dakar-rentals/internal/infra"
	"dakar-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../mock/queries/booking.go -package=queriesmock

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return view, nil
}

// List returns newest bookings first.
func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*BookingView, error) {
	views, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if views == nil {
		views = []*BookingView{}
	}
	return views, nil
}

func translateStoreErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrStoreUnavailable)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
