package supabase

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/infra"
	"dakar-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"
)

type BookingRepository struct {
	client *supa.Client
}

func NewBookingRepository(client *supa.Client) *BookingRepository {
	return &BookingRepository{client: client}
}

func (r *BookingRepository) Insert(_ context.Context, b *booking.Booking) error {
	raw, _, err := r.client.From(bookingsTable).
		Insert(bookingToRow(b), false, "", returnRows, "").
		Execute()
	if err != nil {
		return wrapErr("failed to insert booking", err)
	}
	rows, err := decodeRows[bookingRow](raw)
	if err != nil {
		return infra.WrapRepoErr("failed to decode inserted booking", err, infra.KindDBFailure)
	}
	if len(rows) == 0 {
		return infra.WrapRepoErr("booking insert returned no rows", nil, infra.KindDBFailure)
	}
	return nil
}

func (r *BookingRepository) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.findRow(id)
	if err != nil {
		return nil, err
	}
	b, err := row.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) findRow(id uuid.UUID) (*bookingRow, error) {
	raw, _, err := r.client.From(bookingsTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, wrapErr("failed to find booking by ID", err)
	}
	rows, err := decodeRows[bookingRow](raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &rows[0], nil
}

// TransitionStatus filters on the current status so concurrent transitions
// cannot both succeed.
func (r *BookingRepository) TransitionStatus(_ context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (*booking.Booking, error) {
	raw, _, err := r.client.From(bookingsTable).
		Update(map[string]any{
			"status":     to.String(),
			"updated_at": at.UTC(),
		}, returnRows, "").
		Eq("id", id.String()).
		Eq("status", from.String()).
		Execute()
	if err != nil {
		return nil, wrapErr("failed to update booking status", err)
	}
	rows, err := decodeRows[bookingRow](raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	if len(rows) == 0 {
		if _, err := r.findRow(id); err != nil {
			return nil, err
		}
		return nil, infra.WrapRepoErr("booking is no longer "+from.String(), nil, infra.KindConflict)
	}

	b, err := rows[0].toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) Delete(_ context.Context, id uuid.UUID) error {
	raw, _, err := r.client.From(bookingsTable).
		Delete(returnRows, "").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return wrapErr("failed to delete booking", err)
	}
	rows, err := decodeRows[bookingRow](raw)
	if err != nil {
		return infra.WrapRepoErr("failed to decode deleted booking", err, infra.KindDBFailure)
	}
	if len(rows) == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// BookingReadStore serves the booking list and lookups from Supabase.
type BookingReadStore struct {
	repo *BookingRepository
}

func NewBookingReadStore(client *supa.Client) *BookingReadStore {
	return &BookingReadStore{repo: NewBookingRepository(client)}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.NewBookingView(b), nil
}

// List pushes type and status down to PostgREST. The search term is matched
// locally so that all three contact columns stay case-insensitive.
func (s *BookingReadStore) List(_ context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	q := s.repo.client.From(bookingsTable).Select("*", "", false)
	if filter.Type != nil {
		q = q.Eq("type", filter.Type.String())
	}
	if filter.Status != nil {
		q = q.Eq("status", filter.Status.String())
	}
	raw, _, err := q.Execute()
	if err != nil {
		return nil, wrapErr("failed to list bookings", err)
	}
	rows, err := decodeRows[bookingRow](raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err, infra.KindDBFailure)
	}
	return filterViews(rows, filter)
}

func filterViews(rows []bookingRow, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		b, err := row.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
		}
		view := queries.NewBookingView(b)
		if filter.Matches(view) {
			views = append(views, view)
		}
	}
	slices.SortFunc(views, func(a, b *queries.BookingView) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID.String(), a.ID.String())
	})
	return views, nil
}

// PostgREST reports SQLSTATE codes as "(code) message".
func wrapErr(msg string, err error) error {
	text := err.Error()
	switch {
	case strings.Contains(text, "(23505)"):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case strings.Contains(text, "(23503)"):
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
