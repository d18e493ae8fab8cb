package commands

import (
	"context"
	"errors"
	"log/slog"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	reqdto "dakar-rentals/internal/handler/dto/request"
	"dakar-rentals/internal/infra"
	"dakar-rentals/internal/pkg/clock"
	"dakar-rentals/internal/pkg/errs"
	"dakar-rentals/internal/usecase/queries"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../mock/commands/booking.go -package=commandsmock

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	Confirm(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	repo      BookingRepository
	inventory InventoryReader
	factory   *booking.Factory
	clock     clock.Clock
	recorder  LifecycleRecorder
	validate  *validator.Validate
}

func NewBookingCommands(
	repo BookingRepository,
	inventory InventoryReader,
	factory *booking.Factory,
	clock clock.Clock,
	recorder LifecycleRecorder,
) BookingCommands {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &bookingCommandsImpl{
		repo:      repo,
		inventory: inventory,
		factory:   factory,
		clock:     clock,
		recorder:  recorder,
		validate:  newValidator(),
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	parsed, err := parseCreateRequest(c.validate, req)
	if err != nil {
		return nil, err
	}

	item, err := c.inventory.ItemByID(ctx, parsed.itemType, parsed.entityID)
	if err != nil {
		return nil, translateRepoErr(err)
	}

	b, err := c.factory.NewBooking(parsed.draft, item)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidDateRange):
			return nil, errs.NewValidationError(err.Error(), "end_date")
		case errors.Is(err, booking.ErrItemTypeMismatch), errors.Is(err, inventory.ErrInvalidItemType):
			return nil, errs.NewValidationError(err.Error(), "type")
		default:
			return nil, errs.NewValidationError(err.Error())
		}
	}

	if err := c.repo.Insert(ctx, b); err != nil {
		return nil, translateRepoErr(err)
	}

	c.recorder.BookingCreated(b.ItemType())
	slog.Info("booking created",
		slog.String("booking_id", b.ID().String()),
		slog.String("type", b.ItemType().String()),
		slog.Int64("total_amount", b.Total().Amount()))

	return queries.NewBookingView(b), nil
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return c.transition(ctx, id, booking.StatusConfirmed)
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return c.transition(ctx, id, booking.StatusCancelled)
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error) {
	target, err := booking.ParseStatus(status)
	if err != nil || target == booking.StatusPending {
		return nil, errs.NewValidationError("status must be confirmed or cancelled", "status")
	}
	return c.transition(ctx, id, target)
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return translateRepoErr(err)
	}
	c.recorder.BookingDeleted()
	slog.Info("booking deleted", slog.String("booking_id", id.String()))
	return nil
}

func (c *bookingCommandsImpl) transition(ctx context.Context, id uuid.UUID, to booking.Status) (*queries.BookingView, error) {
	current, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}

	pending, err := current.Pending()
	if err != nil {
		c.recorder.TransitionRejected(to)
		return nil, errs.Mark(err, errs.ErrInvalidStateTransition)
	}
	next, err := pending.Transition(to, c.clock.Now())
	if err != nil {
		c.recorder.TransitionRejected(to)
		return nil, errs.Mark(err, errs.ErrInvalidStateTransition)
	}

	// the row may have moved on since FindByID; the store re-checks pending
	updated, err := c.repo.TransitionStatus(ctx, id, booking.StatusPending, next.Status(), next.UpdatedAt())
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			c.recorder.TransitionRejected(to)
		}
		return nil, translateRepoErr(err)
	}

	c.recorder.StatusChanged(booking.StatusPending, to)
	slog.Info("booking status changed",
		slog.String("booking_id", id.String()),
		slog.String("status", to.String()))

	return queries.NewBookingView(updated), nil
}

func translateRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrInvalidStateTransition)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrStoreUnavailable)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

type nopRecorder struct{}

func (nopRecorder) BookingCreated(inventory.ItemType) {}
func (nopRecorder) StatusChanged(_, _ booking.Status) {}
func (nopRecorder) TransitionRejected(booking.Status) {}
func (nopRecorder) BookingDeleted()                   {}
