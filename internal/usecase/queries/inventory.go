package queries

import (
	"context"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=inventory.go -destination=../../mock/queries/inventory.go -package=queriesmock

type InventoryReadStore interface {
	ItemByID(ctx context.Context, itemType inventory.ItemType, id uuid.UUID) (inventory.BookableItem, error)
	ListApartments(ctx context.Context) ([]*inventory.Apartment, error)
	ListCars(ctx context.Context) ([]*inventory.Car, error)
}

type QuoteRequest struct {
	Type      string
	EntityID  string
	StartDate string
	EndDate   string
}

type InventoryQueries interface {
	ListApartments(ctx context.Context, includeUnavailable bool) ([]*ApartmentView, error)
	ListCars(ctx context.Context, includeUnavailable bool) ([]*CarView, error)
	Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error)
}

type inventoryQueriesImpl struct {
	store      InventoryReadStore
	calculator booking.PriceCalculator
}

func NewInventoryQueries(store InventoryReadStore, calculator booking.PriceCalculator) InventoryQueries {
	return &inventoryQueriesImpl{store: store, calculator: calculator}
}

func (q *inventoryQueriesImpl) ListApartments(ctx context.Context, includeUnavailable bool) ([]*ApartmentView, error) {
	items, err := q.store.ListApartments(ctx)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if !includeUnavailable {
		items = inventory.FilterAvailable(items)
	}

	views := make([]*ApartmentView, len(items))
	for i, a := range items {
		views[i] = &ApartmentView{
			ID:          a.ID(),
			Name:        a.Name(),
			Zone:        a.Zone(),
			Rooms:       a.Rooms(),
			Bathrooms:   a.Bathrooms(),
			Surface:     a.Surface(),
			PricePerDay: a.PricePerDay(),
			Available:   a.IsAvailable(),
		}
	}
	return views, nil
}

func (q *inventoryQueriesImpl) ListCars(ctx context.Context, includeUnavailable bool) ([]*CarView, error) {
	items, err := q.store.ListCars(ctx)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if !includeUnavailable {
		items = inventory.FilterAvailable(items)
	}

	views := make([]*CarView, len(items))
	for i, c := range items {
		views[i] = &CarView{
			ID:          c.ID(),
			Name:        c.Name(),
			Brand:       c.Brand(),
			Model:       c.Model(),
			Year:        c.Year(),
			Seats:       c.Seats(),
			PricePerDay: c.PricePerDay(),
			Available:   c.IsAvailable(),
		}
	}
	return views, nil
}

// Quote prices a prospective stay without recording anything. Dates that do
// not parse quote as zero, like the reservation form does while typing.
func (q *inventoryQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteView, error) {
	var fields []string
	itemType, err := inventory.ParseItemType(req.Type)
	if err != nil {
		fields = append(fields, "type")
	}
	entityID, err := uuid.Parse(req.EntityID)
	if err != nil {
		fields = append(fields, "entity_id")
	}
	if len(fields) > 0 {
		return nil, errs.NewValidationError("invalid quote request", fields...)
	}

	item, err := q.store.ItemByID(ctx, itemType, entityID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	view := &QuoteView{
		Type:        itemType.String(),
		EntityID:    entityID,
		PricePerDay: item.PricePerDay(),
	}

	start, startErr := booking.ParseDate(req.StartDate)
	end, endErr := booking.ParseDate(req.EndDate)
	if startErr != nil || endErr != nil {
		return view, nil
	}
	dates := booking.NewDateRange(start, end)
	view.DurationDays = dates.Days()
	view.BillableDays = q.calculator.BillableDays(dates)
	view.TotalAmount = q.calculator.Total(dates, item.PricePerDay())
	return view, nil
}
