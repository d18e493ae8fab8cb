package readstore

import (
	"context"

	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/infra"
	"dakar-rentals/internal/infra/repository/converter"
	sqlc "dakar-rentals/internal/infra/sqlc/generated"
	"dakar-rentals/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=inventory.go -destination=../../mock/readstore/inventory.go -package=readstoremock

type InventoryReadQueries interface {
	GetApartmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Apartment, error)
	GetCarByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Car, error)
	ListApartments(ctx context.Context, db sqlc.DBTX) ([]sqlc.Apartment, error)
	ListCars(ctx context.Context, db sqlc.DBTX) ([]sqlc.Car, error)
}

type InventoryReadStore struct {
	queries InventoryReadQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryReadQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryReadStore) ItemByID(ctx context.Context, itemType inventory.ItemType, id uuid.UUID) (inventory.BookableItem, error) {
	switch itemType {
	case inventory.ItemTypeApartment:
		row, err := r.queries.GetApartmentByID(ctx, r.db, id)
		if err != nil {
			return nil, wrapLookupErr("apartment", err)
		}
		a, err := converter.ApartmentFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode apartment", err, infra.KindDBFailure)
		}
		return a, nil
	case inventory.ItemTypeCar:
		row, err := r.queries.GetCarByID(ctx, r.db, id)
		if err != nil {
			return nil, wrapLookupErr("car", err)
		}
		c, err := converter.CarFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode car", err, infra.KindDBFailure)
		}
		return c, nil
	default:
		return nil, infra.WrapRepoErr("unknown item type "+itemType.String(), inventory.ErrInvalidItemType, infra.KindNotFound)
	}
}

func (r *InventoryReadStore) ListApartments(ctx context.Context) ([]*inventory.Apartment, error) {
	rows, err := r.queries.ListApartments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list apartments", err)
	}
	result := make([]*inventory.Apartment, 0, len(rows))
	for _, row := range rows {
		a, err := converter.ApartmentFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode apartment", err, infra.KindDBFailure)
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *InventoryReadStore) ListCars(ctx context.Context) ([]*inventory.Car, error) {
	rows, err := r.queries.ListCars(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	result := make([]*inventory.Car, 0, len(rows))
	for _, row := range rows {
		c, err := converter.CarFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode car", err, infra.KindDBFailure)
		}
		result = append(result, c)
	}
	return result, nil
}

func wrapLookupErr(kind string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(kind+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+kind+" by ID", err)
}
