package repository

import (
	"context"

	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/infra"
	"dakar-rentals/internal/infra/repository/converter"
	sqlc "dakar-rentals/internal/infra/sqlc/generated"
)

type CatalogWriteQueries interface {
	UpsertApartment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertApartmentParams) error
	UpsertCar(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCarParams) error
}

// CatalogRepository loads apartments and cars; re-running it updates in place.
type CatalogRepository struct {
	queries CatalogWriteQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogWriteQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{queries: queries, db: db}
}

func (r *CatalogRepository) UpsertApartment(ctx context.Context, spec inventory.ApartmentSpec) error {
	if err := r.queries.UpsertApartment(ctx, r.db, converter.ApartmentToUpsertParams(spec)); err != nil {
		return infra.WrapRepoErr("failed to upsert apartment "+spec.Name, err)
	}
	return nil
}

func (r *CatalogRepository) UpsertCar(ctx context.Context, spec inventory.CarSpec) error {
	if err := r.queries.UpsertCar(ctx, r.db, converter.CarToUpsertParams(spec)); err != nil {
		return infra.WrapRepoErr("failed to upsert car "+spec.Name, err)
	}
	return nil
}
