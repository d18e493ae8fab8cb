package converter

import (
	"dakar-rentals/internal/domain/inventory"
	sqlc "dakar-rentals/internal/infra/sqlc/generated"
)

func ApartmentFromRow(row sqlc.Apartment) (*inventory.Apartment, error) {
	return inventory.NewApartment(inventory.ApartmentSpec{
		ID:          row.ID,
		Name:        row.Name,
		Zone:        row.Zone,
		Rooms:       int(row.Rooms),
		Bathrooms:   int(row.Bathrooms),
		Surface:     row.Surface,
		PricePerDay: row.PricePerDay,
		Available:   row.Available,
	})
}

func CarFromRow(row sqlc.Car) (*inventory.Car, error) {
	return inventory.NewCar(inventory.CarSpec{
		ID:          row.ID,
		Name:        row.Name,
		Brand:       row.Brand,
		Model:       row.Model,
		Year:        int(row.Year),
		Seats:       int(row.Seats),
		PricePerDay: row.PricePerDay,
		Available:   row.Available,
	})
}

func ApartmentToUpsertParams(spec inventory.ApartmentSpec) sqlc.UpsertApartmentParams {
	return sqlc.UpsertApartmentParams{
		ID:          spec.ID,
		Name:        spec.Name,
		Zone:        spec.Zone,
		Rooms:       int32(spec.Rooms),
		Bathrooms:   int32(spec.Bathrooms),
		Surface:     spec.Surface,
		PricePerDay: spec.PricePerDay,
		Available:   spec.Available,
	}
}

func CarToUpsertParams(spec inventory.CarSpec) sqlc.UpsertCarParams {
	return sqlc.UpsertCarParams{
		ID:          spec.ID,
		Name:        spec.Name,
		Brand:       spec.Brand,
		Model:       spec.Model,
		Year:        int32(spec.Year),
		Seats:       int32(spec.Seats),
		PricePerDay: spec.PricePerDay,
		Available:   spec.Available,
	}
}
