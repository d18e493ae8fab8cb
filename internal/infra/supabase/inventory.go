package supabase

import (
	"cmp"
	"context"
	"slices"

	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/infra"

	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"
)

type InventoryStore struct {
	client *supa.Client
}

func NewInventoryStore(client *supa.Client) *InventoryStore {
	return &InventoryStore{client: client}
}

func (s *InventoryStore) ItemByID(_ context.Context, itemType inventory.ItemType, id uuid.UUID) (inventory.BookableItem, error) {
	switch itemType {
	case inventory.ItemTypeApartment:
		rows, err := selectRows[apartmentRow](s.client, apartmentsTable, id)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, infra.WrapRepoErr("apartment not found", nil, infra.KindNotFound)
		}
		return decodeApartment(rows[0])
	case inventory.ItemTypeCar:
		rows, err := selectRows[carRow](s.client, carsTable, id)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
		}
		return decodeCar(rows[0])
	default:
		return nil, infra.WrapRepoErr("unknown item type "+itemType.String(), inventory.ErrInvalidItemType, infra.KindNotFound)
	}
}

func (s *InventoryStore) ListApartments(_ context.Context) ([]*inventory.Apartment, error) {
	rows, err := selectRows[apartmentRow](s.client, apartmentsTable, uuid.Nil)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(rows, func(a, b apartmentRow) int { return cmp.Compare(a.Name, b.Name) })
	result := make([]*inventory.Apartment, 0, len(rows))
	for _, row := range rows {
		a, err := decodeApartment(row)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

func (s *InventoryStore) ListCars(_ context.Context) ([]*inventory.Car, error) {
	rows, err := selectRows[carRow](s.client, carsTable, uuid.Nil)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(rows, func(a, b carRow) int { return cmp.Compare(a.Name, b.Name) })
	result := make([]*inventory.Car, 0, len(rows))
	for _, row := range rows {
		c, err := decodeCar(row)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func (s *InventoryStore) UpsertApartment(_ context.Context, spec inventory.ApartmentSpec) error {
	_, _, err := s.client.From(apartmentsTable).
		Insert(apartmentRow(spec), true, "id", "minimal", "").
		Execute()
	if err != nil {
		return wrapErr("failed to upsert apartment "+spec.Name, err)
	}
	return nil
}

func (s *InventoryStore) UpsertCar(_ context.Context, spec inventory.CarSpec) error {
	_, _, err := s.client.From(carsTable).
		Insert(carRow(spec), true, "id", "minimal", "").
		Execute()
	if err != nil {
		return wrapErr("failed to upsert car "+spec.Name, err)
	}
	return nil
}

// selectRows reads a whole table, or a single row when id is set.
func selectRows[T any](client *supa.Client, table string, id uuid.UUID) ([]T, error) {
	q := client.From(table).Select("*", "", false)
	if id != uuid.Nil {
		q = q.Eq("id", id.String())
	}
	raw, _, err := q.Execute()
	if err != nil {
		return nil, wrapErr("failed to read "+table, err)
	}
	rows, err := decodeRows[T](raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode "+table, err, infra.KindDBFailure)
	}
	return rows, nil
}

func decodeApartment(row apartmentRow) (*inventory.Apartment, error) {
	a, err := inventory.NewApartment(row.spec())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode apartment", err, infra.KindDBFailure)
	}
	return a, nil
}

func decodeCar(row carRow) (*inventory.Car, error) {
	c, err := inventory.NewCar(row.spec())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode car", err, infra.KindDBFailure)
	}
	return c, nil
}
