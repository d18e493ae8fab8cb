package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dakar-rentals:item:"

type ItemSource interface {
	ItemByID(ctx context.Context, itemType inventory.ItemType, id uuid.UUID) (inventory.BookableItem, error)
}

// InventoryCache is a read-through cache for single item lookups. Redis
// failures are logged and the lookup falls back to the source.
type InventoryCache struct {
	source ItemSource
	client redis.Cmdable
	ttl    time.Duration
}

func NewInventoryCache(source ItemSource, client redis.Cmdable, ttl time.Duration) *InventoryCache {
	return &InventoryCache{source: source, client: client, ttl: ttl}
}

func (c *InventoryCache) ItemByID(ctx context.Context, itemType inventory.ItemType, id uuid.UUID) (inventory.BookableItem, error) {
	key := itemKey(itemType, id)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		item, decodeErr := decodeItem(raw)
		if decodeErr == nil {
			return item, nil
		}
		slog.Warn("Discarding unreadable cache entry", slog.String("key", key), slog.Any("error", decodeErr))
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("Item cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	item, err := c.source.ItemByID(ctx, itemType, id)
	if err != nil {
		return nil, err
	}

	encoded, err := encodeItem(item)
	if err != nil {
		slog.Warn("Item cache encode failed", slog.String("key", key), slog.Any("error", err))
		return item, nil
	}
	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		slog.Warn("Item cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return item, nil
}

func itemKey(itemType inventory.ItemType, id uuid.UUID) string {
	return keyPrefix + itemType.String() + ":" + id.String()
}

type itemSnapshot struct {
	Type        inventory.ItemType `json:"type"`
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	PricePerDay int64              `json:"price_per_day"`
	Available   bool               `json:"available"`

	Zone      string  `json:"zone,omitempty"`
	Rooms     int     `json:"rooms,omitempty"`
	Bathrooms int     `json:"bathrooms,omitempty"`
	Surface   float64 `json:"surface,omitempty"`

	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
	Year  int    `json:"year,omitempty"`
	Seats int    `json:"seats,omitempty"`
}

func encodeItem(item inventory.BookableItem) ([]byte, error) {
	var snap itemSnapshot
	switch it := item.(type) {
	case *inventory.Apartment:
		snap = itemSnapshot{
			Type: it.Type(), ID: it.ID(), Name: it.Name(), PricePerDay: it.PricePerDay(), Available: it.IsAvailable(),
			Zone: it.Zone(), Rooms: it.Rooms(), Bathrooms: it.Bathrooms(), Surface: it.Surface(),
		}
	case *inventory.Car:
		snap = itemSnapshot{
			Type: it.Type(), ID: it.ID(), Name: it.Name(), PricePerDay: it.PricePerDay(), Available: it.IsAvailable(),
			Brand: it.Brand(), Model: it.Model(), Year: it.Year(), Seats: it.Seats(),
		}
	default:
		return nil, errs.Newf("unsupported item %T", item)
	}
	return json.Marshal(snap)
}

func decodeItem(raw []byte) (inventory.BookableItem, error) {
	var snap itemSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	switch snap.Type {
	case inventory.ItemTypeApartment:
		a, err := inventory.NewApartment(inventory.ApartmentSpec{
			ID: snap.ID, Name: snap.Name, Zone: snap.Zone, Rooms: snap.Rooms, Bathrooms: snap.Bathrooms,
			Surface: snap.Surface, PricePerDay: snap.PricePerDay, Available: snap.Available,
		})
		if err != nil {
			return nil, err
		}
		return a, nil
	case inventory.ItemTypeCar:
		c, err := inventory.NewCar(inventory.CarSpec{
			ID: snap.ID, Name: snap.Name, Brand: snap.Brand, Model: snap.Model, Year: snap.Year,
			Seats: snap.Seats, PricePerDay: snap.PricePerDay, Available: snap.Available,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, inventory.ErrInvalidItemType
	}
}
