// Package catalog reads the apartment and car catalog from YAML and loads it
// into a store.
package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"dakar-rentals/internal/domain/inventory"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type Writer interface {
	UpsertApartment(ctx context.Context, spec inventory.ApartmentSpec) error
	UpsertCar(ctx context.Context, spec inventory.CarSpec) error
}

type Catalog struct {
	Apartments []inventory.ApartmentSpec
	Cars       []inventory.CarSpec
}

type file struct {
	Apartments []apartmentEntry `yaml:"apartments"`
	Cars       []carEntry       `yaml:"cars"`
}

type apartmentEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Zone        string  `yaml:"zone"`
	Rooms       int     `yaml:"rooms"`
	Bathrooms   int     `yaml:"bathrooms"`
	Surface     float64 `yaml:"surface"`
	PricePerDay int64   `yaml:"price_per_day"`
	Available   *bool   `yaml:"available"`
}

type carEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Brand       string `yaml:"brand"`
	Model       string `yaml:"model"`
	Year        int    `yaml:"year"`
	Seats       int    `yaml:"seats"`
	PricePerDay int64  `yaml:"price_per_day"`
	Available   *bool  `yaml:"available"`
}

func ReadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a catalog document. Items default to available.
func Parse(r io.Reader) (*Catalog, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode catalog")
	}

	c := &Catalog{
		Apartments: make([]inventory.ApartmentSpec, 0, len(doc.Apartments)),
		Cars:       make([]inventory.CarSpec, 0, len(doc.Cars)),
	}
	for i, e := range doc.Apartments {
		id, err := parseID(e.ID, fmt.Sprintf("apartments[%d]", i))
		if err != nil {
			return nil, err
		}
		c.Apartments = append(c.Apartments, inventory.ApartmentSpec{
			ID:          id,
			Name:        e.Name,
			Zone:        e.Zone,
			Rooms:       e.Rooms,
			Bathrooms:   e.Bathrooms,
			Surface:     e.Surface,
			PricePerDay: e.PricePerDay,
			Available:   e.Available == nil || *e.Available,
		})
	}
	for i, e := range doc.Cars {
		id, err := parseID(e.ID, fmt.Sprintf("cars[%d]", i))
		if err != nil {
			return nil, err
		}
		c.Cars = append(c.Cars, inventory.CarSpec{
			ID:          id,
			Name:        e.Name,
			Brand:       e.Brand,
			Model:       e.Model,
			Year:        e.Year,
			Seats:       e.Seats,
			PricePerDay: e.PricePerDay,
			Available:   e.Available == nil || *e.Available,
		})
	}
	return c, nil
}

func parseID(raw, where string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "%s: invalid id %q", where, raw)
	}
	return id, nil
}

// Load upserts every item, so running it twice leaves the store unchanged.
func (c *Catalog) Load(ctx context.Context, w Writer) error {
	for _, spec := range c.Apartments {
		if err := w.UpsertApartment(ctx, spec); err != nil {
			return errors.Wrapf(err, "load apartment %s", spec.Name)
		}
	}
	for _, spec := range c.Cars {
		if err := w.UpsertCar(ctx, spec); err != nil {
			return errors.Wrapf(err, "load car %s", spec.Name)
		}
	}
	return nil
}
