// Package supabase stores bookings and the catalog in a hosted Supabase
// project through its PostgREST API. Table layout matches the SQL migrations.
package supabase

import (
	"encoding/json"

	"dakar-rentals/internal/pkg/config"
	"dakar-rentals/internal/pkg/errs"

	supa "github.com/supabase-community/supabase-go"
)

const (
	bookingsTable   = "bookings"
	apartmentsTable = "apartments"
	carsTable       = "cars"

	returnRows = "representation"
)

func NewClient(cfg config.SupabaseConfig) (*supa.Client, error) {
	client, err := supa.NewClient(cfg.URL, cfg.Key, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create supabase client")
	}
	return client, nil
}

// PostgREST always answers with an array, even for single-row filters.
func decodeRows[T any](raw []byte) ([]T, error) {
	var rows []T
	if len(raw) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, errs.Wrap(err, "failed to decode rows")
	}
	return rows, nil
}
