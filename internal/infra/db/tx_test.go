//go:build unit

package db_test

import (
	"errors"
	"fmt"
	"testing"

	"dakar-rentals/internal/infra/db"
	"dakar-rentals/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, expected: true},
		{name: "wrapped deadlock", err: fmt.Errorf("upsert car: %w", &pgconn.PgError{Code: "40P01"}), expected: true},
		{name: "marked deadlock", err: errs.Mark(&pgconn.PgError{Code: "40P01"}, db.ErrTransactionCommit), expected: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		{name: "plain error", err: errors.New("boom"), expected: false},
		{name: "nil", err: nil, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, db.IsRetryable(tc.err))
		})
	}
}
