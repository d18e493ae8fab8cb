//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/infra"
	"dakar-rentals/internal/infra/repository"
	sqlc "dakar-rentals/internal/infra/sqlc/generated"
	repositorymock "dakar-rentals/internal/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	bookingID = uuid.MustParse("5b0c6a52-8a51-4e0f-9c39-0a4a3f1c2d11")
	entityID  = uuid.MustParse("0f7e3c1a-2b44-4c1e-8e5b-6f2a9d4c7b21")
	createdAt = time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)
)

func bookingRow(status string) sqlc.Booking {
	return sqlc.Booking{
		ID:            bookingID,
		Type:          "apartment",
		EntityID:      entityID,
		UserName:      "Awa Ndiaye",
		UserEmail:     "awa@example.sn",
		UserPhone:     "+221770000000",
		StartDate:     pgtype.Date{Time: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		EndDate:       pgtype.Date{Time: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), Valid: true},
		TotalAmount:   75000,
		Status:        status,
		PaymentMethod: "wave",
		CreatedAt:     pgtype.Timestamptz{Time: createdAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: createdAt, Valid: true},
	}
}

func domainBooking(t *testing.T) *booking.Booking {
	t.Helper()
	total, err := booking.NewMoney(75000)
	require.NoError(t, err)
	return booking.ReconstructBooking(
		bookingID,
		inventory.ItemTypeApartment,
		entityID,
		booking.NewContact("Awa Ndiaye", "awa@example.sn", "+221770000000"),
		booking.NewDateRange(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)),
		total,
		booking.StatusPending,
		"wave",
		booking.NewNote(nil),
		createdAt,
		createdAt,
	)
}

func TestBookingRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row inserted"},
		{
			name:       "error: duplicate id",
			returnErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: connection lost",
			returnErr:  &pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"},
			expectKind: infra.KindUnavailable,
		},
		{
			name:       "error: generic failure",
			returnErr:  errors.New("boom"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			var captured sqlc.InsertBookingParams
			mockQueries.EXPECT().
				InsertBooking(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertBookingParams) error {
					captured = arg
					return tc.returnErr
				})

			err := repo.Insert(ctx, domainBooking(t))

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookingID, captured.ID)
			assert.Equal(t, "apartment", captured.Type)
			assert.Equal(t, "pending", captured.Status)
			assert.Equal(t, int64(75000), captured.TotalAmount)
			assert.False(t, captured.Notes.Valid)
			assert.True(t, captured.StartDate.Valid)
		})
	}
}

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        sqlc.Booking
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row decoded", row: bookingRow("confirmed")},
		{name: "error: no rows", returnErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: query failed", returnErr: errors.New("boom"), expectKind: infra.KindDBFailure},
		{name: "error: corrupt status", row: bookingRow("archived"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().GetBookingByID(ctx, mockDB, bookingID).Return(tc.row, tc.returnErr)

			b, err := repo.FindByID(ctx, bookingID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusConfirmed, b.Status())
			assert.Equal(t, 3, b.DurationDays())
			assert.Equal(t, "wave", b.PaymentMethod())
		})
	}
}

func TestBookingRepository_TransitionStatus(t *testing.T) {
	ctx := context.Background()
	at := createdAt.Add(time.Hour)

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: status swapped",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db sqlc.DBTX) {
				m.EXPECT().
					UpdateBookingStatusIfCurrent(ctx, db, sqlc.UpdateBookingStatusIfCurrentParams{
						NewStatus:     "confirmed",
						UpdatedAt:     pgtype.Timestamptz{Time: at, Valid: true},
						ID:            bookingID,
						CurrentStatus: "pending",
					}).
					Return(bookingRow("confirmed"), nil)
			},
		},
		{
			name: "error: another writer got there first",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db sqlc.DBTX) {
				m.EXPECT().UpdateBookingStatusIfCurrent(ctx, db, gomock.Any()).Return(sqlc.Booking{}, pgx.ErrNoRows)
				m.EXPECT().BookingExists(ctx, db, bookingID).Return(true, nil)
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: booking does not exist",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db sqlc.DBTX) {
				m.EXPECT().UpdateBookingStatusIfCurrent(ctx, db, gomock.Any()).Return(sqlc.Booking{}, pgx.ErrNoRows)
				m.EXPECT().BookingExists(ctx, db, bookingID).Return(false, nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: existence check failed",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db sqlc.DBTX) {
				m.EXPECT().UpdateBookingStatusIfCurrent(ctx, db, gomock.Any()).Return(sqlc.Booking{}, pgx.ErrNoRows)
				m.EXPECT().BookingExists(ctx, db, bookingID).Return(false, errors.New("boom"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: update failed",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db sqlc.DBTX) {
				m.EXPECT().UpdateBookingStatusIfCurrent(ctx, db, gomock.Any()).Return(sqlc.Booking{}, context.DeadlineExceeded)
			},
			expectKind: infra.KindUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			b, err := repo.TransitionStatus(ctx, bookingID, booking.StatusPending, booking.StatusConfirmed, at)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusConfirmed, b.Status())
		})
	}
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row removed", affected: 1},
		{name: "error: nothing to remove", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: delete failed", returnErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteBooking(ctx, mockDB, bookingID).Return(tc.affected, tc.returnErr)

			err := repo.Delete(ctx, bookingID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
