//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	"dakar-rentals/internal/infra"
	queriesmock "dakar-rentals/internal/mock/queries"
	"dakar-rentals/internal/pkg/errs"
	"dakar-rentals/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name        string
		storeView   *queries.BookingView
		storeErr    error
		expectedErr error
	}{
		{name: "success", storeView: &queries.BookingView{ID: id, Status: "pending"}},
		{name: "not found", storeErr: infra.WrapRepoErr("booking not found", nil, infra.KindNotFound), expectedErr: errs.ErrNotFound},
		{name: "unavailable", storeErr: infra.WrapRepoErr("find", errors.New("dial tcp"), infra.KindUnavailable), expectedErr: errs.ErrStoreUnavailable},
		{name: "db failure", storeErr: infra.WrapRepoErr("find", errors.New("syntax"), infra.KindDBFailure), expectedErr: errs.ErrDatabaseOperationFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			store.EXPECT().FindByID(ctx, id).Return(tc.storeView, tc.storeErr)

			view, err := queries.NewBookingQueries(store).GetByID(ctx, id)

			if tc.expectedErr != nil {
				assert.True(t, errs.Is(err, tc.expectedErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.storeView, view)
		})
	}
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()
	pending := booking.StatusPending
	filter := queries.BookingFilter{Status: &pending, Search: "diallo"}

	t.Run("passes the filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		expected := []*queries.BookingView{{ID: uuid.New(), UserName: "Awa Diallo", Status: "pending"}}
		store.EXPECT().List(ctx, filter).Return(expected, nil)

		views, err := queries.NewBookingQueries(store).List(ctx, filter)

		require.NoError(t, err)
		assert.Equal(t, expected, views)
	})

	t.Run("empty result is a non-nil slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().List(ctx, gomock.Any()).Return(nil, nil)

		views, err := queries.NewBookingQueries(store).List(ctx, queries.BookingFilter{})

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestBookingFilter_Matches(t *testing.T) {
	pending := booking.StatusPending
	confirmed := booking.StatusConfirmed
	car := inventory.ItemTypeCar

	view := &queries.BookingView{
		Type:      "car",
		Status:    "pending",
		UserName:  "Awa DIALLO",
		UserEmail: "awa@example.sn",
		UserPhone: "+221 77 123 45 67",
	}

	testCases := []struct {
		name     string
		filter   queries.BookingFilter
		expected bool
	}{
		{name: "empty filter", filter: queries.BookingFilter{}, expected: true},
		{name: "status and search", filter: queries.BookingFilter{Status: &pending, Search: "diallo"}, expected: true},
		{name: "status mismatch", filter: queries.BookingFilter{Status: &confirmed, Search: "diallo"}, expected: false},
		{name: "type matches", filter: queries.BookingFilter{Type: &car}, expected: true},
		{name: "search on email", filter: queries.BookingFilter{Search: "EXAMPLE.SN"}, expected: true},
		{name: "search on phone", filter: queries.BookingFilter{Search: "123 45"}, expected: true},
		{name: "search trims blanks", filter: queries.BookingFilter{Search: "   "}, expected: true},
		{name: "search miss", filter: queries.BookingFilter{Search: "ndiaye"}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.filter.Matches(view))
		})
	}
}

func TestNewBookingView(t *testing.T) {
	created := time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	total, err := booking.NewMoney(75000)
	require.NoError(t, err)
	note := "arrive late"
	id, entityID := uuid.New(), uuid.New()

	b := booking.ReconstructBooking(
		id, inventory.ItemTypeCar, entityID,
		booking.NewContact("Awa Diallo", "awa@example.sn", "+221770000000"),
		booking.NewDateRange(start, start.AddDate(0, 0, 3)),
		total, booking.StatusConfirmed, "wave", booking.NewNote(&note), created, created,
	)

	expected := &queries.BookingView{
		ID:            id,
		Type:          "car",
		EntityID:      entityID,
		UserName:      "Awa Diallo",
		UserEmail:     "awa@example.sn",
		UserPhone:     "+221770000000",
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 3),
		DurationDays:  3,
		TotalAmount:   75000,
		Status:        "confirmed",
		PaymentMethod: "wave",
		Notes:         &note,
		CreatedAt:     created,
		UpdatedAt:     created,
	}

	if diff := cmp.Diff(expected, queries.NewBookingView(b)); diff != "" {
		t.Errorf("NewBookingView mismatch (-want +got):\n%s", diff)
	}
}
