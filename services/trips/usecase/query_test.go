package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/models"
)

func TestGetTrip(t *testing.T) {
	now := at(6, 50)

	t.Run("annotates with effective state and route", func(t *testing.T) {
		f := newTripFixture(t, testConfig())
		trip := weeklyTrip(models.TripStateConfirmationOpen)
		route := &models.Route{ID: uuid.New(), TripID: trip.ID}

		f.repo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
		f.repo.EXPECT().GetRouteByTrip(gomock.Any(), trip.ID).Return(route, nil)
		f.ledger.EXPECT().CountActive(gomock.Any(), trip.ID, models.ServiceDateOf(now)).Return(3, nil)

		view, err := f.uc.GetTrip(context.Background(), trip.ID, now)

		require.NoError(t, err)
		assert.Equal(t, models.EffectiveInteractable, view.EffectiveState)
		require.NotNil(t, view.Trip.Route)
		assert.Equal(t, route.ID, view.Trip.Route.ID)
	})

	t.Run("unknown trip", func(t *testing.T) {
		f := newTripFixture(t, testConfig())
		id := uuid.New()
		f.repo.EXPECT().GetTrip(gomock.Any(), id).Return(nil, apperrors.New(apperrors.KindNotFound, "trip not found"))

		_, err := f.uc.GetTrip(context.Background(), id, now)

		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestListForDriver(t *testing.T) {
	driverID := uuid.New()
	now := at(6, 50)

	t.Run("partitions trips by calendar day", func(t *testing.T) {
		f := newTripFixture(t, testConfig())

		today := *weeklyTrip(models.TripStateScheduled)
		today.DriverID = driverID

		tomorrow := *weeklyTrip(models.TripStateScheduled)
		tomorrow.DriverID = driverID
		tomorrow.Recurrence = models.RecurrenceSingle
		tomorrow.WeekdayMask = 0
		tripDate := models.ServiceDateOf(now.AddDate(0, 0, 1))
		tomorrow.TripDate = &tripDate

		f.repo.EXPECT().ListByDriver(gomock.Any(), driverID).Return([]models.TripOccurrence{today, tomorrow}, nil)
		f.ledger.EXPECT().CountActive(gomock.Any(), today.ID, models.ServiceDateOf(now)).Return(0, nil)

		view, err := f.uc.ListForDriver(context.Background(), driverID, now)

		require.NoError(t, err)
		assert.Equal(t, 2, view.Total)
		assert.Equal(t, "2026-03-02", view.CurrentDate)
		assert.Equal(t, int(time.Monday), view.Weekday)
		assert.Equal(t, "Monday", view.WeekdayName)
		require.Len(t, view.Today, 1)
		require.Len(t, view.Other, 1)
		assert.Equal(t, models.EffectiveConfirmationOpen, view.Today[0].EffectiveState)
		assert.Equal(t, models.EffectiveNotToday, view.Other[0].EffectiveState)
	})

	t.Run("ledger failure degrades to a zero count", func(t *testing.T) {
		f := newTripFixture(t, testConfig())

		trip := *weeklyTrip(models.TripStateConfirmationOpen)
		trip.DriverID = driverID

		f.repo.EXPECT().ListByDriver(gomock.Any(), driverID).Return([]models.TripOccurrence{trip}, nil)
		f.ledger.EXPECT().CountActive(gomock.Any(), trip.ID, models.ServiceDateOf(now)).Return(0, assert.AnError)

		view, err := f.uc.ListForDriver(context.Background(), driverID, now)

		require.NoError(t, err)
		require.Len(t, view.Today, 1)
		require.NotNil(t, view.Today[0].Detail.Shortfall)
		assert.Equal(t, 3, *view.Today[0].Detail.Shortfall)
	})

	t.Run("empty list", func(t *testing.T) {
		f := newTripFixture(t, testConfig())
		f.repo.EXPECT().ListByDriver(gomock.Any(), driverID).Return(nil, nil)

		view, err := f.uc.ListForDriver(context.Background(), driverID, now)

		require.NoError(t, err)
		assert.Equal(t, 0, view.Total)
		assert.Empty(t, view.Today)
		assert.Empty(t, view.Other)
	})
}
