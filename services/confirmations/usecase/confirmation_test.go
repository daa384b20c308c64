package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/models"
	"github.com/trailyn/transport/services/confirmations"
	"github.com/trailyn/transport/services/confirmations/mocks"
	"github.com/trailyn/transport/services/confirmations/usecase"
)

type confirmationFixture struct {
	repo     *mocks.MockConfirmationRepo
	trips    *mocks.MockTripReader
	notifyGW *mocks.MockNotifyGW
	uc       confirmations.ConfirmationUC
}

func newConfirmationFixture(t *testing.T) *confirmationFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &confirmationFixture{
		repo:     mocks.NewMockConfirmationRepo(ctrl),
		trips:    mocks.NewMockTripReader(ctrl),
		notifyGW: mocks.NewMockNotifyGW(ctrl),
	}
	cfg := &models.Config{
		Trips: models.TripsConfig{
			OpenOffsetMinutes:     60,
			CloseOffsetMinutes:    10,
			InteractOffsetMinutes: 30,
		},
	}
	f.uc = usecase.NewConfirmationUC(cfg, f.repo, f.trips, f.notifyGW)
	return f
}

// weeklyTrip departs at 07:30 every day of the week.
func weeklyTrip(state models.TripState) *models.TripOccurrence {
	return &models.TripOccurrence{
		ID:            uuid.New(),
		DriverID:      uuid.New(),
		Recurrence:    models.RecurrenceWeekly,
		WeekdayMask:   0x7F,
		DepartureTime: "07:30",
		State:         state,
		Quota:         models.Quota{MinRiders: 3, MaxRiders: 8},
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func confirmRequest(tripID uuid.UUID) models.ConfirmRequest {
	return models.ConfirmRequest{
		TripID:        tripID,
		RiderID:       uuid.New(),
		GuardianID:    uuid.New(),
		PickupLat:     19.44,
		PickupLng:     -99.14,
		PickupAddress: "Av. Insurgentes 1200",
	}
}

func TestConfirm(t *testing.T) {
	t.Run("window open accepts the confirmation", func(t *testing.T) {
		f := newConfirmationFixture(t)
		trip := weeklyTrip(models.TripStateConfirmationOpen)
		req := confirmRequest(trip.ID)
		now := at(6, 50)

		f.trips.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
		f.repo.EXPECT().CountActive(gomock.Any(), trip.ID, models.ServiceDateOf(now)).Return(2, nil)
		f.repo.EXPECT().InsertIfCapacity(gomock.Any(), gomock.Any(), 8).Return(nil)
		f.notifyGW.EXPECT().PublishConfirmationCreated(gomock.Any(), gomock.Any()).Return(nil)

		rec, err := f.uc.Confirm(context.Background(), req, now)

		require.NoError(t, err)
		assert.Equal(t, models.ConfirmationConfirmed, rec.State)
		assert.Equal(t, req.RiderID, rec.RiderID)
		assert.Equal(t, models.ServiceDateOf(now), rec.ServiceDate)
	})

	t.Run("window open by the clock even though the trip is still scheduled", func(t *testing.T) {
		f := newConfirmationFixture(t)
		trip := weeklyTrip(models.TripStateScheduled)
		req := confirmRequest(trip.ID)
		now := at(6, 45)

		f.trips.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
		f.repo.EXPECT().CountActive(gomock.Any(), trip.ID, models.ServiceDateOf(now)).Return(0, nil)
		f.repo.EXPECT().InsertIfCapacity(gomock.Any(), gomock.Any(), 8).Return(nil)
		f.notifyGW.EXPECT().PublishConfirmationCreated(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.uc.Confirm(context.Background(), req, now)

		assert.NoError(t, err)
	})

	t.Run("too early", func(t *testing.T) {
		f := newConfirmationFixture(t)
		trip := weeklyTrip(models.TripStateScheduled)
		req := confirmRequest(trip.ID)
		now := at(6, 0)

		f.trips.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
		f.repo.EXPECT().CountActive(gomock.Any(), trip.ID, models.ServiceDateOf(now)).Return(0, nil)

		_, err := f.uc.Confirm(context.Background(), req, now)

		assert.True(t, apperrors.IsKind(err, apperrors.KindWindowNotOpen))
		assert.Equal(t, 30, apperrors.DetailOf(err)["minutes_to_open"])
	})

	t.Run("window expired", func(t *testing.T) {
		f := newConfirmationFixture(t)
		trip := weeklyTrip(models.TripStateConfirmationOpen)
		req := confirmRequest(trip.ID)
		now := at(7, 25)

		f.trips.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
		f.repo.EXPECT().CountActive(gomock.Any(), trip.ID, models.ServiceDateOf(now)).Return(2, nil)

		_, err := f.uc.Confirm(context.Background(), req, now)

		assert.True(t, apperrors.IsKind(err, apperrors.KindExpired))
	})

	t.Run("trip past confirmation accepts nothing", func(t *testing.T) {
		f := newConfirmationFixture(t)
		trip := weeklyTrip(models.TripStateInProgress)
		req := confirmRequest(trip.ID)
		now := at(7, 45)

		f.trips.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
		f.repo.EXPECT().CountActive(gomock.Any(), trip.ID, models.ServiceDateOf(now)).Return(5, nil)

		_, err := f.uc.Confirm(context.Background(), req, now)

		assert.True(t, apperrors.IsKind(err, apperrors.KindWindowClosed))
	})

	t.Run("duplicate rider", func(t *testing.T) {
		f := newConfirmationFixture(t)
		trip := weeklyTrip(models.TripStateConfirmationOpen)
		req := confirmRequest(trip.ID)
		now := at(6, 50)
		dup := apperrors.New(apperrors.KindDuplicateConfirmation, "rider is already confirmed for this trip today")

		f.trips.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
		f.repo.EXPECT().CountActive(gomock.Any(), trip.ID, models.ServiceDateOf(now)).Return(2, nil)
		f.repo.EXPECT().InsertIfCapacity(gomock.Any(), gomock.Any(), 8).Return(dup)

		_, err := f.uc.Confirm(context.Background(), req, now)

		assert.True(t, apperrors.IsKind(err, apperrors.KindDuplicateConfirmation))
	})
}

func TestCancelConfirmation(t *testing.T) {
	now := at(6, 55)

	record := func(trip *models.TripOccurrence) *models.ConfirmationRecord {
		return &models.ConfirmationRecord{
			ID:          uuid.New(),
			TripID:      trip.ID,
			ServiceDate: models.ServiceDateOf(now),
			RiderID:     uuid.New(),
			GuardianID:  uuid.New(),
			State:       models.ConfirmationConfirmed,
		}
	}

	t.Run("guardian cancels their own confirmation", func(t *testing.T) {
		f := newConfirmationFixture(t)
		trip := weeklyTrip(models.TripStateConfirmationOpen)
		rec := record(trip)

		f.repo.EXPECT().GetConfirmation(gomock.Any(), rec.ID).Return(rec, nil)
		f.trips.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
		f.repo.EXPECT().CancelConfirmation(gomock.Any(), rec.ID, now).Return(nil)
		f.notifyGW.EXPECT().PublishConfirmationCancelled(gomock.Any(), gomock.Any()).Return(nil)

		err := f.uc.CancelConfirmation(context.Background(), rec.ID, rec.GuardianID, "guardian", now)

		assert.NoError(t, err)
	})

	t.Run("another guardian may not cancel it", func(t *testing.T) {
		f := newConfirmationFixture(t)
		trip := weeklyTrip(models.TripStateConfirmationOpen)
		rec := record(trip)

		f.repo.EXPECT().GetConfirmation(gomock.Any(), rec.ID).Return(rec, nil)

		err := f.uc.CancelConfirmation(context.Background(), rec.ID, uuid.New(), "guardian", now)

		assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthenticated))
	})

	t.Run("dispatch may cancel any confirmation", func(t *testing.T) {
		f := newConfirmationFixture(t)
		trip := weeklyTrip(models.TripStateConfirmationOpen)
		rec := record(trip)

		f.repo.EXPECT().GetConfirmation(gomock.Any(), rec.ID).Return(rec, nil)
		f.trips.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
		f.repo.EXPECT().CancelConfirmation(gomock.Any(), rec.ID, now).Return(nil)
		f.notifyGW.EXPECT().PublishConfirmationCancelled(gomock.Any(), gomock.Any()).Return(nil)

		err := f.uc.CancelConfirmation(context.Background(), rec.ID, uuid.New(), "dispatch", now)

		assert.NoError(t, err)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		f := newConfirmationFixture(t)
		trip := weeklyTrip(models.TripStateConfirmationOpen)
		rec := record(trip)
		rec.State = models.ConfirmationCancelled

		f.repo.EXPECT().GetConfirmation(gomock.Any(), rec.ID).Return(rec, nil)

		err := f.uc.CancelConfirmation(context.Background(), rec.ID, rec.GuardianID, "guardian", now)

		assert.NoError(t, err)
	})

	t.Run("ledger frozen once route generation begins", func(t *testing.T) {
		for _, state := range []models.TripState{
			models.TripStateRouteGenerating,
			models.TripStateRouteReady,
			models.TripStateInProgress,
			models.TripStateCompleted,
		} {
			t.Run(string(state), func(t *testing.T) {
				f := newConfirmationFixture(t)
				trip := weeklyTrip(state)
				rec := record(trip)

				f.repo.EXPECT().GetConfirmation(gomock.Any(), rec.ID).Return(rec, nil)
				f.trips.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

				err := f.uc.CancelConfirmation(context.Background(), rec.ID, rec.GuardianID, "guardian", now)

				assert.True(t, apperrors.IsKind(err, apperrors.KindAlreadyFrozen))
				assert.Equal(t, string(state), apperrors.DetailOf(err)["trip_state"])
			})
		}
	})
}

// capacityRepo is an in-memory ConfirmationRepo whose conditional insert is
// atomic, mirroring the single-statement insert the real repository runs.
type capacityRepo struct {
	mu      sync.Mutex
	records []*models.ConfirmationRecord
}

func (r *capacityRepo) InsertIfCapacity(ctx context.Context, rec *models.ConfirmationRecord, maxRiders int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	active := 0
	for _, existing := range r.records {
		if existing.TripID == rec.TripID && existing.ServiceDate.Equal(rec.ServiceDate) && existing.Active() {
			if existing.RiderID == rec.RiderID {
				return apperrors.New(apperrors.KindDuplicateConfirmation, "rider is already confirmed for this trip today")
			}
			active++
		}
	}
	if active >= maxRiders {
		return apperrors.Newf(apperrors.KindCapacityExceeded, "trip is full at %d riders", maxRiders)
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *capacityRepo) GetConfirmation(ctx context.Context, id uuid.UUID) (*models.ConfirmationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, apperrors.New(apperrors.KindNotFound, "confirmation not found")
}

func (r *capacityRepo) CancelConfirmation(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			rec.State = models.ConfirmationCancelled
			rec.CancelledAt = &at
		}
	}
	return nil
}

func (r *capacityRepo) CountActive(ctx context.Context, tripID uuid.UUID, day time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.records {
		if rec.TripID == tripID && rec.ServiceDate.Equal(day) && rec.Active() {
			n++
		}
	}
	return n, nil
}

func (r *capacityRepo) ListActivePickups(ctx context.Context, tripID uuid.UUID, day time.Time) ([]models.RoutePickup, error) {
	return nil, nil
}

func (r *capacityRepo) ListByGuardian(ctx context.Context, guardianID uuid.UUID, day time.Time) ([]models.ConfirmationRecord, error) {
	return nil, nil
}

func TestConfirmCapacityUnderContention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trip := weeklyTrip(models.TripStateConfirmationOpen)
	trip.Quota = models.Quota{MinRiders: 3, MaxRiders: 5}
	now := at(6, 50)

	tripReader := mocks.NewMockTripReader(ctrl)
	tripReader.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil).AnyTimes()
	notifyGW := mocks.NewMockNotifyGW(ctrl)
	notifyGW.EXPECT().PublishConfirmationCreated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo := &capacityRepo{}
	cfg := &models.Config{
		Trips: models.TripsConfig{
			OpenOffsetMinutes:     60,
			CloseOffsetMinutes:    10,
			InteractOffsetMinutes: 30,
		},
	}
	uc := usecase.NewConfirmationUC(cfg, repo, tripReader, notifyGW)

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Confirm(context.Background(), confirmRequest(trip.ID), now)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case apperrors.IsKind(err, apperrors.KindCapacityExceeded):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, attempts-5, rejected)

	count, err := repo.CountActive(context.Background(), trip.ID, models.ServiceDateOf(now))
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
