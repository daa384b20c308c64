package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/trailyn/transport/internal/pkg/apperrors"
	"github.com/trailyn/transport/internal/pkg/middleware"
	"github.com/trailyn/transport/internal/pkg/models"
	"github.com/trailyn/transport/services/trips/mocks"
)

func newTestContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var request *http.Request
	if body != nil {
		payload, _ := json.Marshal(body)
		request = httptest.NewRequest(method, path, bytes.NewBuffer(payload))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		request = httptest.NewRequest(method, path, nil)
	}
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestCreateTripHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	t.Run("valid payload", func(t *testing.T) {
		driverID := uuid.New()
		schoolID := uuid.New()
		body := map[string]interface{}{
			"driver_id":      driverID.String(),
			"school_id":      schoolID.String(),
			"name":           "Morning run",
			"kind":           "outbound",
			"shift":          "morning",
			"recurrence":     "weekly",
			"weekday_mask":   62,
			"departure_time": "07:30",
			"min_riders":     3,
			"max_riders":     8,
		}

		mockUC.EXPECT().
			CreateTrip(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, trip *models.TripOccurrence) (*models.TripOccurrence, error) {
				assert.Equal(t, driverID, trip.DriverID)
				assert.Equal(t, models.RecurrenceWeekly, trip.Recurrence)
				assert.Equal(t, uint8(62), trip.WeekdayMask)
				trip.ID = uuid.New()
				trip.State = models.TripStatePending
				return trip, nil
			})

		c, rec := newTestContext(http.MethodPost, "/v1/dispatch/trips", body)
		err := handler.CreateTrip(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("bad driver id", func(t *testing.T) {
		body := map[string]interface{}{
			"driver_id":      "nope",
			"school_id":      uuid.NewString(),
			"departure_time": "07:30",
		}

		c, rec := newTestContext(http.MethodPost, "/v1/dispatch/trips", body)
		err := handler.CreateTrip(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("inverted quota", func(t *testing.T) {
		body := map[string]interface{}{
			"driver_id":      uuid.NewString(),
			"school_id":      uuid.NewString(),
			"departure_time": "07:30",
			"min_riders":     5,
			"max_riders":     2,
		}

		c, rec := newTestContext(http.MethodPost, "/v1/dispatch/trips", body)
		err := handler.CreateTrip(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCloseConfirmationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	tripID := uuid.New()
	driverID := uuid.New()

	t.Run("quota not met maps to 422 with detail", func(t *testing.T) {
		quotaErr := apperrors.New(apperrors.KindQuotaNotMet, "need 1 more confirmation(s) to close").
			WithDetail("shortfall", 1)
		mockUC.EXPECT().
			CloseConfirmations(gomock.Any(), tripID, driverID, gomock.Any()).
			Return(nil, quotaErr)

		c, rec := newTestContext(http.MethodPost, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())
		c.Set(middleware.ContextActorID, driverID)

		err := handler.CloseConfirmations(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp struct {
			ErrorKind string                 `json:"error_kind"`
			Detail    map[string]interface{} `json:"detail"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "quota_not_met", resp.ErrorKind)
		assert.EqualValues(t, 1, resp.Detail["shortfall"])
	})

	t.Run("success", func(t *testing.T) {
		trip := &models.TripOccurrence{ID: tripID, DriverID: driverID, State: models.TripStateConfirmed}
		mockUC.EXPECT().
			CloseConfirmations(gomock.Any(), tripID, driverID, gomock.Any()).
			Return(trip, nil)

		c, rec := newTestContext(http.MethodPost, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())
		c.Set(middleware.ContextActorID, driverID)

		err := handler.CloseConfirmations(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing actor", func(t *testing.T) {
		c, rec := newTestContext(http.MethodPost, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())

		err := handler.CloseConfirmations(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed trip id", func(t *testing.T) {
		c, rec := newTestContext(http.MethodPost, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		err := handler.CloseConfirmations(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCompleteTripHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	tripID := uuid.New()
	actorID := uuid.New()

	t.Run("force flag and actor role are forwarded", func(t *testing.T) {
		mockUC.EXPECT().
			CompleteTrip(gomock.Any(), tripID, actorID, "dispatch", true).
			Return(nil)

		c, rec := newTestContext(http.MethodPost, "/", map[string]interface{}{"force": true})
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())
		c.Set(middleware.ContextActorID, actorID)
		c.Set(middleware.ContextActorRole, "dispatch")

		err := handler.CompleteTrip(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty body defaults force to false", func(t *testing.T) {
		mockUC.EXPECT().
			CompleteTrip(gomock.Any(), tripID, actorID, "driver", false).
			Return(nil)

		c, rec := newTestContext(http.MethodPost, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())
		c.Set(middleware.ContextActorID, actorID)
		c.Set(middleware.ContextActorRole, "driver")

		err := handler.CompleteTrip(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("driver force on a stranger's trip maps to 401", func(t *testing.T) {
		denied := apperrors.New(apperrors.KindUnauthenticated, "trip is not assigned to this driver")
		mockUC.EXPECT().
			CompleteTrip(gomock.Any(), tripID, actorID, "driver", true).
			Return(denied)

		c, rec := newTestContext(http.MethodPost, "/", map[string]interface{}{"force": true})
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())
		c.Set(middleware.ContextActorID, actorID)
		c.Set(middleware.ContextActorRole, "driver")

		err := handler.CompleteTrip(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("pending stops map to 409", func(t *testing.T) {
		blocked := apperrors.New(apperrors.KindInvalidTransition, "2 stop(s) still pending")
		mockUC.EXPECT().
			CompleteTrip(gomock.Any(), tripID, actorID, "driver", false).
			Return(blocked)

		c, rec := newTestContext(http.MethodPost, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())
		c.Set(middleware.ContextActorID, actorID)
		c.Set(middleware.ContextActorRole, "driver")

		err := handler.CompleteTrip(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCancelHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)
	tripID := uuid.New()

	t.Run("reason is required", func(t *testing.T) {
		c, rec := newTestContext(http.MethodPost, "/", map[string]interface{}{})
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())

		err := handler.Cancel(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cancel with reason", func(t *testing.T) {
		mockUC.EXPECT().
			Cancel(gomock.Any(), tripID, "vehicle breakdown").
			Return(nil)

		c, rec := newTestContext(http.MethodPost, "/", map[string]interface{}{"reason": "vehicle breakdown"})
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())

		err := handler.Cancel(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestListForDriverHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)
	driverID := uuid.New()

	view := &models.DriverTripsView{
		CurrentDate: "2026-03-02",
		WeekdayName: "Monday",
		Today:       []models.TripView{},
		Other:       []models.TripView{},
	}
	mockUC.EXPECT().
		ListForDriver(gomock.Any(), driverID, gomock.Any()).
		Return(view, nil)

	c, rec := newTestContext(http.MethodGet, "/v1/driver/trips", nil)
	c.Set(middleware.ContextActorID, driverID)

	err := handler.ListForDriver(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2026-03-02")
}

func TestGetTripHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)
	tripID := uuid.New()

	t.Run("not found maps to 404", func(t *testing.T) {
		mockUC.EXPECT().
			GetTrip(gomock.Any(), tripID, gomock.Any()).
			Return(nil, apperrors.Newf(apperrors.KindNotFound, "trip %s not found", tripID))

		c, rec := newTestContext(http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())

		err := handler.GetTrip(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("found", func(t *testing.T) {
		view := &models.TripView{EffectiveState: models.EffectiveConfirmationOpen}
		mockUC.EXPECT().
			GetTrip(gomock.Any(), tripID, gomock.Any()).
			Return(view, nil)

		c, rec := newTestContext(http.MethodGet, "/", nil)
		c.SetParamNames("id")
		c.SetParamValues(tripID.String())

		err := handler.GetTrip(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "confirmation_open")
	})
}
