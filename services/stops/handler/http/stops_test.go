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
	"github.com/trailyn/transport/services/stops/mocks"
)

func newCompleteStopContext(body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var request *http.Request
	if body != nil {
		payload, _ := json.Marshal(body)
		request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(payload))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		request = httptest.NewRequest(http.MethodPost, "/", nil)
	}
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestCompleteStopHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockStopUC(ctrl)
	handler := NewStopsHandler(mockUC)

	driverID := uuid.New()
	tripID := uuid.New()
	stopID := uuid.New()
	confirmationID := uuid.New()
	code := "TRL1." + confirmationID.String()

	setParams := func(c echo.Context) {
		c.SetParamNames("id", "stopId")
		c.SetParamValues(tripID.String(), stopID.String())
		c.Set(middleware.ContextActorID, driverID)
	}

	t.Run("success", func(t *testing.T) {
		mockUC.EXPECT().
			CompleteStop(gomock.Any(), driverID, tripID, stopID, code).
			Return(&models.NextStopInfo{NextIndex: 1, RemainingStops: 1}, nil)

		c, rec := newCompleteStopContext(map[string]interface{}{"code": code})
		setParams(c)

		err := handler.CompleteStop(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"remaining_stops":1`)
	})

	t.Run("missing code", func(t *testing.T) {
		c, rec := newCompleteStopContext(map[string]interface{}{})
		setParams(c)

		err := handler.CompleteStop(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing actor", func(t *testing.T) {
		c, rec := newCompleteStopContext(map[string]interface{}{"code": code})
		c.SetParamNames("id", "stopId")
		c.SetParamValues(tripID.String(), stopID.String())

		err := handler.CompleteStop(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed stop id", func(t *testing.T) {
		c, rec := newCompleteStopContext(map[string]interface{}{"code": code})
		c.SetParamNames("id", "stopId")
		c.SetParamValues(tripID.String(), "not-a-uuid")
		c.Set(middleware.ContextActorID, driverID)

		err := handler.CompleteStop(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("too far maps to 422 with distance", func(t *testing.T) {
		tooFar := apperrors.New(apperrors.KindTooFarFromStop, "driver is not at the stop").
			WithDetail("distance_meters", 412.7)
		mockUC.EXPECT().
			CompleteStop(gomock.Any(), driverID, tripID, stopID, code).
			Return(nil, tooFar)

		c, rec := newCompleteStopContext(map[string]interface{}{"code": code})
		setParams(c)

		err := handler.CompleteStop(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "distance_meters")
	})

	t.Run("commit rejected maps to 409", func(t *testing.T) {
		mockUC.EXPECT().
			CompleteStop(gomock.Any(), driverID, tripID, stopID, code).
			Return(nil, apperrors.New(apperrors.KindCommitRejected, "stop is no longer pending"))

		c, rec := newCompleteStopContext(map[string]interface{}{"code": code})
		setParams(c)

		err := handler.CompleteStop(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid code maps to 422", func(t *testing.T) {
		mockUC.EXPECT().
			CompleteStop(gomock.Any(), driverID, tripID, stopID, "garbage").
			Return(nil, apperrors.New(apperrors.KindInvalidCode, "scanned code does not match this stop"))

		c, rec := newCompleteStopContext(map[string]interface{}{"code": "garbage"})
		setParams(c)

		err := handler.CompleteStop(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
