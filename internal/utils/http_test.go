package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailyn/transport/internal/pkg/apperrors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	err := SuccessResponse(c, http.StatusCreated, "Resource created", map[string]string{"id": "123"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Resource created", resp.Message)
}

func TestDomainErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "unauthenticated",
			err:        apperrors.New(apperrors.KindUnauthenticated, "no session"),
			wantStatus: http.StatusUnauthorized,
			wantKind:   "unauthenticated",
		},
		{
			name:       "not found",
			err:        apperrors.New(apperrors.KindNotFound, "trip not found"),
			wantStatus: http.StatusNotFound,
			wantKind:   "not_found",
		},
		{
			name:       "invalid transition",
			err:        apperrors.New(apperrors.KindInvalidTransition, "trip is confirmed, not confirmation_open"),
			wantStatus: http.StatusConflict,
			wantKind:   "invalid_transition",
		},
		{
			name:       "duplicate confirmation",
			err:        apperrors.New(apperrors.KindDuplicateConfirmation, "rider already confirmed"),
			wantStatus: http.StatusConflict,
			wantKind:   "duplicate_confirmation",
		},
		{
			name:       "quota not met",
			err:        apperrors.New(apperrors.KindQuotaNotMet, "need 1 more confirmation(s)"),
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   "quota_not_met",
		},
		{
			name:       "too far from stop",
			err:        apperrors.New(apperrors.KindTooFarFromStop, "driver is not at the stop"),
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   "too_far_from_stop",
		},
		{
			name:       "routing failed",
			err:        apperrors.New(apperrors.KindRoutingFailed, "routing engine failed"),
			wantStatus: http.StatusServiceUnavailable,
			wantKind:   "routing_failed",
		},
		{
			name:       "location unavailable",
			err:        apperrors.New(apperrors.KindLocationUnavailable, "no fresh fix"),
			wantStatus: http.StatusServiceUnavailable,
			wantKind:   "location_unavailable",
		},
		{
			name:       "commit unavailable",
			err:        apperrors.New(apperrors.KindCommitUnavailable, "stop completion could not be committed"),
			wantStatus: http.StatusServiceUnavailable,
			wantKind:   "commit_unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := DomainErrorResponse(c, tt.err)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantKind, resp.ErrorKind)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestDomainErrorResponseDetail(t *testing.T) {
	c, rec := newContext()
	err := apperrors.New(apperrors.KindTooFarFromStop, "driver is not at the stop").
		WithDetail("distance_meters", 412.7)

	require.NoError(t, DomainErrorResponse(c, err))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 412.7, resp.Detail["distance_meters"], 1e-9)
}

func TestDomainErrorResponseUnexpected(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, DomainErrorResponse(c, errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.ErrorKind)
}

func TestUnauthorizedResponseDefaultMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, UnauthorizedResponse(c, ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}
