package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestReadyEndpoint(t *testing.T) {
	get := func(e *echo.Echo, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("all checks pass", func(t *testing.T) {
		e := echo.New()
		RegisterHealthEndpoints(e, "trips",
			Check{Name: "postgres", Ping: func(ctx context.Context) error { return nil }},
			Check{Name: "redis", Ping: func(ctx context.Context) error { return nil }},
		)

		assert.Equal(t, http.StatusOK, get(e, "/ready").Code)
	})

	t.Run("failing check names the dependency", func(t *testing.T) {
		e := echo.New()
		RegisterHealthEndpoints(e, "trips",
			Check{Name: "postgres", Ping: func(ctx context.Context) error { return nil }},
			Check{Name: "redis", Ping: func(ctx context.Context) error { return errors.New("connection refused") }},
		)

		rec := get(e, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "redis")
	})

	t.Run("liveness stays up without checks", func(t *testing.T) {
		e := echo.New()
		RegisterHealthEndpoints(e, "trips")

		assert.Equal(t, http.StatusOK, get(e, "/health").Code)
		assert.Equal(t, http.StatusOK, get(e, "/healthz").Code)
		assert.Equal(t, http.StatusOK, get(e, "/ready").Code)
	})
}
