package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/trailyn/transport/internal/pkg/jwt"
	"github.com/trailyn/transport/internal/pkg/models"
)

func testJWTConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "trailyn-test",
		},
	}
}

func runAuth(t *testing.T, authHeader string, cfg models.JWTConfig) (echo.Context, *httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		request.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	handler := JWTAuthMiddleware(cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, recorder, handler(c)
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := testJWTConfig()
	driverID := uuid.New()

	t.Run("valid token sets actor identity", func(t *testing.T) {
		token, _, err := jwtpkg.GenerateToken(driverID, "driver", cfg)
		require.NoError(t, err)

		c, rec, err := runAuth(t, "Bearer "+token, cfg.JWT)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		gotID, ok := ActorID(c)
		require.True(t, ok)
		assert.Equal(t, driverID, gotID)
		assert.Equal(t, "driver", c.Get(ContextActorRole))
	})

	t.Run("missing header", func(t *testing.T) {
		_, rec, err := runAuth(t, "", cfg.JWT)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		_, rec, err := runAuth(t, "Token abc", cfg.JWT)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		otherCfg := testJWTConfig()
		otherCfg.JWT.Secret = "other-secret"
		token, _, err := jwtpkg.GenerateToken(driverID, "driver", otherCfg)
		require.NoError(t, err)

		_, rec, err := runAuth(t, "Bearer "+token, cfg.JWT)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	run := func(role string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()
		c := e.NewContext(request, recorder)
		if role != "" {
			c.Set(ContextActorRole, role)
		}

		handler := RequireRole("driver")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		return recorder
	}

	assert.Equal(t, http.StatusOK, run("driver").Code)
	assert.Equal(t, http.StatusUnauthorized, run("guardian").Code)
	assert.Equal(t, http.StatusUnauthorized, run("").Code)
}
