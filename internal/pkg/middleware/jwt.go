package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/trailyn/transport/internal/pkg/jwt"
	"github.com/trailyn/transport/internal/pkg/models"
	"github.com/trailyn/transport/internal/utils"
)

// Context keys set by the auth middleware.
const (
	ContextActorID   = "actor_id"
	ContextActorRole = "actor_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. Every core
// operation requires a valid session; the actor identity is placed on the
// request context explicitly rather than read from ambient state.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			actorIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			actorID, err := uuid.Parse(fmt.Sprintf("%v", actorIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set(ContextActorID, actorID)
			c.Set(ContextActorRole, fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// RequireRole restricts a route group to a single actor role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actorRole, _ := c.Get(ContextActorRole).(string)
			if actorRole != role {
				return utils.UnauthorizedResponse(c, "Insufficient role for this operation")
			}
			return next(c)
		}
	}
}

// ActorID returns the authenticated actor id from the Echo context.
func ActorID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextActorID).(uuid.UUID)
	return id, ok
}
