package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trailyn/transport/internal/pkg/logger"
)

// RequestLogger logs each request with latency and status using the
// structured logger.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			logger.Info("request completed",
				logger.String("method", req.Method),
				logger.String("path", req.URL.Path),
				logger.Int("status", res.Status),
				logger.Duration("latency", time.Since(start)),
				logger.String("remote_ip", c.RealIP()),
			)
			return nil
		}
	}
}

// Recovery converts panics into 500 responses and logs the panic value.
func Recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						logger.Any("panic", r),
						logger.String("path", c.Request().URL.Path),
					)
					c.Error(echo.NewHTTPError(500, "internal server error"))
				}
			}()
			return next(c)
		}
	}
}
