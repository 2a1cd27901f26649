package middleware

import (
	"time"

	"slotbook/core/logger"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Middleware bundles the HTTP middleware handed to module routers.
type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// RequestLogger logs one line per request with method, path, status and latency.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			logger.Info("http request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

func (m *Middleware) Recover() echo.MiddlewareFunc {
	return echomw.Recover()
}

func (m *Middleware) CORS() echo.MiddlewareFunc {
	return echomw.CORS()
}
