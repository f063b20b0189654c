package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var excludedLogs = []string{
	"/api/health",
	"/metrics",
}

// Logger logs every request with zap, picking the level from the response
// status. Health and metrics probes are excluded to keep the log readable.
func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(excludedLogs, c.Path()) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			res := c.Response()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("url_path", req.URL.String()),
				zap.Int("status", res.Status),
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				zap.Duration("latency", latency),
			}

			message := fmt.Sprintf("%v %v %v %v", res.Status, req.Method, req.URL.String(), latency)

			switch {
			case res.Status >= 500:
				m.log.Error(message, fields...)
			case res.Status >= 400:
				m.log.Warn(message, fields...)
			default:
				m.log.Info(message, fields...)
			}

			return nil
		}
	}
}
