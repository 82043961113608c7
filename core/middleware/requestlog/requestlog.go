package requestlog

import (
	"errors"
	"time"

	"static-launcher/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New creates the request logging middleware.
// It must be registered after the RayID middleware so entries carry the ray_id field.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqLogger := logger.WithRayID(l, c)

		err := c.Next()

		// The error handler has not run yet, so derive the status it will write.
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.String("ip", c.IP()),
			zap.Duration("latency", time.Since(start)),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			reqLogger.Error("Request failed", append(fields, zap.Error(err))...)
		case status == fiber.StatusNotFound:
			// Browsers routinely ask for favicon.ico and the like.
			reqLogger.Info("Request not found", fields...)
		case status >= fiber.StatusBadRequest:
			reqLogger.Warn("Request rejected", fields...)
		default:
			reqLogger.Info("Request served", fields...)
		}
		return err
	}
}
