package requestlog_test

import (
	"net/http/httptest"
	"testing"

	"static-launcher/core/middleware/rayid"
	"static-launcher/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New()
	app.Use(rayid.New())
	app.Use(requestlog.New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("File not found")
	})
	app.Get("/private", func(c *fiber.Ctx) error {
		return fiber.ErrForbidden
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "boom")
	})
	return app, logs
}

func TestRequestLog(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantLevel zapcore.Level
		wantMsg   string
		status    int
	}{
		{"Served", "/ok", zapcore.InfoLevel, "Request served", 200},
		{"NotFound", "/missing", zapcore.InfoLevel, "Request not found", 404},
		{"NotFoundFavicon", "/favicon.ico", zapcore.InfoLevel, "Request not found", 404},
		{"Rejected", "/private", zapcore.WarnLevel, "Request rejected", 403},
		{"Failed", "/boom", zapcore.ErrorLevel, "Request failed", 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, logs := setupApp(t)

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantMsg, entry.Message)

			fields := entry.ContextMap()
			assert.Equal(t, "GET", fields["method"])
			assert.Equal(t, tt.path, fields["path"])
			assert.EqualValues(t, tt.status, fields["status"])
			assert.Equal(t, resp.Header.Get(rayid.HeaderName), fields["ray_id"])
		})
	}
}
