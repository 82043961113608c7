package server

import (
	"static-launcher/core/middleware/rayid"
	"static-launcher/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp creates the Fiber app with the global middleware chain
// (RayID first, then request logging). Features are loaded onto it afterwards.
func NewApp(logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		// The launcher prints its own announcement.
		DisableStartupMessage: true,
		AppName:               "static-launcher",
		// Static lookups need the decoded path ("dual camera.html", not "dual%20camera.html").
		UnescapePath: true,
	})

	app.Use(rayid.New())
	app.Use(requestlog.New(logger))

	return app
}
