package static

import (
	"fmt"
	"net/http"

	"static-launcher/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// IndexFile is served in place of a directory listing when present.
const IndexFile = "/index.html"

// Handler serves files from the serving root.
type Handler struct {
	root   http.FileSystem
	browse bool
	logger *zap.Logger
}

// NewHandler creates a new static file handler over root.
func NewHandler(root http.FileSystem, browse bool, logger *zap.Logger) *Handler {
	return &Handler{root: root, browse: browse, logger: logger}
}

// RegisterRoutes mounts the file server on every path of app.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(filesystem.New(filesystem.Config{
		Root:   h.root,
		Browse: h.browse,
		Index:  IndexFile,
	}))
	app.All("/*", h.HandleFallback)
}

// HandleFallback answers requests the file server passed on: unknown paths for
// GET and HEAD, and every other method.
func (h *Handler) HandleFallback(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	switch c.Method() {
	case fiber.MethodGet, fiber.MethodHead:
		l.Debug("File not found", zap.String("path", c.Path()))
		return c.Status(fiber.StatusNotFound).SendString("File not found")
	default:
		l.Debug("Unsupported method", zap.String("method", c.Method()), zap.String("path", c.Path()))
		return c.Status(fiber.StatusNotImplemented).
			SendString(fmt.Sprintf("Unsupported method ('%s')", c.Method()))
	}
}
