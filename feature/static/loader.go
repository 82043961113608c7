package static

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new static file feature serving root.
func NewFeature(root http.FileSystem, browse bool, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(root, browse, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
