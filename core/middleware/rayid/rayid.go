package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the request and response header carrying the RayID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the Fiber locals key the RayID is stored under.
	LocalsKey = "ray_id"
)

// New creates the RayID middleware.
// An incoming X-Ray-ID header is reused, otherwise a new UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}

// FromCtx returns the RayID stored on the context, or "" if none.
func FromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsKey).(string); ok {
		return id
	}
	return ""
}
