package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	// AllowedSuffix admits any origin ending with this suffix, so the
	// production frontend and its preview deploys share one setting
	// (e.g. ".agromart.lk" covers app.agromart.lk and staging.agromart.lk).
	AllowedSuffix string
	// DevPassword lets an otherwise-blocked origin through when the request
	// carries the matching dev-password header.
	DevPassword string
}

// CORS admits same-origin traffic, localhost preflights, origins matching the
// configured suffix, and dev-password requests. Everything else gets a 403 in
// the standard error envelope. Credentialed requests are allowed, so the
// Allow-Origin header always echoes the specific origin rather than "*".
func CORS(cfg CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" {
			// Same-origin requests and non-browser clients carry no Origin.
			return c.Next()
		}

		if c.Method() == fiber.MethodOptions && isLocalhost(origin) {
			allowOrigin(c, origin)
			return c.SendStatus(fiber.StatusNoContent)
		}

		if cfg.AllowedSuffix != "" && strings.HasSuffix(strings.ToLower(origin), strings.ToLower(cfg.AllowedSuffix)) {
			allowOrigin(c, origin)
			return c.Next()
		}

		if cfg.DevPassword != "" && c.Get("dev-password") == cfg.DevPassword {
			allowOrigin(c, origin)
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status": "error",
			"error": fiber.Map{
				"message":    "Not allowed by CORS",
				"statusCode": fiber.StatusForbidden,
				"details":    fiber.Map{},
			},
		})
	}
}

func isLocalhost(origin string) bool {
	return strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:")
}

func allowOrigin(c *fiber.Ctx, origin string) {
	c.Set("Access-Control-Allow-Origin", origin)
	c.Set("Access-Control-Allow-Credentials", "true")
	c.Set("Access-Control-Allow-Headers", "Content-Type, dev-password")
}
