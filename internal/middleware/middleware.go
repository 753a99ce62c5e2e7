package middleware

import (
	"strings"

	"Restaurant-Backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

// CORSMiddleware restricts cross-origin access to the configured allow-list.
// Development mode falls back to local dev servers when no list is configured.
func (m *middleware) CORSMiddleware() fiber.Handler {
	origins := utils.GetConfig("ALLOWED_ORIGINS")
	if origins == "" && utils.IsDevelopment() {
		origins = "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173"
	}

	allowed := make([]string, 0)
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}

	// Without an allow-list the cors middleware would fall back to its
	// wildcard default, so fail closed: cross-origin requests are refused
	// until ALLOWED_ORIGINS is configured.
	if len(allowed) == 0 {
		return func(c *fiber.Ctx) error {
			if c.Get(fiber.HeaderOrigin) != "" {
				return fiber.ErrForbidden
			}
			return c.Next()
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowed, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Content-Type, Authorization",
		AllowCredentials: true,
	})
}
