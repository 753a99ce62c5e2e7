package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSTestApp() *fiber.App {
	app := fiber.New()
	app.Use(NewMiddleware().CORSMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestCORSFailsClosedWithoutAllowList(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "")

	app := newCORSTestApp()

	t.Run("cross-origin request is refused", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
		req.Header.Set(fiber.HeaderOrigin, "https://evil.example")

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
		assert.Empty(t, res.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})

	t.Run("same-origin request still passes", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	})
}

func TestCORSHonorsConfiguredAllowList(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://restaurant.example")

	app := newCORSTestApp()

	t.Run("listed origin is allowed", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
		req.Header.Set(fiber.HeaderOrigin, "https://restaurant.example")

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
		assert.Equal(t, "https://restaurant.example",
			res.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})

	t.Run("unlisted origin gets no allow header", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
		req.Header.Set(fiber.HeaderOrigin, "https://evil.example")

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Empty(t, res.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})
}

func TestCORSDevelopmentDefaultsToLocalDevServers(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("ALLOWED_ORIGINS", "")

	app := newCORSTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, "http://localhost:3000",
		res.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
