package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func protectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/protegida", AuthMiddleware(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": GetUserID(c),
			"email":   GetEmail(c),
		})
	})
	return app
}

// ─────────────────────────────────────────────
// AuthMiddleware
// ─────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := protectedApp(testSecret)

	req := httptest.NewRequest("GET", "/protegida", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := protectedApp(testSecret)

	for _, header := range []string{"Token abc", "Bearer", "Bearer   "} {
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := protectedApp(testSecret)
	token, err := jwt.Generate(testSecret, "user-1", "user@nextmail.com", "facturacion-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_FirmaDeOtroSecreto(t *testing.T) {
	app := protectedApp(testSecret)
	token, err := jwt.Generate("otro-secreto", "user-1", "user@nextmail.com", "facturacion-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
