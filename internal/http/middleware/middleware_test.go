package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"remitabeg-landing/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_IssuesCookie(t *testing.T) {
	app := fiber.New()
	app.Use(Session())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	var cookie string
	for _, ck := range resp.Cookies() {
		if ck.Name == SessionCookie {
			cookie = ck.Value
		}
	}
	require.NotEmpty(t, cookie)
	_, err = uuid.Parse(cookie)
	assert.NoError(t, err)
}

func TestSession_ReusesValidCookie(t *testing.T) {
	app := fiber.New()
	app.Use(Session())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})

	sid := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Cookie", SessionCookie+"="+sid)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, resp.Cookies())

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, sid, string(body))
}

func TestSession_ReplacesGarbageCookie(t *testing.T) {
	app := fiber.New()
	app.Use(Session())
	app.Get("/", func(c *fiber.Ctx) error { return nil })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Cookie", SessionCookie+"=not-a-uuid")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Cookies())
}

func TestJWTAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-secret")

	app := fiber.New()
	app.Get("/admin", JWTAuth(), RoleAuth("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, err := config.GenerateToken(1, "Editor", "editor@remitabeg.test", "editor")
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	token, err = config.GenerateToken(2, "Admin", "admin@remitabeg.test", "admin")
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestBasicAuth(t *testing.T) {
	t.Setenv("BASIC_AUTH_USER", "backup")
	t.Setenv("BASIC_AUTH_PASS", "s3cret")

	app := fiber.New()
	app.Get("/export", BasicAuth(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/export", nil)
	req.SetBasicAuth("backup", "s3cret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
