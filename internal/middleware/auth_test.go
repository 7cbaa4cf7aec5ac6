package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"license-compliance-system/internal/util"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/any", Auth(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin", Auth(), RequireRoles("IT Admin"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	util.ConfigureTokens("middleware-secret", time.Hour)
	admin, err := util.GenerateToken(1, "IT Admin")
	require.NoError(t, err)
	auditor, err := util.GenerateToken(2, "Auditor")
	require.NoError(t, err)

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{"missing_header", "/any", "", fiber.StatusUnauthorized},
		{"bad_scheme", "/any", "Basic abc", fiber.StatusUnauthorized},
		{"bad_token", "/any", "Bearer nope", fiber.StatusUnauthorized},
		{"valid_token", "/any", "Bearer " + auditor, fiber.StatusOK},
		{"role_denied", "/admin", "Bearer " + auditor, fiber.StatusForbidden},
		{"role_allowed", "/admin", "Bearer " + admin, fiber.StatusOK},
	}

	app := newApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
