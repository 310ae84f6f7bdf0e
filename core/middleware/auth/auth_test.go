package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		path       string
		headers    map[string]string
		wantStatus int
	}{
		{"Disabled", "", "/catalogs", nil, fiber.StatusOK},
		{"Missing Key", "secret", "/catalogs", nil, fiber.StatusUnauthorized},
		{"Wrong Key", "secret", "/catalogs", map[string]string{Header: "nope"}, fiber.StatusUnauthorized},
		{"Header Key", "secret", "/catalogs", map[string]string{Header: "secret"}, fiber.StatusOK},
		{"Bearer Token", "secret", "/catalogs", map[string]string{"Authorization": "Bearer secret"}, fiber.StatusOK},
		{"Basic Rejected", "secret", "/catalogs", map[string]string{"Authorization": "Basic secret"}, fiber.StatusUnauthorized},
		{"Skipped Path", "secret", "/metrics", nil, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(New(Config{ApiKey: tt.apiKey, Skip: []string{"/metrics", "/swagger"}}))
			app.Get("/*", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
