package validate

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newThemeEditApp() *fiber.App {
	app := fiber.New()
	app.Put("/theme/:themeId", EditTheme("themeId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func putThemeForm(t *testing.T, app *fiber.App, fields map[string]string) int {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	writer.Close()

	req := httptest.NewRequest("PUT", "/theme/1", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp.StatusCode
}

// Partial edits still validate the fields that were submitted.
func TestEditThemeRejectsInvalidColors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		fields map[string]string
	}{
		{"primary not a color", map[string]string{"primaryColor": "not-a-color"}},
		{"secondary missing hash", map[string]string{"secondaryColor": "FF0000"}},
		{"accent too short", map[string]string{"accentColor": "#12"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newThemeEditApp()
			if status := putThemeForm(t, app, tc.fields); status != fiber.StatusBadRequest {
				t.Fatalf("got status %d, want %d", status, fiber.StatusBadRequest)
			}
		})
	}
}
