package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/furrow/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "furrow-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, []byte("test-secret-key"), time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, path string, payload any, cookie string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}
	return request
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func authCookieFrom(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return authCookieName + "=" + cookie.Value
		}
	}
	t.Fatal("auth cookie not set")
	return ""
}

// registerOwner creates the first account, which gets the owner role, and
// returns its session cookie.
func registerOwner(t *testing.T, app *fiber.App) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "owner@example.com",
		"password": "growbeds123",
	}, "")
	response, err := app.Test(request)
	if err != nil {
		t.Fatalf("register owner: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register owner status = %d", response.StatusCode)
	}
	return authCookieFrom(t, response)
}

func registerViewer(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    email,
		"password": "growbeds123",
	}, "")
	response, err := app.Test(request)
	if err != nil {
		t.Fatalf("register viewer: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register viewer status = %d", response.StatusCode)
	}
	return authCookieFrom(t, response)
}
