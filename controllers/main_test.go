package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"appointment-api/db"
	"appointment-api/routes"
)

func setJWTEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("JWT_ISSUER", "appointment-api")
	t.Setenv("JWT_AUDIENCE", "appointment-clients")
}

// newApp builds the same route surface main wires up. Call setJWTEnv first:
// the auth middleware captures the signing key when routes are registered.
func newApp() *fiber.App {
	app := fiber.New()
	routes.SetupAuthRoutes(app)
	routes.SetupAppointmentRoutes(app)
	return app
}

var dbOnce sync.Once

// setupDB connects to the test database, or skips the test when none is
// configured. Validation-only tests never touch the DB and run without it.
func setupDB(t *testing.T) {
	t.Helper()
	_ = godotenv.Load("../.env")
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set")
	}
	dbOnce.Do(func() {
		db.Init()
		db.Migrate()
	})
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}
