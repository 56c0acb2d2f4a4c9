package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitplanner/internal/services"
	"github.com/terraincognita07/fitplanner/internal/storage"
)

func newFitPlannerTestApp(t *testing.T) (*fiber.App, *storage.MemoryBackend, *services.SessionStore) {
	t.Helper()

	backend := storage.NewMemoryBackend()
	store := services.NewSessionStore(backend).WithClock(func() time.Time {
		return time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC)
	})
	if err := store.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}

	handler, err := NewHandler(store, services.NewTemplatePlanGenerator(0).WithSeed(1))
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, backend, store
}

func doJSONRequest(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeJSONResponse(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONResponse(t, response, &payload)
	return payload["error"]
}

func assertStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		t.Fatalf("expected status %d, got %d", want, response.StatusCode)
	}
}
