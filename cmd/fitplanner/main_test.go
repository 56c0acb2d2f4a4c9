package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/terraincognita07/fitplanner/internal/storage"
)

func TestResolvePort(t *testing.T) {
	t.Setenv("PORT", "")
	port, err := resolvePort()
	if err != nil {
		t.Fatalf("expected default port, got error: %v", err)
	}
	if port != "8080" {
		t.Fatalf("expected default port 8080, got %q", port)
	}

	t.Setenv("PORT", "9090")
	port, err = resolvePort()
	if err != nil {
		t.Fatalf("expected valid port, got error: %v", err)
	}
	if port != "9090" {
		t.Fatalf("expected port 9090, got %q", port)
	}

	t.Setenv("PORT", "0")
	if _, err := resolvePort(); err == nil {
		t.Fatal("expected error for port 0")
	}

	t.Setenv("PORT", "70000")
	if _, err := resolvePort(); err == nil {
		t.Fatal("expected error for port above 65535")
	}

	t.Setenv("PORT", "not-a-number")
	if _, err := resolvePort(); err == nil {
		t.Fatal("expected error for non-numeric port")
	}
}

func TestResolvePlanDelay(t *testing.T) {
	t.Setenv("PLAN_DELAY", "")
	delay, err := resolvePlanDelay()
	if err != nil || delay != 2*time.Second {
		t.Fatalf("expected default 2s delay, got %s, %v", delay, err)
	}

	t.Setenv("PLAN_DELAY", "0s")
	delay, err = resolvePlanDelay()
	if err != nil || delay != 0 {
		t.Fatalf("expected zero delay, got %s, %v", delay, err)
	}

	t.Setenv("PLAN_DELAY", "-1s")
	if _, err := resolvePlanDelay(); err == nil {
		t.Fatal("expected error for negative delay")
	}

	t.Setenv("PLAN_DELAY", "soon")
	if _, err := resolvePlanDelay(); err == nil {
		t.Fatal("expected error for malformed delay")
	}
}

func TestResolveStorageConfig(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("DATA_DIR", "")
	config, err := resolveStorageConfig()
	if err != nil {
		t.Fatalf("expected default storage config, got error: %v", err)
	}
	if config.Backend != storage.BackendSQLite || config.DBPath != "data/fitplanner.db" || config.DataDir != "data/session" {
		t.Fatalf("unexpected default storage config %+v", config)
	}

	t.Setenv("STORAGE_BACKEND", " File ")
	t.Setenv("DATA_DIR", "/tmp/fitplanner")
	config, err = resolveStorageConfig()
	if err != nil {
		t.Fatalf("expected file storage config, got error: %v", err)
	}
	if config.Backend != storage.BackendFile || config.DataDir != "/tmp/fitplanner" {
		t.Fatalf("unexpected file storage config %+v", config)
	}

	t.Setenv("STORAGE_BACKEND", "redis")
	if _, err := resolveStorageConfig(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestMustLoadLocationFallsBackToUTC(t *testing.T) {
	if location := mustLoadLocation("Not/AZone"); location != time.UTC {
		t.Fatalf("expected UTC fallback, got %s", location)
	}
}

func TestCORSMiddlewareConfigAllowsConfiguredOrigin(t *testing.T) {
	config := corsMiddlewareConfig(" https://planner.example , ,https://other.example")
	if config.AllowOrigins != "https://planner.example,https://other.example" {
		t.Fatalf("unexpected allowed origins %q", config.AllowOrigins)
	}
	if fallback := corsMiddlewareConfig(" , "); fallback.AllowOrigins != "*" {
		t.Fatalf("expected wildcard fallback, got %q", fallback.AllowOrigins)
	}

	app := fiber.New()
	app.Use(cors.New(config))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	request.Header.Set("Origin", "https://planner.example")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if got := response.Header.Get("Access-Control-Allow-Origin"); got != "https://planner.example" {
		t.Fatalf("expected allow-origin header, got %q", got)
	}
}
