package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/fitplanner/internal/api"
	"github.com/terraincognita07/fitplanner/internal/cli"
	"github.com/terraincognita07/fitplanner/internal/services"
	"github.com/terraincognita07/fitplanner/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	storageConfig, err := resolveStorageConfig()
	if err != nil {
		log.Fatalf("invalid storage config: %v", err)
	}

	if len(os.Args) > 1 {
		os.Exit(runCommand(os.Args[1], os.Args[2:], storageConfig))
	}

	port, err := resolvePort()
	if err != nil {
		log.Fatalf("invalid PORT: %v", err)
	}
	planDelay, err := resolvePlanDelay()
	if err != nil {
		log.Fatalf("invalid PLAN_DELAY: %v", err)
	}

	backend, closeBackend, err := storage.Open(storageConfig)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}
	defer func() {
		if err := closeBackend(); err != nil {
			log.Printf("storage close failed: %v", err)
		}
	}()

	store := services.NewSessionStore(backend)
	if err := store.Init(); err != nil {
		log.Fatalf("session store init failed: %v", err)
	}

	handler, err := api.NewHandler(store, services.NewTemplatePlanGenerator(planDelay))
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "FitPlanner",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(corsMiddlewareConfig(getEnv("ALLOWED_ORIGINS", "*"))))
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("FitPlanner listening on http://0.0.0.0:%s (storage: %s, tz: %s)", port, describeStorage(storageConfig), location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runCommand(name string, args []string, config storage.Config) int {
	switch name {
	case "clear-session":
		flags := flag.NewFlagSet(name, flag.ContinueOnError)
		force := flags.Bool("yes", false, "skip the confirmation prompt")
		if err := flags.Parse(args); err != nil {
			return 2
		}
		if err := cli.RunClearSessionCommand(config, *force, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "clear-session failed: %v\n", err)
			return 1
		}
		return 0
	case "metrics":
		if err := cli.RunMetricsCommand(config, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "metrics failed: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (available: clear-session, metrics)\n", name)
		return 2
	}
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(getEnv("PORT", "8080"))
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("PORT must be a number: %w", err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
	}
	return strconv.Itoa(port), nil
}

func resolvePlanDelay() (time.Duration, error) {
	delay, err := time.ParseDuration(strings.TrimSpace(getEnv("PLAN_DELAY", "2s")))
	if err != nil {
		return 0, err
	}
	if delay < 0 {
		return 0, fmt.Errorf("PLAN_DELAY must not be negative, got %s", delay)
	}
	return delay, nil
}

func resolveStorageConfig() (storage.Config, error) {
	config := storage.Config{
		Backend: strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", storage.BackendSQLite))),
		DBPath:  getEnv("DB_PATH", filepath.Join("data", "fitplanner.db")),
		DataDir: getEnv("DATA_DIR", filepath.Join("data", "session")),
	}
	switch config.Backend {
	case storage.BackendSQLite, storage.BackendFile, storage.BackendMemory:
		return config, nil
	default:
		return storage.Config{}, fmt.Errorf("STORAGE_BACKEND must be one of sqlite, file, memory, got %q", config.Backend)
	}
}

func corsMiddlewareConfig(allowedOrigins string) cors.Config {
	origins := make([]string, 0)
	for _, origin := range strings.Split(allowedOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowMethods: "GET,POST,PUT,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}
}

func describeStorage(config storage.Config) string {
	switch config.Backend {
	case storage.BackendFile:
		return "file " + config.DataDir
	case storage.BackendMemory:
		return "memory"
	default:
		return "sqlite " + config.DBPath
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
