package api

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitplanner/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNoActiveProfile):
		return apiError(c, fiber.StatusForbidden, "profile required")
	case errors.Is(err, services.ErrInvalidInput):
		return apiError(c, fiber.StatusBadRequest, invalidInputMessage(err))
	case errors.Is(err, services.ErrCorruptPersistedData):
		log.Printf("%s: %v", fallback, err)
		return apiError(c, fiber.StatusInternalServerError, "stored data is corrupted")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apiError(c, fiber.StatusServiceUnavailable, "plan generation interrupted")
	default:
		log.Printf("%s: %v", fallback, err)
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}

// degradedRead reports whether err is a corrupted collection that the read
// endpoints answer with an empty value.
func degradedRead(err error, collection string) bool {
	if !errors.Is(err, services.ErrCorruptPersistedData) {
		return false
	}
	log.Printf("serving empty %s: %v", collection, err)
	return true
}

func invalidInputMessage(err error) string {
	message := strings.TrimPrefix(err.Error(), services.ErrInvalidInput.Error()+": ")
	if strings.TrimSpace(message) == "" {
		return services.ErrInvalidInput.Error()
	}
	return message
}

func parseJSONBody(c *fiber.Ctx, target any) error {
	if len(c.Body()) == 0 {
		return errors.New("request body is required")
	}
	if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON) {
		return errors.New("content type must be application/json")
	}
	return c.BodyParser(target)
}
