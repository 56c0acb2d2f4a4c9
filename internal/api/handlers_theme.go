package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitplanner/internal/models"
)

func (handler *Handler) GetTheme(c *fiber.Ctx) error {
	theme, err := handler.store.GetTheme()
	if err != nil && !degradedRead(err, "theme") {
		return respondServiceError(c, err, "failed to load theme")
	}
	return c.JSON(themeRequest{Theme: string(theme)})
}

func (handler *Handler) SaveTheme(c *fiber.Ctx) error {
	var input themeRequest
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid theme payload")
	}

	if err := handler.store.SaveTheme(models.Theme(input.Theme)); err != nil {
		return respondServiceError(c, err, "failed to save theme")
	}
	return c.JSON(input)
}
