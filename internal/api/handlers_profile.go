package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitplanner/internal/models"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, found, err := handler.store.GetProfile()
	if err != nil && !degradedRead(err, "profile") {
		return respondServiceError(c, err, "failed to load profile")
	}
	if err != nil || !found {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	return c.JSON(profile)
}

func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	var profile models.UserProfile
	if err := parseJSONBody(c, &profile); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile payload")
	}

	if err := handler.store.SaveProfile(profile); err != nil {
		return respondServiceError(c, err, "failed to save profile")
	}

	saved, _, err := handler.store.GetProfile()
	if err != nil {
		return respondServiceError(c, err, "failed to load profile")
	}
	return c.JSON(saved)
}

func (handler *Handler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := handler.plans.CurrentMetrics()
	if err != nil {
		return respondServiceError(c, err, "failed to compute metrics")
	}
	return c.JSON(metrics)
}
