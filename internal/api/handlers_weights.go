package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitplanner/internal/services"
)

func (handler *Handler) GetWeightHistory(c *fiber.Ctx) error {
	history, err := handler.store.GetWeightHistory()
	if err != nil && !degradedRead(err, "weight history") {
		return respondServiceError(c, err, "failed to load weight history")
	}
	return c.JSON(history)
}

func (handler *Handler) RecordWeight(c *fiber.Ctx) error {
	var input weightRequest
	if err := parseJSONBody(c, &input); err != nil || input.Weight == nil {
		return apiError(c, fiber.StatusBadRequest, "invalid weight payload")
	}

	profile, entry, err := handler.store.RecordWeight(*input.Weight)
	if err != nil {
		return respondServiceError(c, err, "failed to record weight")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"profile": profile,
		"entry":   entry,
	})
}

func (handler *Handler) GetProgress(c *fiber.Ctx) error {
	history, err := handler.store.GetWeightHistory()
	if err != nil && !degradedRead(err, "weight history") {
		return respondServiceError(c, err, "failed to load weight history")
	}
	return c.JSON(services.BuildProgressSummary(history))
}
