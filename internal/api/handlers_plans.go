package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fitplanner/internal/models"
)

func (handler *Handler) GetWorkoutHistory(c *fiber.Ctx) error {
	history, err := handler.store.GetWorkoutHistory()
	if err != nil && !degradedRead(err, "workout history") {
		return respondServiceError(c, err, "failed to load workout history")
	}
	return c.JSON(history)
}

func (handler *Handler) GenerateWorkout(c *fiber.Ctx) error {
	var input workoutRequest
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid workout payload")
	}

	plan, err := handler.plans.GenerateWorkout(c.UserContext(), models.Mood(input.Mood))
	if err != nil {
		return respondServiceError(c, err, "failed to generate workout")
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

func (handler *Handler) GetDietHistory(c *fiber.Ctx) error {
	history, err := handler.store.GetDietHistory()
	if err != nil && !degradedRead(err, "diet history") {
		return respondServiceError(c, err, "failed to load diet history")
	}
	return c.JSON(history)
}

func (handler *Handler) GenerateDiet(c *fiber.Ctx) error {
	plan, err := handler.plans.GenerateDiet(c.UserContext())
	if err != nil {
		return respondServiceError(c, err, "failed to generate diet")
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}
