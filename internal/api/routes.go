package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	session := api.Group("/session")
	session.Post("/demo", handler.StartDemoSession)
	session.Post("/logout", handler.Logout)

	api.Get("/profile", handler.GetProfile)
	api.Put("/profile", handler.SaveProfile)
	api.Get("/metrics", handler.GetMetrics)

	workouts := api.Group("/workouts")
	workouts.Get("", handler.GetWorkoutHistory)
	workouts.Post("", handler.GenerateWorkout)

	diets := api.Group("/diets")
	diets.Get("", handler.GetDietHistory)
	diets.Post("", handler.GenerateDiet)

	weights := api.Group("/weights")
	weights.Get("", handler.GetWeightHistory)
	weights.Post("", handler.RecordWeight)

	api.Get("/progress", handler.GetProgress)

	api.Get("/theme", handler.GetTheme)
	api.Put("/theme", handler.SaveTheme)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
