package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) StartDemoSession(c *fiber.Ctx) error {
	profile, err := handler.demo.Start()
	if err != nil {
		return respondServiceError(c, err, "failed to start demo session")
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	if err := handler.store.ClearSession(); err != nil {
		return respondServiceError(c, err, "failed to clear session")
	}
	return c.JSON(fiber.Map{"ok": true})
}
