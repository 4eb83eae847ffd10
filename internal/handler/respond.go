package handler

import (
	"errors"

	"go-pos-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// fail maps domain errors onto HTTP statuses. Internal errors surface a
// generic message only; details stay in the server log.
func fail(c *fiber.Ctx, err error) error {
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(404).JSON(fiber.Map{"error": notFound.Error()})
	}

	var insufficient *model.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(400).JSON(fiber.Map{"error": insufficient.Error()})
	}

	if errors.Is(err, model.ErrInvalidInput) {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}

// Helper untuk parse UUID dari path params
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
