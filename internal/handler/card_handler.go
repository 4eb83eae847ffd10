package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	service service.CardService
}

func NewCardHandler(s service.CardService) *CardHandler {
	return &CardHandler{service: s}
}

func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var card model.Card
	if err := c.BodyParser(&card); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateCard(&card); err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(card)
}

func (h *CardHandler) GetCards(c *fiber.Ctx) error {
	cards, err := h.service.GetAllCards()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cards)
}

func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid card ID"})
	}

	card, err := h.service.GetCardByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(card)
}

func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid card ID"})
	}

	var req model.Card
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	card, err := h.service.UpdateCard(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(card)
}

// AddProduct accumulates a product on the card's running tab.
func (h *CardHandler) AddProduct(c *fiber.Ctx) error {
	cardID, err := parseUUID(c.Params("card_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid card ID"})
	}

	var req model.AddCardProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.AddProduct(cardID, &req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(item)
}

func (h *CardHandler) GetProducts(c *fiber.Ctx) error {
	cardID, err := parseUUID(c.Params("card_id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid card ID"})
	}

	items, err := h.service.GetCardProducts(cardID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}
