package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req model.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.service.CreateSale(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(sale.ToResponse())
}

func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales()
	if err != nil {
		return fail(c, err)
	}

	responses := make([]model.SaleResponse, 0, len(sales))
	for i := range sales {
		responses = append(responses, sales[i].ToResponse())
	}
	return c.JSON(responses)
}

func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	sale, err := h.service.GetSaleByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sale.ToResponse())
}
