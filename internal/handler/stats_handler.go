package handler

import (
	"strconv"

	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

// GetOverview returns inventory and sales totals
func (h *StatsHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.service.GetOverview()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(overview)
}

// GetRevenue returns per-day revenue for charts
// Query params: days (default 7)
func (h *StatsHandler) GetRevenue(c *fiber.Ctx) error {
	daysStr := c.Query("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.GetRevenue(days)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}
