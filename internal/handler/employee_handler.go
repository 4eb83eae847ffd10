package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	service service.EmployeeService
}

func NewEmployeeHandler(s service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: s}
}

func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var employee model.Employee
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateEmployee(&employee); err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(employee)
}

func (h *EmployeeHandler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.service.GetAllEmployees()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(employees)
}

func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	employee, err := h.service.GetEmployeeByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	var req model.Employee
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	employee, err := h.service.UpdateEmployee(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(employee)
}
