package controller

import (
	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEmployeeController interface {
	RegisterRoutes(r fiber.Router)
}

type employeeController struct {
	service service.IEmployeeService
}

func NewEmployeeController(service service.IEmployeeService) IEmployeeController {
	return &employeeController{service: service}
}

func (c *employeeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/employees")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
}

func (c *employeeController) GetAll(ctx *fiber.Ctx) error {
	employees, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(employees)
}

func (c *employeeController) GetById(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	employee, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(employee)
}

func (c *employeeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	employee, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(employee)
}

func (c *employeeController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateEmployeeRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	employee, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(employee)
}
