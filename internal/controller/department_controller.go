package controller

import (
	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDepartmentController interface {
	RegisterRoutes(r fiber.Router)
}

type departmentController struct {
	service service.IDepartmentService
}

func NewDepartmentController(service service.IDepartmentService) IDepartmentController {
	return &departmentController{service: service}
}

func (c *departmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/departments")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *departmentController) GetAll(ctx *fiber.Ctx) error {
	departments, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(departments)
}

func (c *departmentController) GetById(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	department, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(department)
}

func (c *departmentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	department, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(department)
}

func (c *departmentController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateDepartmentRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	department, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(department)
}

func (c *departmentController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Department deleted successfully"})
}
