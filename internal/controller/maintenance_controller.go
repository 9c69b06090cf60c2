package controller

import (
	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMaintenanceController interface {
	RegisterRoutes(r fiber.Router)
}

type maintenanceController struct {
	service service.IMaintenanceService
}

func NewMaintenanceController(service service.IMaintenanceService) IMaintenanceController {
	return &maintenanceController{service: service}
}

func (c *maintenanceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/maintenance")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
}

func (c *maintenanceController) GetAll(ctx *fiber.Ctx) error {
	logs, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(logs)
}

func (c *maintenanceController) GetById(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	log, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(log)
}

func (c *maintenanceController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMaintenanceLogRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	log, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(log)
}

func (c *maintenanceController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateMaintenanceLogRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	log, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(log)
}
