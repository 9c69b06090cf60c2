package controller

import (
	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVendorController interface {
	RegisterRoutes(r fiber.Router)
}

type vendorController struct {
	service service.IVendorService
}

func NewVendorController(service service.IVendorService) IVendorController {
	return &vendorController{service: service}
}

func (c *vendorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/vendors")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *vendorController) GetAll(ctx *fiber.Ctx) error {
	vendors, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(vendors)
}

func (c *vendorController) GetById(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	vendor, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(vendor)
}

func (c *vendorController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateVendorRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	vendor, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(vendor)
}

func (c *vendorController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateVendorRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	vendor, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(vendor)
}

func (c *vendorController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Vendor deleted successfully"})
}
