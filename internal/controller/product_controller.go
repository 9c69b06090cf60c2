package controller

import (
	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
}

type productController struct {
	service service.IProductService
}

func NewProductController(service service.IProductService) IProductController {
	return &productController{service: service}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *productController) GetAll(ctx *fiber.Ctx) error {
	products, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(products)
}

func (c *productController) GetById(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	product, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(product)
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	product, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(product)
}

func (c *productController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProductRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	product, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(product)
}

func (c *productController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Product deleted successfully"})
}
