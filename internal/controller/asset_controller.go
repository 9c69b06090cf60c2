package controller

import (
	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssetController interface {
	RegisterRoutes(r fiber.Router)
}

type assetController struct {
	service service.IAssetService
}

func NewAssetController(service service.IAssetService) IAssetController {
	return &assetController{service: service}
}

func (c *assetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assets")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)

	h.Get("/:id/vendor", c.GetVendorLinks)
	h.Post("/:id/vendor", c.LinkVendor)
}

func (c *assetController) GetAll(ctx *fiber.Ctx) error {
	assets, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(assets)
}

func (c *assetController) GetById(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	asset, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(asset)
}

func (c *assetController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAssetRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	asset, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(asset)
}

func (c *assetController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateAssetRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	asset, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(asset)
}

func (c *assetController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Asset deleted successfully"})
}

func (c *assetController) GetVendorLinks(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	links, err := c.service.GetVendorLinks(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(links)
}

func (c *assetController) LinkVendor(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.LinkAssetVendorRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	link, err := c.service.LinkVendor(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(link)
}
