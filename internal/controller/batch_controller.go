package controller

import (
	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBatchController interface {
	RegisterRoutes(r fiber.Router)
}

type batchController struct {
	service service.IBatchService
}

func NewBatchController(service service.IBatchService) IBatchController {
	return &batchController{service: service}
}

func (c *batchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/batches")
	h.Get("/", c.GetAll)
	h.Post("/", c.Create)
	h.Get("/:id", c.GetById)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)

	h.Get("/:id/trackings", c.GetTrackings)
	h.Post("/:id/trackings", c.CreateTracking)
	h.Get("/:id/trackings/:tracking_id", c.GetTracking)
	h.Delete("/:id/trackings/:tracking_id", c.DeleteTracking)
}

func (c *batchController) GetAll(ctx *fiber.Ctx) error {
	batches, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(batches)
}

func (c *batchController) GetById(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	batch, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(batch)
}

func (c *batchController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBatchRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	batch, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(batch)
}

func (c *batchController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateBatchRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	batch, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(batch)
}

func (c *batchController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Batch deleted successfully"})
}

func (c *batchController) GetTrackings(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	trackings, err := c.service.GetTrackings(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(trackings)
}

func (c *batchController) GetTracking(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}
	trackingId, err := parseIdParam(ctx, "tracking_id")
	if err != nil {
		return err
	}

	tracking, err := c.service.GetTracking(ctx.Context(), id, trackingId)
	if err != nil {
		return err
	}
	return ctx.JSON(tracking)
}

func (c *batchController) CreateTracking(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CreateBatchTrackingRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	tracking, err := c.service.CreateTracking(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(tracking)
}

func (c *batchController) DeleteTracking(ctx *fiber.Ctx) error {
	trackingId, err := parseIdParam(ctx, "tracking_id")
	if err != nil {
		return err
	}

	if err := c.service.DeleteTracking(ctx.Context(), trackingId); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Tracking deleted successfully"})
}
