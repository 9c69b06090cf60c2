package controller

import (
	"encoding/json"

	"lark-inventory-be/internal/dto"
	"lark-inventory-be/internal/pkg/serverutils"
	"lark-inventory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
}

type chatController struct {
	chatService service.IChatService
	registry    service.ISchemaRegistryService
	jwtSecret   string
}

func NewChatController(chatService service.IChatService, registry service.ISchemaRegistryService, jwtSecret string) IChatController {
	return &chatController{
		chatService: chatService,
		registry:    registry,
		jwtSecret:   jwtSecret,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(serverutils.NewJwtMiddleware(c.jwtSecret))
	h.Get("/", c.Greeting)
	h.Post("/", c.Ask)
	h.Post("/clear", c.Clear)
	h.Get("/vectors/schemas", c.GetSchemas)
}

func (c *chatController) Greeting(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.ChatGreetingResponse{Message: c.chatService.Greeting()})
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.ChatQueryRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	userId := ctx.Locals("user_id").(string)

	blocks, err := c.chatService.Ask(ctx.Context(), userId, req.Query)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.ChatResponse{Response: blocks})
}

func (c *chatController) Clear(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	if err := c.chatService.Clear(ctx.Context(), userId); err != nil {
		return err
	}
	return ctx.JSON(dto.ClearChatResponse{Message: "Chat history cleared"})
}

func (c *chatController) GetSchemas(ctx *fiber.Ctx) error {
	descriptors, err := c.registry.ListDescriptors(ctx.Context())
	if err != nil {
		return err
	}

	result := make([]dto.SchemaDescriptorResponse, 0, len(descriptors))
	for _, descriptor := range descriptors {
		var metadata map[string]any
		if len(descriptor.Metadata) > 0 {
			_ = json.Unmarshal(descriptor.Metadata, &metadata)
		}
		result = append(result, dto.SchemaDescriptorResponse{
			Id:          descriptor.Id.String(),
			TableName:   descriptor.TableName_,
			Document:    descriptor.Document,
			Description: descriptor.Description,
			Metadata:    metadata,
		})
	}
	return ctx.JSON(result)
}
