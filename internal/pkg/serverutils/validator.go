package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ParseAndValidate binds the JSON body into out and runs struct validation.
// Both failure modes surface as 400 AppErrors.
func ParseAndValidate(ctx *fiber.Ctx, out any) error {
	if err := ctx.BodyParser(out); err != nil {
		return NewBadRequestError(fmt.Sprintf("invalid request body: %v", err))
	}
	if err := validate.Struct(out); err != nil {
		return NewBadRequestError(err.Error())
	}
	return nil
}
