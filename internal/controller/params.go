package controller

import (
	"fmt"
	"strconv"

	"lark-inventory-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

func parseIdParam(ctx *fiber.Ctx, name string) (uint, error) {
	raw := ctx.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serverutils.NewBadRequestError(fmt.Sprintf("invalid %s: %q", name, raw))
	}
	return uint(id), nil
}
