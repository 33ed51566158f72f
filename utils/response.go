package utils

import (
	"github.com/developia-II/moderated-translator/internal/models"
	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, body models.ErrorResponse) error {
	return c.Status(status).JSON(body)
}
