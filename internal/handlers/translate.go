package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/developia-II/moderated-translator/internal/services"
	"github.com/developia-II/moderated-translator/utils"
)

type TranslateHandler struct {
	translator *services.Translator
}

func NewTranslateHandler(t *services.Translator) *TranslateHandler {
	return &TranslateHandler{translator: t}
}

func (h *TranslateHandler) Translate(c *fiber.Ctx) error {
	resp, err := h.translator.Translate(c.UserContext(), c.Body())
	if err != nil {
		e := services.AsError(err)
		return utils.ErrorResponse(c, e.Status, e.Body())
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Preflight answers OPTIONS requests that the CORS middleware passed through.
func Preflight(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func MethodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	e := services.ErrMethodNotAllowed
	return utils.ErrorResponse(c, e.Status, e.Body())
}
