package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/developia-II/moderated-translator/internal/models"
	"github.com/developia-II/moderated-translator/internal/services"
	"github.com/developia-II/moderated-translator/utils"
)

// ErrorHandler renders errors that escape a handler (routing errors,
// recovered panics) in the same JSON shape as translate failures.
func ErrorHandler(logger *log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.ErrorResponse(c, fe.Code, models.ErrorResponse{
				Error:   http.StatusText(fe.Code),
				Details: fe.Message,
			})
		}

		logger.Error("unhandled error", "method", c.Method(), "path", c.Path(), "err", err)
		e := services.AsError(err)
		return utils.ErrorResponse(c, e.Status, e.Body())
	}
}
