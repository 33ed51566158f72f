// Package apigw adapts the translator to API Gateway HTTP API (payload
// format 2.0) events for the Lambda deployment.
package apigw

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/charmbracelet/log"

	"github.com/developia-II/moderated-translator/internal/services"
)

const contentTypeJSON = "application/json; charset=utf-8"

type Handler struct {
	translator *services.Translator
	log        *log.Logger
}

func NewHandler(t *services.Translator, logger *log.Logger) *Handler {
	return &Handler{translator: t, log: logger}
}

// Handle never returns an error; every failure is rendered as a JSON
// response so API Gateway does not replace it with its own 502.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if req.RequestContext.HTTP.Method != http.MethodPost {
		resp := h.errorResponse(services.ErrMethodNotAllowed)
		resp.Headers["Allow"] = http.MethodPost
		return resp, nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return h.errorResponse(&services.Error{
				Status:   http.StatusBadRequest,
				Category: services.CategoryInvalidInput,
				Details:  "Body must be valid JSON",
			}), nil
		}
		body = decoded
	}

	out, err := h.translator.Translate(ctx, body)
	if err != nil {
		return h.errorResponse(services.AsError(err)), nil
	}
	return h.jsonResponse(http.StatusOK, out), nil
}

func (h *Handler) errorResponse(e *services.Error) events.APIGatewayV2HTTPResponse {
	return h.jsonResponse(e.Status, e.Body())
}

func (h *Handler) jsonResponse(status int, v any) events.APIGatewayV2HTTPResponse {
	b, err := json.Marshal(v)
	if err != nil {
		h.log.Error("encode response", "err", err)
		status = http.StatusInternalServerError
		b = []byte(`{"error":"Translation failed","details":"Unknown error"}`)
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       string(b),
	}
}
