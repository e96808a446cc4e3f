package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/winehouse/internal/services"
)

// TranslateHandler exposes the best-effort machine translation used by the
// admin dashboard's auto-fill action.
type TranslateHandler struct {
	svc *services.TranslateService
}

// NewTranslateHandler constructs TranslateHandler.
func NewTranslateHandler(svc *services.TranslateService) *TranslateHandler {
	return &TranslateHandler{svc: svc}
}

type translateRequest struct {
	Fields map[string]string `json:"fields"`
}

// Translate expands a set of Chinese source fields into all locales.
// Failed translations fall back to the source text, so the response always
// carries a usable value per field.
func (h *TranslateHandler) Translate(c *fiber.Ctx) error {
	var req translateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if len(req.Fields) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "fields are required")
	}

	return c.JSON(fiber.Map{"success": true, "data": h.svc.FillAll(req.Fields)})
}
