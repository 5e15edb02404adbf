package reports

import (
	"fmt"

	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/bids/:land_id/report/:format
func (h *Handlers) Download(c *fiber.Ctx) error {
	landID, err := uuid.Parse(c.Params("land_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid land_id format"))
	}

	report, err := h.Service.Generate(c.Context(), landID, c.Params("format"))
	if err != nil {
		return response.Fail(c, err)
	}

	c.Set(fiber.HeaderContentType, report.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", report.FileName))
	return c.Send(report.Content)
}
