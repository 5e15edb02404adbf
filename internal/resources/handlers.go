package resources

import (
	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/resources/create-resource
func (h *Handlers) CreateResource(c *fiber.Ctx) error {
	var body struct {
		OwnerID      string         `json:"owner_id"`
		Name         string         `json:"name"`
		Category     string         `json:"category"`
		Description  string         `json:"description"`
		PricePerUnit float64        `json:"price_per_unit"`
		Unit         string         `json:"unit"`
		Availability datatypes.JSON `json:"availability"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	ownerID, err := uuid.Parse(body.OwnerID)
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid owner_id format"))
	}
	resource, err := h.Service.CreateResource(c.Context(), CreateResourceInput{
		OwnerID:      ownerID,
		Name:         body.Name,
		Category:     body.Category,
		Description:  body.Description,
		PricePerUnit: body.PricePerUnit,
		Unit:         body.Unit,
		Availability: body.Availability,
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Created(c, "Resource created successfully", resource, nil)
}

// GET /api/v1/resources/get-all-resources?category=crop|equipment
func (h *Handlers) GetAllResources(c *fiber.Ctx) error {
	resourceList, err := h.Service.GetAllResources(c.Context(), c.Query("category"))
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Resources fetched successfully", resourceList, nil)
}

// GET /api/v1/resources/get-resource/:resource_id
func (h *Handlers) GetResourceByID(c *fiber.Ctx) error {
	resourceID, err := uuid.Parse(c.Params("resource_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid resource_id format"))
	}
	resource, err := h.Service.GetResourceByID(c.Context(), resourceID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Resource fetched successfully", resource, nil)
}

// GET /api/v1/resources/get-owner-resources/:owner_id
func (h *Handlers) GetOwnerResources(c *fiber.Ctx) error {
	ownerID, err := uuid.Parse(c.Params("owner_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid owner_id format"))
	}
	resourceList, err := h.Service.GetOwnerResources(c.Context(), ownerID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Owner resources fetched successfully", resourceList, nil)
}

// PUT /api/v1/resources/update-resource/:resource_id
func (h *Handlers) UpdateResource(c *fiber.Ctx) error {
	resourceID, err := uuid.Parse(c.Params("resource_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid resource_id format"))
	}
	var body struct {
		Name         *string        `json:"name"`
		Description  *string        `json:"description"`
		PricePerUnit *float64       `json:"price_per_unit"`
		Availability datatypes.JSON `json:"availability"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	resource, err := h.Service.UpdateResource(c.Context(), UpdateResourceInput{
		ResourceID:   resourceID,
		Name:         body.Name,
		Description:  body.Description,
		PricePerUnit: body.PricePerUnit,
		Availability: body.Availability,
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Resource updated successfully", resource, nil)
}

// DELETE /api/v1/resources/delete-resource/:resource_id
func (h *Handlers) DeleteResource(c *fiber.Ctx) error {
	resourceID, err := uuid.Parse(c.Params("resource_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid resource_id format"))
	}
	if err := h.Service.DeleteResource(c.Context(), resourceID); err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Resource deleted successfully", nil, nil)
}
