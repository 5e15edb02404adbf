package lands

import (
	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/lands/create-land
func (h *Handlers) CreateLand(c *fiber.Ctx) error {
	var body struct {
		OwnerName        string  `json:"owner_name"`
		LocationAddress  string  `json:"location_address"`
		LocationCity     string  `json:"location_city"`
		LocationDistrict string  `json:"location_district"`
		SizeAcres        float64 `json:"size_acres"`
		Amount           float64 `json:"amount"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	land, err := h.Service.CreateLand(c.Context(), CreateLandInput{
		OwnerName:        body.OwnerName,
		LocationAddress:  body.LocationAddress,
		LocationCity:     body.LocationCity,
		LocationDistrict: body.LocationDistrict,
		SizeAcres:        body.SizeAcres,
		Amount:           body.Amount,
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Created(c, "Land created successfully", land, nil)
}

// GET /api/v1/lands/get-all-lands
func (h *Handlers) GetAllLands(c *fiber.Ctx) error {
	landList, err := h.Service.GetAllLands(c.Context())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Lands fetched successfully", landList, nil)
}

// GET /api/v1/lands/get-land/:land_id
func (h *Handlers) GetLandByID(c *fiber.Ctx) error {
	landID, err := uuid.Parse(c.Params("land_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid land_id format"))
	}
	land, err := h.Service.GetLandByID(c.Context(), landID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Land fetched successfully", land, nil)
}

// GET /api/v1/lands/get-active-lands
func (h *Handlers) GetActiveLands(c *fiber.Ctx) error {
	landList, err := h.Service.GetActiveLands(c.Context())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Active lands fetched", landList, nil)
}

// GET /api/v1/lands/get-closed-lands
func (h *Handlers) GetClosedLands(c *fiber.Ctx) error {
	landList, err := h.Service.GetClosedLands(c.Context())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Closed lands fetched", landList, nil)
}

// DELETE /api/v1/lands/delete-land/:land_id
func (h *Handlers) DeleteLand(c *fiber.Ctx) error {
	landID, err := uuid.Parse(c.Params("land_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid land_id format"))
	}
	if err := h.Service.DeleteLand(c.Context(), landID); err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Land deleted successfully", nil, nil)
}
