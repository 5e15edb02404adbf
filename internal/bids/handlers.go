package bids

import (
	"strconv"

	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/bids/:land_id
func (h *Handlers) PlaceBid(c *fiber.Ctx) error {
	landID, err := parseLandID(c)
	if err != nil {
		return response.Fail(c, err)
	}

	var body struct {
		BidderName   string      `json:"bidderName"`
		MobileNumber string      `json:"mobileNumber"`
		NationalID   string      `json:"nationalId"`
		BidAmount    interface{} `json:"bidAmount"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	if body.BidderName == "" || body.MobileNumber == "" || body.NationalID == "" || body.BidAmount == nil {
		return response.Fail(c, apperr.Validation("All fields are required: bidderName, mobileNumber, nationalId, bidAmount"))
	}
	amount, ok := asAmount(body.BidAmount)
	if !ok || amount <= 0 {
		return response.Fail(c, apperr.Validation("Bid amount must be a positive number"))
	}

	result, err := h.Service.PlaceBid(c.Context(), PlaceBidInput{
		LandID:       landID,
		BidderName:   body.BidderName,
		MobileNumber: body.MobileNumber,
		NationalID:   body.NationalID,
		BidAmount:    amount,
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Created(c, "Bid placed successfully", result, nil)
}

// GET /api/v1/bids/:land_id
func (h *Handlers) ListBids(c *fiber.Ctx) error {
	landID, err := parseLandID(c)
	if err != nil {
		return response.Fail(c, err)
	}
	result, err := h.Service.ListBids(c.Context(), landID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Bids fetched successfully", result, nil)
}

// DELETE /api/v1/bids/:land_id/:bid_id
func (h *Handlers) DeleteBid(c *fiber.Ctx) error {
	landID, err := parseLandID(c)
	if err != nil {
		return response.Fail(c, err)
	}
	bidID, err := uuid.Parse(c.Params("bid_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid bid_id format"))
	}
	if err := h.Service.DeleteBid(c.Context(), landID, bidID); err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Bid deleted successfully", nil, nil)
}

// GET /api/v1/bids/:land_id/stats
func (h *Handlers) Stats(c *fiber.Ctx) error {
	landID, err := parseLandID(c)
	if err != nil {
		return response.Fail(c, err)
	}
	stats, err := h.Service.Stats(c.Context(), landID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Bid statistics fetched successfully", stats, nil)
}

func parseLandID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("land_id"))
	if err != nil {
		return uuid.Nil, apperr.Validation("Invalid land_id format")
	}
	return id, nil
}

// asAmount accepts a JSON number (decoded as float64) or a numeric string,
// matching the loose client payloads the API has always accepted.
func asAmount(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	return 0, false
}
