package bids

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"agromart-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBidApp(t *testing.T) (*fiber.App, *Service, *gorm.DB) {
	s, db := setupBidTest(t)
	h := &Handlers{Service: s}

	app := fiber.New()
	g := app.Group("/api/v1/bids")
	g.Post("/:land_id", h.PlaceBid)
	g.Get("/:land_id", h.ListBids)
	g.Get("/:land_id/stats", h.Stats)
	g.Delete("/:land_id/:bid_id", h.DeleteBid)
	return app, s, db
}

func TestPlaceBidHandler_Created(t *testing.T) {
	app, _, db := setupBidApp(t)
	land := seedLand(t, db, 100000, time.Now())

	body, _ := json.Marshal(map[string]interface{}{
		"bidderName":   "Kasun Silva",
		"mobileNumber": "0771234567",
		"nationalId":   "912345678V",
		"bidAmount":    150000,
	})
	req := httptest.NewRequest("POST", "/api/v1/bids/"+land.LandID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var parsed struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Bid models.Bid `json:"bid"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "success", parsed.Status)
	assert.Equal(t, "Bid placed successfully", parsed.Message)
	assert.Equal(t, 150000.0, parsed.Data.Bid.BidAmount)
}

func TestPlaceBidHandler_StringAmountAccepted(t *testing.T) {
	app, _, db := setupBidApp(t)
	land := seedLand(t, db, 100000, time.Now())

	body, _ := json.Marshal(map[string]interface{}{
		"bidderName":   "Kasun Silva",
		"mobileNumber": "0771234567",
		"nationalId":   "912345678V",
		"bidAmount":    "150000",
	})
	req := httptest.NewRequest("POST", "/api/v1/bids/"+land.LandID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestPlaceBidHandler_NonNumericAmountRejected(t *testing.T) {
	app, _, db := setupBidApp(t)
	land := seedLand(t, db, 100000, time.Now())

	for _, amount := range []interface{}{true, "not-a-number", []int{1}} {
		body, _ := json.Marshal(map[string]interface{}{
			"bidderName":   "Kasun Silva",
			"mobileNumber": "0771234567",
			"nationalId":   "912345678V",
			"bidAmount":    amount,
		})
		req := httptest.NewRequest("POST", "/api/v1/bids/"+land.LandID.String(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "amount %v", amount)
	}
}

func TestPlaceBidHandler_InvalidLandID(t *testing.T) {
	app, _, _ := setupBidApp(t)

	body, _ := json.Marshal(map[string]interface{}{
		"bidderName":   "Kasun Silva",
		"mobileNumber": "0771234567",
		"nationalId":   "912345678V",
		"bidAmount":    150000,
	})
	req := httptest.NewRequest("POST", "/api/v1/bids/not-a-uuid", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPlaceBidHandler_MissingFields(t *testing.T) {
	app, _, db := setupBidApp(t)
	land := seedLand(t, db, 100000, time.Now())

	body, _ := json.Marshal(map[string]interface{}{
		"bidderName": "Kasun Silva",
		// mobileNumber, nationalId, bidAmount missing
	})
	req := httptest.NewRequest("POST", "/api/v1/bids/"+land.LandID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var parsed struct {
		Error struct {
			Kind string `json:"kind"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "ValidationError", parsed.Error.Kind)
}

func TestPlaceBidHandler_WindowClosedIs403(t *testing.T) {
	app, s, db := setupBidApp(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return now }
	land := seedLand(t, db, 100000, now.AddDate(0, 0, -30))

	body, _ := json.Marshal(map[string]interface{}{
		"bidderName":   "Kasun Silva",
		"mobileNumber": "0771234567",
		"nationalId":   "912345678V",
		"bidAmount":    150000,
	})
	req := httptest.NewRequest("POST", "/api/v1/bids/"+land.LandID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestListBidsHandler(t *testing.T) {
	app, _, db := setupBidApp(t)
	land := seedLand(t, db, 100000, time.Now())
	for i, amount := range []float64{120000, 180000} {
		require.NoError(t, db.Create(&models.Bid{
			LandID:       land.LandID,
			BidderName:   "Bidder",
			MobileNumber: "077123456" + string(rune('0'+i)),
			NationalID:   "912345678V",
			BidAmount:    amount,
		}).Error)
	}

	req := httptest.NewRequest("GET", "/api/v1/bids/"+land.LandID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed struct {
		Data struct {
			Status string       `json:"status"`
			Bids   []models.Bid `json:"bids"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "open", parsed.Data.Status)
	require.Len(t, parsed.Data.Bids, 2)
	assert.Equal(t, 180000.0, parsed.Data.Bids[0].BidAmount)
}

func TestStatsHandler_UnknownLandIs404(t *testing.T) {
	app, _, _ := setupBidApp(t)

	req := httptest.NewRequest("GET", "/api/v1/bids/550e8400-e29b-41d4-a716-446655440000/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteBidHandler_InvalidBidID(t *testing.T) {
	app, _, db := setupBidApp(t)
	land := seedLand(t, db, 100000, time.Now())

	req := httptest.NewRequest("DELETE", "/api/v1/bids/"+land.LandID.String()+"/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
