package bids

import (
	"testing"
	"time"

	"agromart-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func statsLand(amount float64, createdAt time.Time) *models.Land {
	return &models.Land{Amount: amount, CreatedAt: createdAt}
}

func TestCompute_EmptyLedger(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	land := statsLand(100000, now.AddDate(0, 0, -1))

	stats := Compute(land, nil, now)
	assert.Equal(t, 0, stats.TotalBids)
	assert.Equal(t, 0.0, stats.TotalBidAmount)
	assert.Equal(t, 0.0, stats.HighestBid)
	assert.Equal(t, 0.0, stats.LowestBid)
	assert.Equal(t, 0.0, stats.AverageBidAmount)
	assert.Equal(t, 0.0, stats.BidIncreasePercent)
	assert.Equal(t, 100000.0, stats.BaseAmount)
	assert.True(t, stats.BiddingOpen)
	assert.Equal(t, 6, stats.DaysRemaining)
}

func TestCompute_Aggregates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	land := statsLand(100, now)
	bidList := []models.Bid{
		{BidAmount: 100},
		{BidAmount: 300},
		{BidAmount: 200},
	}

	stats := Compute(land, bidList, now)
	assert.Equal(t, 3, stats.TotalBids)
	assert.Equal(t, 600.0, stats.TotalBidAmount)
	assert.Equal(t, 300.0, stats.HighestBid)
	assert.Equal(t, 100.0, stats.LowestBid)
	assert.Equal(t, 200.0, stats.AverageBidAmount)
	assert.Equal(t, 200.0, stats.BidIncreasePercent)
}

func TestCompute_RoundsToTwoDecimals(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	land := statsLand(150, now)
	bidList := []models.Bid{
		{BidAmount: 160},
		{BidAmount: 170},
		{BidAmount: 185},
	}

	stats := Compute(land, bidList, now)
	// 515 / 3 = 171.666... -> 171.67
	assert.Equal(t, 171.67, stats.AverageBidAmount)
	// (185 - 150) / 150 * 100 = 23.333... -> 23.33
	assert.Equal(t, 23.33, stats.BidIncreasePercent)
}

func TestCompute_SingleBid(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	land := statsLand(100000, now.AddDate(0, 0, -8))
	bidList := []models.Bid{{BidAmount: 125000}}

	stats := Compute(land, bidList, now)
	assert.Equal(t, 1, stats.TotalBids)
	assert.Equal(t, 125000.0, stats.HighestBid)
	assert.Equal(t, 125000.0, stats.LowestBid)
	assert.Equal(t, 125000.0, stats.AverageBidAmount)
	assert.Equal(t, 25.0, stats.BidIncreasePercent)
	assert.False(t, stats.BiddingOpen)
	assert.Equal(t, 0, stats.DaysRemaining)
}
