package bids

import (
	"time"

	"agromart-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Statistics are derived summary figures over a land's current bids.
// An empty ledger yields all-zero statistics, never an error.
type Statistics struct {
	TotalBids          int     `json:"totalBids"`
	TotalBidAmount     float64 `json:"totalBidAmount"`
	HighestBid         float64 `json:"highestBid"`
	LowestBid          float64 `json:"lowestBid"`
	AverageBidAmount   float64 `json:"averageBidAmount"`
	BaseAmount         float64 `json:"baseAmount"`
	BidIncreasePercent float64 `json:"bidIncreasePercent"`
	BiddingOpen        bool    `json:"biddingOpen"`
	DaysRemaining      int     `json:"daysRemaining"`
}

// Compute derives statistics from the bid list. Currency math runs on
// decimals so the 2-dp rounding of average and increase is exact.
func Compute(land *models.Land, bidList []models.Bid, now time.Time) Statistics {
	stats := Statistics{
		TotalBids:     len(bidList),
		BaseAmount:    land.Amount,
		BiddingOpen:   land.IsBiddingOpen(now),
		DaysRemaining: land.DaysRemaining(now),
	}
	if len(bidList) == 0 {
		return stats
	}

	total := decimal.Zero
	highest := decimal.NewFromFloat(bidList[0].BidAmount)
	lowest := highest
	for _, b := range bidList {
		amount := decimal.NewFromFloat(b.BidAmount)
		total = total.Add(amount)
		if amount.GreaterThan(highest) {
			highest = amount
		}
		if amount.LessThan(lowest) {
			lowest = amount
		}
	}

	count := decimal.NewFromInt(int64(len(bidList)))
	average := total.Div(count).Round(2)

	base := decimal.NewFromFloat(land.Amount)
	increase := decimal.Zero
	if base.IsPositive() {
		increase = highest.Sub(base).Div(base).Mul(decimal.NewFromInt(100)).Round(2)
	}

	stats.TotalBidAmount = total.InexactFloat64()
	stats.HighestBid = highest.InexactFloat64()
	stats.LowestBid = lowest.InexactFloat64()
	stats.AverageBidAmount = average.InexactFloat64()
	stats.BidIncreasePercent = increase.InexactFloat64()
	return stats
}
