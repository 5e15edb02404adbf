package bids

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"agromart-backend/internal/models"
	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service owns the append-only bid ledger of a land. Placement is serialized
// per land through the Locker so the duplicate-mobile and window checks cannot
// race with a concurrent append for the same land.
type Service struct {
	DB     *gorm.DB
	Locker *Locker
	Now    func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type PlaceBidInput struct {
	LandID       uuid.UUID
	BidderName   string
	MobileNumber string
	NationalID   string
	BidAmount    float64
}

// LandInfo is the land summary returned alongside bid data.
type LandInfo struct {
	ID            uuid.UUID `json:"id"`
	OwnerName     string    `json:"ownerName"`
	Location      string    `json:"location"`
	BaseAmount    float64   `json:"baseAmount"`
	DaysRemaining int       `json:"daysRemaining"`
}

type PlaceBidResult struct {
	Bid  models.Bid `json:"bid"`
	Land LandInfo   `json:"landInfo"`
}

// PlaceBid validates and appends a candidate bid to a land's ledger.
// The timestamp is server-assigned; the ledger is never reordered in place.
func (s *Service) PlaceBid(ctx context.Context, in PlaceBidInput) (*PlaceBidResult, error) {
	in.BidderName = strings.TrimSpace(in.BidderName)
	in.MobileNumber = strings.TrimSpace(in.MobileNumber)
	in.NationalID = strings.TrimSpace(in.NationalID)

	if in.BidderName == "" || in.MobileNumber == "" || in.NationalID == "" {
		return nil, apperr.Validation("All fields are required: bidderName, mobileNumber, nationalId, bidAmount")
	}
	if !validation.IsValidMobileNumber(in.MobileNumber) {
		return nil, apperr.Validation("Please enter a valid mobile number (10-15 digits)")
	}
	if !validation.IsValidNationalID(in.NationalID) {
		return nil, apperr.Validation("Please enter a valid national id number")
	}
	if in.BidAmount <= 0 {
		return nil, apperr.Validation("Bid amount must be a positive number")
	}

	if s.Locker != nil {
		release, err := s.Locker.Acquire(ctx, in.LandID)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	var result *PlaceBidResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var land models.Land
		if err := tx.Where("land_id = ?", in.LandID).First(&land).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Land not found")
			}
			return apperr.Store(err)
		}

		now := s.now()
		if !land.IsBiddingOpen(now) {
			return apperr.WindowClosed("Bidding period has expired. Bids are only accepted within 7 days of land creation.")
		}
		if in.BidAmount <= land.Amount {
			return apperr.BidTooLow("Bid amount must be higher than the base amount of %.2f", land.Amount)
		}

		var existing int64
		if err := tx.Model(&models.Bid{}).
			Where("land_id = ? AND mobile_number = ?", in.LandID, in.MobileNumber).
			Count(&existing).Error; err != nil {
			return apperr.Store(err)
		}
		if existing > 0 {
			return apperr.DuplicateBidder("You have already placed a bid for this land. Multiple bids from the same mobile number are not allowed.")
		}

		bid := models.Bid{
			LandID:       in.LandID,
			BidderName:   in.BidderName,
			MobileNumber: in.MobileNumber,
			NationalID:   in.NationalID,
			BidAmount:    in.BidAmount,
			CreatedAt:    now,
		}
		if err := tx.Create(&bid).Error; err != nil {
			return apperr.Store(err)
		}

		result = &PlaceBidResult{
			Bid:  bid,
			Land: landInfo(&land, now),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type BidListResult struct {
	Status        string       `json:"status"`
	Bids          []models.Bid `json:"bids"`
	DaysRemaining int          `json:"daysRemaining"`
	Land          LandInfo     `json:"landInfo"`
}

// ListBids returns the land's bids sorted by amount descending for display.
// Ties keep insertion order (stable sort over the audit ordering).
func (s *Service) ListBids(ctx context.Context, landID uuid.UUID) (*BidListResult, error) {
	land, bidList, err := s.loadLedger(ctx, landID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bidList, func(i, j int) bool {
		return bidList[i].BidAmount > bidList[j].BidAmount
	})

	now := s.now()
	status := "open"
	if !land.IsBiddingOpen(now) {
		status = "closed"
	}
	return &BidListResult{
		Status:        status,
		Bids:          bidList,
		DaysRemaining: land.DaysRemaining(now),
		Land:          landInfo(land, now),
	}, nil
}

// DeleteBid removes exactly one bid by id. There is no window restriction on
// deletion (administrative override).
func (s *Service) DeleteBid(ctx context.Context, landID, bidID uuid.UUID) error {
	var land models.Land
	if err := s.DB.WithContext(ctx).Where("land_id = ?", landID).First(&land).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Land not found")
		}
		return apperr.Store(err)
	}

	res := s.DB.WithContext(ctx).Where("bid_id = ? AND land_id = ?", bidID, landID).Delete(&models.Bid{})
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Bid not found")
	}
	return nil
}

// Stats recomputes the aggregate statistics over the currently persisted ledger.
func (s *Service) Stats(ctx context.Context, landID uuid.UUID) (*Statistics, error) {
	land, bidList, err := s.loadLedger(ctx, landID)
	if err != nil {
		return nil, err
	}
	stats := Compute(land, bidList, s.now())
	return &stats, nil
}

// loadLedger loads a land and its bids in insertion (audit) order.
func (s *Service) loadLedger(ctx context.Context, landID uuid.UUID) (*models.Land, []models.Bid, error) {
	var land models.Land
	if err := s.DB.WithContext(ctx).Where("land_id = ?", landID).First(&land).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("Land not found")
		}
		return nil, nil, apperr.Store(err)
	}
	var bidList []models.Bid
	if err := s.DB.WithContext(ctx).
		Where("land_id = ?", landID).
		Order("created_at ASC").
		Find(&bidList).Error; err != nil {
		return nil, nil, apperr.Store(err)
	}
	return &land, bidList, nil
}

func landInfo(land *models.Land, now time.Time) LandInfo {
	return LandInfo{
		ID:            land.LandID,
		OwnerName:     land.OwnerName,
		Location:      land.LocationAddress,
		BaseAmount:    land.Amount,
		DaysRemaining: land.DaysRemaining(now),
	}
}
