package lands

import (
	"context"
	"errors"
	"time"

	"agromart-backend/internal/models"
	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type CreateLandInput struct {
	OwnerName        string
	LocationAddress  string
	LocationCity     string
	LocationDistrict string
	SizeAcres        float64
	Amount           float64
}

func (s *Service) CreateLand(ctx context.Context, in CreateLandInput) (*models.Land, error) {
	if !validation.IsValidFullname(in.OwnerName) {
		return nil, apperr.Validation("Owner name must contain only letters, spaces, hyphens and apostrophes")
	}
	if in.LocationAddress == "" {
		return nil, apperr.Validation("Location address is required")
	}
	if in.Amount <= 0 {
		return nil, apperr.Validation("Base amount must be a positive number")
	}

	land := &models.Land{
		OwnerName:        in.OwnerName,
		LocationAddress:  in.LocationAddress,
		LocationCity:     in.LocationCity,
		LocationDistrict: in.LocationDistrict,
		SizeAcres:        in.SizeAcres,
		Amount:           in.Amount,
	}
	if err := s.DB.WithContext(ctx).Create(land).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return land, nil
}

func (s *Service) GetAllLands(ctx context.Context) ([]models.Land, error) {
	var landList []models.Land
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&landList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return landList, nil
}

// LandView is a land plus its window status for display.
type LandView struct {
	models.Land
	BiddingOpen   bool `json:"biddingOpen"`
	DaysRemaining int  `json:"daysRemaining"`
}

func (s *Service) GetLandByID(ctx context.Context, landID uuid.UUID) (*LandView, error) {
	var land models.Land
	if err := s.DB.WithContext(ctx).
		Preload("Bids", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("land_id = ?", landID).First(&land).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Land not found")
		}
		return nil, apperr.Store(err)
	}
	now := s.now()
	return &LandView{
		Land:          land,
		BiddingOpen:   land.IsBiddingOpen(now),
		DaysRemaining: land.DaysRemaining(now),
	}, nil
}

// GetActiveLands returns lands whose bidding window is still open. The
// open/closed state is never stored; it is derived from created_at.
func (s *Service) GetActiveLands(ctx context.Context) ([]models.Land, error) {
	cutoff := s.now().AddDate(0, 0, -models.BiddingWindowDays)
	var landList []models.Land
	if err := s.DB.WithContext(ctx).
		Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&landList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return landList, nil
}

func (s *Service) GetClosedLands(ctx context.Context) ([]models.Land, error) {
	cutoff := s.now().AddDate(0, 0, -models.BiddingWindowDays)
	var landList []models.Land
	if err := s.DB.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Order("created_at DESC").
		Find(&landList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return landList, nil
}

// DeleteLand removes the land and its bids.
func (s *Service) DeleteLand(ctx context.Context, landID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("land_id = ?", landID).Delete(&models.Land{})
		if res.Error != nil {
			return apperr.Store(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("Land not found")
		}
		if err := tx.Where("land_id = ?", landID).Delete(&models.Bid{}).Error; err != nil {
			return apperr.Store(err)
		}
		return nil
	})
}
