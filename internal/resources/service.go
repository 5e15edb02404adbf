package resources

import (
	"context"
	"errors"

	"agromart-backend/internal/models"
	"agromart-backend/internal/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type CreateResourceInput struct {
	OwnerID      uuid.UUID
	Name         string
	Category     string
	Description  string
	PricePerUnit float64
	Unit         string
	Availability datatypes.JSON
}

func (s *Service) CreateResource(ctx context.Context, in CreateResourceInput) (*models.Resource, error) {
	if in.OwnerID == uuid.Nil {
		return nil, apperr.Validation("owner_id is required")
	}
	if in.Name == "" {
		return nil, apperr.Validation("Resource name is required")
	}
	if !models.ValidResourceCategory(in.Category) {
		return nil, apperr.Validation("Category must be crop or equipment")
	}
	if in.PricePerUnit <= 0 {
		return nil, apperr.Validation("Price per unit must be a positive number")
	}

	unit := in.Unit
	if unit == "" {
		unit = "kg"
	}
	resource := &models.Resource{
		OwnerID:      in.OwnerID,
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		PricePerUnit: in.PricePerUnit,
		Unit:         unit,
		Availability: in.Availability,
	}
	if err := s.DB.WithContext(ctx).Create(resource).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return resource, nil
}

func (s *Service) GetAllResources(ctx context.Context, category string) ([]models.Resource, error) {
	q := s.DB.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		if !models.ValidResourceCategory(category) {
			return nil, apperr.Validation("Category must be crop or equipment")
		}
		q = q.Where("category = ?", category)
	}
	var resourceList []models.Resource
	if err := q.Find(&resourceList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return resourceList, nil
}

func (s *Service) GetResourceByID(ctx context.Context, resourceID uuid.UUID) (*models.Resource, error) {
	var resource models.Resource
	if err := s.DB.WithContext(ctx).Where("resource_id = ?", resourceID).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Resource not found")
		}
		return nil, apperr.Store(err)
	}
	return &resource, nil
}

func (s *Service) GetOwnerResources(ctx context.Context, ownerID uuid.UUID) ([]models.Resource, error) {
	var resourceList []models.Resource
	if err := s.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&resourceList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return resourceList, nil
}

type UpdateResourceInput struct {
	ResourceID   uuid.UUID
	Name         *string
	Description  *string
	PricePerUnit *float64
	Availability datatypes.JSON
}

func (s *Service) UpdateResource(ctx context.Context, in UpdateResourceInput) (*models.Resource, error) {
	resource, err := s.GetResourceByID(ctx, in.ResourceID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperr.Validation("Resource name is required")
		}
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.PricePerUnit != nil {
		if *in.PricePerUnit <= 0 {
			return nil, apperr.Validation("Price per unit must be a positive number")
		}
		updates["price_per_unit"] = *in.PricePerUnit
	}
	if in.Availability != nil {
		updates["availability"] = in.Availability
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("No valid changes provided")
	}

	if err := s.DB.WithContext(ctx).Model(resource).Updates(updates).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return s.GetResourceByID(ctx, in.ResourceID)
}

func (s *Service) DeleteResource(ctx context.Context, resourceID uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("resource_id = ?", resourceID).Delete(&models.Resource{})
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Resource not found")
	}
	return nil
}
