package users

import (
	"context"
	"errors"
	"strings"

	"agromart-backend/internal/models"
	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type RegisterInput struct {
	FullName     string
	Email        string
	Password     string
	Role         string
	MobileNumber string
	Address      string
}

// Register creates a buyer or farmer account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if !validation.IsValidFullname(in.FullName) {
		return nil, apperr.Validation("Full name must contain only letters, spaces, hyphens and apostrophes")
	}
	if !validation.IsValidEmail(in.Email) {
		return nil, apperr.Validation("Please enter a valid email address")
	}
	if !validation.IsValidPassword(in.Password) {
		return nil, apperr.Validation("Password must be at least 8 characters and include a letter, a number and a special character")
	}
	if !models.ValidRole(in.Role) {
		return nil, apperr.Validation("Role must be buyer or farmer")
	}
	if in.MobileNumber != "" && !validation.IsValidMobileNumber(in.MobileNumber) {
		return nil, apperr.Validation("Please enter a valid mobile number (10-15 digits)")
	}

	var existing int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", in.Email).Count(&existing).Error; err != nil {
		return nil, apperr.Store(err)
	}
	if existing > 0 {
		return nil, apperr.Validation("Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Store(err)
	}

	user := &models.User{
		FullName:     in.FullName,
		Email:        in.Email,
		Password:     string(hash),
		Role:         in.Role,
		MobileNumber: in.MobileNumber,
		Address:      in.Address,
	}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Store(err)
	}
	return &user, nil
}

func (s *Service) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	q := s.DB.WithContext(ctx).Order("created_at DESC")
	if role != "" {
		if !models.ValidRole(role) {
			return nil, apperr.Validation("Role must be buyer or farmer")
		}
		q = q.Where("role = ?", role)
	}
	var userList []models.User
	if err := q.Find(&userList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return userList, nil
}

type UpdateUserInput struct {
	UserID       uuid.UUID
	FullName     *string
	MobileNumber *string
	Address      *string
}

func (s *Service) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	user, err := s.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if !validation.IsValidFullname(name) {
			return nil, apperr.Validation("Full name must contain only letters, spaces, hyphens and apostrophes")
		}
		updates["full_name"] = name
	}
	if in.MobileNumber != nil {
		if !validation.IsValidMobileNumber(*in.MobileNumber) {
			return nil, apperr.Validation("Please enter a valid mobile number (10-15 digits)")
		}
		updates["mobile_number"] = *in.MobileNumber
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("No valid changes provided")
	}

	if err := s.DB.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return s.GetUser(ctx, in.UserID)
}

func (s *Service) RemoveUser(ctx context.Context, userID uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.User{})
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}
