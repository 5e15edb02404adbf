package payments

import (
	"context"
	"errors"

	"agromart-backend/internal/models"
	"agromart-backend/internal/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type CreatePaymentInput struct {
	PaymentRef    string
	CompanyName   string
	Amount        float64
	PaymentMethod string
	BankReceipt   string
	OrderDocument string
}

func (s *Service) CreatePayment(ctx context.Context, in CreatePaymentInput) (*models.Payment, error) {
	if in.PaymentRef == "" {
		return nil, apperr.Validation("payment_id is required")
	}
	if in.CompanyName == "" {
		return nil, apperr.Validation("company_name is required")
	}
	if in.Amount <= 0 {
		return nil, apperr.Validation("Amount must be a positive number")
	}
	if !models.ValidPaymentMethod(in.PaymentMethod) {
		return nil, apperr.Validation("Payment method must be cash, card or online")
	}

	var existing int64
	if err := s.DB.WithContext(ctx).Model(&models.Payment{}).Where("payment_ref = ?", in.PaymentRef).Count(&existing).Error; err != nil {
		return nil, apperr.Store(err)
	}
	if existing > 0 {
		return nil, apperr.Validation("payment_id is already recorded")
	}

	payment := &models.Payment{
		PaymentRef:    in.PaymentRef,
		CompanyName:   in.CompanyName,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		BankReceipt:   in.BankReceipt,
		OrderDocument: in.OrderDocument,
	}
	if err := s.DB.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return payment, nil
}

// GetPayments lists payment records newest first.
func (s *Service) GetPayments(ctx context.Context) ([]models.Payment, error) {
	var paymentList []models.Payment
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&paymentList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return paymentList, nil
}

func (s *Service) GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Payment not found")
		}
		return nil, apperr.Store(err)
	}
	return &payment, nil
}

type UpdatePaymentInput struct {
	ID            uuid.UUID
	CompanyName   *string
	Amount        *float64
	PaymentMethod *string
	BankReceipt   *string
	OrderDocument *string
}

func (s *Service) UpdatePayment(ctx context.Context, in UpdatePaymentInput) (*models.Payment, error) {
	payment, err := s.GetPaymentByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.CompanyName != nil {
		if *in.CompanyName == "" {
			return nil, apperr.Validation("company_name is required")
		}
		updates["company_name"] = *in.CompanyName
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, apperr.Validation("Amount must be a positive number")
		}
		updates["amount"] = *in.Amount
	}
	if in.PaymentMethod != nil {
		if !models.ValidPaymentMethod(*in.PaymentMethod) {
			return nil, apperr.Validation("Payment method must be cash, card or online")
		}
		updates["payment_method"] = *in.PaymentMethod
	}
	if in.BankReceipt != nil {
		updates["bank_receipt"] = *in.BankReceipt
	}
	if in.OrderDocument != nil {
		updates["order_document"] = *in.OrderDocument
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("No valid changes provided")
	}

	if err := s.DB.WithContext(ctx).Model(payment).Updates(updates).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return s.GetPaymentByID(ctx, in.ID)
}

func (s *Service) DeletePayment(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Payment{})
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Payment not found")
	}
	return nil
}
