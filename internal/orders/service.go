package orders

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

type CreateOrderInput struct {
	BuyerID         uuid.UUID
	FarmerID        uuid.UUID
	CropID          uuid.UUID
	PricePerKg      float64
	Quantity        float64
	Unit            string
	PaymentMethod   string
	DeliveryAddress string
}

// CreateOrder records a confirmed purchase. The total is derived from
// quantity and price per kg; clients cannot supply their own total.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.BuyerID == uuid.Nil || in.FarmerID == uuid.Nil || in.CropID == uuid.Nil {
		return nil, apperr.Validation("buyer_id, farmer_id and crop_id are required")
	}
	if in.PricePerKg <= 0 {
		return nil, apperr.Validation("Price per kg must be a positive number")
	}
	if in.Quantity <= 0 {
		return nil, apperr.Validation("Quantity must be a positive number")
	}
	if in.DeliveryAddress == "" {
		return nil, apperr.Validation("Delivery address is required")
	}

	unit := in.Unit
	if unit == "" {
		unit = "kg"
	}
	method := in.PaymentMethod
	if method == "" {
		method = models.OrderPaymentCashOnDelivery
	}
	if method != models.OrderPaymentCashOnDelivery && method != models.OrderPaymentOnline {
		return nil, apperr.Validation("Payment method must be cash on delivery or online")
	}

	order := &models.Order{
		BuyerID:         in.BuyerID,
		FarmerID:        in.FarmerID,
		CropID:          in.CropID,
		PricePerKg:      in.PricePerKg,
		Quantity:        in.Quantity,
		Unit:            unit,
		PaymentMethod:   method,
		DeliveryAddress: in.DeliveryAddress,
	}
	if err := s.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return order, nil
}

func (s *Service) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var orderList []models.Order
	if err := s.DB.WithContext(ctx).Order("order_date DESC").Find(&orderList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return orderList, nil
}

func (s *Service) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.DB.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, apperr.Store(err)
	}
	return &order, nil
}

func (s *Service) GetBuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]models.Order, error) {
	var orderList []models.Order
	if err := s.DB.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("order_date DESC").
		Find(&orderList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return orderList, nil
}

func (s *Service) GetFarmerOrders(ctx context.Context, farmerID uuid.UUID) ([]models.Order, error) {
	var orderList []models.Order
	if err := s.DB.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("order_date DESC").
		Find(&orderList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return orderList, nil
}

type UpdateOrderInput struct {
	OrderID         uuid.UUID
	PricePerKg      *float64
	Quantity        *float64
	DeliveryAddress *string
}

// UpdateOrder edits quantity, price or address; the stored total is
// recomputed through the model's save hook.
func (s *Service) UpdateOrder(ctx context.Context, in UpdateOrderInput) (*models.Order, error) {
	order, err := s.GetOrderByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}

	changed := false
	if in.PricePerKg != nil {
		if *in.PricePerKg <= 0 {
			return nil, apperr.Validation("Price per kg must be a positive number")
		}
		order.PricePerKg = *in.PricePerKg
		changed = true
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, apperr.Validation("Quantity must be a positive number")
		}
		order.Quantity = *in.Quantity
		changed = true
	}
	if in.DeliveryAddress != nil {
		if *in.DeliveryAddress == "" {
			return nil, apperr.Validation("Delivery address is required")
		}
		order.DeliveryAddress = *in.DeliveryAddress
		changed = true
	}
	if !changed {
		return nil, apperr.Validation("No valid changes provided")
	}

	if err := s.DB.WithContext(ctx).Save(order).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("order_id = ?", orderID).Delete(&models.Order{})
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Order not found")
	}
	return nil
}
