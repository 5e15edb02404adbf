package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const OrderPaymentCashOnDelivery = "cash on delivery"
const OrderPaymentOnline = "online"

// Order is a confirmed purchase of a crop between a buyer and a farmer.
// TotalPrice is always derived from quantity and price per kg.
type Order struct {
	OrderID         uuid.UUID      `gorm:"column:order_id;type:uuid;primaryKey" json:"order_id"`
	BuyerID         uuid.UUID      `gorm:"column:buyer_id;type:uuid;not null;index" json:"buyer_id"`
	FarmerID        uuid.UUID      `gorm:"column:farmer_id;type:uuid;not null;index" json:"farmer_id"`
	CropID          uuid.UUID      `gorm:"column:crop_id;type:uuid;not null" json:"crop_id"`
	PricePerKg      float64        `gorm:"column:price_per_kg;type:decimal(18,2);not null" json:"price_per_kg"`
	Quantity        float64        `gorm:"column:quantity;type:decimal(18,2);not null" json:"quantity"`
	Unit            string         `gorm:"column:unit;type:varchar(20);default:'kg'" json:"unit"`
	TotalPrice      float64        `gorm:"column:total_price;type:decimal(18,2);not null" json:"total_price"`
	PaymentMethod   string         `gorm:"column:payment_method;type:varchar(30);default:'cash on delivery'" json:"payment_method"`
	DeliveryAddress string         `gorm:"column:delivery_address;not null" json:"delivery_address"`
	OrderDate       time.Time      `gorm:"column:order_date" json:"order_date"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Order) TableName() string {
	return "Orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderID == uuid.Nil {
		o.OrderID = uuid.New()
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	return nil
}

// BeforeSave recomputes the total so quantity and price edits can never
// leave a stale total behind.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	if o.Quantity > 0 && o.PricePerKg > 0 {
		o.TotalPrice = o.Quantity * o.PricePerKg
	}
	return nil
}
