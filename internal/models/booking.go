package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusRejected  = "Rejected"
)

// Booking is a farmer's request to use a resource for a period of time.
// Status starts at Pending and is moved by the resource owner.
type Booking struct {
	BookingID        uuid.UUID      `gorm:"column:booking_id;type:uuid;primaryKey" json:"booking_id"`
	ResourceID       uuid.UUID      `gorm:"column:resource_id;type:uuid;not null;index" json:"resource_id"`
	FarmerID         uuid.UUID      `gorm:"column:farmer_id;type:uuid;not null;index" json:"farmer_id"`
	FarmerName       string         `gorm:"column:farmer_name" json:"farmer_name"`
	FarmerContact    string         `gorm:"column:farmer_contact" json:"farmer_contact"`
	FarmerEmail      string         `gorm:"column:farmer_email" json:"farmer_email"`
	Date             time.Time      `gorm:"column:date" json:"date"`
	DurationHours    int            `gorm:"column:duration_hours" json:"duration_hours"`
	PartialPayment   bool           `gorm:"column:partial_payment" json:"partial_payment"`
	TotalAmount      float64        `gorm:"column:total_amount;type:decimal(18,2)" json:"total_amount"`
	DeliveryLocation string         `gorm:"column:delivery_location" json:"delivery_location"`
	DeliveryAddress  string         `gorm:"column:delivery_address" json:"delivery_address"`
	Status           string         `gorm:"column:status;type:varchar(20);default:'Pending'" json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Booking) TableName() string {
	return "Bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return nil
}

func ValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected:
		return true
	default:
		return false
	}
}
