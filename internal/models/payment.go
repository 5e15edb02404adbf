package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodOnline = "online"
)

// Payment is a recorded payment against an order. Receipt and order document
// fields hold opaque references; storage of the files themselves is out of scope.
type Payment struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PaymentRef    string         `gorm:"column:payment_ref;not null;uniqueIndex" json:"payment_id"`
	CompanyName   string         `gorm:"column:company_name;not null" json:"company_name"`
	Amount        float64        `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	PaymentMethod string         `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	BankReceipt   string         `gorm:"column:bank_receipt" json:"bank_receipt,omitempty"`
	OrderDocument string         `gorm:"column:order_document" json:"order_pdf,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Payment) TableName() string {
	return "Payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline:
		return true
	default:
		return false
	}
}
