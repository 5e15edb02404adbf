package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BiddingWindowDays is the number of days after land creation during which
// bids are accepted. Once elapsed the land is permanently closed for bidding.
const BiddingWindowDays = 7

// Land is an auctionable listing with a base price and a bidding window.
// Bids are append-only from the API's perspective; insertion order is kept
// via created_at for audit and reporting.
type Land struct {
	LandID           uuid.UUID      `gorm:"column:land_id;type:uuid;primaryKey" json:"land_id"`
	OwnerName        string         `gorm:"column:owner_name;not null" json:"owner_name"`
	LocationAddress  string         `gorm:"column:location_address;not null" json:"location_address"`
	LocationCity     string         `gorm:"column:location_city" json:"location_city"`
	LocationDistrict string         `gorm:"column:location_district" json:"location_district"`
	SizeAcres        float64        `gorm:"column:size_acres;type:decimal(10,2)" json:"size_acres"`
	Amount           float64        `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	Bids             []Bid          `gorm:"foreignKey:LandID;references:LandID" json:"bids,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Land) TableName() string {
	return "Lands"
}

// BeforeCreate ensures land_id is set for DBs without default uuid.
func (l *Land) BeforeCreate(tx *gorm.DB) error {
	if l.LandID == uuid.Nil {
		l.LandID = uuid.New()
	}
	return nil
}

// BiddingClosesAt is the end of the bidding window.
func (l *Land) BiddingClosesAt() time.Time {
	return l.CreatedAt.AddDate(0, 0, BiddingWindowDays)
}

// IsBiddingOpen reports whether bids are still accepted at the given time.
// The transition to closed is purely time-derived and irreversible.
func (l *Land) IsBiddingOpen(now time.Time) bool {
	return !now.After(l.BiddingClosesAt())
}

// DaysRemaining returns the whole days left in the bidding window,
// ceiling-rounded for display, never negative.
func (l *Land) DaysRemaining(now time.Time) int {
	remaining := l.BiddingClosesAt().Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// Bid is a single offer against a Land, keyed by mobile number for uniqueness
// within the land. The timestamp is server-assigned and immutable.
type Bid struct {
	BidID        uuid.UUID `gorm:"column:bid_id;type:uuid;primaryKey" json:"bid_id"`
	LandID       uuid.UUID `gorm:"column:land_id;type:uuid;not null;index" json:"land_id"`
	BidderName   string    `gorm:"column:bidder_name;not null" json:"bidderName"`
	MobileNumber string    `gorm:"column:mobile_number;not null" json:"mobileNumber"`
	NationalID   string    `gorm:"column:national_id" json:"nationalId"`
	BidAmount    float64   `gorm:"column:bid_amount;type:decimal(18,2);not null" json:"bidAmount"`
	CreatedAt    time.Time `json:"timestamp"`
}

func (Bid) TableName() string {
	return "Bids"
}

func (b *Bid) BeforeCreate(tx *gorm.DB) error {
	if b.BidID == uuid.Nil {
		b.BidID = uuid.New()
	}
	return nil
}
