package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleBuyer  = "buyer"
	RoleFarmer = "farmer"
)

// User is a registered marketplace participant (buyer or farmer).
// The password hash is never serialized.
type User struct {
	UserID       uuid.UUID      `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	FullName     string         `gorm:"column:full_name;not null" json:"full_name"`
	Email        string         `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Password     string         `gorm:"column:password;not null" json:"-"`
	Role         string         `gorm:"column:role;type:varchar(20);not null" json:"role"`
	MobileNumber string         `gorm:"column:mobile_number" json:"mobile_number"`
	Address      string         `gorm:"column:address" json:"address"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "Users"
}

// BeforeCreate sets UUID if not set (for DBs without gen_random_uuid).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

func ValidRole(role string) bool {
	return role == RoleBuyer || role == RoleFarmer
}
