package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ResourceCategoryCrop      = "crop"
	ResourceCategoryEquipment = "equipment"
)

// Resource is a crop or equipment listing offered by a farmer. Availability
// is stored as a JSON document (e.g. {"totalUnits": 40, "unitsPerDay": 8}).
type Resource struct {
	ResourceID   uuid.UUID      `gorm:"column:resource_id;type:uuid;primaryKey" json:"resource_id"`
	OwnerID      uuid.UUID      `gorm:"column:owner_id;type:uuid;not null;index" json:"owner_id"`
	Name         string         `gorm:"column:name;not null" json:"name"`
	Category     string         `gorm:"column:category;type:varchar(20);not null" json:"category"`
	Description  string         `gorm:"column:description" json:"description"`
	PricePerUnit float64        `gorm:"column:price_per_unit;type:decimal(18,2);not null" json:"price_per_unit"`
	Unit         string         `gorm:"column:unit;type:varchar(20);default:'kg'" json:"unit"`
	Availability datatypes.JSON `gorm:"column:availability;type:json" json:"availability"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Resource) TableName() string {
	return "Resources"
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ResourceID == uuid.Nil {
		r.ResourceID = uuid.New()
	}
	return nil
}

func ValidResourceCategory(category string) bool {
	return category == ResourceCategoryCrop || category == ResourceCategoryEquipment
}
