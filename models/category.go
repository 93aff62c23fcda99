package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuCategory represents a section of the public menu.
// Inactive categories stay visible in admin listings but are excluded
// from the storefront menu.
type MenuCategory struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"not null"`
	Description  string
	DisplayOrder int  `gorm:"not null;default:0"`
	IsActive     bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
}

func (c *MenuCategory) TableName() string {
	return "menu_categories"
}

func (c *MenuCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
