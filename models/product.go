package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a menu item. CategoryID is a weak reference: a
// product whose category no longer exists is kept in admin listings and
// simply never surfaces on the public menu.
type Product struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	CategoryID   string `gorm:"type:uuid;index"`
	Name         string `gorm:"not null"`
	Description  string
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL     string
	IsAvailable  bool `gorm:"not null;default:true"`
	DisplayOrder int  `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
