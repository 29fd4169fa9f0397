package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint64                 `gorm:"primaryKey" json:"id"`
	Name        string                 `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string                 `gorm:"type:varchar(128);uniqueIndex;not null" json:"slug"`
	Description string                 `gorm:"type:text" json:"description"`
	PriceCents  int64                  `gorm:"not null;default:0" json:"price_cents"`
	Currency    string                 `gorm:"type:varchar(8);not null;default:'EUR'" json:"currency"`
	IsActive    bool                   `gorm:"type:tinyint(1);not null;default:1" json:"is_active"`
	ImageID     *uint64                `json:"image_id"`
	Specs       map[string]interface{} `gorm:"serializer:json" json:"specs"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	DeletedAt   gorm.DeletedAt         `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
