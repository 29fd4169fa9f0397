package model

import (
	"time"
)

type PageSection struct {
	ID           uint64                 `gorm:"primaryKey" json:"id"`
	PageID       uint64                 `gorm:"not null;index:idx_page_id_order" json:"page_id"`
	SectionType  string                 `gorm:"type:varchar(64);not null" json:"section_type"` // e.g. hero, stats, cta
	DisplayOrder int                    `gorm:"not null;default:0;index:idx_page_id_order" json:"display_order"`
	IsVisible    bool                   `gorm:"type:tinyint(1);not null;default:1" json:"is_visible"`
	Content      map[string]interface{} `gorm:"serializer:json" json:"content"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func (PageSection) TableName() string {
	return "page_sections"
}
