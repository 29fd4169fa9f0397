package model

import (
	"time"

	"gorm.io/gorm"
)

type Page struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug            string     `gorm:"type:varchar(128);uniqueIndex;not null" json:"slug"`
	Status          string     `gorm:"type:varchar(16);not null;default:'draft';index:idx_status_publish_at" json:"status"` // draft / published / scheduled / archived
	MetaTitle       string     `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string     `gorm:"type:varchar(512)" json:"meta_description"`
	PublishAt       *time.Time `gorm:"index:idx_status_publish_at" json:"publish_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// 关联关系
	Sections []PageSection `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`
}

func (Page) TableName() string {
	return "pages"
}
