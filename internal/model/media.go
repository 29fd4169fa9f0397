package model

import (
	"time"
)

type Media struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	URL       string    `gorm:"type:varchar(512)" json:"url"`
	ObjectKey string    `gorm:"type:varchar(512)" json:"object_key"` // 为空时直接使用 URL
	AltText   string    `gorm:"type:varchar(255)" json:"alt_text"`
	Type      string    `gorm:"type:varchar(16);not null;default:'image'" json:"type"` // image / video / document / audio
	Width     int       `gorm:"not null;default:0" json:"width"`
	Height    int       `gorm:"not null;default:0" json:"height"`
	SizeBytes int64     `gorm:"not null;default:0" json:"size_bytes"`
	// 弱引用：媒体可挂载到任意实体，核心只依赖 ID→URL 查询
	EntityType string   `gorm:"type:varchar(32);index:idx_entity" json:"entity_type"`
	EntityID   uint64   `gorm:"index:idx_entity" json:"entity_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Media) TableName() string {
	return "media"
}
