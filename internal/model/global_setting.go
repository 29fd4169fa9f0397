package model

import (
	"time"
)

type GlobalSetting struct {
	ID        uint64      `gorm:"primaryKey" json:"id"`
	Key       string      `gorm:"column:setting_key;type:varchar(128);uniqueIndex;not null" json:"key"` // 点分命名空间，如 footer.contact_info
	Value     interface{} `gorm:"serializer:json" json:"value"`
	IsPublic  bool        `gorm:"type:tinyint(1);not null;default:0" json:"is_public"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (GlobalSetting) TableName() string {
	return "global_settings"
}
