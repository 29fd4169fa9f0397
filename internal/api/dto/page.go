package dto

import "time"

// PageMetaDTO 页面元信息
type PageMetaDTO struct {
	ID              uint64 `json:"id"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
}

// SectionDTO 公共载荷中的区块，content 为已附加媒体URL的副本
type SectionDTO struct {
	ID      uint64                 `json:"id"`
	Type    string                 `json:"type"`
	Order   int                    `json:"order"`
	Content map[string]interface{} `json:"content"`
}

// StatDTO 由 stats.<name>.value / stats.<name>.label 设置项派生
type StatDTO struct {
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

// PublicPageDTO 页面组装结果，即缓存的完整载荷
type PublicPageDTO struct {
	Page     PageMetaDTO            `json:"page"`
	Sections []SectionDTO           `json:"sections"`
	Globals  map[string]interface{} `json:"globals"`
	Stats    []StatDTO              `json:"stats"`
}

// PageFallbackDTO 页面缺失时给前端展示的兜底文案
type PageFallbackDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NotFoundDTO 404 返回体的 data 部分
type NotFoundDTO struct {
	Fallback PageFallbackDTO `json:"fallback"`
}

// AdminPageDTO 管理端页面视图，含全部区块（包括隐藏的）
type AdminPageDTO struct {
	ID              uint64            `json:"id"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Status          string            `json:"status"`
	MetaTitle       string            `json:"meta_title"`
	MetaDescription string            `json:"meta_description"`
	PublishAt       *time.Time        `json:"publish_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Sections        []AdminSectionDTO `json:"sections,omitempty"`
}

// UpdatePageDTO 页面更新白名单字段，nil 表示不修改
type UpdatePageDTO struct {
	Title           *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Slug            *string    `json:"slug" validate:"omitempty,min=1,max=128"`
	Status          *string    `json:"status" validate:"omitempty,oneof=draft published scheduled archived"`
	PublishAt       *time.Time `json:"publish_at"`
	MetaTitle       *string    `json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string    `json:"meta_description" validate:"omitempty,max=512"`
}
