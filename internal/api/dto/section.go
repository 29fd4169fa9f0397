package dto

// AdminSectionDTO 管理端区块视图
type AdminSectionDTO struct {
	ID           uint64                 `json:"id"`
	PageID       uint64                 `json:"page_id"`
	SectionType  string                 `json:"section_type"`
	DisplayOrder int                    `json:"display_order"`
	IsVisible    bool                   `json:"is_visible"`
	Content      map[string]interface{} `json:"content"`
}

type CreateSectionDTO struct {
	PageID       uint64                 `json:"page_id" binding:"required"`
	SectionType  string                 `json:"section_type" binding:"required" validate:"min=1,max=64"`
	DisplayOrder int                    `json:"display_order"`
	IsVisible    *bool                  `json:"is_visible"`
	Content      map[string]interface{} `json:"content"`
}

// UpdateSectionDTO 区块更新白名单字段，nil 表示不修改
type UpdateSectionDTO struct {
	SectionType  *string                `json:"section_type" validate:"omitempty,min=1,max=64"`
	DisplayOrder *int                   `json:"display_order"`
	IsVisible    *bool                  `json:"is_visible"`
	Content      map[string]interface{} `json:"content"`
}

type ReorderItemDTO struct {
	ID           uint64 `json:"id" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

type ReorderSectionsDTO struct {
	Items []ReorderItemDTO `json:"items" binding:"required,min=1,dive"`
}
