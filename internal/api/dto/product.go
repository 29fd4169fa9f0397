package dto

// ProductDTO 公共商品视图，ImageURL 由媒体解析得到
type ProductDTO struct {
	ID          uint64                 `json:"id"`
	Name        string                 `json:"name"`
	Slug        string                 `json:"slug"`
	Description string                 `json:"description"`
	PriceCents  int64                  `json:"price_cents"`
	Currency    string                 `json:"currency"`
	ImageURL    *string                `json:"image_url"`
	Specs       map[string]interface{} `json:"specs"`
}

// ProductBaseDTO 管理端商品写入
type ProductBaseDTO struct {
	Name        string                 `json:"name" binding:"required" validate:"min=1,max=255"`
	Slug        string                 `json:"slug" binding:"required" validate:"min=1,max=128"`
	Description string                 `json:"description"`
	PriceCents  int64                  `json:"price_cents" validate:"min=0"`
	Currency    string                 `json:"currency" validate:"omitempty,len=3"`
	IsActive    *bool                  `json:"is_active"`
	ImageID     *uint64                `json:"image_id"`
	Specs       map[string]interface{} `json:"specs"`
}
