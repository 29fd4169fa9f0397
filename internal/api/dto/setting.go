package dto

// SettingDTO 全局设置项
type SettingDTO struct {
	Key      string      `json:"key"`
	Value    interface{} `json:"value"`
	IsPublic bool        `json:"is_public"`
}

// UpsertSettingDTO 设置项写入
type UpsertSettingDTO struct {
	Value    interface{} `json:"value" binding:"required"`
	IsPublic *bool       `json:"is_public"`
}
