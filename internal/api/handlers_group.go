package api

import "Solarium/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PublicPageHandler    *handler.PublicPageHandler
	PublicProductHandler *handler.PublicProductHandler
	AdminPageHandler     *handler.AdminPageHandler
	AdminSectionHandler  *handler.AdminSectionHandler
	AdminSettingHandler  *handler.AdminSettingHandler
	AdminProductHandler  *handler.AdminProductHandler
}
