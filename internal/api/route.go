package api

import (
	"Solarium/internal/api/middleware"
	"Solarium/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// 公共内容接口，无需登录
		publicGroup := apiGroup.Group("/public")
		{
			publicGroup.GET("/pages/home", group.PublicPageHandler.GetHome)
			publicGroup.GET("/pages/:slug", group.PublicPageHandler.GetPage)
			publicGroup.GET("/products", group.PublicProductHandler.ListProducts)
			publicGroup.GET("/products/:slug", group.PublicProductHandler.GetProduct)
		}

		// 管理端接口，需要登录 & 拥有 ADMIN 角色
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuditMiddleware())
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
		{
			adminGroup.GET("/pages", group.AdminPageHandler.ListPages)
			adminGroup.GET("/pages/:page_id", group.AdminPageHandler.GetPage)
			adminGroup.PUT("/pages/:page_id", group.AdminPageHandler.UpdatePage)

			adminGroup.POST("/sections", group.AdminSectionHandler.CreateSection)
			adminGroup.POST("/sections/reorder", group.AdminSectionHandler.ReorderSections)
			adminGroup.PUT("/sections/:section_id", group.AdminSectionHandler.UpdateSection)
			adminGroup.DELETE("/sections/:section_id", group.AdminSectionHandler.DeleteSection)

			adminGroup.GET("/global-settings", group.AdminSettingHandler.ListSettings)
			adminGroup.PUT("/global-settings/:key", group.AdminSettingHandler.UpsertSetting)

			adminGroup.POST("/products", group.AdminProductHandler.CreateProduct)
			adminGroup.PUT("/products/:product_id", group.AdminProductHandler.UpdateProduct)
			adminGroup.DELETE("/products/:product_id", group.AdminProductHandler.DeleteProduct)
		}
	}

	return r
}
