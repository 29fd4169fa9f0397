package wire

import (
	"Solarium/internal/api"
	"Solarium/internal/api/config"
	"Solarium/internal/api/handler"
	"Solarium/internal/job"
	"Solarium/internal/pkg/cache"
	"Solarium/internal/pkg/cron"
	"Solarium/internal/repository"
	"Solarium/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	Cache   cache.Cache
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, store cache.Cache, cfg *config.Config) (*ApplicationContainer, error) {
	pageRepo := repository.NewPageRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	productRepo := repository.NewProductRepository(db)

	mediaResolver := service.NewMediaResolver(mediaRepo)
	settingService := service.NewSettingService(settingRepo, store, time.Duration(cfg.Cache.GlobalsTTL)*time.Second)
	pageService := service.NewPageService(pageRepo, mediaResolver, settingService, store, time.Duration(cfg.Cache.PageTTL)*time.Second)
	productService := service.NewProductService(productRepo, mediaResolver, store, time.Duration(cfg.Cache.ProductTTL)*time.Second)
	contentAdminService := service.NewContentAdminService(pageRepo, sectionRepo, store)

	handlers := &api.HandlersGroup{
		PublicPageHandler:    handler.NewPublicPageHandler(pageService),
		PublicProductHandler: handler.NewPublicProductHandler(productService),
		AdminPageHandler:     handler.NewAdminPageHandler(contentAdminService),
		AdminSectionHandler:  handler.NewAdminSectionHandler(contentAdminService),
		AdminSettingHandler:  handler.NewAdminSettingHandler(settingService),
		AdminProductHandler:  handler.NewAdminProductHandler(productService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewPublishJob(pageRepo, store))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		Cache:   store,
		CronMgr: cronMgr,
	}, nil
}
