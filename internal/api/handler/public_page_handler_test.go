package handler_test

import (
	"Solarium/internal/api"
	"Solarium/internal/api/handler"
	"Solarium/internal/model"
	"Solarium/internal/pkg/cache"
	"Solarium/internal/pkg/consts"
	"Solarium/internal/repository"
	"Solarium/internal/service"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ginOnce sync.Once

func setupPublicAPI(t *testing.T) (*gin.Engine, *gorm.DB, func()) {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(
		&model.Page{},
		&model.PageSection{},
		&model.Media{},
		&model.GlobalSetting{},
		&model.Product{},
	); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	store := cache.NewMemoryCache(0, 0)

	pageRepo := repository.NewPageRepository(gdb)
	sectionRepo := repository.NewSectionRepository(gdb)
	resolver := service.NewMediaResolver(repository.NewMediaRepository(gdb))
	settingSvc := service.NewSettingService(repository.NewSettingRepository(gdb), store, 5*time.Minute)
	pageSvc := service.NewPageService(pageRepo, resolver, settingSvc, store, time.Minute)
	productSvc := service.NewProductService(repository.NewProductRepository(gdb), resolver, store, time.Minute)
	contentSvc := service.NewContentAdminService(pageRepo, sectionRepo, store)

	router := api.SetupRouter(&api.HandlersGroup{
		PublicPageHandler:    handler.NewPublicPageHandler(pageSvc),
		PublicProductHandler: handler.NewPublicProductHandler(productSvc),
		AdminPageHandler:     handler.NewAdminPageHandler(contentSvc),
		AdminSectionHandler:  handler.NewAdminSectionHandler(contentSvc),
		AdminSettingHandler:  handler.NewAdminSettingHandler(settingSvc),
		AdminProductHandler:  handler.NewAdminProductHandler(productSvc),
	})

	return router, gdb, func() {
		store.Close()
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func seedPublicHome(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	if err := gdb.Create(&model.Media{ID: 10, URL: "https://x/img.png", Type: consts.MediaTypeImage}).Error; err != nil {
		t.Fatalf("failed to seed media: %v", err)
	}

	page := &model.Page{
		Title:  "首页",
		Slug:   "home",
		Status: consts.PageStatusPublished,
		Sections: []model.PageSection{
			{SectionType: "hero", DisplayOrder: 0, IsVisible: true, Content: map[string]interface{}{
				"headline":      "阳光为家供电",
				"hero_image_id": float64(10),
			}},
		},
	}
	if err := gdb.Create(page).Error; err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}

	if err := gdb.Create(&model.GlobalSetting{Key: "site.name", Value: "Solarium", IsPublic: true}).Error; err != nil {
		t.Fatalf("failed to seed setting: %v", err)
	}
}

type envelope struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env
}

func TestGetPageReturnsAssembledPayloadWithCacheHeader(t *testing.T) {
	router, gdb, cleanup := setupPublicAPI(t)
	defer cleanup()
	seedPublicHome(t, gdb)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/pages/home", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("X-Cache"); got != "MISS" {
		t.Fatalf("expected X-Cache MISS on first read, got %q", got)
	}

	env := decodeEnvelope(t, w)
	if env.Code != 200 {
		t.Fatalf("unexpected business code: %d", env.Code)
	}

	page := env.Data["page"].(map[string]interface{})
	if page["slug"] != "home" {
		t.Fatalf("unexpected page: %v", page)
	}

	sections := env.Data["sections"].([]interface{})
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	content := sections[0].(map[string]interface{})["content"].(map[string]interface{})
	if content["hero_image_url"] != "https://x/img.png" {
		t.Fatalf("expected resolved hero_image_url, got %v", content["hero_image_url"])
	}

	globals := env.Data["globals"].(map[string]interface{})
	if globals["site.name"] != "Solarium" {
		t.Fatalf("unexpected globals: %v", globals)
	}

	// 第二次请求命中缓存
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/public/pages/home", nil))
	if got := w2.Header().Get("X-Cache"); got != "HIT" {
		t.Fatalf("expected X-Cache HIT on second read, got %q", got)
	}
}

func TestGetHomeAliasMatchesSlugRoute(t *testing.T) {
	router, gdb, cleanup := setupPublicAPI(t)
	defer cleanup()
	seedPublicHome(t, gdb)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/pages/home", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	env := decodeEnvelope(t, w)
	if env.Data["page"].(map[string]interface{})["slug"] != "home" {
		t.Fatalf("expected home alias to serve slug=home, got %v", env.Data["page"])
	}
}

func TestGetPageUnknownSlugReturnsFallback(t *testing.T) {
	router, _, cleanup := setupPublicAPI(t)
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/pages/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if got := w.Header().Get("X-Cache"); got != "MISS" {
		t.Fatalf("expected X-Cache MISS on 404, got %q", got)
	}

	env := decodeEnvelope(t, w)
	if env.Code != 404 {
		t.Fatalf("unexpected business code: %d", env.Code)
	}
	fallback := env.Data["fallback"].(map[string]interface{})
	if fallback["title"] == "" || fallback["content"] == "" {
		t.Fatalf("expected fallback copy, got %v", fallback)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router, _, cleanup := setupPublicAPI(t)
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/pages", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", w.Code)
	}
}
