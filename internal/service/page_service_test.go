package service

import (
	"Solarium/internal/model"
	"Solarium/internal/pkg/cache"
	"Solarium/internal/pkg/consts"
	"Solarium/internal/repository"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(
		&model.Page{},
		&model.PageSection{},
		&model.Media{},
		&model.GlobalSetting{},
		&model.Product{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func newTestPageService(gdb *gorm.DB, store cache.Cache) PageService {
	pageRepo := repository.NewPageRepository(gdb)
	mediaRepo := repository.NewMediaRepository(gdb)
	settingRepo := repository.NewSettingRepository(gdb)

	resolver := NewMediaResolver(mediaRepo)
	settingSvc := NewSettingService(settingRepo, store, 5*time.Minute)
	return NewPageService(pageRepo, resolver, settingSvc, store, time.Minute)
}

func seedHomePage(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	if err := gdb.Create(&model.Media{ID: 10, URL: "https://cdn.example.com/hero.png", Type: consts.MediaTypeImage}).Error; err != nil {
		t.Fatalf("failed to seed media: %v", err)
	}

	page := &model.Page{
		Title:  "首页",
		Slug:   "home",
		Status: consts.PageStatusPublished,
		Sections: []model.PageSection{
			{SectionType: "hero", DisplayOrder: 1, IsVisible: true, Content: map[string]interface{}{
				"headline":      "阳光为家供电",
				"hero_image_id": float64(10),
			}},
			{SectionType: "stats", DisplayOrder: 0, IsVisible: true, Content: map[string]interface{}{}},
			{SectionType: "cta", DisplayOrder: 2, IsVisible: false, Content: map[string]interface{}{
				"text": "隐藏区块",
			}},
		},
	}
	if err := gdb.Create(page).Error; err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}

	settings := []model.GlobalSetting{
		{Key: "site.name", Value: "Solarium", IsPublic: true},
		{Key: "stats.installed_capacity.value", Value: float64(3500), IsPublic: true},
		{Key: "stats.installed_capacity.label", Value: "装机容量 (kW)", IsPublic: true},
		{Key: "stats.households.value", Value: float64(420), IsPublic: true},
		{Key: "internal.api_token", Value: "secret", IsPublic: false},
	}
	if err := gdb.Create(&settings).Error; err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}
}

func TestGetPublicPageAssemblesPayload(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	seedHomePage(t, gdb)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestPageService(gdb, store)

	payload, hit, err := svc.GetPublicPage(context.Background(), "home")
	if err != nil {
		t.Fatalf("get public page: %v", err)
	}
	if hit {
		t.Fatal("first read must be a cache miss")
	}

	if payload.Page.Slug != "home" || payload.Page.Title != "首页" {
		t.Fatalf("unexpected page meta: %+v", payload.Page)
	}

	// 隐藏区块不出现，可见区块按 display_order 升序
	if len(payload.Sections) != 2 {
		t.Fatalf("expected 2 visible sections, got %d", len(payload.Sections))
	}
	if payload.Sections[0].Type != "stats" || payload.Sections[1].Type != "hero" {
		t.Fatalf("unexpected section order: %s, %s", payload.Sections[0].Type, payload.Sections[1].Type)
	}

	hero := payload.Sections[1].Content
	if hero["hero_image_url"] != "https://cdn.example.com/hero.png" {
		t.Fatalf("expected resolved hero_image_url, got %v", hero["hero_image_url"])
	}

	// 仅公开设置进入 globals
	if payload.Globals["site.name"] != "Solarium" {
		t.Fatalf("expected public setting in globals, got %v", payload.Globals["site.name"])
	}
	if _, ok := payload.Globals["internal.api_token"]; ok {
		t.Fatal("private setting must not leak into globals")
	}
}

func TestGetPublicPageDerivesStats(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	seedHomePage(t, gdb)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestPageService(gdb, store)

	payload, _, err := svc.GetPublicPage(context.Background(), "home")
	if err != nil {
		t.Fatalf("get public page: %v", err)
	}

	if len(payload.Stats) != 2 {
		t.Fatalf("expected 2 stats, got %+v", payload.Stats)
	}

	// 按名称排序：households 在 installed_capacity 之前
	if payload.Stats[0].Label != "Households" {
		t.Fatalf("expected humanized fallback label, got %q", payload.Stats[0].Label)
	}
	if payload.Stats[1].Label != "装机容量 (kW)" {
		t.Fatalf("expected configured label, got %q", payload.Stats[1].Label)
	}
	if payload.Stats[1].Value != float64(3500) {
		t.Fatalf("unexpected stat value: %v", payload.Stats[1].Value)
	}
}

func TestGetPublicPageSecondReadHitsCache(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	seedHomePage(t, gdb)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestPageService(gdb, store)
	ctx := context.Background()

	first, hit, err := svc.GetPublicPage(ctx, "home")
	if err != nil || hit {
		t.Fatalf("first read: hit=%v err=%v", hit, err)
	}

	second, hit, err := svc.GetPublicPage(ctx, "home")
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if !hit {
		t.Fatal("second read must hit the cache")
	}
	if second.Page.ID != first.Page.ID || len(second.Sections) != len(first.Sections) {
		t.Fatalf("cached payload differs: %+v vs %+v", second, first)
	}
}

func TestGetPublicPageNormalizesSlug(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	seedHomePage(t, gdb)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestPageService(gdb, store)

	payload, _, err := svc.GetPublicPage(context.Background(), "  HOME ")
	if err != nil {
		t.Fatalf("get public page: %v", err)
	}
	if payload.Page.Slug != "home" {
		t.Fatalf("expected normalized slug lookup, got %+v", payload.Page)
	}
}

func TestGetPublicPageNotFound(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	if err := gdb.Create(&model.Page{Title: "草稿", Slug: "draft-page", Status: consts.PageStatusDraft}).Error; err != nil {
		t.Fatalf("failed to seed draft page: %v", err)
	}

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestPageService(gdb, store)
	ctx := context.Background()

	if _, _, err := svc.GetPublicPage(ctx, "missing"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound for unknown slug, got %v", err)
	}

	// 未发布页面与不存在的页面不可区分
	if _, _, err := svc.GetPublicPage(ctx, "draft-page"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound for draft page, got %v", err)
	}
}

func TestDeriveStatsIgnoresMalformedKeys(t *testing.T) {
	globals := map[string]interface{}{
		"stats.panels.value": float64(12),
		"stats.orphan.label": "无配对值",
		"stats..value":       float64(1),
		"site.name":          "Solarium",
	}

	stats := DeriveStats(globals)
	if len(stats) != 1 {
		t.Fatalf("expected 1 stat, got %+v", stats)
	}
	if stats[0].Label != "Panels" || stats[0].Value != float64(12) {
		t.Fatalf("unexpected stat: %+v", stats[0])
	}
}
