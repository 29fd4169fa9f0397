package service

import (
	"Solarium/internal/api/dto"
	"Solarium/internal/model"
	"Solarium/internal/pkg/cache"
	"Solarium/internal/pkg/consts"
	"Solarium/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newTestContentAdminService(gdb *gorm.DB, store cache.Cache) ContentAdminService {
	return NewContentAdminService(
		repository.NewPageRepository(gdb),
		repository.NewSectionRepository(gdb),
		store,
	)
}

func seedAdminPage(t *testing.T, gdb *gorm.DB, slug string, sectionCount int) *model.Page {
	t.Helper()

	page := &model.Page{
		Title:  "测试页面",
		Slug:   slug,
		Status: consts.PageStatusPublished,
	}
	for i := 0; i < sectionCount; i++ {
		page.Sections = append(page.Sections, model.PageSection{
			SectionType:  "text",
			DisplayOrder: i,
			IsVisible:    true,
			Content:      map[string]interface{}{"index": float64(i)},
		})
	}
	if err := gdb.Create(page).Error; err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}
	return page
}

func primeCache(ctx context.Context, store cache.Cache, keys ...string) {
	for _, key := range keys {
		store.Set(ctx, key, []byte("cached"), time.Minute)
	}
}

func TestUpdatePageInvalidatesCacheConservatively(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	page := seedAdminPage(t, gdb, "about", 1)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestContentAdminService(gdb, store)
	ctx := context.Background()

	primeCache(ctx, store, consts.PageCacheKey+"about", consts.GlobalsCacheKey, consts.PageCacheKey+"home")

	title := "关于我们"
	if _, err := svc.UpdatePage(ctx, page.ID, &dto.UpdatePageDTO{Title: &title}); err != nil {
		t.Fatalf("update page: %v", err)
	}

	if _, ok := store.Get(ctx, consts.PageCacheKey+"about"); ok {
		t.Fatal("expected page cache to be invalidated")
	}
	// 全局设置缓存随页面写入一并失效
	if _, ok := store.Get(ctx, consts.GlobalsCacheKey); ok {
		t.Fatal("expected globals cache to be invalidated")
	}
	if _, ok := store.Get(ctx, consts.PageCacheKey+"home"); !ok {
		t.Fatal("unrelated page cache must survive")
	}
}

func TestUpdatePageSlugChangeInvalidatesBothKeys(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	page := seedAdminPage(t, gdb, "services", 0)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestContentAdminService(gdb, store)
	ctx := context.Background()

	primeCache(ctx, store, consts.PageCacheKey+"services", consts.PageCacheKey+"solutions")

	slug := "Solutions"
	updated, err := svc.UpdatePage(ctx, page.ID, &dto.UpdatePageDTO{Slug: &slug})
	if err != nil {
		t.Fatalf("update page: %v", err)
	}
	if updated.Slug != "solutions" {
		t.Fatalf("expected normalized slug, got %q", updated.Slug)
	}

	if _, ok := store.Get(ctx, consts.PageCacheKey+"services"); ok {
		t.Fatal("expected old slug cache key to be invalidated")
	}
	if _, ok := store.Get(ctx, consts.PageCacheKey+"solutions"); ok {
		t.Fatal("expected new slug cache key to be invalidated")
	}
}

func TestUpdatePageRejectsDuplicateSlug(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	seedAdminPage(t, gdb, "home", 0)
	page := seedAdminPage(t, gdb, "about", 0)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestContentAdminService(gdb, store)

	slug := "home"
	if _, err := svc.UpdatePage(context.Background(), page.ID, &dto.UpdatePageDTO{Slug: &slug}); !errors.Is(err, ErrSlugExist) {
		t.Fatalf("expected ErrSlugExist, got %v", err)
	}
}

func TestUpdatePageRejectsInvalidStatus(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	page := seedAdminPage(t, gdb, "about", 0)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestContentAdminService(gdb, store)

	status := "live"
	if _, err := svc.UpdatePage(context.Background(), page.ID, &dto.UpdatePageDTO{Status: &status}); !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("expected ErrParamInvalid for unknown status, got %v", err)
	}
}

func TestCreateSectionInvalidatesPage(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	page := seedAdminPage(t, gdb, "about", 0)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestContentAdminService(gdb, store)
	ctx := context.Background()

	primeCache(ctx, store, consts.PageCacheKey+"about")

	section, err := svc.CreateSection(ctx, &dto.CreateSectionDTO{
		PageID:      page.ID,
		SectionType: "hero",
		Content:     map[string]interface{}{"headline": "新区块"},
	})
	if err != nil {
		t.Fatalf("create section: %v", err)
	}
	if !section.IsVisible {
		t.Fatal("expected section to default to visible")
	}

	if _, ok := store.Get(ctx, consts.PageCacheKey+"about"); ok {
		t.Fatal("expected page cache to be invalidated after section create")
	}
}

func TestCreateSectionUnknownPage(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestContentAdminService(gdb, store)

	_, err := svc.CreateSection(context.Background(), &dto.CreateSectionDTO{
		PageID:      9999,
		SectionType: "hero",
	})
	if !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestReorderSectionsAppliesAtomically(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	page := seedAdminPage(t, gdb, "about", 3)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestContentAdminService(gdb, store)
	ctx := context.Background()

	primeCache(ctx, store, consts.PageCacheKey+"about")

	err := svc.ReorderSections(ctx, &dto.ReorderSectionsDTO{Items: []dto.ReorderItemDTO{
		{ID: page.Sections[0].ID, DisplayOrder: 2},
		{ID: page.Sections[1].ID, DisplayOrder: 0},
		{ID: page.Sections[2].ID, DisplayOrder: 1},
	}})
	if err != nil {
		t.Fatalf("reorder sections: %v", err)
	}

	var sections []model.PageSection
	if err := gdb.Where("page_id = ?", page.ID).Order("display_order ASC, id ASC").Find(&sections).Error; err != nil {
		t.Fatalf("load sections: %v", err)
	}
	if sections[0].ID != page.Sections[1].ID || sections[2].ID != page.Sections[0].ID {
		t.Fatalf("unexpected order after reorder: %+v", sections)
	}

	if _, ok := store.Get(ctx, consts.PageCacheKey+"about"); ok {
		t.Fatal("expected page cache to be invalidated after reorder")
	}
}

func TestReorderSectionsUnknownIDRollsBack(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	page := seedAdminPage(t, gdb, "about", 2)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestContentAdminService(gdb, store)

	err := svc.ReorderSections(context.Background(), &dto.ReorderSectionsDTO{Items: []dto.ReorderItemDTO{
		{ID: page.Sections[0].ID, DisplayOrder: 1},
		{ID: 9999, DisplayOrder: 0},
	}})
	if !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}

	// 整批回滚，已有区块的顺序保持不变
	var section model.PageSection
	if err := gdb.First(&section, page.Sections[0].ID).Error; err != nil {
		t.Fatalf("load section: %v", err)
	}
	if section.DisplayOrder != 0 {
		t.Fatalf("expected display_order unchanged after rollback, got %d", section.DisplayOrder)
	}
}

func TestDeleteSectionInvalidatesPage(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()
	page := seedAdminPage(t, gdb, "about", 1)

	store := cache.NewMemoryCache(0, 0)
	defer store.Close()
	svc := newTestContentAdminService(gdb, store)
	ctx := context.Background()

	primeCache(ctx, store, consts.PageCacheKey+"about")

	if err := svc.DeleteSection(ctx, page.Sections[0].ID); err != nil {
		t.Fatalf("delete section: %v", err)
	}

	var count int64
	if err := gdb.Model(&model.PageSection{}).Where("id = ?", page.Sections[0].ID).Count(&count).Error; err != nil {
		t.Fatalf("count sections: %v", err)
	}
	if count != 0 {
		t.Fatal("expected section to be deleted")
	}

	if _, ok := store.Get(ctx, consts.PageCacheKey+"about"); ok {
		t.Fatal("expected page cache to be invalidated after section delete")
	}

	if err := svc.DeleteSection(ctx, page.Sections[0].ID); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound on second delete, got %v", err)
	}
}
