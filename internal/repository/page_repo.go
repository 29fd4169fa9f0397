package repository

import (
	"Solarium/internal/model"
	"Solarium/internal/pkg/consts"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PageRepo interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Page, error)
	GetByID(ctx context.Context, id uint64) (*model.Page, error)
	List(ctx context.Context) ([]*model.Page, error)
	Update(ctx context.Context, page *model.Page) error
	ExistsBySlug(ctx context.Context, slug string, excludeID uint64) (bool, error)
	SlugsByIDs(ctx context.Context, ids []uint64) ([]string, error)
	ListScheduledDue(ctx context.Context, now time.Time) ([]*model.Page, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
}

type PageRepoImpl struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepo {
	return &PageRepoImpl{
		db: db,
	}
}

// GetPublishedBySlug 单次往返取出已发布页面及其可见区块，
// 区块按 display_order 升序，同序时按 id 升序（即创建顺序）
func (s PageRepoImpl) GetPublishedBySlug(ctx context.Context, slug string) (*model.Page, error) {
	var page model.Page
	err := s.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_visible = ?", true).Order("display_order ASC, id ASC")
		}).
		Where("slug = ? AND status = ?", slug, consts.PageStatusPublished).
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s PageRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Page, error) {
	var page model.Page
	err := s.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		First(&page, id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s PageRepoImpl) List(ctx context.Context) ([]*model.Page, error) {
	var pages []*model.Page
	err := s.db.WithContext(ctx).Order("id ASC").Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func (s PageRepoImpl) Update(ctx context.Context, page *model.Page) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(page).Error
}

func (s PageRepoImpl) ExistsBySlug(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Page{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s PageRepoImpl) SlugsByIDs(ctx context.Context, ids []uint64) ([]string, error) {
	var slugs []string
	err := s.db.WithContext(ctx).Model(&model.Page{}).
		Where("id IN ?", ids).
		Pluck("slug", &slugs).Error
	if err != nil {
		return nil, err
	}
	return slugs, nil
}

func (s PageRepoImpl) ListScheduledDue(ctx context.Context, now time.Time) ([]*model.Page, error) {
	var pages []*model.Page
	err := s.db.WithContext(ctx).
		Where("status = ? AND publish_at IS NOT NULL AND publish_at <= ?", consts.PageStatusScheduled, now).
		Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func (s PageRepoImpl) UpdateStatus(ctx context.Context, id uint64, status string) error {
	return s.db.WithContext(ctx).Model(&model.Page{}).
		Where("id = ?", id).
		Update("status", status).Error
}
