package repository

import (
	"Solarium/internal/model"
	"context"

	"gorm.io/gorm"
)

// SectionOrder 重排序请求中的单条指令
type SectionOrder struct {
	ID           uint64
	DisplayOrder int
}

type SectionRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.PageSection, error)
	Create(ctx context.Context, section *model.PageSection) error
	Update(ctx context.Context, section *model.PageSection) error
	Delete(ctx context.Context, id uint64) error
	// Reorder 原子地应用一批排序变更，返回受影响的页面ID；
	// 任一区块不存在时整批回滚并返回 gorm.ErrRecordNotFound
	Reorder(ctx context.Context, orders []SectionOrder) ([]uint64, error)
}

type SectionRepoImpl struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepo {
	return &SectionRepoImpl{
		db: db,
	}
}

func (s SectionRepoImpl) GetByID(ctx context.Context, id uint64) (*model.PageSection, error) {
	var section model.PageSection
	err := s.db.WithContext(ctx).First(&section, id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (s SectionRepoImpl) Create(ctx context.Context, section *model.PageSection) error {
	return s.db.WithContext(ctx).Create(section).Error
}

func (s SectionRepoImpl) Update(ctx context.Context, section *model.PageSection) error {
	return s.db.WithContext(ctx).Save(section).Error
}

func (s SectionRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.PageSection{}, id).Error
}

func (s SectionRepoImpl) Reorder(ctx context.Context, orders []SectionOrder) ([]uint64, error) {
	ids := make([]uint64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	var pageIDs []uint64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.PageSection{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return gorm.ErrRecordNotFound
		}

		for _, o := range orders {
			if err := tx.Model(&model.PageSection{}).
				Where("id = ?", o.ID).
				Update("display_order", o.DisplayOrder).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.PageSection{}).
			Distinct("page_id").
			Where("id IN ?", ids).
			Pluck("page_id", &pageIDs).Error
	})
	if err != nil {
		return nil, err
	}
	return pageIDs, nil
}
