package repository

import (
	"Solarium/internal/model"
	"context"

	"gorm.io/gorm"
)

type MediaRepo interface {
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.Media, error)
}

type MediaRepoImpl struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepo {
	return &MediaRepoImpl{
		db: db,
	}
}

func (s MediaRepoImpl) GetByIDs(ctx context.Context, ids []uint64) ([]*model.Media, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var media []*model.Media
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}
