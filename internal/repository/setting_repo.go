package repository

import (
	"Solarium/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SettingRepo interface {
	ListPublic(ctx context.Context) ([]*model.GlobalSetting, error)
	List(ctx context.Context) ([]*model.GlobalSetting, error)
	Upsert(ctx context.Context, key string, value interface{}, isPublic *bool) (*model.GlobalSetting, error)
}

type SettingRepoImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepo {
	return &SettingRepoImpl{
		db: db,
	}
}

func (s SettingRepoImpl) ListPublic(ctx context.Context) ([]*model.GlobalSetting, error) {
	var settings []*model.GlobalSetting
	err := s.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("setting_key ASC").
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s SettingRepoImpl) List(ctx context.Context) ([]*model.GlobalSetting, error) {
	var settings []*model.GlobalSetting
	err := s.db.WithContext(ctx).Order("setting_key ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s SettingRepoImpl) Upsert(ctx context.Context, key string, value interface{}, isPublic *bool) (*model.GlobalSetting, error) {
	var setting model.GlobalSetting
	err := s.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		setting = model.GlobalSetting{Key: key, Value: value}
		if isPublic != nil {
			setting.IsPublic = *isPublic
		}
		if err := s.db.WithContext(ctx).Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}

	setting.Value = value
	if isPublic != nil {
		setting.IsPublic = *isPublic
	}
	if err := s.db.WithContext(ctx).Save(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}
