package service

import (
	"Solarium/internal/api/dto"
	"Solarium/internal/pkg/cache"
	"Solarium/internal/pkg/consts"
	"Solarium/internal/repository"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type SettingService interface {
	// GetPublicGlobals 返回公开设置项的 key→value 映射，独立缓存
	GetPublicGlobals(ctx context.Context) (map[string]interface{}, error)
	ListAll(ctx context.Context) ([]*dto.SettingDTO, error)
	Upsert(ctx context.Context, key string, upsertDTO *dto.UpsertSettingDTO) (*dto.SettingDTO, error)
}

type settingServiceImpl struct {
	settingRepo repository.SettingRepo
	store       cache.Cache
	globalsTTL  time.Duration
}

func NewSettingService(settingRepo repository.SettingRepo, store cache.Cache, globalsTTL time.Duration) SettingService {
	return &settingServiceImpl{
		settingRepo: settingRepo,
		store:       store,
		globalsTTL:  globalsTTL,
	}
}

func (s *settingServiceImpl) GetPublicGlobals(ctx context.Context) (map[string]interface{}, error) {
	if raw, ok := s.store.Get(ctx, consts.GlobalsCacheKey); ok {
		var globals map[string]interface{}
		if err := json.Unmarshal(raw, &globals); err == nil {
			return globals, nil
		}
	}

	settings, err := s.settingRepo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	globals := make(map[string]interface{}, len(settings))
	for _, setting := range settings {
		globals[setting.Key] = setting.Value
	}

	if raw, err := json.Marshal(globals); err == nil {
		s.store.Set(ctx, consts.GlobalsCacheKey, raw, s.globalsTTL)
	}
	return globals, nil
}

func (s *settingServiceImpl) ListAll(ctx context.Context) ([]*dto.SettingDTO, error) {
	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SettingDTO, 0, len(settings))
	for _, setting := range settings {
		result = append(result, &dto.SettingDTO{
			Key:      setting.Key,
			Value:    setting.Value,
			IsPublic: setting.IsPublic,
		})
	}
	return result, nil
}

func (s *settingServiceImpl) Upsert(ctx context.Context, key string, upsertDTO *dto.UpsertSettingDTO) (*dto.SettingDTO, error) {
	if key == "" {
		return nil, ErrParamInvalid
	}

	setting, err := s.settingRepo.Upsert(ctx, key, upsertDTO.Value, upsertDTO.IsPublic)
	if err != nil {
		return nil, err
	}

	// 设置项进入所有页面载荷，全局缓存直接失效
	s.store.Delete(ctx, consts.GlobalsCacheKey)

	return &dto.SettingDTO{
		Key:      setting.Key,
		Value:    setting.Value,
		IsPublic: setting.IsPublic,
	}, nil
}
