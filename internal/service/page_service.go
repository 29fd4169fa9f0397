package service

import (
	"Solarium/internal/api/dto"
	"Solarium/internal/pkg/cache"
	"Solarium/internal/pkg/consts"
	"Solarium/internal/pkg/util"
	"Solarium/internal/repository"
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// PageService 公共读路径：组装页面载荷并维护页面缓存
type PageService interface {
	// GetPublicPage 返回页面载荷以及是否命中缓存。
	// 未发布与不存在的页面均返回 ErrPageNotFound，不泄露草稿的存在。
	GetPublicPage(ctx context.Context, slug string) (*dto.PublicPageDTO, bool, error)
}

type pageServiceImpl struct {
	pageRepo   repository.PageRepo
	resolver   MediaResolver
	settingSvc SettingService
	store      cache.Cache
	pageTTL    time.Duration

	flight singleflight.Group
}

func NewPageService(pageRepo repository.PageRepo, resolver MediaResolver, settingSvc SettingService, store cache.Cache, pageTTL time.Duration) PageService {
	return &pageServiceImpl{
		pageRepo:   pageRepo,
		resolver:   resolver,
		settingSvc: settingSvc,
		store:      store,
		pageTTL:    pageTTL,
	}
}

func (s *pageServiceImpl) GetPublicPage(ctx context.Context, slug string) (*dto.PublicPageDTO, bool, error) {
	slug = util.NormalizeSlug(slug)

	if raw, ok := s.store.Get(ctx, consts.PageCacheKey+slug); ok {
		var payload dto.PublicPageDTO
		if err := json.Unmarshal(raw, &payload); err == nil {
			return &payload, true, nil
		}
		// 缓存内容损坏，按未命中处理
	}

	// 同一 slug 的并发未命中只触发一次重建
	v, err, _ := s.flight.Do(slug, func() (interface{}, error) {
		return s.assemble(ctx, slug)
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*dto.PublicPageDTO), false, nil
}

func (s *pageServiceImpl) assemble(ctx context.Context, slug string) (*dto.PublicPageDTO, error) {
	page, err := s.pageRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	// 全部区块的媒体引用汇总后一次解析
	var mediaIDs []uint64
	for _, section := range page.Sections {
		mediaIDs = append(mediaIDs, CollectMediaIDs(section.Content)...)
	}
	urls, err := s.resolver.ResolveURLs(ctx, mediaIDs)
	if err != nil {
		return nil, err
	}

	sections := make([]dto.SectionDTO, 0, len(page.Sections))
	for _, section := range page.Sections {
		sections = append(sections, dto.SectionDTO{
			ID:      section.ID,
			Type:    section.SectionType,
			Order:   section.DisplayOrder,
			Content: AttachMediaURLs(section.Content, urls),
		})
	}

	globals, err := s.settingSvc.GetPublicGlobals(ctx)
	if err != nil {
		return nil, err
	}

	payload := &dto.PublicPageDTO{
		Sections: sections,
		Globals:  globals,
		Stats:    DeriveStats(globals),
	}
	if err := copier.Copy(&payload.Page, page); err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(payload); err == nil {
		s.store.Set(ctx, consts.PageCacheKey+slug, raw, s.pageTTL)
	}
	return payload, nil
}

// DeriveStats 扫描 stats.<name>.value 形态的全局设置并配对 stats.<name>.label，
// label 缺失时退化为 <name> 的可读形式。结果按 name 排序，保证输出稳定。
func DeriveStats(globals map[string]interface{}) []dto.StatDTO {
	var names []string
	for key := range globals {
		if !strings.HasPrefix(key, consts.StatsKeyPrefix) || !strings.HasSuffix(key, consts.StatsValueKeySuffix) {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(key, consts.StatsKeyPrefix), consts.StatsValueKeySuffix)
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	stats := make([]dto.StatDTO, 0, len(names))
	for _, name := range names {
		label := util.HumanizeKey(name)
		if v, ok := globals[consts.StatsKeyPrefix+name+consts.StatsLabelKeySuffix]; ok {
			if text, ok := v.(string); ok && text != "" {
				label = text
			}
		}
		stats = append(stats, dto.StatDTO{
			Label: label,
			Value: globals[consts.StatsKeyPrefix+name+consts.StatsValueKeySuffix],
		})
	}
	return stats
}
