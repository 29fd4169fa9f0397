package service

import (
	"Solarium/internal/api/dto"
	"Solarium/internal/model"
	"Solarium/internal/pkg/cache"
	"Solarium/internal/pkg/util"
	"Solarium/internal/repository"
	"context"
	"errors"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// ContentAdminService 管理端内容写路径。每次成功写入之后
// 都对受影响页面做缓存失效，全局设置缓存随之一并清除。
type ContentAdminService interface {
	ListPages(ctx context.Context) ([]*dto.AdminPageDTO, error)
	GetPage(ctx context.Context, id uint64) (*dto.AdminPageDTO, error)
	UpdatePage(ctx context.Context, id uint64, updateDTO *dto.UpdatePageDTO) (*dto.AdminPageDTO, error)
	CreateSection(ctx context.Context, createDTO *dto.CreateSectionDTO) (*dto.AdminSectionDTO, error)
	UpdateSection(ctx context.Context, id uint64, updateDTO *dto.UpdateSectionDTO) (*dto.AdminSectionDTO, error)
	DeleteSection(ctx context.Context, id uint64) error
	ReorderSections(ctx context.Context, reorderDTO *dto.ReorderSectionsDTO) error
}

type contentAdminServiceImpl struct {
	pageRepo    repository.PageRepo
	sectionRepo repository.SectionRepo
	store       cache.Cache
}

func NewContentAdminService(pageRepo repository.PageRepo, sectionRepo repository.SectionRepo, store cache.Cache) ContentAdminService {
	return &contentAdminServiceImpl{
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		store:       store,
	}
}

func (s *contentAdminServiceImpl) ListPages(ctx context.Context) ([]*dto.AdminPageDTO, error) {
	pages, err := s.pageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminPageDTO, 0, len(pages))
	for _, page := range pages {
		pageDTO := &dto.AdminPageDTO{}
		if err := copier.Copy(pageDTO, page); err != nil {
			return nil, err
		}
		pageDTO.Sections = nil
		result = append(result, pageDTO)
	}
	return result, nil
}

func (s *contentAdminServiceImpl) GetPage(ctx context.Context, id uint64) (*dto.AdminPageDTO, error) {
	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return buildAdminPageDTO(page)
}

func (s *contentAdminServiceImpl) UpdatePage(ctx context.Context, id uint64, updateDTO *dto.UpdatePageDTO) (*dto.AdminPageDTO, error) {
	if err := util.ValidateDTO(updateDTO); err != nil {
		return nil, ErrParamInvalid
	}

	page, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	oldSlug := page.Slug

	if updateDTO.Title != nil {
		page.Title = *updateDTO.Title
	}
	if updateDTO.Slug != nil {
		slug := util.NormalizeSlug(*updateDTO.Slug)
		exists, err := s.pageRepo.ExistsBySlug(ctx, slug, page.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrSlugExist
		}
		page.Slug = slug
	}
	if updateDTO.Status != nil {
		page.Status = *updateDTO.Status
	}
	if updateDTO.PublishAt != nil {
		page.PublishAt = updateDTO.PublishAt
	}
	if updateDTO.MetaTitle != nil {
		page.MetaTitle = *updateDTO.MetaTitle
	}
	if updateDTO.MetaDescription != nil {
		page.MetaDescription = *updateDTO.MetaDescription
	}

	if err := s.pageRepo.Update(ctx, page); err != nil {
		return nil, err
	}

	// 以更新后的 slug 失效；slug 变更时旧键一并清除
	cache.InvalidatePage(ctx, s.store, page.Slug)
	if oldSlug != page.Slug {
		cache.InvalidatePage(ctx, s.store, oldSlug)
	}

	return buildAdminPageDTO(page)
}

func (s *contentAdminServiceImpl) CreateSection(ctx context.Context, createDTO *dto.CreateSectionDTO) (*dto.AdminSectionDTO, error) {
	if err := util.ValidateDTO(createDTO); err != nil {
		return nil, ErrParamInvalid
	}

	slugs, err := s.pageRepo.SlugsByIDs(ctx, []uint64{createDTO.PageID})
	if err != nil {
		return nil, err
	}
	if len(slugs) == 0 {
		return nil, ErrPageNotFound
	}

	section := &model.PageSection{
		PageID:       createDTO.PageID,
		SectionType:  createDTO.SectionType,
		DisplayOrder: createDTO.DisplayOrder,
		IsVisible:    true,
		Content:      createDTO.Content,
	}
	if createDTO.IsVisible != nil {
		section.IsVisible = *createDTO.IsVisible
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, err
	}

	cache.InvalidatePage(ctx, s.store, slugs[0])
	return buildAdminSectionDTO(section), nil
}

func (s *contentAdminServiceImpl) UpdateSection(ctx context.Context, id uint64, updateDTO *dto.UpdateSectionDTO) (*dto.AdminSectionDTO, error) {
	if err := util.ValidateDTO(updateDTO); err != nil {
		return nil, ErrParamInvalid
	}

	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	if updateDTO.SectionType != nil {
		section.SectionType = *updateDTO.SectionType
	}
	if updateDTO.DisplayOrder != nil {
		section.DisplayOrder = *updateDTO.DisplayOrder
	}
	if updateDTO.IsVisible != nil {
		section.IsVisible = *updateDTO.IsVisible
	}
	if updateDTO.Content != nil {
		section.Content = updateDTO.Content
	}

	if err := s.sectionRepo.Update(ctx, section); err != nil {
		return nil, err
	}

	if err := s.invalidateSectionPage(ctx, section.PageID); err != nil {
		return nil, err
	}
	return buildAdminSectionDTO(section), nil
}

func (s *contentAdminServiceImpl) DeleteSection(ctx context.Context, id uint64) error {
	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}

	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.invalidateSectionPage(ctx, section.PageID)
}

func (s *contentAdminServiceImpl) ReorderSections(ctx context.Context, reorderDTO *dto.ReorderSectionsDTO) error {
	orders := make([]repository.SectionOrder, 0, len(reorderDTO.Items))
	for _, item := range reorderDTO.Items {
		orders = append(orders, repository.SectionOrder{
			ID:           item.ID,
			DisplayOrder: item.DisplayOrder,
		})
	}

	pageIDs, err := s.sectionRepo.Reorder(ctx, orders)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}

	slugs, err := s.pageRepo.SlugsByIDs(ctx, pageIDs)
	if err != nil {
		return err
	}
	for _, slug := range slugs {
		cache.InvalidatePage(ctx, s.store, slug)
	}
	return nil
}

func (s *contentAdminServiceImpl) invalidateSectionPage(ctx context.Context, pageID uint64) error {
	slugs, err := s.pageRepo.SlugsByIDs(ctx, []uint64{pageID})
	if err != nil {
		return err
	}
	if len(slugs) > 0 {
		cache.InvalidatePage(ctx, s.store, slugs[0])
	}
	return nil
}

func buildAdminPageDTO(page *model.Page) (*dto.AdminPageDTO, error) {
	pageDTO := &dto.AdminPageDTO{}
	if err := copier.Copy(pageDTO, page); err != nil {
		return nil, err
	}

	pageDTO.Sections = make([]dto.AdminSectionDTO, 0, len(page.Sections))
	for i := range page.Sections {
		pageDTO.Sections = append(pageDTO.Sections, *buildAdminSectionDTO(&page.Sections[i]))
	}
	return pageDTO, nil
}

func buildAdminSectionDTO(section *model.PageSection) *dto.AdminSectionDTO {
	return &dto.AdminSectionDTO{
		ID:           section.ID,
		PageID:       section.PageID,
		SectionType:  section.SectionType,
		DisplayOrder: section.DisplayOrder,
		IsVisible:    section.IsVisible,
		Content:      section.Content,
	}
}
