package service

import (
	"Solarium/internal/api/dto"
	"Solarium/internal/model"
	"Solarium/internal/pkg/cache"
	"Solarium/internal/pkg/consts"
	"Solarium/internal/pkg/util"
	"Solarium/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// ProductService 商品读走与页面一致的 TTL 缓存模式，写路径失效对应命名空间
type ProductService interface {
	GetPublicProducts(ctx context.Context) ([]*dto.ProductDTO, bool, error)
	GetPublicProduct(ctx context.Context, slug string) (*dto.ProductDTO, bool, error)
	CreateProduct(ctx context.Context, baseDTO *dto.ProductBaseDTO) (*dto.ProductDTO, error)
	UpdateProduct(ctx context.Context, id uint64, baseDTO *dto.ProductBaseDTO) (*dto.ProductDTO, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type productServiceImpl struct {
	productRepo repository.ProductRepo
	resolver    MediaResolver
	store       cache.Cache
	productTTL  time.Duration
}

func NewProductService(productRepo repository.ProductRepo, resolver MediaResolver, store cache.Cache, productTTL time.Duration) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
		resolver:    resolver,
		store:       store,
		productTTL:  productTTL,
	}
}

func (s *productServiceImpl) GetPublicProducts(ctx context.Context) ([]*dto.ProductDTO, bool, error) {
	if raw, ok := s.store.Get(ctx, consts.ProductListCacheKey); ok {
		var products []*dto.ProductDTO
		if err := json.Unmarshal(raw, &products); err == nil {
			return products, true, nil
		}
	}

	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		return nil, false, err
	}

	result, err := s.buildProductDTOs(ctx, products)
	if err != nil {
		return nil, false, err
	}

	if raw, err := json.Marshal(result); err == nil {
		s.store.Set(ctx, consts.ProductListCacheKey, raw, s.productTTL)
	}
	return result, false, nil
}

func (s *productServiceImpl) GetPublicProduct(ctx context.Context, slug string) (*dto.ProductDTO, bool, error) {
	slug = util.NormalizeSlug(slug)

	if raw, ok := s.store.Get(ctx, consts.ProductCacheKey+slug); ok {
		var product dto.ProductDTO
		if err := json.Unmarshal(raw, &product); err == nil {
			return &product, true, nil
		}
	}

	product, err := s.productRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrProductNotFound
		}
		return nil, false, err
	}

	result, err := s.buildProductDTOs(ctx, []*model.Product{product})
	if err != nil {
		return nil, false, err
	}

	if raw, err := json.Marshal(result[0]); err == nil {
		s.store.Set(ctx, consts.ProductCacheKey+slug, raw, s.productTTL)
	}
	return result[0], false, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, baseDTO *dto.ProductBaseDTO) (*dto.ProductDTO, error) {
	if err := util.ValidateDTO(baseDTO); err != nil {
		return nil, ErrParamInvalid
	}

	product := &model.Product{
		Name:        baseDTO.Name,
		Slug:        util.NormalizeSlug(baseDTO.Slug),
		Description: baseDTO.Description,
		PriceCents:  baseDTO.PriceCents,
		IsActive:    true,
		ImageID:     baseDTO.ImageID,
		Specs:       baseDTO.Specs,
	}
	if baseDTO.Currency != "" {
		product.Currency = baseDTO.Currency
	}
	if baseDTO.IsActive != nil {
		product.IsActive = *baseDTO.IsActive
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	cache.InvalidateProduct(ctx, s.store, product.Slug)

	result, err := s.buildProductDTOs(ctx, []*model.Product{product})
	if err != nil {
		return nil, err
	}
	return result[0], nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id uint64, baseDTO *dto.ProductBaseDTO) (*dto.ProductDTO, error) {
	if err := util.ValidateDTO(baseDTO); err != nil {
		return nil, ErrParamInvalid
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	oldSlug := product.Slug

	product.Name = baseDTO.Name
	product.Slug = util.NormalizeSlug(baseDTO.Slug)
	product.Description = baseDTO.Description
	product.PriceCents = baseDTO.PriceCents
	product.ImageID = baseDTO.ImageID
	product.Specs = baseDTO.Specs
	if baseDTO.Currency != "" {
		product.Currency = baseDTO.Currency
	}
	if baseDTO.IsActive != nil {
		product.IsActive = *baseDTO.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	cache.InvalidateProduct(ctx, s.store, product.Slug)
	if oldSlug != product.Slug {
		cache.InvalidateProduct(ctx, s.store, oldSlug)
	}

	result, err := s.buildProductDTOs(ctx, []*model.Product{product})
	if err != nil {
		return nil, err
	}
	return result[0], nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id uint64) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	cache.InvalidateProduct(ctx, s.store, product.Slug)
	return nil
}

// buildProductDTOs 商品图片引用同样走批量媒体解析，一次查询
func (s *productServiceImpl) buildProductDTOs(ctx context.Context, products []*model.Product) ([]*dto.ProductDTO, error) {
	var mediaIDs []uint64
	for _, product := range products {
		if product.ImageID != nil {
			mediaIDs = append(mediaIDs, *product.ImageID)
		}
	}

	urls, err := s.resolver.ResolveURLs(ctx, mediaIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProductDTO, 0, len(products))
	for _, product := range products {
		productDTO := &dto.ProductDTO{}
		if err := copier.Copy(productDTO, product); err != nil {
			return nil, err
		}
		if product.ImageID != nil {
			if u, ok := urls[*product.ImageID]; ok {
				productDTO.ImageURL = &u
			}
		}
		result = append(result, productDTO)
	}
	return result, nil
}
