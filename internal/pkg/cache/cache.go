package cache

import (
	"Solarium/internal/pkg/consts"
	"context"
	"time"
)

// Cache 内容缓存。缓存不承载权威数据，随时可整体清空，
// 因此读写失败一律降级为未命中/空操作，不向调用方返回错误。
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	Close()
}

// InvalidatePage 删除页面缓存，同时一并删除全局设置缓存。
// 任何内容编辑都可能影响全局设置的展示，宁可多算一次也不读到脏数据。
func InvalidatePage(ctx context.Context, c Cache, slug string) {
	c.Delete(ctx, consts.PageCacheKey+slug, consts.GlobalsCacheKey)
}

// InvalidateProduct 删除商品详情与列表缓存
func InvalidateProduct(ctx context.Context, c Cache, slug string) {
	c.Delete(ctx, consts.ProductCacheKey+slug, consts.ProductListCacheKey)
}
