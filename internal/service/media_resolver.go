package service

import (
	"Solarium/internal/model"
	"Solarium/internal/pkg/consts"
	"Solarium/internal/pkg/minio"
	"Solarium/internal/repository"
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// MediaResolver 将区块内容里的媒体ID批量解析为URL。
// 无论引用多少次，一次解析只发出一条查询。
type MediaResolver interface {
	ResolveURLs(ctx context.Context, ids []uint64) (map[uint64]string, error)
}

type mediaResolverImpl struct {
	mediaRepo repository.MediaRepo
}

func NewMediaResolver(mediaRepo repository.MediaRepo) MediaResolver {
	return &mediaResolverImpl{
		mediaRepo: mediaRepo,
	}
}

func (s *mediaResolverImpl) ResolveURLs(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	urls := make(map[uint64]string, len(ids))
	if len(ids) == 0 {
		return urls, nil
	}

	seen := make(map[uint64]struct{}, len(ids))
	unique := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	media, err := s.mediaRepo.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	// 不存在的ID直接缺席，由调用方补 null
	for _, m := range media {
		urls[m.ID] = mediaURL(ctx, m)
	}
	return urls, nil
}

func mediaURL(ctx context.Context, m *model.Media) string {
	if m.ObjectKey != "" && minio.Ready() {
		if m.Type == consts.MediaTypeDocument {
			if u, err := minio.PresignedURL(ctx, m.ObjectKey, 15*time.Minute); err == nil {
				return u
			}
		}
		return minio.PublicURL(m.ObjectKey)
	}
	return m.URL
}

// CollectMediaIDs 提取一个区块内容中全部被识别的媒体引用。
// 识别的形态是封闭的：顶层 background_image_id / hero_image_id，
// 以及 products / testimonials / posts 数组元素内的 image_id。
func CollectMediaIDs(content map[string]interface{}) []uint64 {
	if content == nil {
		return nil
	}

	var ids []uint64
	for _, field := range consts.SectionMediaFields {
		if id, ok := asMediaID(content[field]); ok {
			ids = append(ids, id)
		}
	}

	for _, arrField := range consts.SectionMediaArrayFields {
		items, ok := content[arrField].([]interface{})
		if !ok {
			continue
		}
		for _, raw := range items {
			item, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if id, ok := asMediaID(item[consts.SectionArrayItemMediaField]); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// AttachMediaURLs 在内容的浅拷贝上，为每个被识别的 *_id 写入同名 *_url 字段；
// 解析不到的媒体写入 nil，绝不修改原始内容。
func AttachMediaURLs(content map[string]interface{}, urls map[uint64]string) map[string]interface{} {
	if content == nil {
		return nil
	}

	out := make(map[string]interface{}, len(content)+2)
	for k, v := range content {
		out[k] = v
	}

	for _, field := range consts.SectionMediaFields {
		if _, present := out[field]; !present {
			continue
		}
		out[urlField(field)] = lookupURL(out[field], urls)
	}

	for _, arrField := range consts.SectionMediaArrayFields {
		items, ok := out[arrField].([]interface{})
		if !ok {
			continue
		}
		copied := make([]interface{}, len(items))
		for i, raw := range items {
			item, ok := raw.(map[string]interface{})
			if !ok {
				copied[i] = raw
				continue
			}
			itemCopy := make(map[string]interface{}, len(item)+1)
			for k, v := range item {
				itemCopy[k] = v
			}
			if _, present := itemCopy[consts.SectionArrayItemMediaField]; present {
				itemCopy[urlField(consts.SectionArrayItemMediaField)] = lookupURL(itemCopy[consts.SectionArrayItemMediaField], urls)
			}
			copied[i] = itemCopy
		}
		out[arrField] = copied
	}
	return out
}

func urlField(idField string) string {
	return strings.TrimSuffix(idField, "_id") + "_url"
}

func lookupURL(v interface{}, urls map[uint64]string) interface{} {
	if id, ok := asMediaID(v); ok {
		if u, ok := urls[id]; ok {
			return u
		}
	}
	return nil
}

// asMediaID 兼容 JSON 反序列化后的各种数值形态
func asMediaID(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		if n > 0 && n == math.Trunc(n) {
			return uint64(n), true
		}
	case int:
		if n > 0 {
			return uint64(n), true
		}
	case int64:
		if n > 0 {
			return uint64(n), true
		}
	case uint64:
		if n > 0 {
			return n, true
		}
	case json.Number:
		if id, err := strconv.ParseUint(n.String(), 10, 64); err == nil && id > 0 {
			return id, true
		}
	case string:
		if id, err := strconv.ParseUint(n, 10, 64); err == nil && id > 0 {
			return id, true
		}
	}
	return 0, false
}
