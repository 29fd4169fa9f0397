package consts

const (
	PageStatusDraft     = "draft"
	PageStatusPublished = "published"
	PageStatusScheduled = "scheduled"
	PageStatusArchived  = "archived"
)

const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeDocument = "document"
	MediaTypeAudio    = "audio"
)

// 区块内容中被识别为媒体引用的字段。约定是封闭的：
// 其他字段名不会被解析（见 GlobalSetting 的 stats 约定）。
var (
	SectionMediaFields      = []string{"background_image_id", "hero_image_id"}
	SectionMediaArrayFields = []string{"products", "testimonials", "posts"}
)

const SectionArrayItemMediaField = "image_id"

const (
	StatsKeyPrefix      = "stats."
	StatsValueKeySuffix = ".value"
	StatsLabelKeySuffix = ".label"
)
