package consts

const (
	PageCacheKey        = "page:"
	GlobalsCacheKey     = "globals"
	ProductCacheKey     = "product:"
	ProductListCacheKey = "products:list"
)
