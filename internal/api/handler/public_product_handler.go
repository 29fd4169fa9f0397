package handler

import (
	"Solarium/internal/pkg/response"
	"Solarium/internal/service"

	"github.com/gin-gonic/gin"
)

type PublicProductHandler struct {
	productSvc service.ProductService
}

func NewPublicProductHandler(productSvc service.ProductService) *PublicProductHandler {
	return &PublicProductHandler{
		productSvc: productSvc,
	}
}

func (s *PublicProductHandler) ListProducts(c *gin.Context) {
	products, hit, err := s.productSvc.GetPublicProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	setCacheHeader(c, hit)
	response.Success(c, products)
}

func (s *PublicProductHandler) GetProduct(c *gin.Context) {
	product, hit, err := s.productSvc.GetPublicProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	setCacheHeader(c, hit)
	response.Success(c, product)
}

func setCacheHeader(c *gin.Context, hit bool) {
	if hit {
		c.Header("X-Cache", "HIT")
		return
	}
	c.Header("X-Cache", "MISS")
}
