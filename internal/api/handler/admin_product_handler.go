package handler

import (
	"Solarium/internal/api/dto"
	"Solarium/internal/pkg/response"
	"Solarium/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminProductHandler struct {
	productSvc service.ProductService
}

func NewAdminProductHandler(productSvc service.ProductService) *AdminProductHandler {
	return &AdminProductHandler{
		productSvc: productSvc,
	}
}

func (s *AdminProductHandler) CreateProduct(c *gin.Context) {
	var baseDTO dto.ProductBaseDTO
	if err := c.ShouldBindJSON(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}

	product, err := s.productSvc.CreateProduct(c.Request.Context(), &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

func (s *AdminProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var baseDTO dto.ProductBaseDTO
	if err := c.ShouldBindJSON(&baseDTO); err != nil {
		response.Error(c, err)
		return
	}

	product, err := s.productSvc.UpdateProduct(c.Request.Context(), productID, &baseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

func (s *AdminProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.productSvc.DeleteProduct(c.Request.Context(), productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
