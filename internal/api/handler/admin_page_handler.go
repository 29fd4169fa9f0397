package handler

import (
	"Solarium/internal/api/dto"
	"Solarium/internal/pkg/response"
	"Solarium/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminPageHandler struct {
	contentSvc service.ContentAdminService
}

func NewAdminPageHandler(contentSvc service.ContentAdminService) *AdminPageHandler {
	return &AdminPageHandler{
		contentSvc: contentSvc,
	}
}

func (s *AdminPageHandler) ListPages(c *gin.Context) {
	pages, err := s.contentSvc.ListPages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pages)
}

func (s *AdminPageHandler) GetPage(c *gin.Context) {
	pageID, err := strconv.ParseUint(c.Param("page_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	page, err := s.contentSvc.GetPage(c.Request.Context(), pageID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *AdminPageHandler) UpdatePage(c *gin.Context) {
	pageID, err := strconv.ParseUint(c.Param("page_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdatePageDTO
	if err := c.ShouldBindJSON(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.contentSvc.UpdatePage(c.Request.Context(), pageID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
