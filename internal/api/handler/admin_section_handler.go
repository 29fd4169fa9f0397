package handler

import (
	"Solarium/internal/api/dto"
	"Solarium/internal/pkg/response"
	"Solarium/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminSectionHandler struct {
	contentSvc service.ContentAdminService
}

func NewAdminSectionHandler(contentSvc service.ContentAdminService) *AdminSectionHandler {
	return &AdminSectionHandler{
		contentSvc: contentSvc,
	}
}

func (s *AdminSectionHandler) CreateSection(c *gin.Context) {
	var createDTO dto.CreateSectionDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	section, err := s.contentSvc.CreateSection(c.Request.Context(), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, section)
}

func (s *AdminSectionHandler) UpdateSection(c *gin.Context) {
	sectionID, err := strconv.ParseUint(c.Param("section_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var updateDTO dto.UpdateSectionDTO
	if err := c.ShouldBindJSON(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	section, err := s.contentSvc.UpdateSection(c.Request.Context(), sectionID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, section)
}

func (s *AdminSectionHandler) DeleteSection(c *gin.Context) {
	sectionID, err := strconv.ParseUint(c.Param("section_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.contentSvc.DeleteSection(c.Request.Context(), sectionID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ReorderSections 批量重排序，整批原子生效
func (s *AdminSectionHandler) ReorderSections(c *gin.Context) {
	var reorderDTO dto.ReorderSectionsDTO
	if err := c.ShouldBindJSON(&reorderDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.contentSvc.ReorderSections(c.Request.Context(), &reorderDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
