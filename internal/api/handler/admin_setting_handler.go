package handler

import (
	"Solarium/internal/api/dto"
	"Solarium/internal/pkg/response"
	"Solarium/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminSettingHandler struct {
	settingSvc service.SettingService
}

func NewAdminSettingHandler(settingSvc service.SettingService) *AdminSettingHandler {
	return &AdminSettingHandler{
		settingSvc: settingSvc,
	}
}

func (s *AdminSettingHandler) ListSettings(c *gin.Context) {
	settings, err := s.settingSvc.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, settings)
}

func (s *AdminSettingHandler) UpsertSetting(c *gin.Context) {
	key := c.Param("key")

	var upsertDTO dto.UpsertSettingDTO
	if err := c.ShouldBindJSON(&upsertDTO); err != nil {
		response.Error(c, err)
		return
	}

	setting, err := s.settingSvc.Upsert(c.Request.Context(), key, &upsertDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, setting)
}
