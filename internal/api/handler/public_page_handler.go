package handler

import (
	"Solarium/internal/api/dto"
	"Solarium/internal/pkg/response"
	"Solarium/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
)

type PublicPageHandler struct {
	pageSvc service.PageService
}

func NewPublicPageHandler(pageSvc service.PageService) *PublicPageHandler {
	return &PublicPageHandler{
		pageSvc: pageSvc,
	}
}

// GetHome 首页别名，等价于 slug=home
func (s *PublicPageHandler) GetHome(c *gin.Context) {
	s.renderPage(c, "home")
}

func (s *PublicPageHandler) GetPage(c *gin.Context) {
	s.renderPage(c, c.Param("slug"))
}

func (s *PublicPageHandler) renderPage(c *gin.Context, slug string) {
	payload, hit, err := s.pageSvc.GetPublicPage(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			c.Header("X-Cache", "MISS")
			response.FailWithData(c, response.NotFound, service.ErrPageNotFound.Error(), dto.NotFoundDTO{
				Fallback: dto.PageFallbackDTO{
					Title:   "页面建设中",
					Content: "您访问的内容暂时不可用，请稍后再来。",
				},
			})
			return
		}
		response.Error(c, err)
		return
	}

	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	response.Success(c, payload)
}
