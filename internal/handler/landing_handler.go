package handler

import (
	"net/http"

	"YClaw/internal/service"

	"github.com/gin-gonic/gin"
)

// LandingHandler 落地页公开接口，不需要登录
type LandingHandler struct {
	svc *service.LandingService
}

func NewLandingHandler(svc *service.LandingService) *LandingHandler {
	return &LandingHandler{svc: svc}
}

// Stats 汇总统计
// GET /api/v1/stats
func (h *LandingHandler) Stats(c *gin.Context) {
	resp, err := h.svc.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// Recent 最近提交流 (脱敏)
// GET /api/v1/applications/recent
func (h *LandingHandler) Recent(c *gin.Context) {
	resp, err := h.svc.GetRecentApplications(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
