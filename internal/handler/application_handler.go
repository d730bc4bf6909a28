package handler

import (
	"errors"
	"net/http"

	"YClaw/internal/dto"
	"YClaw/internal/service"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	svc *service.ApplicationService
}

func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Submit 提交申请
// POST /api/v1/applications (需要登录)
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	userID := c.GetUint("userID")
	resp, err := h.svc.Submit(c.Request.Context(), userID, req)
	if err != nil {
		// 按错误类型细分状态码
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidCategory), errors.Is(err, service.ErrInvalidStage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// Me 查询本人申请 (含隐私字段，只有本人可见)
// GET /api/v1/applications/me (可选登录)
// 未登录或没有记录时 data 为 null，不是错误
func (h *ApplicationHandler) Me(c *gin.Context) {
	userID := c.GetUint("userID") // 未登录时为 0

	app, err := h.svc.GetOwn(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": app})
}
