package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hctech/phuocthai-backend/internal/schedule"
	"github.com/hctech/phuocthai-backend/internal/service"
)

// NotificationHandler trả bảng cảnh báo tổng hợp trên chuông thông báo.
type NotificationHandler struct {
	notifySvc *service.NotificationService
}

func NewNotificationHandler(notifySvc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifySvc: notifySvc}
}

// List GET /api/v1/notifications?priority=high&limit=50
func (h *NotificationHandler) List(c *gin.Context) {
	var priority schedule.Priority
	switch p := c.Query("priority"); p {
	case "":
	case string(schedule.PriorityHigh), string(schedule.PriorityMedium), string(schedule.PriorityLow):
		priority = schedule.Priority(p)
	default:
		BadRequest(c, "Mức ưu tiên không hợp lệ: "+p)
		return
	}

	limit := 0
	if l := c.Query("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 1 {
			BadRequest(c, "Tham số limit không hợp lệ")
			return
		}
		limit = v
	}

	items := h.notifySvc.List(c.Request.Context(), priority, limit)
	Success(c, gin.H{"items": items, "total": len(items)})
}

// Counts GET /api/v1/notifications/counts
func (h *NotificationHandler) Counts(c *gin.Context) {
	Success(c, h.notifySvc.Counts(c.Request.Context()))
}
