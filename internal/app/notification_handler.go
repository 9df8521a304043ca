package app

import (
	"net/http"

	"rawtails/internal/middleware"
	"rawtails/internal/service"
	"rawtails/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	engagement service.EngagementService
}

func NewNotificationHandler(engagement service.EngagementService) *NotificationHandler {
	return &NotificationHandler{engagement: engagement}
}

// List handles fetching the acting user's notifications
// GET /api/notifications?limit=20&offset=0
func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.ActingUser(c)
	if userID == "" {
		util.Unauthorized(c, "missing "+middleware.UserIDHeader+" header")
		return
	}
	limit, offset := pagination(c)

	notifications, unread, err := h.engagement.ListNotifications(userID, limit, offset)
	if err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, "failed to fetch notifications")
		return
	}

	util.SuccessResponse(c, http.StatusOK, gin.H{
		"notifications": notifications,
		"unread":        unread,
	})
}

// MarkRead handles marking one notification as read
// POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := middleware.ActingUser(c)

	if err := h.engagement.MarkRead(userID, c.Param("id")); err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	util.SuccessResponse(c, http.StatusOK, gin.H{"read": true})
}

// MarkAllRead handles marking every notification as read
// POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := middleware.ActingUser(c)

	if err := h.engagement.MarkAllRead(userID); err != nil {
		util.ErrorResponse(c, http.StatusInternalServerError, "failed to mark notifications read")
		return
	}
	util.SuccessResponse(c, http.StatusOK, gin.H{"read": true})
}
