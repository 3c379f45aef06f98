package handler

import (
	"errors"
	"net/http"

	"railassist/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListNotifications(c *gin.Context) {
	notifications, err := h.Notify.NotificationsForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	err := h.Notify.MarkRead(c.Request.Context(), c.Param("id"), currentUserID(c))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to mark notification"})
		return
	}
	c.Status(http.StatusNoContent)
}
