package handler

import (
	"errors"
	"net/http"

	"railassist/backend/internal/notify"
	"railassist/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type postMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) PostMessage(c *gin.Context) {
	if _, ok := h.requireComplaintAccess(c, c.Param("id")); !ok {
		return
	}

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.Notify.AddMessage(c.Request.Context(), c.Param("id"), currentUserID(c), req.Content)
	switch {
	case errors.Is(err, notify.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	case err != nil:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to post message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *Handler) GetThread(c *gin.Context) {
	if _, ok := h.requireComplaintAccess(c, c.Param("id")); !ok {
		return
	}

	messages, err := h.Notify.Thread(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}
