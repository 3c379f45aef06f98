package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type callRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// PlaceCall bridges the caller to the operator line through Twilio.
func (h *Handler) PlaceCall(c *gin.Context) {
	if h.Phone == nil || !h.Phone.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "calling is not configured"})
		return
	}

	var req callRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Phone.PlaceCall(c.Request.Context(), req.PhoneNumber); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "call could not be placed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "calling"})
}
