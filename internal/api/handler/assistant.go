package handler

import (
	"net/http"

	"railassist/backend/internal/assistant"

	"github.com/gin-gonic/gin"
)

type assistantRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *Handler) AskAssistant(c *gin.Context) {
	var req assistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": assistant.Respond(req.Message)})
}
