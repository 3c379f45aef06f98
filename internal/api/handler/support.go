package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListEmergencyContacts(c *gin.Context) {
	contacts, err := h.Support.EmergencyContacts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// ListFAQs returns FAQs grouped by category when ?grouped=true is set,
// the flat list otherwise.
func (h *Handler) ListFAQs(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("grouped") == "true" {
		grouped, err := h.Support.FAQsByCategory(ctx)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load FAQs"})
			return
		}
		c.JSON(http.StatusOK, grouped)
		return
	}

	faqs, err := h.Support.FAQs(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load FAQs"})
		return
	}
	c.JSON(http.StatusOK, faqs)
}
