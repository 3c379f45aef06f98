package handler

import (
	"errors"
	"net/http"

	"railassist/backend/internal/complaint"
	"railassist/backend/internal/models"
	"railassist/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type submitComplaintRequest struct {
	Category    string `json:"category" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *Handler) SubmitComplaint(c *gin.Context) {
	var req submitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Complaints.Submit(c.Request.Context(), currentUserID(c),
		models.ComplaintCategory(req.Category), req.Location, req.Description)
	switch {
	case errors.Is(err, complaint.ErrInvalidCategory),
		errors.Is(err, complaint.ErrEmptyLocation),
		errors.Is(err, complaint.ErrEmptyDescription):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to submit complaint"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListComplaints returns the caller's complaints. Admins see all
// complaints, optionally filtered by department.
func (h *Handler) ListComplaints(c *gin.Context) {
	ctx := c.Request.Context()

	if !isAdmin(c) {
		complaints, err := h.Complaints.ByUser(ctx, currentUserID(c))
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load complaints"})
			return
		}
		c.JSON(http.StatusOK, complaints)
		return
	}

	var (
		complaints []models.Complaint
		err        error
	)
	if department := c.Query("department"); department != "" {
		complaints, err = h.Complaints.ByDepartment(ctx, department)
	} else {
		complaints, err = h.Complaints.All(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load complaints"})
		return
	}
	c.JSON(http.StatusOK, complaints)
}

func (h *Handler) GetComplaint(c *gin.Context) {
	found, ok := h.requireComplaintAccess(c, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, found)
}

// requireComplaintAccess loads the complaint and rejects customers who do
// not own it. Every per-complaint route goes through this check. On
// failure the response has already been written and ok is false.
func (h *Handler) requireComplaintAccess(c *gin.Context, complaintID string) (*models.Complaint, bool) {
	found, err := h.Complaints.ByID(c.Request.Context(), complaintID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load complaint"})
		return nil, false
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return nil, false
	}
	if !isAdmin(c) && found.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your complaint"})
		return nil, false
	}
	return found, true
}

type updateStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	Department string `json:"department"`
}

func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Complaints.UpdateStatus(c.Request.Context(), c.Param("id"),
		models.ComplaintStatus(req.Status), req.Department)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	case errors.Is(err, complaint.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, complaint.ErrComplaintResolved),
		errors.Is(err, complaint.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to update complaint"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
