package handler

import (
	"errors"
	"io"
	"net/http"

	"railassist/backend/internal/attachment"
	"railassist/backend/internal/models"
	"railassist/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

const maxAttachmentBytes = 20 << 20

type addAttachmentRequest struct {
	Kind string `json:"kind" binding:"required"`
	URL  string `json:"url" binding:"required,url"`
	Name string `json:"name" binding:"required"`
}

// AddAttachment accepts either a JSON body referencing an already-uploaded
// blob, or a multipart form with the file itself.
func (h *Handler) AddAttachment(c *gin.Context) {
	complaintID := c.Param("id")
	ctx := c.Request.Context()

	if _, ok := h.requireComplaintAccess(c, complaintID); !ok {
		return
	}

	var (
		created *models.Attachment
		err     error
	)

	if form, formErr := c.MultipartForm(); formErr == nil && form != nil {
		files := form.File["file"]
		if len(files) != 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one file is required"})
			return
		}
		fileHeader := files[0]
		if fileHeader.Size > maxAttachmentBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "attachment too large"})
			return
		}
		file, openErr := fileHeader.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
			return
		}
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
			return
		}
		kind := models.AttachmentKind(c.PostForm("kind"))
		created, err = h.Attachments.Upload(ctx, complaintID, kind, data, fileHeader.Filename)
	} else {
		var req addAttachmentRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
			return
		}
		created, err = h.Attachments.Add(ctx, complaintID, models.AttachmentKind(req.Kind), req.URL, req.Name)
	}

	switch {
	case errors.Is(err, attachment.ErrInvalidKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	case err != nil:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to store attachment"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListAttachments(c *gin.Context) {
	if _, ok := h.requireComplaintAccess(c, c.Param("id")); !ok {
		return
	}

	attachments, err := h.Attachments.ByComplaint(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to load attachments"})
		return
	}
	c.JSON(http.StatusOK, attachments)
}
