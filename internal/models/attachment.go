package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttachmentKind string

const (
	AttachmentImage    AttachmentKind = "image"
	AttachmentVideo    AttachmentKind = "video"
	AttachmentDocument AttachmentKind = "document"
)

// ValidAttachmentKind reports whether k is a member of the kind enumeration.
func ValidAttachmentKind(k AttachmentKind) bool {
	switch k {
	case AttachmentImage, AttachmentVideo, AttachmentDocument:
		return true
	}
	return false
}

// Attachment is an uploaded file reference bound to exactly one complaint.
// Records are immutable once created.
type Attachment struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	ComplaintID string         `gorm:"type:text;not null;index" json:"complaint_id"`
	Kind        AttachmentKind `gorm:"type:text;not null" json:"kind"`
	URL         string         `gorm:"type:text;not null" json:"url"`
	Name        string         `gorm:"type:text" json:"name"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}
