package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // needed for pq.StringArray
	"gorm.io/gorm"
)

type ComplaintCategory string

const (
	CategoryElectrical  ComplaintCategory = "electrical"
	CategoryCleanliness ComplaintCategory = "cleanliness"
	CategoryWifi        ComplaintCategory = "wifi"
	CategorySafety      ComplaintCategory = "safety"
	CategoryOther       ComplaintCategory = "other"
)

// Categories lists every valid complaint category. The department mapping
// is validated against this list at startup.
var Categories = []ComplaintCategory{
	CategoryElectrical,
	CategoryCleanliness,
	CategoryWifi,
	CategorySafety,
	CategoryOther,
}

// ValidCategory reports whether c is a member of the category enumeration.
func ValidCategory(c ComplaintCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusRouted     ComplaintStatus = "routed"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusResolved   ComplaintStatus = "resolved"
)

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s ComplaintStatus) bool {
	switch s {
	case StatusPending, StatusRouted, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Complaint is one reported service issue tracked through the status
// lifecycle. AttachmentIDs keeps the attachment references in the order
// they were added.
type Complaint struct {
	ID            string            `gorm:"primaryKey" json:"id"`
	UserID        string            `gorm:"type:text;not null;index" json:"user_id"`
	Category      ComplaintCategory `gorm:"type:text;not null" json:"category"`
	Location      string            `gorm:"type:text;not null" json:"location"`
	Description   string            `gorm:"type:text;not null" json:"description"`
	Status        ComplaintStatus   `gorm:"type:text;not null;index" json:"status"`
	Department    string            `gorm:"type:text;index" json:"department,omitempty"`
	AttachmentIDs pq.StringArray    `gorm:"type:text[]" json:"attachment_ids"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
