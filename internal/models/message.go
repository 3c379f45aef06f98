package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemSender is the reserved sender id for auto-generated thread messages.
const SystemSender = "system"

// Message is one entry in a complaint's communication thread. Messages are
// never mutated or deleted; threads are read in created-at order.
type Message struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	ComplaintID   string    `gorm:"type:text;not null;index" json:"complaint_id"`
	SenderID      string    `gorm:"type:text;not null" json:"sender_id"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	AutoGenerated bool      `gorm:"default:false" json:"auto_generated"`
	CreatedAt     time.Time `json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}
