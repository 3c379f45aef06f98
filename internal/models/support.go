package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmergencyContact is a static directory entry shown on the help pages.
type EmergencyContact struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:text;not null" json:"name"`
	Role        string `gorm:"type:text" json:"role"`
	PhoneNumber string `gorm:"type:text;not null" json:"phone_number"`
	Email       string `gorm:"type:text" json:"email,omitempty"`
	Department  string `gorm:"type:text" json:"department"`
}

func (e *EmergencyContact) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

// FAQ is a static question/answer pair. Grouping by category is done on
// the read side, not stored.
type FAQ struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	Category string `gorm:"type:text;not null;index" json:"category"`
}

func (f *FAQ) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}
