package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest is a pre-approved invitee. An RSVP submission is admitted only when a
// matching enabled guest exists on the list.
type Guest struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName string    `gorm:"size:255;not null" json:"first_name"`
	LastName  string    `gorm:"size:255;not null" json:"last_name"`
	Enabled   bool      `gorm:"not null;default:true" json:"enabled"`
	IsInc     bool      `gorm:"not null;default:false" json:"is_inc"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Guest) TableName() string {
	return "guest_list"
}

// BeforeCreate assigns a uuid primary key if none is set
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// FindGuestByName resolves the soft join between RSVPs and the guest list.
// Matching is case-insensitive and exact. Every flow that needs guest data
// for a name (admission, confirmation, reminders) must go through here.
// Returns (nil, nil) when no guest matches.
func FindGuestByName(db *gorm.DB, firstName, lastName string) (*Guest, error) {
	var guest Guest
	err := db.
		Where("LOWER(first_name) = LOWER(?) AND LOWER(last_name) = LOWER(?)",
			strings.TrimSpace(firstName), strings.TrimSpace(lastName)).
		First(&guest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// GuestNameTaken reports whether a guest with the given name already exists,
// case-insensitively.
func GuestNameTaken(db *gorm.DB, firstName, lastName string) (bool, error) {
	var count int64
	err := db.Model(&Guest{}).
		Where("LOWER(first_name) = LOWER(?) AND LOWER(last_name) = LOWER(?)",
			strings.TrimSpace(firstName), strings.TrimSpace(lastName)).
		Count(&count).Error
	return count > 0, err
}
