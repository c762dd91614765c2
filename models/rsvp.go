package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance types for an attending RSVP.
const (
	AttendanceChurch    = "church"
	AttendanceReception = "reception"
	AttendanceBoth      = "both"
)

// ValidAttendanceType reports whether t is one of the known attendance types.
func ValidAttendanceType(t string) bool {
	switch t {
	case AttendanceChurch, AttendanceReception, AttendanceBoth:
		return true
	}
	return false
}

// RSVP is a submitted attendance response. AttendanceType is only meaningful
// when Attending is true; otherwise it is stored as the default "both".
type RSVP struct {
	ID             string     `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName      string     `gorm:"size:255;not null" json:"first_name"`
	LastName       string     `gorm:"size:255;not null" json:"last_name"`
	Email          string     `gorm:"size:255;not null" json:"email"`
	Attending      bool       `gorm:"not null" json:"attending"`
	AttendanceType string     `gorm:"size:20;not null;default:'both'" json:"attendance_type"`
	ReminderSent   bool       `gorm:"not null;default:false" json:"reminder_sent"`
	ReminderSentAt *time.Time `json:"reminder_sent_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (RSVP) TableName() string {
	return "rsvps"
}

// BeforeCreate assigns a uuid primary key if none is set
func (r *RSVP) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RSVPNameTaken reports whether an RSVP with the given name already exists,
// case-insensitively. This is a read-then-write duplicate check with no
// uniqueness constraint behind it; concurrent submissions for the same name
// can still both pass.
func RSVPNameTaken(db *gorm.DB, firstName, lastName string) (bool, error) {
	var count int64
	err := db.Model(&RSVP{}).
		Where("LOWER(first_name) = LOWER(?) AND LOWER(last_name) = LOWER(?)",
			strings.TrimSpace(firstName), strings.TrimSpace(lastName)).
		Count(&count).Error
	return count > 0, err
}
