package models

import (
	"time"
)

// AppointmentStatus represents the status of a training session
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents one concrete training session, either booked ad hoc
// or materialized from a recurring schedule.
type Appointment struct {
	BaseModel
	TrainerID   string            `gorm:"size:36;index" json:"trainerId"`
	MemberID    string            `gorm:"size:36;index" json:"memberId"`
	Title       string            `gorm:"size:255" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	StartTime   time.Time         `json:"startTime"`
	EndTime     time.Time         `json:"endTime"`
	Status      AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`

	// Set when the session was generated from a recurring schedule. Bulk
	// cancellation still matches on (member, trainer, title) to mirror the
	// portal's historical behavior; this column exists so a later migration
	// can switch to a real foreign key.
	RecurringScheduleID string `gorm:"size:36;index" json:"recurringScheduleId,omitempty"`

	// Relations
	Trainer User `gorm:"foreignKey:TrainerID" json:"-"`
	Member  User `gorm:"foreignKey:MemberID" json:"-"`
}
