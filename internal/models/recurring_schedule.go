package models

import (
	"time"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/recurrence"
)

// ScheduleStatus represents the lifecycle state of a recurring schedule
type ScheduleStatus string

const (
	ScheduleStatusActive    ScheduleStatus = "active"
	ScheduleStatusPaused    ScheduleStatus = "paused"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// RecurringSchedule is a member's standing request for regular sessions with
// a trainer. Day-of-week, session times and trainer are fixed at creation;
// editing them would desynchronize already-generated appointments.
type RecurringSchedule struct {
	BaseModel
	MemberID    string               `gorm:"size:36;index" json:"memberId"`
	TrainerID   string               `gorm:"size:36;index" json:"trainerId"`
	Title       string               `gorm:"size:255;not null" json:"title"`
	Description string               `gorm:"type:text" json:"description"`
	DayOfWeek   int                  `gorm:"not null" json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	StartTime   string               `gorm:"size:5;not null" json:"startTime"` // HH:MM
	EndTime     string               `gorm:"size:5;not null" json:"endTime"`   // HH:MM
	Frequency   recurrence.Frequency `gorm:"size:20;not null" json:"frequency"`
	StartDate   time.Time            `json:"startDate"`
	EndDate     *time.Time           `json:"endDate,omitempty"`
	Status      ScheduleStatus       `gorm:"size:20;default:'active'" json:"status"`

	// Relations
	Member  User `gorm:"foreignKey:MemberID" json:"-"`
	Trainer User `gorm:"foreignKey:TrainerID" json:"-"`
}

// DayName returns the weekday name for the schedule's day-of-week.
func (s *RecurringSchedule) DayName() string {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return ""
	}
	return time.Weekday(s.DayOfWeek).String()
}

// StatusBadgeClass maps the status to the CSS badge class rendered by the
// member frontend.
func (s *RecurringSchedule) StatusBadgeClass() string {
	switch s.Status {
	case ScheduleStatusActive:
		return "badge-success"
	case ScheduleStatusPaused:
		return "badge-warning"
	case ScheduleStatusCancelled:
		return "badge-danger"
	}
	return "badge-secondary"
}
