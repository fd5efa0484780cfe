package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleMember  Role = "member"
)

// User represents a portal account: a gym member, a trainer, or an admin.
type User struct {
	BaseModel
	Email           string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password        string     `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	FirstName       string     `gorm:"size:100" json:"firstName"`
	LastName        string     `gorm:"size:100" json:"lastName"`
	Role            Role       `gorm:"size:20;default:'member'" json:"role"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	PhoneNumber     string     `json:"phoneNumber,omitempty"`
	ProfileImage    string     `json:"profileImage,omitempty"`
	Specialization  string     `gorm:"size:100" json:"specialization,omitempty"` // trainers only
	ExperienceYears int        `gorm:"default:0" json:"experienceYears,omitempty"`

	// Relations (not always preloaded)
	RefreshTokens       []RefreshToken      `gorm:"foreignKey:UserID" json:"-"`
	TrainerAppointments []Appointment       `gorm:"foreignKey:TrainerID" json:"-"`
	MemberAppointments  []Appointment       `gorm:"foreignKey:MemberID" json:"-"`
	RecurringSchedules  []RecurringSchedule `gorm:"foreignKey:MemberID" json:"-"`
	SentMessages        []Message           `gorm:"foreignKey:SenderID" json:"-"`
	ReceivedMessages    []Message           `gorm:"foreignKey:ReceiverID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Role            Role       `json:"role"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	PhoneNumber     string     `json:"phoneNumber,omitempty"`
	ProfileImage    string     `json:"profileImage,omitempty"`
	Specialization  string     `json:"specialization,omitempty"`
	ExperienceYears int        `json:"experienceYears,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// FullName returns the display name used in schedule and message views.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Role:            u.Role,
		DateOfBirth:     u.DateOfBirth,
		PhoneNumber:     u.PhoneNumber,
		ProfileImage:    u.ProfileImage,
		Specialization:  u.Specialization,
		ExperienceYears: u.ExperienceYears,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
