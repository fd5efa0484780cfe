package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/recurrence"
)

func TestUserPasswordHashing(t *testing.T) {
	user := User{Email: "member@elitefit.test"}
	require.NoError(t, user.SetPassword("s3cret-pass"))

	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.True(t, user.CheckPassword("s3cret-pass"))
	assert.False(t, user.CheckPassword("wrong-pass"))
}

func TestUserFullName(t *testing.T) {
	assert.Equal(t, "Ama Mensah", (&User{FirstName: "Ama", LastName: "Mensah"}).FullName())
	assert.Equal(t, "Ama", (&User{FirstName: "Ama"}).FullName())
	assert.Equal(t, "Mensah", (&User{LastName: "Mensah"}).FullName())
}

func TestScheduleDayName(t *testing.T) {
	assert.Equal(t, "Sunday", (&RecurringSchedule{DayOfWeek: 0}).DayName())
	assert.Equal(t, "Wednesday", (&RecurringSchedule{DayOfWeek: 3}).DayName())
	assert.Equal(t, "Saturday", (&RecurringSchedule{DayOfWeek: 6}).DayName())
	assert.Equal(t, "", (&RecurringSchedule{DayOfWeek: 7}).DayName())
}

func TestScheduleStatusBadgeClass(t *testing.T) {
	tests := []struct {
		status ScheduleStatus
		want   string
	}{
		{ScheduleStatusActive, "badge-success"},
		{ScheduleStatusPaused, "badge-warning"},
		{ScheduleStatusCancelled, "badge-danger"},
		{ScheduleStatus("unknown"), "badge-secondary"},
	}
	for _, tt := range tests {
		s := RecurringSchedule{Status: tt.status}
		assert.Equal(t, tt.want, s.StatusBadgeClass())
	}
}

func TestScheduleFrequencyLabelRoundTrip(t *testing.T) {
	s := RecurringSchedule{Frequency: recurrence.FrequencyBiweekly}
	assert.Equal(t, "Every 2 weeks", s.Frequency.Label())
}

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{"normal range", 70, 175, 22.9},
		{"rounds to one decimal", 80, 180, 24.7},
		{"zero height", 70, 0, 0},
		{"zero weight", 0, 175, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BMI(tt.weightKg, tt.heightCm))
		})
	}
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "", BMICategory(0))
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obese", BMICategory(31.2))
}

func TestGoalPercent(t *testing.T) {
	assert.Equal(t, 50, GoalPercent(1100, 2200))
	assert.Equal(t, 100, GoalPercent(3000, 2200), "capped at 100")
	assert.Equal(t, 0, GoalPercent(500, 0), "zero goal reads as 0")
	assert.Equal(t, 0, GoalPercent(0, 2200))
}

func TestDefaultMemberSetting(t *testing.T) {
	settings := DefaultMemberSetting("member-1")
	assert.Equal(t, "member-1", settings.MemberID)
	assert.Equal(t, "dark", settings.Theme)
	assert.True(t, settings.EmailNotifications)
	assert.False(t, settings.SMSNotifications)
	assert.Equal(t, 2200, settings.CalorieGoal)
	assert.Equal(t, 120, settings.ProteinGoalG)
	assert.Equal(t, 2000, settings.WaterGoalMl)
}
