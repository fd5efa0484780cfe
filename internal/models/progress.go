package models

import (
	"math"
	"time"
)

// ProgressEntry is one row on a member's progress tracker.
type ProgressEntry struct {
	BaseModel
	MemberID   string    `gorm:"size:36;index" json:"memberId"`
	EntryDate  time.Time `gorm:"index" json:"entryDate"`
	WeightKg   float64   `gorm:"not null" json:"weightKg"`
	HeightCm   float64   `json:"heightCm"`
	BodyFatPct *float64  `json:"bodyFatPct,omitempty"`
	ChestCm    *float64  `json:"chestCm,omitempty"`
	WaistCm    *float64  `json:"waistCm,omitempty"`
	ArmsCm     *float64  `json:"armsCm,omitempty"`
	Notes      string    `gorm:"type:text" json:"notes"`

	// Relations
	Member User `gorm:"foreignKey:MemberID" json:"-"`
}

// BMI computes body mass index (kg/m²) rounded to one decimal place.
// Returns 0 when height is not set.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// BMICategory returns the standard label for a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
