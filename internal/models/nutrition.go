package models

import (
	"time"
)

// MealType represents which meal of the day a log entry belongs to
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// NutritionLog is one food or drink entry on a member's nutrition tracker.
type NutritionLog struct {
	BaseModel
	MemberID string    `gorm:"size:36;index" json:"memberId"`
	LogDate  time.Time `gorm:"index" json:"logDate"`
	MealType MealType  `gorm:"size:20" json:"mealType"`
	FoodName string    `gorm:"size:255;not null" json:"foodName"`
	Calories int       `gorm:"default:0" json:"calories"`
	ProteinG float64   `gorm:"default:0" json:"proteinG"`
	CarbsG   float64   `gorm:"default:0" json:"carbsG"`
	FatG     float64   `gorm:"default:0" json:"fatG"`
	WaterMl  int       `gorm:"default:0" json:"waterMl"`

	// Relations
	Member User `gorm:"foreignKey:MemberID" json:"-"`
}

// DailyNutritionSummary is the computed rollup for one member day.
type DailyNutritionSummary struct {
	Date           string  `json:"date"`
	TotalCalories  int     `json:"totalCalories"`
	TotalProteinG  float64 `json:"totalProteinG"`
	TotalCarbsG    float64 `json:"totalCarbsG"`
	TotalFatG      float64 `json:"totalFatG"`
	TotalWaterMl   int     `json:"totalWaterMl"`
	CaloriePercent int     `json:"caloriePercent"`
	ProteinPercent int     `json:"proteinPercent"`
	WaterPercent   int     `json:"waterPercent"`
	EntriesLogged  int     `json:"entriesLogged"`
}

// GoalPercent returns consumed as a percentage of goal, capped at 100 so the
// frontend progress bars never overflow. A zero goal reads as 0.
func GoalPercent(consumed, goal float64) int {
	if goal <= 0 {
		return 0
	}
	pct := int(consumed / goal * 100)
	if pct > 100 {
		pct = 100
	}
	return pct
}
