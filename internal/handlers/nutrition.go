package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/middleware"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/models"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/recurrence"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/utils"
)

// NutritionHandler handles nutrition tracker requests.
type NutritionHandler struct {
	DB *gorm.DB
}

// NewNutritionHandler creates a new NutritionHandler.
func NewNutritionHandler(db *gorm.DB) *NutritionHandler {
	return &NutritionHandler{DB: db}
}

// CreateNutritionLogRequest represents the request body for logging a meal.
type CreateNutritionLogRequest struct {
	LogDate  string  `json:"logDate"` // YYYY-MM-DD, defaults to today
	MealType string  `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	FoodName string  `json:"foodName" binding:"required"`
	Calories int     `json:"calories" binding:"min=0"`
	ProteinG float64 `json:"proteinG" binding:"min=0"`
	CarbsG   float64 `json:"carbsG" binding:"min=0"`
	FatG     float64 `json:"fatG" binding:"min=0"`
	WaterMl  int     `json:"waterMl" binding:"min=0"`
}

// CreateNutritionLog adds a meal entry to the member's tracker.
func (h *NutritionHandler) CreateNutritionLog(c *gin.Context) {
	var req CreateNutritionLogRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	logDate := time.Now()
	if req.LogDate != "" {
		parsed, err := time.Parse(recurrence.DateLayout, req.LogDate)
		if err != nil {
			utils.BadRequest(c, "Log date must be in YYYY-MM-DD format")
			return
		}
		logDate = parsed
	}

	entry := models.NutritionLog{
		MemberID: memberID,
		LogDate:  logDate,
		MealType: models.MealType(req.MealType),
		FoodName: req.FoodName,
		Calories: req.Calories,
		ProteinG: req.ProteinG,
		CarbsG:   req.CarbsG,
		FatG:     req.FatG,
		WaterMl:  req.WaterMl,
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		utils.InternalServerError(c, "Failed to log meal: "+err.Error())
		return
	}

	utils.Created(c, "Meal logged successfully", entry)
}

// GetNutritionLogs lists the member's entries for a date (default today).
func (h *NutritionHandler) GetNutritionLogs(c *gin.Context) {
	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	day, ok := h.parseDay(c)
	if !ok {
		return
	}

	var entries []models.NutritionLog
	err := h.DB.Where("member_id = ? AND log_date >= ? AND log_date < ?",
		memberID, day, day.AddDate(0, 0, 1)).
		Order("created_at asc").
		Find(&entries).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch nutrition logs: "+err.Error())
		return
	}

	utils.Success(c, "Nutrition logs fetched successfully", entries)
}

// GetDailySummary returns the rollup for a date with goal percentages from
// the member's settings.
func (h *NutritionHandler) GetDailySummary(c *gin.Context) {
	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	day, ok := h.parseDay(c)
	if !ok {
		return
	}

	var entries []models.NutritionLog
	err := h.DB.Where("member_id = ? AND log_date >= ? AND log_date < ?",
		memberID, day, day.AddDate(0, 0, 1)).
		Find(&entries).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch nutrition logs: "+err.Error())
		return
	}

	settings := models.DefaultMemberSetting(memberID)
	h.DB.Where("member_id = ?", memberID).First(&settings)

	summary := models.DailyNutritionSummary{
		Date:          day.Format(recurrence.DateLayout),
		EntriesLogged: len(entries),
	}
	for _, e := range entries {
		summary.TotalCalories += e.Calories
		summary.TotalProteinG += e.ProteinG
		summary.TotalCarbsG += e.CarbsG
		summary.TotalFatG += e.FatG
		summary.TotalWaterMl += e.WaterMl
	}
	summary.CaloriePercent = models.GoalPercent(float64(summary.TotalCalories), float64(settings.CalorieGoal))
	summary.ProteinPercent = models.GoalPercent(summary.TotalProteinG, float64(settings.ProteinGoalG))
	summary.WaterPercent = models.GoalPercent(float64(summary.TotalWaterMl), float64(settings.WaterGoalMl))

	utils.Success(c, "Daily summary fetched successfully", summary)
}

// DeleteNutritionLog removes one of the member's own entries.
func (h *NutritionHandler) DeleteNutritionLog(c *gin.Context) {
	entryID := c.Param("id")

	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var entry models.NutritionLog
	if err := h.DB.Where("id = ? AND member_id = ?", entryID, memberID).First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Entry not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&entry).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete entry: "+err.Error())
		return
	}

	utils.Success(c, "Entry deleted successfully", nil)
}

func (h *NutritionHandler) parseDay(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	}
	day, err := time.Parse(recurrence.DateLayout, dateStr)
	if err != nil {
		utils.BadRequest(c, "Date must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return day, true
}
