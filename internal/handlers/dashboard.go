package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/middleware"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/models"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/utils"
)

// DashboardHandler serves the member dashboard aggregate.
type DashboardHandler struct {
	DB *gorm.DB
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// DashboardData is the single payload behind the member dashboard page.
type DashboardData struct {
	NextSession         *models.Appointment `json:"nextSession,omitempty"`
	ActiveSchedules     int64               `json:"activeSchedules"`
	UnreadNotifications int64               `json:"unreadNotifications"`
	UnreadMessages      int64               `json:"unreadMessages"`
	CaloriesToday       int                 `json:"caloriesToday"`
	LatestWeightKg      float64             `json:"latestWeightKg"`
	LatestBMI           float64             `json:"latestBmi"`
}

// GetDashboard assembles the member's dashboard in one round trip.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var data DashboardData
	now := time.Now()

	var next models.Appointment
	err := h.DB.Preload("Trainer").
		Where("member_id = ? AND start_time > ? AND status <> ?", memberID, now, models.StatusCancelled).
		Order("start_time asc").
		First(&next).Error
	if err == nil {
		data.NextSession = &next
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Failed to fetch next session: "+err.Error())
		return
	}

	h.DB.Model(&models.RecurringSchedule{}).
		Where("member_id = ? AND status = ?", memberID, models.ScheduleStatusActive).
		Count(&data.ActiveSchedules)

	h.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", memberID, false).
		Count(&data.UnreadNotifications)

	h.DB.Model(&models.Message{}).
		Where("receiver_id = ? AND status = ?", memberID, models.MessageStatusSent).
		Count(&data.UnreadMessages)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var calories struct{ Total int }
	h.DB.Model(&models.NutritionLog{}).
		Select("COALESCE(SUM(calories), 0) as total").
		Where("member_id = ? AND log_date >= ? AND log_date < ?", memberID, today, today.AddDate(0, 0, 1)).
		Scan(&calories)
	data.CaloriesToday = calories.Total

	var latest models.ProgressEntry
	if err := h.DB.Where("member_id = ?", memberID).
		Order("entry_date desc, created_at desc").
		First(&latest).Error; err == nil {
		data.LatestWeightKg = latest.WeightKg
		data.LatestBMI = models.BMI(latest.WeightKg, latest.HeightCm)
	}

	utils.Success(c, "Dashboard fetched successfully", data)
}
