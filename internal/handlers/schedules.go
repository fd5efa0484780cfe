package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/config"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/middleware"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/models"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/recurrence"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/utils"
)

// ScheduleHandler handles recurring training schedule requests.
type ScheduleHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(db *gorm.DB, cfg *config.Config) *ScheduleHandler {
	return &ScheduleHandler{DB: db, Cfg: cfg}
}

// CreateScheduleRequest represents the request body for creating a recurring schedule.
type CreateScheduleRequest struct {
	TrainerID   string `json:"trainerId" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DayOfWeek   *int   `json:"dayOfWeek" binding:"required"` // pointer so 0 (Sunday) passes required
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	Frequency   string `json:"frequency" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate     string `json:"endDate"`                      // optional YYYY-MM-DD
}

// CreateRecurringSchedule creates a recurring schedule for the logged-in
// member and materializes the initial batch of sessions. The rule row, the
// generated sessions and the trainer notification are written in a single
// transaction.
func (h *ScheduleHandler) CreateRecurringSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Member ID not found in token")
		return
	}

	startDate, err := time.Parse(recurrence.DateLayout, req.StartDate)
	if err != nil {
		utils.BadRequest(c, "Start date must be in YYYY-MM-DD format")
		return
	}
	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse(recurrence.DateLayout, req.EndDate)
		if err != nil {
			utils.BadRequest(c, "End date must be in YYYY-MM-DD format")
			return
		}
		endDate = &parsed
	}

	genReq := recurrence.Request{
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Frequency: recurrence.Frequency(req.Frequency),
		StartDate: startDate,
		EndDate:   endDate,
		Cap:       h.Cfg.RecurringOccurrenceCap,
	}
	if err := genReq.Validate(time.Now()); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	// Verify the trainer exists and actually is a trainer
	var trainer models.User
	if err := h.DB.Where("id = ? AND role = ?", req.TrainerID, models.RoleTrainer).First(&trainer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Trainer not found")
		} else {
			utils.InternalServerError(c, "Database error verifying trainer: "+err.Error())
		}
		return
	}

	occurrences, err := recurrence.Generate(genReq)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	schedule := models.RecurringSchedule{
		MemberID:    memberID,
		TrainerID:   req.TrainerID,
		Title:       req.Title,
		Description: req.Description,
		DayOfWeek:   *req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Frequency:   genReq.Frequency,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      models.ScheduleStatusActive,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&schedule).Error; err != nil {
			return err
		}
		for _, occ := range occurrences {
			appointment := models.Appointment{
				TrainerID:           req.TrainerID,
				MemberID:            memberID,
				Title:               req.Title,
				Description:         req.Description,
				StartTime:           occ.Start,
				EndTime:             occ.End,
				Status:              models.StatusScheduled,
				RecurringScheduleID: schedule.ID,
			}
			if err := tx.Create(&appointment).Error; err != nil {
				return err
			}
		}
		notification := models.Notification{
			RecipientID: req.TrainerID,
			Message: fmt.Sprintf("New recurring schedule: %s every %s at %s (%s), starting %s",
				req.Title, schedule.DayName(), req.StartTime,
				schedule.Frequency.Label(), startDate.Format(recurrence.DateLayout)),
			Icon: "calendar-plus",
			Link: "/trainer/schedule",
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to create recurring schedule: "+err.Error())
		return
	}

	utils.Created(c, "Recurring schedule created successfully", gin.H{
		"schedule":             schedule,
		"occurrencesGenerated": len(occurrences),
	})
}

// ScheduleView is a schedule row joined with trainer display fields, shaped
// for the member's schedule page.
type ScheduleView struct {
	models.RecurringSchedule
	TrainerName    string `json:"trainerName"`
	TrainerImage   string `json:"trainerImage"`
	DayName        string `json:"dayName"`
	FrequencyLabel string `json:"frequencyLabel"`
	StatusBadge    string `json:"statusBadge"`
}

// ListRecurringSchedules returns the member's schedules joined with trainer
// name and image, ordered by day-of-week then start time.
func (h *ScheduleHandler) ListRecurringSchedules(c *gin.Context) {
	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Member ID not found in token")
		return
	}

	var schedules []models.RecurringSchedule
	err := h.DB.Preload("Trainer").
		Where("member_id = ?", memberID).
		Order("day_of_week asc, start_time asc").
		Find(&schedules).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch schedules: "+err.Error())
		return
	}

	views := make([]ScheduleView, len(schedules))
	for i, s := range schedules {
		views[i] = ScheduleView{
			RecurringSchedule: s,
			TrainerName:       s.Trainer.FullName(),
			TrainerImage:      s.Trainer.ProfileImage,
			DayName:           s.DayName(),
			FrequencyLabel:    s.Frequency.Label(),
			StatusBadge:       s.StatusBadgeClass(),
		}
	}

	utils.Success(c, "Schedules fetched successfully", views)
}

// UpdateScheduleRequest represents the request body for editing a recurring
// schedule. Day-of-week, session times and trainer are immutable.
type UpdateScheduleRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Frequency   string `json:"frequency" binding:"required,oneof=weekly biweekly monthly"`
	EndDate     string `json:"endDate"` // optional YYYY-MM-DD; empty clears it
	Status      string `json:"status" binding:"required,oneof=active paused cancelled"`
}

// UpdateRecurringSchedule edits a schedule owned by the logged-in member.
// Transitioning into cancelled also cancels all of the member's future
// sessions with this trainer and title, and notifies the trainer.
func (h *ScheduleHandler) UpdateRecurringSchedule(c *gin.Context) {
	scheduleID := c.Param("id")

	var req UpdateScheduleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Member ID not found in token")
		return
	}

	// Ownership mismatch and nonexistence are deliberately indistinguishable
	var schedule models.RecurringSchedule
	if err := h.DB.Where("id = ? AND member_id = ?", scheduleID, memberID).First(&schedule).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Schedule not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse(recurrence.DateLayout, req.EndDate)
		if err != nil {
			utils.BadRequest(c, "End date must be in YYYY-MM-DD format")
			return
		}
		if !parsed.After(schedule.StartDate) {
			utils.BadRequest(c, "End date must be after start date")
			return
		}
		endDate = &parsed
	}

	becameCancelled := models.ScheduleStatus(req.Status) == models.ScheduleStatusCancelled &&
		schedule.Status != models.ScheduleStatusCancelled

	schedule.Title = req.Title
	schedule.Description = req.Description
	schedule.Frequency = recurrence.Frequency(req.Frequency)
	schedule.EndDate = endDate
	schedule.Status = models.ScheduleStatus(req.Status)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&schedule).Error; err != nil {
			return err
		}
		if becameCancelled {
			if err := cancelFutureOccurrences(tx, &schedule); err != nil {
				return err
			}
			return notifyScheduleCancelled(tx, &schedule)
		}
		return nil
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to update schedule: "+err.Error())
		return
	}

	utils.Success(c, "Schedule updated successfully", schedule)
}

// DeleteRecurringSchedule removes a schedule owned by the logged-in member
// and cancels its future sessions, notifying the trainer.
func (h *ScheduleHandler) DeleteRecurringSchedule(c *gin.Context) {
	scheduleID := c.Param("id")

	memberID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Member ID not found in token")
		return
	}

	var schedule models.RecurringSchedule
	if err := h.DB.Where("id = ? AND member_id = ?", scheduleID, memberID).First(&schedule).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Schedule not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := cancelFutureOccurrences(tx, &schedule); err != nil {
			return err
		}
		if err := tx.Delete(&schedule).Error; err != nil {
			return err
		}
		return notifyScheduleCancelled(tx, &schedule)
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to delete schedule: "+err.Error())
		return
	}

	utils.Success(c, "Schedule deleted successfully", nil)
}

// cancelFutureOccurrences marks every not-yet-started session matching the
// schedule's member, trainer and title as cancelled. Already-cancelled rows
// are skipped, which makes repeated cancellation a no-op.
func cancelFutureOccurrences(tx *gorm.DB, schedule *models.RecurringSchedule) error {
	return tx.Model(&models.Appointment{}).
		Where("member_id = ? AND trainer_id = ? AND title = ? AND start_time > ? AND status <> ?",
			schedule.MemberID, schedule.TrainerID, schedule.Title, time.Now(), models.StatusCancelled).
		Update("status", models.StatusCancelled).Error
}

func notifyScheduleCancelled(tx *gorm.DB, schedule *models.RecurringSchedule) error {
	notification := models.Notification{
		RecipientID: schedule.TrainerID,
		Message: fmt.Sprintf("Recurring schedule cancelled: %s (%ss at %s)",
			schedule.Title, schedule.DayName(), schedule.StartTime),
		Icon: "calendar-x",
		Link: "/trainer/schedule",
	}
	return tx.Create(&notification).Error
}
