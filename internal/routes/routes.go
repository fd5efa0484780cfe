package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/config"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/handlers"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/middleware"
	"github.com/Shurface123/Elitefit-Gym-Portal-sub004/internal/models"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	scheduleHandler := handlers.NewScheduleHandler(db, cfg)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	trainerHandler := handlers.NewTrainerHandler(db)
	messageHandler := handlers.NewMessageHandler(db)
	nutritionHandler := handlers.NewNutritionHandler(db)
	progressHandler := handlers.NewProgressHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// Member dashboard
		private.GET("/dashboard", middleware.RoleAuthMiddleware(models.RoleMember), dashboardHandler.GetDashboard)

		// Recurring schedule routes (member-owned)
		scheduleRoutes := private.Group("/schedules")
		scheduleRoutes.Use(middleware.RoleAuthMiddleware(models.RoleMember))
		{
			scheduleRoutes.POST("", scheduleHandler.CreateRecurringSchedule)
			scheduleRoutes.GET("", scheduleHandler.ListRecurringSchedules)
			scheduleRoutes.PUT("/:id", scheduleHandler.UpdateRecurringSchedule)
			scheduleRoutes.DELETE("/:id", scheduleHandler.DeleteRecurringSchedule)
		}

		// Individual session routes
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.GetAppointmentsForUser)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/cancel", middleware.RoleAuthMiddleware(models.RoleMember), appointmentHandler.CancelAppointment)
			appointmentRoutes.PATCH("/:id/confirm", middleware.RoleAuthMiddleware(models.RoleTrainer), appointmentHandler.ConfirmAppointment)
		}

		// Trainer discovery
		trainerRoutes := private.Group("/trainers")
		{
			trainerRoutes.GET("", trainerHandler.GetTrainers)
			trainerRoutes.GET("/:id", trainerHandler.GetTrainerByID)
		}

		// Messaging routes
		messageRoutes := private.Group("/messages")
		{
			messageRoutes.POST("/send", messageHandler.SendMessage)
			messageRoutes.GET("", messageHandler.GetMessagesForUser)
			messageRoutes.GET("/conversations", messageHandler.GetConversations)
			messageRoutes.PATCH("/:messageId/read", messageHandler.MarkMessageAsRead)
		}

		// Nutrition tracker (member-owned)
		nutritionRoutes := private.Group("/nutrition")
		nutritionRoutes.Use(middleware.RoleAuthMiddleware(models.RoleMember))
		{
			nutritionRoutes.POST("", nutritionHandler.CreateNutritionLog)
			nutritionRoutes.GET("", nutritionHandler.GetNutritionLogs)
			nutritionRoutes.GET("/summary", nutritionHandler.GetDailySummary)
			nutritionRoutes.DELETE("/:id", nutritionHandler.DeleteNutritionLog)
		}

		// Progress tracker (member-owned)
		progressRoutes := private.Group("/progress")
		progressRoutes.Use(middleware.RoleAuthMiddleware(models.RoleMember))
		{
			progressRoutes.POST("", progressHandler.CreateProgressEntry)
			progressRoutes.GET("", progressHandler.GetProgressEntries)
			progressRoutes.GET("/summary", progressHandler.GetProgressSummary)
			progressRoutes.DELETE("/:id", progressHandler.DeleteProgressEntry)
		}

		// Notification tray
		notificationRoutes := private.Group("/notifications")
		{
			notificationRoutes.GET("", notificationHandler.GetNotifications)
			notificationRoutes.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
			notificationRoutes.PATCH("/read-all", notificationHandler.MarkAllNotificationsRead)
		}

		// Member settings
		settingsRoutes := private.Group("/settings")
		settingsRoutes.Use(middleware.RoleAuthMiddleware(models.RoleMember))
		{
			settingsRoutes.GET("", settingsHandler.GetSettings)
			settingsRoutes.PUT("", settingsHandler.UpdateSettings)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
