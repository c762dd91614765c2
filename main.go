package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wedding-backend/config"
	"wedding-backend/controllers"
	"wedding-backend/database"
	"wedding-backend/docs"
	"wedding-backend/mailer"
	"wedding-backend/middleware"
)

// @title           Wedding RSVP API
// @version         1.0
// @description     Guest management and RSVP collection for a single event
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey AdminCookie
// @in cookie
// @name admin_session
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load environment variables
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	database.Connect()
	database.Migrate()

	if err := controllers.InitAdminPassword(); err != nil {
		log.Fatalf("Failed to prepare admin credentials: %v", err)
	}

	if config.C.ResendAPIKey != "" && config.C.ResendFromEmail != "" {
		controllers.Mail = mailer.NewClient(config.C.ResendAPIKey, config.C.ResendFromEmail)
	} else {
		slog.Warn("email service not configured, reminder sending is disabled")
	}

	// Set up Swagger info
	docs.SwaggerInfo.Title = "Wedding RSVP API"
	docs.SwaggerInfo.Description = "Guest management and RSVP collection for a single event"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + config.C.Port
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Set up router
	router := gin.New()
	router.Use(sloggin.New(logger), gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/rsvp", controllers.SubmitRSVP)
		public.GET("/confirmation/:token", controllers.GetConfirmation)
		public.POST("/admin/login", controllers.Login)
		public.POST("/admin/logout", controllers.Logout)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuth())
	{
		// RSVP routes
		admin.GET("/rsvps", controllers.GetRSVPs)
		admin.GET("/rsvps/export", controllers.ExportRSVPs)
		admin.PUT("/rsvps/:id", controllers.UpdateRSVP)
		admin.DELETE("/rsvps/:id", controllers.DeleteRSVP)

		// Guest list routes
		admin.GET("/guests", controllers.GetGuests)
		admin.GET("/guests/export", controllers.ExportGuests)
		admin.POST("/guests", controllers.CreateGuest)
		admin.POST("/guests/import", controllers.ImportGuests)
		admin.PUT("/guests/:id", controllers.UpdateGuest)
		admin.DELETE("/guests/:id", controllers.DeleteGuest)

		// Reminder routes
		admin.POST("/reminders/send", controllers.SendAllReminders)
		admin.POST("/reminders/send/:id", controllers.SendReminder)
	}

	// Start server
	slog.Info("server running", "port", config.C.Port)
	if err := router.Run(":" + config.C.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
