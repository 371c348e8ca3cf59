package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/config"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/constants"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/database"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/handlers"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/middleware"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/repository"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/services"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/uploads"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Add indexes
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Seed the default superadmin account
	if err := database.SeedSuperAdmin(database.GetDB(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	// Proof file storage
	proofStore, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()
	r.MaxMultipartMemory = constants.MaxProofFileSize

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	donorRepo := repository.NewDonorRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, adminRepo)
	workflowService := services.NewWorkflowService(requestRepo, foodRepo, volunteerRepo, deliveryRepo)
	volunteerService := services.NewVolunteerService(volunteerRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, donorRepo)
	dashboardService := services.NewDashboardService(foodRepo, requestRepo, volunteerRepo, deliveryRepo, userRepo, donorRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	requestHandler := handlers.NewRequestHandler(workflowService, dashboardService, proofStore)
	adminHandler := handlers.NewAdminHandler(workflowService, volunteerService, dashboardService)
	volunteerHandler := handlers.NewVolunteerHandler(workflowService, dashboardService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Landing and health endpoints
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Food Donation System",
			"message": "Welcome. Sign up or log in to continue.",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes (public)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// User routes
	r.GET("/user/dashboard", requestHandler.UserDashboard)
	request := r.Group("/request")
	request.Use(middleware.RequireUser())
	{
		request.GET("/new/:food_id", requestHandler.NewRequestForm)
		request.POST("/new/:food_id", requestHandler.SubmitRequest)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.POST("/approve/:req_id", adminHandler.ApproveRequest)
		admin.POST("/assign_volunteer", adminHandler.AssignVolunteer)
		admin.POST("/add_volunteer", adminHandler.AddVolunteer)
	}

	// Volunteer routes
	r.GET("/volunteer/dashboard", volunteerHandler.Dashboard)
	r.POST("/volunteer/update/:delivery_id", volunteerHandler.UpdateDelivery)

	// Feedback routes
	feedback := r.Group("/feedback")
	feedback.Use(middleware.RequireUser())
	{
		feedback.GET("/:donor_id", feedbackHandler.ListDonorFeedback)
		feedback.POST("/:donor_id", feedbackHandler.SubmitFeedback)
	}

	// Uploaded proof files
	r.GET("/uploads/:filename", requestHandler.ServeProofFile)

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
