package routes

import (
	"ClinicBridge/cache"
	"ClinicBridge/config"
	"ClinicBridge/controllers"
	"ClinicBridge/handlers"
	"ClinicBridge/middlewares"
	"ClinicBridge/repositories"
	"ClinicBridge/services"
	"ClinicBridge/sessions"
	"ClinicBridge/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	userRepo := repositories.NewUserRepository()
	consultantRepo := repositories.NewConsultantRepository()
	patientRepo := repositories.NewPatientRepository()
	treatmentPlanRepo := repositories.NewTreatmentPlanRepository()
	medicalImageRepo := repositories.NewMedicalImageRepository()
	paymentRepo := repositories.NewPaymentRepository()
	activityRepo := repositories.NewActivityRepository()

	// Initialize services
	accessService := services.NewAccessService(patientRepo, consultantRepo)
	mailer := &utils.SMTPMailer{
		Host: config.SMTPHost,
		Port: config.SMTPPort,
		User: config.SMTPUser,
		Pass: config.SMTPPass,
	}
	userService := services.NewUserService(userRepo, activityRepo, cache, mailer)
	patientService := services.NewPatientService(patientRepo, consultantRepo, userRepo, treatmentPlanRepo, medicalImageRepo, paymentRepo, activityRepo, accessService)
	consultantService := services.NewConsultantService(consultantRepo, patientRepo, userRepo, activityRepo, accessService)
	treatmentPlanService := services.NewTreatmentPlanService(treatmentPlanRepo, patientRepo, activityRepo)
	paymentService := services.NewPaymentService(paymentRepo, patientRepo, activityRepo)
	imageService := services.NewImageService(medicalImageRepo, patientRepo, activityRepo)
	dashboardService := services.NewDashboardService(patientRepo, consultantRepo, paymentRepo, activityRepo, accessService)

	// Sessions live in Redis so revocation survives process restarts
	directory := sessions.NewRedisDirectory(cache)
	sessionAuth := middlewares.SessionAuthMiddleware(config.GetSymmetricKey(), directory, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, directory, config.GetSymmetricKey())
	patientHandler := handlers.NewPatientHandler(patientService)
	consultantHandler := handlers.NewConsultantHandler(consultantService)
	treatmentPlanHandler := handlers.NewTreatmentPlanHandler(treatmentPlanService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	imageHandler := handlers.NewImageHandler(imageService, &utils.FileStore{Dir: config.UploadDir})
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Register routes
	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router, sessionAuth)

	controllers.SetupPatientRoutes(
		router,
		sessionAuth,
		patientHandler,
		consultantHandler,
		treatmentPlanHandler,
		paymentHandler,
		imageHandler,
		dashboardHandler,
	)

	controllers.SetupRootRoute(router)

	return router
}
