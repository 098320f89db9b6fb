package routes

import (
	"scoutpro-backend/internal/api/handlers"
	"scoutpro-backend/internal/api/middleware"
	"scoutpro-backend/internal/auth"
	"scoutpro-backend/internal/config"
	"scoutpro-backend/internal/repository"
	"scoutpro-backend/internal/service"
	"scoutpro-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. All state the
// handlers share (rate counters, database handle, file store) is created
// here and injected; nothing is ambient.
func SetupRoutes(db *gorm.DB, store *storage.LocalStore, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery(cfg.IsProduction()))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize auth and the authorization policy
	authService := auth.NewAuthService(userRepo, cfg.JWTSecret, cfg.RegistrationCode, validate)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)
	policy := auth.NewAuthenticatedPolicy()

	// Initialize services
	teamService := service.NewTeamService(teamRepo, playerRepo, reportRepo, store, policy, validate)
	playerService := service.NewPlayerService(playerRepo, reportRepo, store, policy, validate)
	reportService := service.NewReportService(reportRepo, store, policy, validate)
	uploadService := service.NewUploadService(reportRepo, store, policy)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, store)
	teamHandler := handlers.NewTeamHandler(teamService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	reportHandler := handlers.NewReportHandler(reportService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Per-route-class rate limiters; the guard sits in front of auth
	generalLimit := classLimiter(cfg, middleware.GeneralClass)
	loginLimit := classLimiter(cfg, middleware.LoginClass)
	registerLimit := classLimiter(cfg, middleware.RegisterClass)
	uploadLimit := classLimiter(cfg, middleware.UploadClass)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Uploaded spray charts are served statically
	router.Static("/uploads", store.Dir())

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", registerLimit, authHandler.Register)
		authGroup.POST("/login", loginLimit, authHandler.Login)
	}

	// Team routes
	teams := router.Group("/teams", generalLimit, authMiddleware.RequireAuth())
	{
		teams.GET("", teamHandler.ListTeams)
		teams.POST("", teamHandler.CreateTeam)
		teams.PUT("/:id", teamHandler.UpdateTeam)
		teams.DELETE("/:id", teamHandler.DeleteTeam)
	}

	// Player routes
	players := router.Group("/players", generalLimit, authMiddleware.RequireAuth())
	{
		players.GET("", playerHandler.ListPlayers)
		players.POST("", playerHandler.CreatePlayer)
		players.PUT("/:id", playerHandler.UpdatePlayer)
		players.DELETE("/:id", playerHandler.DeletePlayer)
	}

	// Report routes
	reports := router.Group("/reports", generalLimit, authMiddleware.RequireAuth())
	{
		reports.GET("", reportHandler.ListReports)
		reports.POST("", reportHandler.CreateReport)
		reports.PUT("/:id", reportHandler.UpdateReport)
		reports.DELETE("/:id", reportHandler.DeleteReport)
	}

	// Upload routes
	upload := router.Group("/upload", uploadLimit, authMiddleware.RequireAuth())
	{
		upload.POST("/spray-chart/:reportId", uploadHandler.AttachSprayChart)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// classLimiter returns the middleware for one rate class, or a no-op when
// rate limiting is disabled (tests, local development).
func classLimiter(cfg *config.Config, class middleware.RateClass) gin.HandlerFunc {
	if !cfg.RateLimitEnabled {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.NewRateLimiter(class).Limit()
}
