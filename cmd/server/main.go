package main

import (
	"log"
	"net/http"
	"os"

	"scoutpro-backend/internal/api/routes"
	"scoutpro-backend/internal/config"
	"scoutpro-backend/internal/database"
	"scoutpro-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "scoutpro-backend/docs" // This is needed for swag
)

//	@title			Scout Pro Backend API
//	@version		1.0
//	@description	This is the backend API for Scout Pro, providing endpoints for managing teams, players, and scouting reports for baseball coaches.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:5000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize the spray chart store
	store, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	if err != nil {
		logrus.Fatal("Failed to initialize upload storage:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, store, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "5000"
	}

	// Every request shares one deadline; slow handlers get a 503 instead
	// of holding the connection open.
	server := &http.Server{
		Addr:    ":" + port,
		Handler: http.TimeoutHandler(router, cfg.RequestTimeout(), `{"error":"Request timed out"}`),
	}

	logrus.Infof("Starting server on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
