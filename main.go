package main

import (
	"log"
	"os"
	"time"

	"hangman/database"
	"hangman/handlers"
	"hangman/handlers/admin"
	"hangman/middleware"
	"hangman/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database and seed the word pool
	database.InitDB()
	database.SeedWords()

	db := database.GetDB()
	watchHub := services.NewWatchHub()
	scoreService := services.NewScoreService(db)
	gameService := services.NewGameService(db, scoreService, watchHub)
	directoryService := services.NewDirectoryService(db)
	handlers.Init(gameService, scoreService, directoryService, watchHub)

	// Reminder service for users with unfinished games
	services.InitReminderService(db)
	services.GetReminderService().Start()
	defer services.GetReminderService().Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.FiberRateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Game routes
	api.Post("/games", handlers.NewGame)
	api.Get("/games/:key", handlers.GetGame)
	api.Put("/games/:key/move", handlers.MakeMove)
	api.Put("/games/:key/next-level", handlers.NextLevel)
	api.Delete("/games/:key", handlers.CancelGame)
	api.Get("/games/:key/history", handlers.GetGameHistory)

	// User routes
	api.Get("/users/:name/games", handlers.GetUserGames)

	// Leaderboard routes
	leaderboardGroup := api.Group("/leaderboard")
	leaderboardGroup.Get("/rankings", handlers.GetUserRankings)
	leaderboardGroup.Get("/high-scores", handlers.GetHighScores)

	// Live game watch over websocket
	app.Use("/ws/games/:key", handlers.GameWatchUpgrade)
	app.Get("/ws/games/:key", handlers.GameWatch)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", middleware.FiberAuthRateLimitMiddleware(), admin.Login)

	adminProtected := adminGroup.Group("")
	adminProtected.Use(middleware.AdminAuthMiddleware)
	adminProtected.Get("/words", admin.GetWords)
	adminProtected.Post("/words/import", admin.ImportWords)
	adminProtected.Post("/reminders/scan", admin.ScanReminders)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 Hangman API starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	if os.Getenv("ADMIN_PASSWORD_HASH") == "" {
		log.Println("WARNING: ADMIN_PASSWORD_HASH not set, admin endpoints will reject logins")
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
