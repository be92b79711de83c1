package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"mockmate/interview-prep/internal/config"
	"mockmate/interview-prep/internal/handlers"
	"mockmate/interview-prep/internal/middlewares"
	"mockmate/interview-prep/internal/repositories"
	"mockmate/interview-prep/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize redis (rate limiter backing store)
	rdb, err := config.InitRedis(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize redis: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.ScratchDir)
	if err := storageService.EnsureScratchDir(); err != nil {
		log.Fatalf("❌ Failed to create scratch directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	tokenService := services.NewTokenService(cfg.Token)
	authService := services.NewAuthService(userRepo, tokenService)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	questionGenerator := services.NewQuestionGenerator(geminiService)
	answerScorer := services.NewAnswerScorer(geminiService)
	interviewService := services.NewInterviewService(interviewRepo, questionGenerator, answerScorer)
	log.Println("✅ Interview service initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	extractHandler := handlers.NewExtractHandler(storageService, pdfParser, cfg.Storage.MaxFileSize)
	userHandler := handlers.NewUserHandler(userRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "MockMate Interview Prep API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: errorHandler(cfg),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	app.Use(middlewares.RateLimit(rdb, cfg.RateLimit.Window, cfg.RateLimit.Max))

	// Routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.HandleRegister)
	auth.Post("/login", authHandler.HandleLogin)
	auth.Post("/refresh-token", authHandler.HandleRefreshToken)
	auth.Post("/logout", authHandler.HandleLogout)

	requireAuth := middlewares.RequireAuth(tokenService)

	interviews := api.Group("/interviews", requireAuth)
	interviews.Post("/create", interviewHandler.HandleCreate)
	interviews.Post("/extract", extractHandler.HandleExtract)
	interviews.Get("/all/:id", interviewHandler.HandleGetAllByUser)
	interviews.Get("/:id", interviewHandler.HandleGetByID)
	interviews.Post("/submit/:id", interviewHandler.HandleSubmitAnswers)
	interviews.Delete("/:id", interviewHandler.HandleDelete)

	users := api.Group("/users", requireAuth)
	users.Get("/", userHandler.HandleGetAll)
	users.Get("/:id", userHandler.HandleGetByID)
	users.Put("/:id", userHandler.HandleUpdate)
	users.Delete("/:id", userHandler.HandleDelete)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.Printf("❌ Unhandled error: %v", err)

		payload := fiber.Map{
			"message": "Internal Server Error",
		}
		if code != fiber.StatusInternalServerError {
			payload["message"] = err.Error()
		} else if !cfg.IsProduction() {
			payload["detail"] = err.Error()
		}

		return c.Status(code).JSON(payload)
	}
}
