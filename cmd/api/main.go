// @title Interview Byte API
// @version 1.0
// @description Interview session orchestration API: payment-gated mock interviews with AI-generated questions, voice calls and scored reports.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"interview-byte/internal/adapter"
	"interview-byte/internal/adapter/llm"
	"interview-byte/internal/adapter/voice"
	"interview-byte/internal/cache"
	"interview-byte/internal/config"
	"interview-byte/internal/database"
	"interview-byte/internal/handler"
	"interview-byte/internal/logger"
	"interview-byte/internal/middleware"
	"interview-byte/internal/repository"
	"interview-byte/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Text-generation provider, shared by question and report generation
	textGenerator, err := llm.NewTextGenerator(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create text-generation client", zap.Error(err))
	}
	appLogger.Info("Text-generation client initialized",
		zap.String("source", cfg.LLM.Source),
		zap.String("model", cfg.LLM.Model))

	// Voice/telephony provider
	voiceClient := voice.NewClient(cfg.Voice)
	appLogger.Info("Voice client initialized", zap.String("base_url", cfg.Voice.BaseURL))

	// Database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Oracle database")

	// Repositories
	sessionRepository := repository.NewSQLXSessionRepository(db)
	transcriptRepository := repository.NewSQLXTranscriptRepository(db)
	reportRepository := repository.NewSQLXReportRepository(db)
	statsRepository := repository.NewSQLXStatsRepository(db)

	// Redis-backed report cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	reportCache := service.NewReportCacheService(cacheAdapter)

	// Services
	questionService := service.NewQuestionService(textGenerator)
	reportService := service.NewReportService(textGenerator)
	voiceOrchestrator := service.NewVoiceOrchestrator(voiceClient, cfg.Voice)
	statsService := service.NewStatsService(statsRepository)
	interviewService := service.NewInterviewService(
		sessionRepository,
		transcriptRepository,
		reportRepository,
		questionService,
		reportService,
		voiceOrchestrator,
		statsService,
		reportCache,
	)
	appLogger.Info("InterviewService initialized")

	interviewHandler := handler.NewInterviewHandler(interviewService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api", middleware.Protected(cfg.Auth.JWTSecret))
	apiGroup.Post("/interviews", interviewHandler.CreateInterview)
	apiGroup.Get("/interviews", interviewHandler.ListHistory)
	apiGroup.Post("/interviews/:id/start", interviewHandler.StartInterview)
	apiGroup.Post("/interviews/:id/complete", interviewHandler.CompleteInterview)
	apiGroup.Get("/interviews/:id/report", interviewHandler.GetReport)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
