package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-reporter/pkg/validator"

	"github.com/johnquangdev/meeting-reporter/internal/adapter/handler"
	"github.com/johnquangdev/meeting-reporter/internal/infrastructure/render"
	reportuse "github.com/johnquangdev/meeting-reporter/internal/usecase/report"
	pkgai "github.com/johnquangdev/meeting-reporter/pkg/ai"
	"github.com/johnquangdev/meeting-reporter/pkg/config"
)

// @title           Meeting Reporter API
// @version         1.0
// @description     Generates downloadable meeting reports (PDF/DOCX) from transcripts using Gemini summarization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// Request IDs for log correlation
	e.Use(middleware.RequestID())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Reports directory must exist before the first request
	if err := os.MkdirAll(cfg.Reports.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create reports directory: %v", err)
	}

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	if cfg.Gemini.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set; summaries will fail soft with inline errors")
	}
	sentimentAnalyzer := reportuse.NewSentimentAnalyzer()

	// Initialize renderers with an immutable style configuration
	log.Println("🖨️  Initializing renderers...")
	style := render.DefaultStyle(cfg.Reports.FontsDir)
	pdfRenderer := render.NewPDFRenderer(style)
	docxRenderer := render.NewDOCXRenderer(style)
	chartRenderer := render.NewPieChartRenderer()

	// Initialize report service
	log.Println("📄 Initializing report service...")
	assembler := reportuse.NewAssembler(geminiClient, sentimentAnalyzer, chartRenderer, cfg.Reports.Dir, logger)
	reportService := reportuse.NewService(assembler, pdfRenderer, docxRenderer, cfg.Reports.Dir, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, reportHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
