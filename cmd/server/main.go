package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doclens/internal/analyzer"
	_ "doclens/internal/analyzer/gemini"
	"doclens/internal/config"
	"doclens/internal/handler"
	"doclens/internal/router"
	"doclens/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the inference backend
	docAnalyzer, err := analyzer.NewAnalyzer(&cfg.Analyzer)
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	// Initialize services
	analysisSvc := service.NewAnalysisService(docAnalyzer)

	// Initialize handlers
	analyzeH := handler.NewAnalyzeHandler(analysisSvc)
	healthH := handler.NewHealthHandler(&cfg.Analyzer)

	// Setup router
	r := router.Setup(cfg, analyzeH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
