package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hooplytics/pra-engine/internal/api/handlers"
	"github.com/hooplytics/pra-engine/internal/scoring"
	"github.com/hooplytics/pra-engine/internal/teamdata"
	"github.com/hooplytics/pra-engine/pkg/config"
	"github.com/hooplytics/pra-engine/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	structuredLogger := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithService("pra-engine").WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
		"variant":     cfg.DefaultVariant,
	}).Info("Starting PRA prediction engine")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	teams, err := teamdata.Load()
	if err != nil {
		logger.WithService("pra-engine").Fatalf("Failed to load team data: %v", err)
	}
	engine := scoring.NewEngine(teams, structuredLogger)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	rankingsHandler := handlers.NewRankingsHandler(engine, structuredLogger)
	lineupsHandler := handlers.NewLineupsHandler(engine, cfg, structuredLogger)
	backtestHandler := handlers.NewBacktestHandler(engine, structuredLogger)

	router.GET("/health", handlers.Health(teams))
	api := router.Group("/api/v1")
	{
		api.POST("/rankings", rankingsHandler.Rank)
		api.POST("/rankings/compare", rankingsHandler.Compare)
		api.POST("/lineups", lineupsHandler.Build)
		api.POST("/backtest/day", backtestHandler.RunDay)
		api.POST("/backtest/summary", backtestHandler.Summarize)
		api.GET("/demo/slate", handlers.DemoSlate(cfg.FixtureSeed))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService("pra-engine").Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService("pra-engine").Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithService("pra-engine").Errorf("Forced shutdown: %v", err)
	}
}
