package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ucr-mock/internal/api"
	"ucr-mock/internal/conf"
	"ucr-mock/internal/metrics"
	"ucr-mock/internal/mockdata"
	"ucr-mock/internal/repository"
	"ucr-mock/internal/service"
)

func main() {
	// 設定 Log 格式
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// 1. Config
	cfg, err := conf.LoadConfig()
	if err != nil {
		logrus.Fatalf("Config error: %v", err)
	}
	logrus.SetLevel(cfg.LogLevel())

	// 2. Dependency Injection
	// Generator -> Service -> Handler
	m := metrics.New()
	clock := mockdata.SystemClock{}
	factory := service.NewGeneratorFactory(cfg.Generator.Seed, clock)
	feedService := service.NewFeedService(factory, clock, cfg.Homepage, cfg.Analytics, m)

	var provider service.FeedProvider = feedService
	var snapshotService *service.SnapshotService
	if cfg.Generator.RefreshSchedule != "" {
		snapshotService = service.NewSnapshotService(feedService, repository.NewMemorySnapshotRepo())
		if err := snapshotService.Start(cfg.Generator.RefreshSchedule); err != nil {
			logrus.Fatalf("Snapshot scheduler error: %v", err)
		}
		defer snapshotService.Stop()
		provider = snapshotService
	}
	if cfg.Generator.Seed != 0 {
		logrus.Infof("Generator seed pinned to %d", cfg.Generator.Seed)
	}

	// 3. Router
	if cfg.LogLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	r := api.NewRouter(api.RouterDeps{
		Feed:     api.NewFeedHandler(provider, feedService),
		Tools:    api.NewToolHandler(),
		Metrics:  m,
		Snapshot: snapshotService,
	}, gin.Logger(), gin.Recovery())

	// 4. Start Server
	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Server startup failed: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server shutdown error: %v", err)
	}
}
