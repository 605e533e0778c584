package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/teot59/airline-manager-JSON-to-excel/internal/config"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/repository/mongodb"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/repository/sheets"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/scheduler"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/server/handlers"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/server/router"
	exportsvc "github.com/teot59/airline-manager-JSON-to-excel/internal/service/export"
	"github.com/teot59/airline-manager-JSON-to-excel/pkg/clients/notify"
	"github.com/teot59/airline-manager-JSON-to-excel/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var mirror exportsvc.Mirror
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		mirror = sheetsRepo
		baseLogger.Info("google sheets mirror enabled")
	}

	var (
		history       exportsvc.HistoryStore
		historyReader handlers.HistoryReader
	)
	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		history, historyReader = mongoRepo, mongoRepo
	} else {
		baseLogger.Warn("mongodb uri missing, export history disabled")
	}

	var notifier exportsvc.Notifier
	if cfg.Notify.Enabled() {
		notifier = notify.NewClient(cfg.Notify)
	}

	exportSvc := exportsvc.NewService(mirror, history, notifier, baseLogger.Named("svc.export"))
	outputRoot, err := filepath.Abs(cfg.Export.OutputRoot)
	if err != nil {
		baseLogger.Fatal("failed to resolve export output root", zap.String("root", cfg.Export.OutputRoot), zap.Error(err))
	}
	exportHandler := handlers.NewExportHandler(exportSvc, historyReader, cfg.Export.DefaultMode, outputRoot, baseLogger.Named("handlers.export"))
	engine := router.New(exportHandler, baseLogger.Named("router"))

	if cfg.Schedule.CronSchedule != "" {
		sched, err := scheduler.NewScheduler(*cfg, exportSvc, baseLogger.Named("scheduler"))
		if err != nil {
			baseLogger.Fatal("failed to init scheduler", zap.Error(err))
		}
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
