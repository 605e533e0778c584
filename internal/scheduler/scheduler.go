package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/teot59/airline-manager-JSON-to-excel/internal/config"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/domain/models"
)

// Exporter is the export operation the scheduler triggers.
type Exporter interface {
	ExportFile(ctx context.Context, path, mode string) (models.ExportResponse, error)
}

// Scheduler re-exports the configured source batch on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	exporter Exporter
	cfg      config.Config
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, exporter Exporter, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Schedule.Timezone, err)
	}

	// standard 5-field parser: min, hour, dom, month, dow
	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:     c,
		exporter: exporter,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Start registers the export job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler",
		zap.String("schedule", s.cfg.Schedule.CronSchedule),
		zap.String("source", s.cfg.Export.SourcePath))

	if _, err := s.cron.AddFunc(s.cfg.Schedule.CronSchedule, s.runExports); err != nil {
		return fmt.Errorf("schedule export %q: %w", s.cfg.Schedule.CronSchedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runExports() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// modes run one after another; each export is a single synchronous batch
	for _, mode := range s.cfg.Export.Modes {
		resp, err := s.exporter.ExportFile(ctx, s.cfg.Export.SourcePath, mode)
		if err != nil {
			s.logger.Error("scheduled export failed", zap.String("mode", mode), zap.Error(err))
			continue
		}
		s.logger.Info("scheduled export written", zap.String("mode", mode), zap.String("path", resp.Path))
	}
}
