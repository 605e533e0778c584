package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/teot59/airline-manager-JSON-to-excel/internal/config"
	"github.com/teot59/airline-manager-JSON-to-excel/internal/domain/models"
	exportsvc "github.com/teot59/airline-manager-JSON-to-excel/internal/service/export"
	"github.com/teot59/airline-manager-JSON-to-excel/pkg/clients/notify"
	"github.com/teot59/airline-manager-JSON-to-excel/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", cfg.Export.SourcePath, "Path to the JSON route batch")
	mode := fs.String("mode", cfg.Export.DefaultMode, "View mode: pax, cargo or anything else for the full report")
	ref := fs.String("ref", "", "Reference path used to name the workbook (defaults to -in)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *in == "" {
		fmt.Fprintln(stderr, "missing -in")
		fs.Usage()
		return 2
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	var notifier exportsvc.Notifier
	if cfg.Notify.Enabled() {
		notifier = notify.NewClient(cfg.Notify)
	}
	svc := exportsvc.NewService(nil, nil, notifier, baseLogger.Named("svc.export"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var resp models.ExportResponse
	if *ref == "" {
		resp, err = svc.ExportFile(ctx, *in, *mode)
	} else {
		resp, err = exportWithReference(ctx, svc, *in, *ref, *mode)
	}
	if err != nil {
		baseLogger.Error("export failed", zap.String("in", *in), zap.String("mode", *mode), zap.Error(err))
		fmt.Fprintf(stderr, "Error creating Excel file: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, resp.Path)
	return 0
}

func exportWithReference(ctx context.Context, svc *exportsvc.Service, in, ref, mode string) (models.ExportResponse, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return models.ExportResponse{}, fmt.Errorf("read batch %s: %w", in, err)
	}
	return svc.ExportJSON(ctx, data, ref, mode)
}
