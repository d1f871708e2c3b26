package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"crossdash/internal/charts"
	"crossdash/internal/config"
	"crossdash/internal/crossfilter"
	"crossdash/internal/database"
	"crossdash/internal/database/repository"
	"crossdash/internal/dataset"
	"crossdash/internal/layout"
	"crossdash/internal/logging"
	"crossdash/internal/tui"
)

const gapminderDataset = "gapminder"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(ctx, db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	repo := repository.NewGapminderRepo(db)
	datasets := dataset.NewManager()
	if err := datasets.Register(gapminderDataset, func(ctx context.Context) (dataset.Table, error) {
		return repo.All(ctx)
	}); err != nil {
		log.Fatalf("datasets: %v", err)
	}
	table, err := datasets.Load(ctx, cfg.Dataset.Name)
	if err != nil {
		log.Fatalf("datasets: %v", err)
	}

	invoker := crossfilter.NewComputationInvoker[charts.Context]()
	if err := charts.Register(invoker); err != nil {
		log.Fatalf("charts: %v", err)
	}

	pages, err := layout.Load(cfg.Layout.Path)
	if err != nil {
		log.Fatalf("layout: %v", err)
	}
	resolver := crossfilter.NewTargetResolver()
	if err := layout.Apply(pages, resolver, invoker); err != nil {
		log.Fatalf("layout: %v", err)
	}

	cell := crossfilter.NewSharedCell(initialRange(cfg, table))

	logger.Info("starting",
		zap.Int("pages", len(pages)),
		zap.Int("observations", len(table)))

	p := tea.NewProgram(tui.New(pages, cell, resolver, invoker, table, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// initialRange is the session default: configured bounds clamped to the
// data, or the data's full span when unconfigured.
func initialRange(cfg config.Config, table dataset.Table) crossfilter.FilterValue {
	lo, hi, ok := table.YearBounds()
	if !ok {
		return crossfilter.FilterValue{Lower: cfg.Filter.Lower, Upper: cfg.Filter.Upper}
	}
	full := crossfilter.FilterValue{Lower: lo, Upper: hi}
	if cfg.Filter.Lower == 0 && cfg.Filter.Upper == 0 {
		return full
	}
	v, err := crossfilter.NewFilterValue(cfg.Filter.Lower, cfg.Filter.Upper)
	if err != nil {
		log.Printf("warn: ignoring configured filter bounds: %v", err)
		return full
	}
	return v.Clamp(lo, hi)
}
