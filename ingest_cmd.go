package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aggroot/pokertools/internal/distribute"
	"github.com/aggroot/pokertools/internal/parser"
	"github.com/aggroot/pokertools/internal/report"
	"github.com/aggroot/pokertools/internal/warehouse"
)

// IngestCmd parses a directory of hand-history files into a range
// warehouse and a human-readable report (§6).
type IngestCmd struct {
	Dir    string `arg:"" help:"Directory of hhDealer.com hand-history files to ingest"`
	DB     string `help:"Path to write the range warehouse to (defaults to the OS-appropriate data directory)"`
	Report string `default:"range_report.txt" help:"Path to write the human-readable report to"`
}

func (c *IngestCmd) Run() error {
	dbPath := c.DB
	if dbPath == "" {
		dbPath = defaultWarehousePath()
	}

	paths, err := walkHandHistoryFiles(c.Dir)
	if err != nil {
		return fmt.Errorf("walk %s: %w", c.Dir, err)
	}
	slog.Info("discovered hand-history files", "count", len(paths), "dir", c.Dir)

	tasks := distribute.GroupFiles(paths)
	slog.Info("grouped into tournaments", "count", len(tasks))

	store, err := warehouse.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open warehouse: %w", err)
	}
	defer store.Close()

	var allHands []parser.PlayerHand
	totals, err := distribute.Run(tasks, func(tournamentID string, hands []parser.PlayerHand) error {
		allHands = append(allHands, hands...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	slog.Info("parsed hands", "hands_parsed", totals.HandsParsed, "shown_hands", totals.ShownHands)

	occurrences := warehouse.BuildOccurrences(allHands)
	if err := store.LoadOccurrences(occurrences); err != nil {
		return fmt.Errorf("load warehouse: %w", err)
	}
	slog.Info("warehouse loaded", "occurrences", len(occurrences), "path", dbPath)

	builder := report.NewBuilder(store.DB())
	text, err := builder.Generate()
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	if err := os.WriteFile(c.Report, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	slog.Info("report written", "path", c.Report)

	summary, err := builder.PreflopOpenSummary()
	if err != nil {
		return fmt.Errorf("preflop open summary: %w", err)
	}
	for _, s := range summary {
		fmt.Printf("%-8s %4d unique combos, %6d instances\n", s.Position, s.UniqueCombos, s.Total)
	}

	return nil
}

// walkHandHistoryFiles collects every regular file under dir; the
// distributor's GroupFiles groups anything that doesn't match the
// hhDealer.com naming convention under its own task, so no filtering
// is needed here.
func walkHandHistoryFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}
