package main

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleHand = `PokerStars Hand #123: Tournament #456, $10+$1 Hold'em No Limit - Level I (10/20)
Table '1' 6-max Seat #1 is the button
Seat 1: Alice (1500 in chips)
Seat 2: Bob (1500 in chips)
*** HOLE CARDS ***
Alice: raises 40 to 60
Bob: calls 60
*** FLOP ***
Bob: checks
Alice: bets 100
Bob: folds
*** SHOWDOWN ***
Seat 1: Alice showed [Ah Kh]
`

func TestWalkHandHistoryFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hhDealer.com_1-0_x.txt"), []byte(sampleHand), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "hhDealer.com_2-0_x.txt"), []byte(sampleHand), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	paths, err := walkHandHistoryFiles(dir)
	if err != nil {
		t.Fatalf("walkHandHistoryFiles: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2: %v", len(paths), paths)
	}
}

func TestIngestCmdRunProducesWarehouseAndReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hhDealer.com_1-0_x.txt"), []byte(sampleHand), 0o644); err != nil {
		t.Fatalf("write hand history: %v", err)
	}

	dbPath := filepath.Join(dir, "ranges.db")
	reportPath := filepath.Join(dir, "report.txt")

	cmd := IngestCmd{Dir: dir, DB: dbPath, Report: reportPath}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("expected warehouse file at %s: %v", dbPath, err)
	}

	reportBytes, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(reportBytes), "POKER RANGE ANALYSIS REPORT") {
		t.Errorf("report missing banner: %s", reportBytes)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open warehouse: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM range_occurrences").Scan(&count); err != nil {
		t.Fatalf("count occurrences: %v", err)
	}
	if count == 0 {
		t.Errorf("expected at least one occurrence loaded")
	}
}
