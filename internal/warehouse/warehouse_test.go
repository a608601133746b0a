package warehouse

import (
	"path/filepath"
	"testing"

	"github.com/aggroot/pokertools/internal/parser"
)

func TestBuildOccurrencesFlattensActions(t *testing.T) {
	t.Parallel()

	hands := []parser.PlayerHand{
		{
			Player:       "Alice",
			Cards:        "AKs",
			Position:     "BTN",
			TournamentID: "1",
			HandID:       "1",
			BBSize:       20,
			Actions: []parser.HandAction{
				{Player: "Alice", ActionType: parser.ActionRaise, Amount: 60, Position: "BTN", Stage: parser.StagePreflop, PotBefore: 30, StackSize: 1500, BBSize: 20, AmountBB: 3, PotOdds: 2, TournamentStage: parser.StageStart},
			},
		},
	}

	occurrences := BuildOccurrences(hands)
	if len(occurrences) != 1 {
		t.Fatalf("got %d occurrences, want 1", len(occurrences))
	}
	occ := occurrences[0]
	if occ.Showdown != true {
		t.Errorf("got showdown=%v, want true for a shown hand", occ.Showdown)
	}
	if occ.StackSizeBB != 75 {
		t.Errorf("got stack_size_bb=%v, want 75 (1500/20)", occ.StackSizeBB)
	}
	if occ.PotBucket == "" || occ.BBBucket == "" || occ.StackBucket == "" {
		t.Errorf("expected non-empty buckets, got %+v", occ)
	}
}

func TestStoreLoadAndQuery(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "warehouse.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	occurrences := []Occurrence{
		{TournamentID: "1", HandID: "1", Player: "Alice", Position: "BTN", Stage: "preflop", Action: "raise", Cards: "AKs", TournamentStage: "start", PotBucket: "OPEN", BBBucket: "3BB", StackBucket: "50-80BB", Showdown: true},
	}
	if err := store.LoadOccurrences(occurrences); err != nil {
		t.Fatalf("LoadOccurrences: %v", err)
	}

	var count int
	if err := store.DB().QueryRow(`SELECT COUNT(*) FROM range_occurrences`).Scan(&count); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d rows, want 1", count)
	}

	var idxCount int
	if err := store.DB().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_range_key'`).Scan(&idxCount); err != nil {
		t.Fatalf("index check: %v", err)
	}
	if idxCount != 1 {
		t.Errorf("expected idx_range_key to exist after load")
	}
}

func TestStoreOpenReplacesExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "warehouse.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open first: %v", err)
	}
	if err := first.LoadOccurrences([]Occurrence{{TournamentID: "1", Showdown: true}}); err != nil {
		t.Fatalf("LoadOccurrences: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("Open second: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	var count int
	if err := second.DB().QueryRow(`SELECT COUNT(*) FROM range_occurrences`).Scan(&count); err != nil {
		t.Fatalf("count query: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d rows, want 0 (reopening must start from an empty warehouse)", count)
	}
}
