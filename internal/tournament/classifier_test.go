package tournament

import (
	"testing"

	"github.com/aggroot/pokertools/internal/parser"
)

func TestClassifyStagesPriority(t *testing.T) {
	t.Parallel()

	// Payout marker appears on hand 5 (level IV); that level becomes the
	// bubble level and 4 is the first payout order index. Levels I-III,
	// being the up-to-three levels preceding the bubble level, are
	// pre_bubble. Hand 4 shares the bubble level but precedes the payout
	// line itself, so it falls through to start.
	entries := []HandEntry{
		{ID: "1", Text: "ordinary hand", Level: "I", OrderIndex: 0},
		{ID: "2", Text: "ordinary hand", Level: "II", OrderIndex: 1},
		{ID: "3", Text: "ordinary hand", Level: "III", OrderIndex: 2},
		{ID: "4", Text: "ordinary hand", Level: "IV", OrderIndex: 3},
		{ID: "5", Text: "Player2 finished the tournament in 15th place and received $0", Level: "IV", OrderIndex: 4},
		{ID: "6", Text: "ordinary hand", Level: "IV", OrderIndex: 5},
	}

	stages := ClassifyStages(entries)

	want := map[int]parser.TournamentStage{
		0: parser.StagePreBubble,
		1: parser.StagePreBubble,
		2: parser.StagePreBubble,
		3: parser.StageStart,
		4: parser.StageBubble,
		5: parser.StageBubble,
	}
	for idx, expected := range want {
		if got := stages[idx]; got != expected {
			t.Errorf("hand order %d: got %q, want %q", idx, got, expected)
		}
	}
}

func TestClassifyStagesFinalTable(t *testing.T) {
	t.Parallel()

	entries := []HandEntry{
		{ID: "1", Text: "ordinary hand", Level: "I", OrderIndex: 0},
		{ID: "2", Text: "Player1 finished the tournament in 9th place", Level: "II", OrderIndex: 1},
		{ID: "3", Text: "heads up hand", Level: "II", OrderIndex: 2},
	}

	stages := ClassifyStages(entries)

	if got := stages[1]; got != parser.StageFinalTable {
		t.Errorf("hand order 1: got %q, want final_table", got)
	}
	if got := stages[2]; got != parser.StageFinalTable {
		t.Errorf("hand order 2: got %q, want final_table", got)
	}
	if got := stages[0]; got != parser.StageStart {
		t.Errorf("hand order 0: got %q, want start", got)
	}
}

func TestClassifyStagesFinalTableTakesPriorityOverBubble(t *testing.T) {
	t.Parallel()

	entries := []HandEntry{
		{ID: "1", Text: "ordinary hand", Level: "I", OrderIndex: 0},
		{ID: "2", Text: "Player2 finished the tournament in 9th place and received $0", Level: "II", OrderIndex: 1},
	}

	stages := ClassifyStages(entries)
	if got := stages[1]; got != parser.StageFinalTable {
		t.Errorf("hand order 1 matches both payout and finish <=9: got %q, want final_table to win", got)
	}
}

func TestClassifyStagesNoPayoutOrFinish(t *testing.T) {
	t.Parallel()

	entries := []HandEntry{
		{ID: "1", Text: "ordinary hand", Level: "I", OrderIndex: 0},
		{ID: "2", Text: "ordinary hand", Level: "II", OrderIndex: 1},
	}

	stages := ClassifyStages(entries)
	for idx, s := range stages {
		if s != parser.StageStart {
			t.Errorf("hand order %d: got %q, want start when no payout/finish markers exist", idx, s)
		}
	}
}

func TestClassifyStagesAssignsUniqueStageToHandsSharingAnEmptyID(t *testing.T) {
	t.Parallel()

	// Two hands with no parseable "PokerStars Hand #" line both carry
	// ID == "". Keying the stage map by ID alone would collapse them onto
	// the same entry; OrderIndex keeps them distinct.
	entries := []HandEntry{
		{ID: "", Text: "ordinary hand", Level: "I", OrderIndex: 0},
		{ID: "", Text: "Player2 finished the tournament in 9th place and received $0", Level: "I", OrderIndex: 1},
	}

	stages := ClassifyStages(entries)
	if got := stages[0]; got != parser.StageStart {
		t.Errorf("hand order 0: got %q, want start", got)
	}
	if got := stages[1]; got != parser.StageFinalTable {
		t.Errorf("hand order 1: got %q, want final_table", got)
	}
}

func TestClassifyStagesEmpty(t *testing.T) {
	t.Parallel()
	stages := ClassifyStages(nil)
	if len(stages) != 0 {
		t.Errorf("expected empty map for no entries, got %v", stages)
	}
}
