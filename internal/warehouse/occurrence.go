// Package warehouse loads parsed range occurrences into a disposable
// analytical store (§4.8): a columnar warehouse, emulated here with
// modernc.org/sqlite, that the report builder and query service read
// from. Every ingest run deletes and recreates it from scratch.
package warehouse

import (
	"github.com/aggroot/pokertools/internal/categorize"
	"github.com/aggroot/pokertools/internal/parser"
)

// Occurrence is one denormalized range event: a single action taken by
// a player whose hole cards were revealed at showdown.
type Occurrence struct {
	TournamentID    string
	HandID          string
	ChunkIndex      int
	OrderIndex      int
	Player          string
	Position        string
	Stage           string
	Action          string
	Cards           string
	TournamentStage string
	PotBucket       string
	BBBucket        string
	StackBucket     string
	ActionAmount    float64
	PotBefore       float64
	StackSize       float64
	StackSizeBB     float64
	BBSize          float64
	AmountBB        float64
	PotOdds         float64
	Showdown        bool
	SourceFile      string
}

// BuildOccurrences flattens shown hands into one Occurrence per action,
// categorizing each action's pot/BB/stack sizing along the way.
func BuildOccurrences(hands []parser.PlayerHand) []Occurrence {
	var out []Occurrence
	for _, hand := range hands {
		for _, action := range hand.Actions {
			position := action.Position
			if position == "" {
				position = hand.Position
			}

			stackBB := 0.0
			if action.BBSize > 0 {
				stackBB = action.StackSize / action.BBSize
			}

			out = append(out, Occurrence{
				TournamentID:    hand.TournamentID,
				HandID:          hand.HandID,
				ChunkIndex:      hand.ChunkIndex,
				OrderIndex:      hand.OrderIndex,
				Player:          action.Player,
				Position:        position,
				Stage:           string(action.Stage),
				Action:          string(action.ActionType),
				Cards:           hand.Cards,
				TournamentStage: string(action.TournamentStage),
				PotBucket:       categorize.PotBucket(action),
				BBBucket:        categorize.BBBucket(action),
				StackBucket:     categorize.StackBucket(stackBB),
				ActionAmount:    action.Amount,
				PotBefore:       action.PotBefore,
				StackSize:       action.StackSize,
				StackSizeBB:     stackBB,
				BBSize:          action.BBSize,
				AmountBB:        action.AmountBB,
				PotOdds:         action.PotOdds,
				Showdown:        true,
				SourceFile:      hand.SourceFile,
			})
		}
	}
	return out
}
