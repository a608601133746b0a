package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aggroot/pokertools/internal/query"
	"github.com/aggroot/pokertools/internal/warehouse"
)

// QueryCmd runs a single range query against a warehouse from the
// command line, printing the result as indented JSON (§6).
type QueryCmd struct {
	DB       string `required:"" help:"Path to the range warehouse to query"`
	Position string `required:"" help:"Position, e.g. BTN"`
	Stage    string `required:"" help:"Betting stage, e.g. preflop"`
	Action   string `required:"" help:"Action, e.g. raise"`

	TournamentStage string  `help:"Filter by tournament stage (start, pre_bubble, bubble, final_table)"`
	PotBucket       string  `help:"Filter by pot-size bucket"`
	BBBucket        string  `help:"Filter by bet-size-in-bb bucket"`
	StackBucket     string  `help:"Filter by stack-depth bucket"`
	Player          string  `help:"Filter by player name"`
	TournamentID    string  `help:"Filter by tournament id"`
	Cards           string  `help:"Filter by hole cards, e.g. AKs"`
	StackBBMin      float64 `help:"Minimum stack size in big blinds"`
	StackBBMax      float64 `help:"Maximum stack size in big blinds"`
	Limit           int     `kong:"help='Limit the number of distinct combos returned in the all summary'"`
}

func (c *QueryCmd) Run() error {
	store, err := warehouse.OpenExisting(c.DB)
	if err != nil {
		return fmt.Errorf("open warehouse: %w", err)
	}
	defer store.Close()

	svc := query.NewService(store.DB())

	filters := query.Filters{
		Position:        c.Position,
		Stage:           c.Stage,
		Action:          c.Action,
		TournamentStage: c.TournamentStage,
		PotBucket:       c.PotBucket,
		BBBucket:        c.BBBucket,
		StackBucket:     c.StackBucket,
		Player:          c.Player,
		TournamentID:    c.TournamentID,
		Cards:           c.Cards,
		Limit:           c.Limit,
	}
	if c.StackBBMin != 0 {
		filters.StackBBMin = &c.StackBBMin
	}
	if c.StackBBMax != 0 {
		filters.StackBBMax = &c.StackBBMax
	}

	result, err := svc.QueryRanges(filters)
	if err != nil {
		return fmt.Errorf("query ranges: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
