// Package parser turns one hand's worth of hand-history text into
// structured actions and showdown revelations.
package parser

// ActionType is a player decision point.
type ActionType string

const (
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionBet   ActionType = "bet"
	ActionRaise ActionType = "raise"
)

// Stage is the betting round an action was taken on.
type Stage string

const (
	StagePreflop Stage = "preflop"
	StageFlop    Stage = "flop"
	StageTurn    Stage = "turn"
	StageRiver   Stage = "river"
)

// TournamentStage is the coarse tournament phase a hand belongs to.
type TournamentStage string

const (
	StageStart       TournamentStage = "start"
	StagePreBubble   TournamentStage = "pre_bubble"
	StageBubble      TournamentStage = "bubble"
	StageFinalTable  TournamentStage = "final_table"
)

// HandAction is one action at a single decision point, already
// enriched with the structural context (§3 of the spec) available at
// parse time. Bucket labels are attached later by the categorizer.
type HandAction struct {
	Player          string
	ActionType      ActionType
	Amount          float64
	Position        string
	Stage           Stage
	PotBefore       float64
	StackSize       float64
	BBSize          float64
	AmountBB        float64
	PotOdds         float64
	TournamentStage TournamentStage

	// Flagged marks an action parsed from an ambiguous line, such as a
	// bare "raises N" with no "to M" clause, where N could be read as
	// either a raise-to or a raise-by amount (§9).
	Flagged bool
}

// PlayerHand is one showdown revelation for one player in one hand:
// their canonical cards, position, and the ordered actions they took.
type PlayerHand struct {
	Player        string
	Cards         string
	Position      string
	Actions       []HandAction
	TournamentID  string
	HandID        string
	ChunkIndex    int
	OrderIndex    int
	SourceFile    string
	BBSize        float64
}

// seatInfo is the per-player bookkeeping built from the Seat lines of
// one hand: which seat they sit in and how many chips they started
// the hand with.
type seatInfo struct {
	Seat  int
	Chips float64
}
