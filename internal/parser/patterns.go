package parser

import "regexp"

// Pre-compiled structural line patterns. This is the closed set the
// hand parser matches against; there is no dynamic pattern discovery.
var (
	buttonPattern    = regexp.MustCompile(`Seat #(\d+) is the button`)
	levelPattern     = regexp.MustCompile(`Hold'em No Limit - Level [IVXL]+ \((\d+)/(\d+)\)`)
	seatPattern      = regexp.MustCompile(`Seat (\d+): (\S+) \((\d+) in chips\)`)
	stagePattern     = regexp.MustCompile(`\*\*\* (FLOP|TURN|RIVER) \*\*\*`)
	shownPattern     = regexp.MustCompile(`Seat \d+: (\S+) .*showed \[([^\]]+)\]`)
	tournamentFile   = regexp.MustCompile(`hhDealer\.com_(\d+)-(\d+)_`)
	handIDPattern    = regexp.MustCompile(`PokerStars Hand #(\d+)`)
	handLevelPattern = regexp.MustCompile(`Level ([IVXL]+)`)
	payoutPattern    = regexp.MustCompile(`finished the tournament in (\d+)[^\n]*received \$`)
	finishPattern    = regexp.MustCompile(`finished the tournament in (\d+)`)
)

// actionPattern is one entry in the closed tagged variant of action
// lines: a regex and the ActionType it produces. Patterns are tried in
// order and the first match wins (§4.4 step 4).
type actionPattern struct {
	re     *regexp.Regexp
	action ActionType
}

// actionPatterns is the priority-ordered table described in §4.4 and
// §9 ("Dynamic dispatch"): raise before bet before call before fold
// before check, so that e.g. a "raises N to M" line is never
// mis-matched by a looser pattern.
//
// Two raise patterns are listed, in order: the normal two-number
// "raises N to M" form, then the bare one-number "raises N" form some
// hand histories use. Both are tried before bet, since "raises" and
// "bets" never overlap. The bare form is rarer and is flagged for
// review on the resulting HandAction (§9), since its N is ambiguous
// between a raise-to and a raise-by amount.
var actionPatterns = []actionPattern{
	{regexp.MustCompile(`(\S+): raises (\d+\.?\d*) to (\d+\.?\d*)`), ActionRaise},
	{regexp.MustCompile(`(\S+): raises (\d+\.?\d*)`), ActionRaise},
	{regexp.MustCompile(`(\S+): bets (\d+\.?\d*)`), ActionBet},
	{regexp.MustCompile(`(\S+): calls (\d+\.?\d*)`), ActionCall},
	{regexp.MustCompile(`(\S+): folds`), ActionFold},
	{regexp.MustCompile(`(\S+): checks`), ActionCheck},
}
