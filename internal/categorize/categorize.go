// Package categorize buckets a parsed action by pot-relative size,
// big-blind multiple, and stack depth (§4.3 of the spec).
package categorize

import "github.com/aggroot/pokertools/internal/parser"

// PotBucket categorizes bet/raise sizing relative to the pot before
// the action. Only meaningful for bet/raise; other action types get
// "N/A".
func PotBucket(action parser.HandAction) string {
	if action.ActionType != parser.ActionBet && action.ActionType != parser.ActionRaise {
		return "N/A"
	}
	if action.PotBefore == 0 {
		return "OPEN"
	}

	ratio := action.PotOdds
	switch {
	case ratio < 0.33:
		return "<0.33x"
	case ratio < 0.50:
		return "0.33x"
	case ratio < 0.75:
		return "0.5x"
	case ratio < 1.0:
		return "0.75x"
	case ratio < 1.5:
		return "1x"
	case ratio < 2.0:
		return "1.5x"
	case ratio < 3.0:
		return "2x"
	default:
		return "3x+"
	}
}

// BBBucket categorizes bet/raise/call sizing in big blinds, with
// separate preflop raise and preflop call ladders (§4.3).
func BBBucket(action parser.HandAction) string {
	switch action.ActionType {
	case parser.ActionBet, parser.ActionRaise, parser.ActionCall:
	default:
		return "N/A"
	}

	bb := action.AmountBB

	if action.Stage == parser.StagePreflop {
		switch action.ActionType {
		case parser.ActionRaise:
			switch {
			case bb < 2.5:
				return "MINRAISE"
			case bb < 3.0:
				return "2.5BB"
			case bb < 4.0:
				return "3BB"
			case bb < 6.0:
				return "4-5BB"
			case bb < 10.0:
				return "6-9BB"
			default:
				return "10BB+"
			}
		case parser.ActionCall:
			switch {
			case bb < 2.0:
				return "1BB_CALL"
			case bb < 3.0:
				return "2BB_CALL"
			case bb < 5.0:
				return "3-4BB_CALL"
			default:
				return "5BB+_CALL"
			}
		}
		return "OTHER"
	}

	switch {
	case bb < 1.0:
		return "<1BB"
	case bb < 3.0:
		return "1-3BB"
	case bb < 6.0:
		return "3-6BB"
	case bb < 10.0:
		return "6-10BB"
	default:
		return "10BB+"
	}
}

// StackBucket bucketizes player stack depth in big blinds.
func StackBucket(stackBB float64) string {
	switch {
	case stackBB <= 0:
		return "UNKNOWN"
	case stackBB < 10:
		return "<10BB"
	case stackBB < 20:
		return "10-20BB"
	case stackBB < 30:
		return "20-30BB"
	case stackBB < 50:
		return "30-50BB"
	case stackBB < 80:
		return "50-80BB"
	default:
		return "80BB+"
	}
}
