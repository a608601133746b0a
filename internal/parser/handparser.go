package parser

import (
	"strconv"
	"strings"
)

// ParseHand parses the text of a single hand (§4.4) and returns one
// PlayerHand per showdown revelation, already carrying the keys that
// identify where the hand came from. tournamentStage is the label
// computed by the tournament stage classifier for this hand.
//
// A hand with no button marker is dropped entirely, per §3's
// invariant that exactly one button seat must be recognized.
func ParseHand(handText string, tournamentStage TournamentStage, tournamentID, handID string, chunkIndex, orderIndex int, sourceFile string) []PlayerHand {
	buttonMatch := buttonPattern.FindStringSubmatch(handText)
	if buttonMatch == nil {
		return nil
	}
	buttonSeat, err := strconv.Atoi(buttonMatch[1])
	if err != nil {
		return nil
	}

	bbSize := 1.0
	if m := levelPattern.FindStringSubmatch(handText); m != nil {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			bbSize = v
		}
	}

	players := make(map[string]seatInfo)
	for _, m := range seatPattern.FindAllStringSubmatch(handText, -1) {
		seat, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		chips, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		players[m[2]] = seatInfo{Seat: seat, Chips: chips}
	}
	totalSeats := len(players)

	actionsByPlayer := make(map[string][]HandAction)
	currentStage := StagePreflop
	potSize := 0.0

	for _, line := range strings.Split(handText, "\n") {
		if m := stagePattern.FindStringSubmatch(line); m != nil {
			switch m[1] {
			case "FLOP":
				currentStage = StageFlop
			case "TURN":
				currentStage = StageTurn
			case "RIVER":
				currentStage = StageRiver
			}
			continue
		}

		for _, ap := range actionPatterns {
			m := ap.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			playerName := m[1]
			info, ok := players[playerName]
			if !ok {
				break
			}

			amount := 0.0
			flagged := false
			switch {
			case ap.action == ActionRaise && len(m) == 4:
				amount, _ = strconv.ParseFloat(m[3], 64)
			case ap.action == ActionRaise:
				// Bare "raises N" with no "to M" clause: N is ambiguous
				// between a raise-to and a raise-by amount.
				amount, _ = strconv.ParseFloat(m[2], 64)
				flagged = true
			case ap.action == ActionBet || ap.action == ActionCall:
				amount, _ = strconv.ParseFloat(m[2], 64)
			}

			amountBB := 0.0
			if bbSize > 0 {
				amountBB = amount / bbSize
			}
			potOdds := 0.0
			if potSize > 0 {
				potOdds = amount / potSize
			}

			action := HandAction{
				Player:          playerName,
				ActionType:      ap.action,
				Amount:          amount,
				Position:        Position(info.Seat, buttonSeat, totalSeats),
				Stage:           currentStage,
				PotBefore:       potSize,
				StackSize:       info.Chips,
				BBSize:          bbSize,
				AmountBB:        amountBB,
				PotOdds:         potOdds,
				TournamentStage: tournamentStage,
				Flagged:         flagged,
			}
			actionsByPlayer[playerName] = append(actionsByPlayer[playerName], action)

			switch ap.action {
			case ActionRaise, ActionBet, ActionCall:
				potSize += amount
			}
			break
		}
	}

	var shownHands []PlayerHand
	for _, m := range shownPattern.FindAllStringSubmatch(handText, -1) {
		playerName, rawCards := m[1], m[2]
		info, ok := players[playerName]
		if !ok {
			continue
		}
		cards := NormalizeCards(rawCards)
		if cards == "" {
			continue
		}
		shownHands = append(shownHands, PlayerHand{
			Player:       playerName,
			Cards:        cards,
			Position:     Position(info.Seat, buttonSeat, totalSeats),
			Actions:      actionsByPlayer[playerName],
			TournamentID: tournamentID,
			HandID:       handID,
			ChunkIndex:   chunkIndex,
			OrderIndex:   orderIndex,
			SourceFile:   sourceFile,
			BBSize:       bbSize,
		})
	}

	return shownHands
}
