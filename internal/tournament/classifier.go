// Package tournament assigns a coarse tournament-phase label to every
// hand in a tournament (§4.5) and drives a tournament's files through
// the hand parser in chunk order (§4.6).
package tournament

import "github.com/aggroot/pokertools/internal/parser"

// HandEntry is one hand's worth of raw text plus the bookkeeping the
// stage classifier and driver need: its id, level label, and position
// in the tournament's overall hand order.
type HandEntry struct {
	ID         string
	Text       string
	Level      string
	OrderIndex int
	ChunkIndex int
	SourceFile string
}

// ClassifyStages assigns a TournamentStage to every hand in entries,
// keyed by OrderIndex (not hand id — several hands in a tournament can
// lack a parseable id and must not collapse onto the same map key),
// following the priority rule in §4.5.
func ClassifyStages(entries []HandEntry) map[int]parser.TournamentStage {
	stages := make(map[int]parser.TournamentStage, len(entries))
	if len(entries) == 0 {
		return stages
	}

	var levelsInOrder []string
	levelSeen := make(map[string]bool)
	firstPayoutIndex := -1
	firstFinalTableIndex := -1
	bubbleLevel := ""

	for _, e := range entries {
		if !levelSeen[e.Level] {
			levelSeen[e.Level] = true
			levelsInOrder = append(levelsInOrder, e.Level)
		}

		if firstPayoutIndex < 0 && payoutPattern.MatchString(e.Text) {
			firstPayoutIndex = e.OrderIndex
			bubbleLevel = e.Level
		}

		if firstFinalTableIndex < 0 {
			for _, m := range finishPattern.FindAllStringSubmatch(e.Text, -1) {
				place, err := parsePlace(m[1])
				if err == nil && place <= 9 {
					firstFinalTableIndex = e.OrderIndex
					break
				}
			}
		}
	}

	var preBubbleLevels []string
	if bubbleLevel != "" {
		bubblePos := indexOf(levelsInOrder, bubbleLevel)
		if bubblePos >= 0 {
			start := bubblePos - 3
			if start < 0 {
				start = 0
			}
			preBubbleLevels = levelsInOrder[start:bubblePos]
		}
	}
	preBubbleSet := make(map[string]bool, len(preBubbleLevels))
	for _, l := range preBubbleLevels {
		preBubbleSet[l] = true
	}

	for _, e := range entries {
		stage := parser.StageStart
		switch {
		case firstFinalTableIndex >= 0 && e.OrderIndex >= firstFinalTableIndex:
			stage = parser.StageFinalTable
		case firstPayoutIndex >= 0 && bubbleLevel != "" && e.Level == bubbleLevel && e.OrderIndex >= firstPayoutIndex:
			stage = parser.StageBubble
		case firstPayoutIndex >= 0 && preBubbleSet[e.Level] && e.OrderIndex < firstPayoutIndex:
			stage = parser.StagePreBubble
		}
		stages[e.OrderIndex] = stage
	}

	return stages
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
