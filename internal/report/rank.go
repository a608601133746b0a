package report

import (
	"sort"
	"strings"
)

const rankOrder = "AKQJT98765432"

// combo is one (hand, count) pair read from a grouped query.
type combo struct {
	Hand  string
	Count int
}

// sortCombos orders combos per §4.9: pairs first (by rank descending),
// then non-pairs by high card descending, then low card descending,
// then suited before offsuit.
func sortCombos(combos []combo) {
	sort.Slice(combos, func(i, j int) bool {
		return comboLess(combos[i].Hand, combos[j].Hand)
	})
}

func comboLess(a, b string) bool {
	ga, ia, ja, sa := comboKey(a)
	gb, ib, jb, sb := comboKey(b)
	if ga != gb {
		return ga < gb
	}
	if ia != ib {
		return ia < ib
	}
	if ja != jb {
		return ja < jb
	}
	return sa < sb
}

// comboKey decomposes a canonical hand string into an ascending sort
// key: group 0 for pairs (sorted first), 1 for non-pairs; then the
// rankOrder index of each card (ascending index == descending
// strength, since rankOrder is itself strength-descending); then a
// suited-before-offsuit tiebreak.
func comboKey(hand string) (group, idx1, idx2, suit int) {
	if len(hand) == 2 {
		idx := strings.IndexByte(rankOrder, hand[0])
		return 0, idx, idx, 0
	}
	if len(hand) < 3 {
		return 2, 0, 0, 0
	}
	idx1 = strings.IndexByte(rankOrder, hand[0])
	idx2 = strings.IndexByte(rankOrder, hand[1])
	suit = 1
	if hand[2] == 's' {
		suit = 0
	}
	return 1, idx1, idx2, suit
}
