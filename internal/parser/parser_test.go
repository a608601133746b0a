package parser

import "testing"

func TestNormalizeCards(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"Ah Kh", "AKs"},
		{"Kh Ah", "AKs"},
		{"Ah Kd", "AKo"},
		{"Qc Qd", "QQ"},
		{"2h 2d", "22"},
		{"garbage", ""},
		{"A Kh", ""},
	}
	for _, c := range cases {
		if got := NormalizeCards(c.raw); got != c.want {
			t.Errorf("NormalizeCards(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestPosition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		seat, button, totalSeats int
		want                     string
	}{
		{1, 1, 2, "BTN"},
		{2, 1, 2, "BB"},
		{1, 1, 6, "BTN"},
		{2, 1, 6, "SB"},
		{3, 1, 6, "BB"},
		{4, 1, 6, "EP(6)"},
		{5, 1, 6, "MP(6)"},
		{6, 1, 6, "CO"},
		{4, 1, 9, "EP(7+)"},
		{9, 1, 9, "CO"},
		{1, 1, 0, "UNKNOWN"},
	}
	for _, c := range cases {
		if got := Position(c.seat, c.button, c.totalSeats); got != c.want {
			t.Errorf("Position(%d, %d, %d) = %q, want %q", c.seat, c.button, c.totalSeats, got, c.want)
		}
	}
}

const twoPlayerHand = `PokerStars Hand #1: Tournament #1, $10+$1 Hold'em No Limit - Level I (10/20)
Table '1' 6-max Seat #1 is the button
Seat 1: Alice (1500 in chips)
Seat 2: Bob (1500 in chips)
*** HOLE CARDS ***
Alice: raises 40 to 60
Bob: calls 60
*** FLOP ***
Bob: checks
Alice: bets 100
Bob: folds
*** SHOWDOWN ***
Seat 1: Alice showed [Ah Kh]
`

func TestParseHandReturnsOneRevelationPerShownPlayer(t *testing.T) {
	t.Parallel()

	hands := ParseHand(twoPlayerHand, StageBubble, "tid", "1", 0, 0, "file.txt")
	if len(hands) != 1 {
		t.Fatalf("got %d hands, want 1", len(hands))
	}

	h := hands[0]
	if h.Player != "Alice" || h.Cards != "AKs" || h.Position != "BTN" {
		t.Errorf("got %+v", h)
	}
	if len(h.Actions) != 2 {
		t.Fatalf("got %d actions, want 2 (raise, bet)", len(h.Actions))
	}
	if h.Actions[0].ActionType != ActionRaise || h.Actions[0].TournamentStage != StageBubble {
		t.Errorf("got first action %+v", h.Actions[0])
	}
	if h.Actions[1].ActionType != ActionBet || h.Actions[1].Stage != StageFlop {
		t.Errorf("got second action %+v", h.Actions[1])
	}
}

func TestParseHandDropsHandWithNoButtonMarker(t *testing.T) {
	t.Parallel()

	hands := ParseHand("no button line here", StageStart, "tid", "1", 0, 0, "file.txt")
	if hands != nil {
		t.Errorf("got %v, want nil", hands)
	}
}

func TestParseHandFlagsBareRaiseWithoutToClause(t *testing.T) {
	t.Parallel()

	hand := `PokerStars Hand #2: Tournament #1, $10+$1 Hold'em No Limit - Level I (10/20)
Table '1' 6-max Seat #1 is the button
Seat 1: Alice (1500 in chips)
Seat 2: Bob (1500 in chips)
*** HOLE CARDS ***
Alice: raises 40
*** SHOWDOWN ***
Seat 1: Alice showed [Ah Kh]
`
	hands := ParseHand(hand, StageStart, "tid", "2", 0, 0, "file.txt")
	if len(hands) != 1 {
		t.Fatalf("got %d hands, want 1", len(hands))
	}
	if len(hands[0].Actions) != 1 {
		t.Fatalf("got %d actions, want 1 (bare raise is kept as a raise)", len(hands[0].Actions))
	}
	action := hands[0].Actions[0]
	if action.ActionType != ActionRaise || action.Amount != 40 {
		t.Errorf("got action %+v, want raise of 40", action)
	}
	if !action.Flagged {
		t.Errorf("expected bare raise to be flagged for review")
	}
}
