package categorize

import (
	"testing"

	"github.com/aggroot/pokertools/internal/parser"
)

func TestPotBucket(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		action parser.HandAction
		want   string
	}{
		{"call is not bucketed", parser.HandAction{ActionType: parser.ActionCall}, "N/A"},
		{"open raise with no pot yet", parser.HandAction{ActionType: parser.ActionRaise, PotBefore: 0}, "OPEN"},
		{"small continuation bet", parser.HandAction{ActionType: parser.ActionBet, PotBefore: 100, PotOdds: 0.2}, "<0.33x"},
		{"pot-sized bet", parser.HandAction{ActionType: parser.ActionBet, PotBefore: 100, PotOdds: 1.0}, "1x"},
		{"overbet", parser.HandAction{ActionType: parser.ActionRaise, PotBefore: 100, PotOdds: 4.0}, "3x+"},
	}
	for _, c := range cases {
		if got := PotBucket(c.action); got != c.want {
			t.Errorf("%s: PotBucket() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestBBBucketPreflopRaiseLadder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bb   float64
		want string
	}{
		{2.0, "MINRAISE"},
		{2.5, "2.5BB"},
		{3.5, "3BB"},
		{5.0, "4-5BB"},
		{8.0, "6-9BB"},
		{12.0, "10BB+"},
	}
	for _, c := range cases {
		action := parser.HandAction{ActionType: parser.ActionRaise, Stage: parser.StagePreflop, AmountBB: c.bb}
		if got := BBBucket(action); got != c.want {
			t.Errorf("BBBucket(raise, %.1fbb) = %q, want %q", c.bb, got, c.want)
		}
	}
}

func TestBBBucketPostflopLadder(t *testing.T) {
	t.Parallel()

	action := parser.HandAction{ActionType: parser.ActionBet, Stage: parser.StageFlop, AmountBB: 4.0}
	if got := BBBucket(action); got != "3-6BB" {
		t.Errorf("got %q, want 3-6BB", got)
	}
}

func TestBBBucketFoldIsUnbucketed(t *testing.T) {
	t.Parallel()

	if got := BBBucket(parser.HandAction{ActionType: parser.ActionFold}); got != "N/A" {
		t.Errorf("got %q, want N/A", got)
	}
}

func TestStackBucket(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bb   float64
		want string
	}{
		{0, "UNKNOWN"},
		{5, "<10BB"},
		{15, "10-20BB"},
		{25, "20-30BB"},
		{40, "30-50BB"},
		{60, "50-80BB"},
		{100, "80BB+"},
	}
	for _, c := range cases {
		if got := StackBucket(c.bb); got != c.want {
			t.Errorf("StackBucket(%.0f) = %q, want %q", c.bb, got, c.want)
		}
	}
}
