package protocol

import (
	"testing"

	"github.com/Mikey-Burns/Setback/internal/engine"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		want Command
		args []string
	}{
		{"", NoCommand, nil},
		{"   ", NoCommand, nil},
		{"NO_COMMAND", NoCommand, nil},
		{"exit", Exit, nil},
		{"request_player_three", RequestPlayerThree, nil},
		{"PLACE_BET TWO", PlaceBet, []string{"TWO"}},
		{"  play_card   Ace-of-Spades ", PlayCard, []string{"Ace-of-Spades"}},
		{"DANCE now", NoCommand, nil},
	}
	for _, tc := range cases {
		m := Parse(tc.line)
		if m.Command != tc.want {
			t.Fatalf("parse %q: got %v want %v", tc.line, m.Command, tc.want)
		}
		if len(m.Arguments) != len(tc.args) {
			t.Fatalf("parse %q: got args %v want %v", tc.line, m.Arguments, tc.args)
		}
		for i := range tc.args {
			if m.Arguments[i] != tc.args[i] {
				t.Fatalf("parse %q: arg %d got %q", tc.line, i, m.Arguments[i])
			}
		}
	}
}

func TestCommandMessageString(t *testing.T) {
	m := NewCommandMessage(PlaceBet, "PASS")
	if got := m.String(); got != "PLACE_BET PASS" {
		t.Fatalf("unexpected line %q", got)
	}
	if got := Parse(m.String()); got.Command != PlaceBet || got.Arg(0) != "PASS" {
		t.Fatalf("line did not parse back: %v", got)
	}
	var nilMsg *CommandMessage
	if nilMsg.String() != "NO_COMMAND" || nilMsg.Arg(0) != "" {
		t.Fatalf("nil message must render as NO_COMMAND")
	}
}

func TestSeatRequests(t *testing.T) {
	for _, s := range engine.Seats {
		c := RequestFor(s)
		got, ok := SeatFor(c)
		if !ok || got != s {
			t.Fatalf("%v: request %v maps back to %v", s, c, got)
		}
	}
	if Selected(engine.PlayerTwo) != "Player two selected" || Rejected(engine.PlayerFour) != "Player four rejected" {
		t.Fatalf("unexpected seat replies")
	}
	if _, ok := SeatFor(ShowHand); ok {
		t.Fatalf("SHOW_HAND is not a seat request")
	}
}

func TestCommandForAction(t *testing.T) {
	bet := CommandFor(engine.Action{Type: engine.ActionBet, Amount: engine.BetTake})
	if bet.String() != "PLACE_BET TAKE" {
		t.Fatalf("unexpected bet command %q", bet)
	}
	play := CommandFor(engine.Action{Type: engine.ActionPlayCard, Card: engine.Card{Suit: engine.SuitHearts, Rank: engine.Rank10}})
	if play.String() != "PLAY_CARD Ten-of-Hearts" {
		t.Fatalf("unexpected play command %q", play)
	}
}
