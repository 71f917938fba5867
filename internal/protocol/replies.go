package protocol

import (
	"fmt"

	"github.com/Mikey-Burns/Setback/internal/engine"
)

// SeatFor maps a REQUEST_PLAYER_* command to its seat.
func SeatFor(c Command) (engine.Seat, bool) {
	switch c {
	case RequestPlayerOne:
		return engine.PlayerOne, true
	case RequestPlayerTwo:
		return engine.PlayerTwo, true
	case RequestPlayerThree:
		return engine.PlayerThree, true
	case RequestPlayerFour:
		return engine.PlayerFour, true
	default:
		return engine.SeatNone, false
	}
}

// RequestFor is the inverse of SeatFor.
func RequestFor(s engine.Seat) Command {
	switch s {
	case engine.PlayerOne:
		return RequestPlayerOne
	case engine.PlayerTwo:
		return RequestPlayerTwo
	case engine.PlayerThree:
		return RequestPlayerThree
	case engine.PlayerFour:
		return RequestPlayerFour
	default:
		return NoCommand
	}
}

func Selected(s engine.Seat) string {
	return fmt.Sprintf(selectedTemplate, s.Ordinal())
}

func Rejected(s engine.Seat) string {
	return fmt.Sprintf(rejectedTemplate, s.Ordinal())
}

// CommandFor encodes a bot or simulator action as a command message.
func CommandFor(a engine.Action) *CommandMessage {
	if a.Type == engine.ActionBet {
		return NewCommandMessage(PlaceBet, a.Amount.String())
	}
	return NewCommandMessage(PlayCard, a.Card.String())
}
