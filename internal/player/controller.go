package player

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Mikey-Burns/Setback/internal/engine"
	"github.com/Mikey-Burns/Setback/internal/protocol"
)

// Game is the part of the engine a seat adapter drives.
type Game interface {
	RequestSeat(seat engine.Seat, occupant string) error
	PlaceBet(seat engine.Seat, amount engine.Amount) (string, error)
	PlayCard(seat engine.Seat, card engine.Card) (string, error)
	Hand(seat engine.Seat) []engine.Card
	CurrentPlayer() (engine.Seat, error)
	Phase() engine.Phase
	Events(from int) []engine.Event
}

type State int

const (
	StateUnbound State = iota
	StateBound
	StateActive
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUnbound:
		return "UNBOUND"
	case StateBound:
		return "BOUND"
	case StateActive:
		return "ACTIVE"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Controller interprets the commands of one connected seat against a shared
// game. It keeps its own position in the game's event log, so every event
// caused by another seat is delivered to it exactly once and in order.
type Controller struct {
	mu     sync.Mutex
	id     uuid.UUID
	game   Game
	seat   engine.Seat
	cursor int
	state  State
}

func New(game Game) *Controller {
	return &Controller{
		id:    uuid.New(),
		game:  game,
		seat:  engine.SeatNone,
		state: StateUnbound,
	}
}

// ID is the identity the controller registers its seat under.
func (c *Controller) ID() uuid.UUID {
	return c.id
}

// MyNumber returns the bound seat, or SeatNone.
func (c *Controller) MyNumber() engine.Seat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seat
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
	return c.state
}

// ProcessInput executes one command and returns its reply. A nil message is
// treated as NO_COMMAND.
func (c *Controller) ProcessInput(msg *protocol.CommandMessage) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateTerminated {
		return protocol.ReplyExit
	}
	if msg == nil {
		msg = protocol.NewCommandMessage(protocol.NoCommand)
	}
	defer c.refreshLocked()

	switch msg.Command {
	case protocol.Exit:
		c.state = StateTerminated
		return protocol.ReplyExit
	case protocol.RequestPlayerOne, protocol.RequestPlayerTwo, protocol.RequestPlayerThree, protocol.RequestPlayerFour:
		seat, _ := protocol.SeatFor(msg.Command)
		return c.requestSeatLocked(seat)
	case protocol.ShowHand:
		return c.showHandLocked()
	case protocol.GetCurrentPlayer:
		seat, err := c.game.CurrentPlayer()
		if err != nil {
			return err.Error()
		}
		return seat.String()
	case protocol.PlaceBet:
		amount, err := engine.ParseAmount(msg.Arg(0))
		if err != nil {
			return c.pollLocked()
		}
		if reply, ok := c.unboundLocked(); !ok {
			return reply
		}
		text, err := c.game.PlaceBet(c.seat, amount)
		if err != nil {
			return err.Error()
		}
		return text
	case protocol.PlayCard:
		card, err := engine.ParseCard(msg.Arg(0))
		if err != nil {
			return c.pollLocked()
		}
		if reply, ok := c.unboundLocked(); !ok {
			return reply
		}
		text, err := c.game.PlayCard(c.seat, card)
		if err != nil {
			return err.Error()
		}
		return text
	default:
		return c.pollLocked()
	}
}

func (c *Controller) requestSeatLocked(seat engine.Seat) string {
	if c.seat != engine.SeatNone {
		return protocol.Rejected(seat)
	}
	if err := c.game.RequestSeat(seat, c.id.String()); err != nil {
		return protocol.Rejected(seat)
	}
	c.seat = seat
	c.state = StateBound
	return protocol.Selected(seat)
}

func (c *Controller) showHandLocked() string {
	if c.seat == engine.SeatNone {
		return protocol.ReplyNoHand
	}
	hand := c.game.Hand(c.seat)
	if len(hand) == 0 {
		return protocol.ReplyNoHand
	}
	return engine.HandString(hand)
}

// unboundLocked reports the reply for a bet or play from a controller that
// holds no seat. ok is true when the controller is bound.
func (c *Controller) unboundLocked() (string, bool) {
	if c.seat != engine.SeatNone {
		return "", true
	}
	if c.game.Phase() == engine.PhaseWaitingForPlayers {
		return engine.MsgStartGame, false
	}
	return protocol.ReplyNoSeat, false
}

// pollLocked returns the next unseen event caused by another seat and moves
// the cursor past it. Events the seat caused itself are skipped.
func (c *Controller) pollLocked() string {
	if c.seat == engine.SeatNone {
		return protocol.ReplyNoCommand
	}
	for _, ev := range c.game.Events(c.cursor) {
		c.cursor = ev.Seq + 1
		if !ev.RelevantTo(c.seat) {
			continue
		}
		if ev.Kind == engine.EventGameOver {
			c.state = StateTerminated
		}
		return ev.Text
	}
	return protocol.ReplyNoCommand
}

func (c *Controller) refreshLocked() {
	if c.state == StateBound && c.game.Phase() != engine.PhaseWaitingForPlayers {
		c.state = StateActive
	}
}
