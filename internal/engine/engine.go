package engine

import (
	"strings"
	"sync"
)

// GameEngine owns the authoritative state of one match. All mutations run
// under a single mutex and append to an event log that only ever grows, so
// any number of seats can poll it independently.
type GameEngine struct {
	mu      sync.Mutex
	state   GameState
	shuffle Shuffler
	events  []Event
}

type Option func(*GameEngine)

// WithShuffler replaces the seeded shuffle used for every deal.
func WithShuffler(s Shuffler) Option {
	return func(e *GameEngine) {
		e.shuffle = s
	}
}

func New(r Rules, seed int64, opts ...Option) *GameEngine {
	e := &GameEngine{
		state:   NewGame(r, seed),
		shuffle: Shuffle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RequestSeat binds occupant to seat if nobody holds it. Filling the fourth
// seat deals the first hand and opens bidding.
func (e *GameEngine) RequestSeat(seat Seat, occupant string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !seat.Valid() || occupant == "" {
		return &SeatUnavailableError{Seat: seat}
	}
	p := e.state.Player(seat)
	if p.Occupant != "" {
		return &SeatUnavailableError{Seat: seat}
	}
	p.Occupant = occupant
	if e.state.SeatsFilled() == len(Seats) && e.state.Round.Phase == PhaseWaitingForPlayers {
		DealRound(&e.state, e.shuffle)
	}
	return nil
}

// PlaceBet records seat's bet and returns the confirmation, e.g.
// "PLAYER_TWO BET PASS". The bet that closes the auction carries a
// " BETTING_RESOLVED" suffix.
func (e *GameEngine) PlaceBet(seat Seat, amount Amount) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	bid, err := applyBet(&e.state, seat, amount)
	if err != nil {
		return "", err
	}
	text := betText(bid)
	kind := EventBet
	if e.state.Round.Phase == PhasePlaying {
		text += " " + string(EventBettingResolved)
		kind = EventBettingResolved
	}
	e.appendLocked(kind, seat, text)
	return text, nil
}

// PlayCard plays card from seat's hand and returns "<SEAT> PLAYED <CARD>".
// Completing a trick, a hand or the match appends the matching announcements
// to the log.
func (e *GameEngine) PlayCard(seat Seat, card Card) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := applyPlay(&e.state, seat, card)
	if err != nil {
		return "", err
	}
	text := playText(seat, card)
	e.appendLocked(EventCardPlayed, seat, text)
	if res.TrickWinner != SeatNone {
		e.appendLocked(EventTrickWon, SeatNone, trickWonText(res.TrickWinner))
	}
	if res.Score != nil {
		e.appendLocked(EventHandScoring, SeatNone, handScoringText(*res.Score, e.state.Scores))
		if res.GameOver {
			e.appendLocked(EventGameOver, SeatNone, gameOverText(e.state.Winner))
		} else {
			nextHand(&e.state, e.shuffle)
		}
	}
	return text, nil
}

// Apply dispatches a bot or simulator action to PlaceBet or PlayCard.
func (e *GameEngine) Apply(seat Seat, a Action) (string, error) {
	if a.Type == ActionBet {
		return e.PlaceBet(seat, a.Amount)
	}
	return e.PlayCard(seat, a.Card)
}

func (e *GameEngine) appendLocked(kind EventKind, origin Seat, text string) {
	e.events = append(e.events, Event{
		Seq:    len(e.events),
		Kind:   kind,
		Origin: origin,
		Text:   text,
	})
}

// Events returns a copy of the log from index from onwards.
func (e *GameEngine) Events(from int) []Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	if from < 0 {
		from = 0
	}
	if from >= len(e.events) {
		return nil
	}
	return append([]Event(nil), e.events[from:]...)
}

// Hand returns a copy of the cards seat holds.
func (e *GameEngine) Hand(seat Seat) []Card {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !seat.Valid() {
		return nil
	}
	return append([]Card(nil), e.state.Player(seat).Hand...)
}

// HandString renders a hand as space separated card names.
func HandString(hand []Card) string {
	names := make([]string, 0, len(hand))
	for _, c := range hand {
		names = append(names, c.String())
	}
	return strings.Join(names, " ")
}

// CurrentPlayer returns the seat that must act next.
func (e *GameEngine) CurrentPlayer() (Seat, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if seat, ok := CurrentPlayer(e.state); ok {
		return seat, nil
	}
	if e.state.Round.Phase == PhaseGameOver {
		return SeatNone, &IllegalStateError{Phase: PhaseGameOver, Message: MsgGameOver}
	}
	return SeatNone, &IllegalStateError{Phase: e.state.Round.Phase, Message: MsgStartGame}
}

func (e *GameEngine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Round.Phase
}

func (e *GameEngine) Scores() [2]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Scores
}

func (e *GameEngine) SeatsFilled() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.SeatsFilled()
}

// Snapshot returns a deep copy of the current state.
func (e *GameEngine) Snapshot() GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}
