package engine

import "fmt"

type EventKind string

const (
	EventBet             EventKind = "BET"
	EventBettingResolved EventKind = "BETTING_RESOLVED"
	EventCardPlayed      EventKind = "PLAYED"
	EventTrickWon        EventKind = "TRICK_WON"
	EventHandScoring     EventKind = "HAND_SCORING"
	EventGameOver        EventKind = "GAME_OVER"
)

// Event is one entry of the engine's append-only log. Seq is the entry's
// index in the log. Origin is the seat whose action produced it, or SeatNone
// for table-wide announcements.
type Event struct {
	Seq    int
	Kind   EventKind
	Origin Seat
	Text   string
}

// RelevantTo reports whether a seat should be shown the event when polling.
// A seat already received the reply to its own action directly.
func (e Event) RelevantTo(seat Seat) bool {
	return seat.Valid() && e.Origin != seat
}

func betText(b Bid) string {
	return fmt.Sprintf("%s BET %s", b.Seat, b.Amount)
}

func playText(seat Seat, c Card) string {
	return fmt.Sprintf("%s PLAYED %s", seat, c)
}

func trickWonText(seat Seat) string {
	return fmt.Sprintf("%s WON TRICK", seat)
}

func handScoringText(hs HandScore, scores [2]int) string {
	return fmt.Sprintf("%s %s %d %d %s %d %d", EventHandScoring,
		TeamOne, hs.Delta[TeamOne], scores[TeamOne],
		TeamTwo, hs.Delta[TeamTwo], scores[TeamTwo])
}

func gameOverText(t Team) string {
	return fmt.Sprintf("%s %s", EventGameOver, t)
}
