package bots

import (
	"math/rand"

	"github.com/Mikey-Burns/Setback/internal/engine"
)

// Bot picks the next action for a seat from a snapshot of the game. It is
// only asked when the seat is the current player.
type Bot interface {
	ChooseAction(state engine.GameState, seat engine.Seat) engine.Action
}

type EasyBot struct {
	RNG *rand.Rand
}

func NewEasy(seed int64) *EasyBot {
	return &EasyBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *EasyBot) ChooseAction(state engine.GameState, seat engine.Seat) engine.Action {
	legal := engine.LegalActions(state, seat)
	if len(legal) == 0 {
		return engine.Action{Type: engine.ActionBet, Amount: engine.BetPass}
	}
	if state.Round.Phase == engine.PhaseBidding {
		// Mostly pass, with an occasional random raise.
		if b.RNG.Intn(4) != 0 {
			return legal[0]
		}
	}
	return legal[b.RNG.Intn(len(legal))]
}

type NormalBot struct {
	RNG *rand.Rand
}

func NewNormal(seed int64) *NormalBot {
	return &NormalBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *NormalBot) ChooseAction(state engine.GameState, seat engine.Seat) engine.Action {
	switch state.Round.Phase {
	case engine.PhaseBidding:
		return bidByHeuristic(state, seat)
	case engine.PhasePlaying:
		return playHeuristic(state, seat)
	default:
		legal := engine.LegalActions(state, seat)
		if len(legal) == 0 {
			return engine.Action{Type: engine.ActionBet, Amount: engine.BetPass}
		}
		return legal[0]
	}
}

// estimate counts the categories a hand expects to win with suit as trump.
func estimate(hand []engine.Card, suit engine.Suit) int {
	n, length := 0, 0
	for _, c := range hand {
		if c.Suit != suit {
			continue
		}
		length++
		switch c.Rank {
		case engine.RankAce:
			n++
		case engine.RankJack:
			n++
		case engine.Rank2, engine.Rank3:
			n++
		}
	}
	if length >= 5 {
		n++
	}
	if n > 4 {
		n = 4
	}
	return n
}

func bestSuit(hand []engine.Card) (engine.Suit, int) {
	best, bestN := engine.SuitClubs, -1
	for _, s := range engine.Suits {
		if n := estimate(hand, s); n > bestN {
			best, bestN = s, n
		}
	}
	return best, bestN
}

func highValue(bids []engine.Bid) int {
	v := 0
	for _, b := range bids {
		if b.Value > v {
			v = b.Value
		}
	}
	return v
}

func bidByHeuristic(state engine.GameState, seat engine.Seat) engine.Action {
	pass := engine.Action{Type: engine.ActionBet, Amount: engine.BetPass}
	_, n := bestSuit(state.Player(seat).Hand)
	high := highValue(state.Round.Bids)

	if seat == state.Round.Dealer && high > 0 && n >= high {
		return engine.Action{Type: engine.ActionBet, Amount: engine.BetTake}
	}
	if n < state.Rules.MinBid || n <= high {
		return pass
	}
	for _, a := range engine.LegalActions(state, seat) {
		if a.Amount != engine.BetPass && a.Amount != engine.BetTake {
			// Lowest legal raise; bidding the full estimate invites a set back.
			return a
		}
	}
	return pass
}

func playHeuristic(state engine.GameState, seat engine.Seat) engine.Action {
	legal := engine.LegalActions(state, seat)
	if len(legal) == 0 {
		return engine.Action{Type: engine.ActionPlayCard}
	}
	trick := state.Round.Trick.Cards
	if len(trick) == 0 {
		// Lead the top card of trump, or of the suit that should become trump.
		suit, _ := bestSuit(state.Player(seat).Hand)
		if state.Round.Trump != nil {
			suit = *state.Round.Trump
		}
		best, bestRank := legal[0], engine.Rank(0)
		for _, a := range legal {
			if a.Card.Suit == suit && a.Card.Rank > bestRank {
				best, bestRank = a, a.Card.Rank
			}
		}
		return best
	}

	trump := *state.Round.Trump
	winner := engine.TrickWinner(trick, trump)
	if winner.Team() == seat.Team() {
		return shedLowest(legal)
	}
	// Try to win trick with lowest winning card if possible
	var bestWinning engine.Action
	bestRank := 99
	for _, a := range legal {
		cards := append(append([]engine.TrickCard(nil), trick...), engine.TrickCard{Seat: seat, Card: a.Card})
		if engine.TrickWinner(cards, trump) != seat {
			continue
		}
		r := int(a.Card.Rank)
		if a.Card.Suit == trump {
			r += 20
		}
		if r < bestRank {
			bestRank = r
			bestWinning = a
		}
	}
	if bestRank != 99 {
		return bestWinning
	}
	return shedLowest(legal)
}

// shedLowest discards the card worth least toward Game.
func shedLowest(legal []engine.Action) engine.Action {
	lowest := legal[0]
	lowestScore := 999
	for _, a := range legal {
		score := engine.GamePoints(a.Card.Rank)*20 + int(a.Card.Rank)
		if score < lowestScore {
			lowestScore = score
			lowest = a
		}
	}
	return lowest
}
