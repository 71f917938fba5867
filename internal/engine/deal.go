package engine

import (
	"math/rand"
	"sort"
)

// Shuffler orders a fresh deck for one hand.
type Shuffler func(deck []Card, seed int64) []Card

func BuildDeck() []Card {
	deck := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: rank})
		}
	}
	return deck
}

func Shuffle(deck []Card, seed int64) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// NoShuffle keeps the deck in build order. Tests use it to know every hand in advance.
func NoShuffle(deck []Card, _ int64) []Card {
	return append([]Card(nil), deck...)
}

// DealRound deals the whole deck one card at a time, starting left of the
// dealer, and opens bidding. The hand number is mixed into the seed so each
// hand of a match gets a different but reproducible deal.
func DealRound(g *GameState, shuffle Shuffler) {
	if shuffle == nil {
		shuffle = Shuffle
	}
	deck := shuffle(BuildDeck(), g.Seed+int64(g.Round.Number))
	if g.Rules.HandSize*len(Seats) != len(deck) {
		panic("invalid deal configuration: does not exhaust deck")
	}

	g.ResetRound()
	seat := g.Round.Dealer.Next()
	for _, c := range deck {
		p := g.Player(seat)
		p.Hand = append(p.Hand, c)
		seat = seat.Next()
	}
	for i := range g.Players {
		sortHand(g.Players[i].Hand)
	}
	g.Round.HandsDealt = true
	g.Round.Phase = PhaseBidding
	g.Round.Turn = g.Round.Dealer.Next()
	g.Round.BidWinner = SeatNone
}

func sortHand(hand []Card) {
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].Suit != hand[j].Suit {
			return hand[i].Suit > hand[j].Suit
		}
		return hand[i].Rank > hand[j].Rank
	})
}
