package engine

import "fmt"

type Suit int

type Rank int

const (
	SuitClubs Suit = iota
	SuitDiamonds
	SuitHearts
	SuitSpades
)

var Suits = []Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJack
	RankQueen
	RankKing
	RankAce
)

var Ranks = []Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJack, RankQueen, RankKing, RankAce}

func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "Clubs"
	case SuitDiamonds:
		return "Diamonds"
	case SuitHearts:
		return "Hearts"
	case SuitSpades:
		return "Spades"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Rank2:
		return "Two"
	case Rank3:
		return "Three"
	case Rank4:
		return "Four"
	case Rank5:
		return "Five"
	case Rank6:
		return "Six"
	case Rank7:
		return "Seven"
	case Rank8:
		return "Eight"
	case Rank9:
		return "Nine"
	case Rank10:
		return "Ten"
	case RankJack:
		return "Jack"
	case RankQueen:
		return "Queen"
	case RankKing:
		return "King"
	case RankAce:
		return "Ace"
	default:
		return "?"
	}
}

// Card is an immutable playing card. Two cards are equal when rank and suit match.
type Card struct {
	Suit Suit
	Rank Rank
}

// String renders the protocol card name, e.g. "Ace-of-Spades".
func (c Card) String() string {
	return fmt.Sprintf("%s-of-%s", c.Rank, c.Suit)
}

// Seat identifies one of the four fixed positions at the table.
type Seat int

const (
	SeatNone Seat = iota
	PlayerOne
	PlayerTwo
	PlayerThree
	PlayerFour
)

var Seats = []Seat{PlayerOne, PlayerTwo, PlayerThree, PlayerFour}

func (s Seat) String() string {
	switch s {
	case PlayerOne:
		return "PLAYER_ONE"
	case PlayerTwo:
		return "PLAYER_TWO"
	case PlayerThree:
		return "PLAYER_THREE"
	case PlayerFour:
		return "PLAYER_FOUR"
	default:
		return "NONE"
	}
}

// Ordinal is the lower-case seat number used in seat selection replies.
func (s Seat) Ordinal() string {
	switch s {
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	case PlayerThree:
		return "three"
	case PlayerFour:
		return "four"
	default:
		return "none"
	}
}

func (s Seat) Valid() bool {
	return s >= PlayerOne && s <= PlayerFour
}

// Next returns the seat to the left in the fixed one-two-three-four rotation.
func (s Seat) Next() Seat {
	return Seat(int(s)%4 + 1)
}

func (s Seat) index() int {
	return int(s) - 1
}

// Team returns the partnership the seat belongs to: one and three against two and four.
func (s Seat) Team() Team {
	if s == PlayerOne || s == PlayerThree {
		return TeamOne
	}
	return TeamTwo
}

type Team int

const (
	TeamNone Team = iota - 1
	TeamOne
	TeamTwo
)

func (t Team) String() string {
	switch t {
	case TeamOne:
		return "TEAM_ONE"
	case TeamTwo:
		return "TEAM_TWO"
	default:
		return "NONE"
	}
}

// Amount is a bet as spoken at the table. TAKE is the dealer's privilege to
// match the high bid, and is forced on the dealer when everyone else passes.
type Amount int

const (
	BetPass Amount = iota
	BetTwo
	BetThree
	BetFour
	BetFive
	BetTake
)

var Amounts = []Amount{BetPass, BetTwo, BetThree, BetFour, BetFive, BetTake}

func (a Amount) String() string {
	switch a {
	case BetPass:
		return "PASS"
	case BetTwo:
		return "TWO"
	case BetThree:
		return "THREE"
	case BetFour:
		return "FOUR"
	case BetFive:
		return "FIVE"
	case BetTake:
		return "TAKE"
	default:
		return "?"
	}
}

// points is the contract value of a numeric bet. PASS and TAKE have no
// intrinsic value; a TAKE is valued when it is placed.
func (a Amount) points() int {
	switch a {
	case BetTwo:
		return 2
	case BetThree:
		return 3
	case BetFour:
		return 4
	case BetFive:
		return 5
	default:
		return 0
	}
}

type Phase int

const (
	PhaseWaitingForPlayers Phase = iota
	PhaseBidding
	PhasePlaying
	PhaseHandScoring
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWaitingForPlayers:
		return "WAITING_FOR_PLAYERS"
	case PhaseBidding:
		return "BIDDING"
	case PhasePlaying:
		return "PLAYING"
	case PhaseHandScoring:
		return "HAND_SCORING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

type Rules struct {
	HandSize    int
	MinBid      int
	WinScore    int
	FirstDealer Seat
}

func StandardPreset() Rules {
	return Rules{
		HandSize:    13,
		MinBid:      2,
		WinScore:    11,
		FirstDealer: PlayerOne,
	}
}

// Bid is one seat's bet for the hand. Value is the number of points the
// bet contracts for; it is zero for a pass.
type Bid struct {
	Seat   Seat
	Amount Amount
	Value  int
}

type TrickCard struct {
	Seat Seat
	Card Card
}

type Trick struct {
	Leader Seat
	Cards  []TrickCard
	Winner Seat
}

type PlayerState struct {
	Seat     Seat
	Occupant string
	Hand     []Card
}

type RoundState struct {
	Phase      Phase
	Number     int
	Dealer     Seat
	Turn       Seat
	Leader     Seat
	Trump      *Suit
	HandsDealt bool
	Bids       []Bid
	BidWinner  Seat
	BidValue   int
	Trick      Trick
	Tricks     []Trick
}

type GameState struct {
	Rules     Rules
	Seed      int64
	Round     RoundState
	Players   [4]PlayerState
	Scores    [2]int
	LastScore *HandScore
	Winner    Team
}

func NewGame(r Rules, seed int64) GameState {
	g := GameState{
		Rules: r,
		Seed:  seed,
		Round: RoundState{
			Phase:  PhaseWaitingForPlayers,
			Dealer: r.FirstDealer,
		},
		Winner: TeamNone,
	}
	for _, s := range Seats {
		g.Players[s.index()] = PlayerState{Seat: s}
	}
	return g
}

// ResetRound clears per-hand state while keeping the dealer, hand counter and scores.
func (g *GameState) ResetRound() {
	g.Round = RoundState{
		Phase:  g.Round.Phase,
		Number: g.Round.Number,
		Dealer: g.Round.Dealer,
	}
	for i := range g.Players {
		g.Players[i].Hand = nil
	}
}

func (g *GameState) Player(s Seat) *PlayerState {
	return &g.Players[s.index()]
}

func (g GameState) SeatsFilled() int {
	n := 0
	for _, p := range g.Players {
		if p.Occupant != "" {
			n++
		}
	}
	return n
}

// Clone returns a deep copy safe to hand to bots and invariant checkers.
func (g GameState) Clone() GameState {
	out := g
	for i := range out.Players {
		out.Players[i].Hand = append([]Card(nil), g.Players[i].Hand...)
	}
	if g.Round.Trump != nil {
		t := *g.Round.Trump
		out.Round.Trump = &t
	}
	out.Round.Bids = append([]Bid(nil), g.Round.Bids...)
	out.Round.Trick = cloneTrick(g.Round.Trick)
	if g.Round.Tricks != nil {
		out.Round.Tricks = make([]Trick, len(g.Round.Tricks))
		for i, t := range g.Round.Tricks {
			out.Round.Tricks[i] = cloneTrick(t)
		}
	}
	if g.LastScore != nil {
		s := *g.LastScore
		out.LastScore = &s
	}
	return out
}

func cloneTrick(t Trick) Trick {
	t.Cards = append([]TrickCard(nil), t.Cards...)
	return t
}
