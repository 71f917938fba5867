package engine

import (
	"fmt"
	"strings"
)

var rankAliases = map[string]Rank{
	"2": Rank2, "3": Rank3, "4": Rank4, "5": Rank5, "6": Rank6,
	"7": Rank7, "8": Rank8, "9": Rank9, "10": Rank10,
	"j": RankJack, "q": RankQueen, "k": RankKing, "a": RankAce,
}

// ParseCard reads a "<Rank>-of-<Suit>" card name such as "Ace-of-Spades".
// Matching ignores case and also accepts numerals ("10-of-Hearts").
func ParseCard(s string) (Card, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || !strings.EqualFold(parts[1], "of") {
		return Card{}, fmt.Errorf("invalid card name %q", s)
	}
	r, ok := parseRank(parts[0])
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in %q", s)
	}
	suit, ok := parseSuit(parts[2])
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}
	return Card{Suit: suit, Rank: r}, nil
}

func parseRank(s string) (Rank, bool) {
	for _, r := range Ranks {
		if strings.EqualFold(s, r.String()) {
			return r, true
		}
	}
	r, ok := rankAliases[strings.ToLower(s)]
	return r, ok
}

func parseSuit(s string) (Suit, bool) {
	for _, suit := range Suits {
		if strings.EqualFold(s, suit.String()) {
			return suit, true
		}
	}
	return SuitClubs, false
}

// ParseAmount reads a bet amount such as "PASS" or "three".
func ParseAmount(s string) (Amount, error) {
	for _, a := range Amounts {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return BetPass, fmt.Errorf("invalid bet %q", s)
}

// ParseSeat reads a seat name such as "PLAYER_TWO".
func ParseSeat(s string) (Seat, error) {
	for _, seat := range Seats {
		if strings.EqualFold(s, seat.String()) {
			return seat, nil
		}
	}
	return SeatNone, fmt.Errorf("invalid seat %q", s)
}
