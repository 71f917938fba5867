package engine

import "testing"

func card(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

func TestTrickWinnerWithTrump(t *testing.T) {
	cards := []TrickCard{
		{Seat: PlayerOne, Card: card(SuitHearts, RankAce)},
		{Seat: PlayerTwo, Card: card(SuitSpades, Rank2)},
		{Seat: PlayerThree, Card: card(SuitHearts, Rank10)},
		{Seat: PlayerFour, Card: card(SuitHearts, RankKing)},
	}
	if winner := TrickWinner(cards, SuitSpades); winner != PlayerTwo {
		t.Fatalf("expected trump to win trick, got %v", winner)
	}
}

func TestTrickWinnerByRank(t *testing.T) {
	cards := []TrickCard{
		{Seat: PlayerOne, Card: card(SuitClubs, RankKing)},
		{Seat: PlayerTwo, Card: card(SuitClubs, Rank10)},
		{Seat: PlayerThree, Card: card(SuitClubs, RankAce)},
		{Seat: PlayerFour, Card: card(SuitClubs, Rank2)},
	}
	if winner := TrickWinner(cards, SuitHearts); winner != PlayerThree {
		t.Fatalf("expected Ace to win trick, got %v", winner)
	}
}

func TestTrickWinnerIgnoresOffSuit(t *testing.T) {
	cards := []TrickCard{
		{Seat: PlayerOne, Card: card(SuitClubs, Rank3)},
		{Seat: PlayerTwo, Card: card(SuitDiamonds, RankAce)},
		{Seat: PlayerThree, Card: card(SuitClubs, Rank4)},
		{Seat: PlayerFour, Card: card(SuitClubs, Rank2)},
	}
	if winner := TrickWinner(cards, SuitHearts); winner != PlayerThree {
		t.Fatalf("expected highest club to win, got %v", winner)
	}
}

func scoringGame(bidder Seat, value int, trump Suit, tricks ...Trick) GameState {
	g := NewGame(StandardPreset(), 1)
	g.Round.BidWinner = bidder
	g.Round.BidValue = value
	g.Round.Trump = &trump
	g.Round.Tricks = tricks
	return g
}

func splitTricks() []Trick {
	return []Trick{
		{Leader: PlayerOne, Winner: PlayerOne, Cards: []TrickCard{
			{Seat: PlayerOne, Card: card(SuitHearts, RankAce)},
			{Seat: PlayerTwo, Card: card(SuitHearts, Rank2)},
			{Seat: PlayerThree, Card: card(SuitClubs, Rank10)},
			{Seat: PlayerFour, Card: card(SuitDiamonds, Rank3)},
		}},
		{Leader: PlayerFour, Winner: PlayerFour, Cards: []TrickCard{
			{Seat: PlayerFour, Card: card(SuitHearts, RankJack)},
			{Seat: PlayerOne, Card: card(SuitClubs, Rank2)},
			{Seat: PlayerTwo, Card: card(SuitClubs, Rank3)},
			{Seat: PlayerThree, Card: card(SuitClubs, Rank4)},
		}},
	}
}

func TestScoreHandCategories(t *testing.T) {
	g := scoringGame(PlayerOne, 2, SuitHearts, splitTricks()...)
	hs := scoreHand(&g)

	if hs.High != TeamOne || hs.Low != TeamTwo || hs.Jack != TeamTwo || hs.Game != TeamOne {
		t.Fatalf("unexpected categories: high %v low %v jack %v game %v", hs.High, hs.Low, hs.Jack, hs.Game)
	}
	if hs.GamePoints != [2]int{14, 1} {
		t.Fatalf("unexpected game points %v", hs.GamePoints)
	}
	if !hs.Made || g.Scores != [2]int{2, 2} {
		t.Fatalf("expected contract made and scores 2/2, got made=%v scores=%v", hs.Made, g.Scores)
	}
}

func TestScoreHandSetBack(t *testing.T) {
	g := scoringGame(PlayerThree, 3, SuitHearts, splitTricks()...)
	hs := scoreHand(&g)

	if hs.Made {
		t.Fatalf("expected contract to fail with two points against a bid of three")
	}
	if g.Scores != [2]int{-3, 2} {
		t.Fatalf("expected bidding team set back by three, got %v", g.Scores)
	}
}

// A tie for Game awards the point to nobody.
func TestScoreHandGameTieWithheld(t *testing.T) {
	g := scoringGame(PlayerTwo, 2, SuitHearts,
		Trick{Winner: PlayerOne, Cards: []TrickCard{
			{Seat: PlayerOne, Card: card(SuitHearts, Rank5)},
			{Seat: PlayerTwo, Card: card(SuitClubs, Rank10)},
		}},
		Trick{Winner: PlayerTwo, Cards: []TrickCard{
			{Seat: PlayerTwo, Card: card(SuitHearts, Rank6)},
			{Seat: PlayerOne, Card: card(SuitDiamonds, Rank10)},
		}},
	)
	hs := scoreHand(&g)

	if hs.Game != TeamNone || hs.Jack != TeamNone {
		t.Fatalf("expected game and jack withheld, got game %v jack %v", hs.Game, hs.Jack)
	}
	if hs.High != TeamTwo || hs.Low != TeamOne {
		t.Fatalf("unexpected high %v low %v", hs.High, hs.Low)
	}
	if g.Scores != [2]int{1, -2} {
		t.Fatalf("expected scores 1/-2, got %v", g.Scores)
	}
}

func TestScoreHandFiveNeedsSweep(t *testing.T) {
	sweep := Trick{Winner: PlayerThree, Cards: []TrickCard{
		{Seat: PlayerOne, Card: card(SuitHearts, RankJack)},
		{Seat: PlayerTwo, Card: card(SuitClubs, Rank2)},
		{Seat: PlayerThree, Card: card(SuitHearts, RankAce)},
		{Seat: PlayerFour, Card: card(SuitClubs, Rank3)},
	}}
	g := scoringGame(PlayerOne, 5, SuitHearts, sweep)
	hs := scoreHand(&g)
	if !hs.Made || g.Scores != [2]int{5, 0} {
		t.Fatalf("expected a sweep to make five, got made=%v scores=%v", hs.Made, g.Scores)
	}

	g = scoringGame(PlayerOne, 5, SuitHearts, splitTricks()...)
	hs = scoreHand(&g)
	if hs.Made || g.Scores != [2]int{-5, 2} {
		t.Fatalf("expected five to be set back, got made=%v scores=%v", hs.Made, g.Scores)
	}
}

func TestGameWinnerBidderGoesOutFirst(t *testing.T) {
	g := NewGame(StandardPreset(), 1)
	g.Scores = [2]int{11, 12}
	hs := HandScore{BidTeam: TeamOne, Made: true}
	if w := gameWinner(g, hs); w != TeamOne {
		t.Fatalf("expected bidding team to win, got %v", w)
	}

	hs = HandScore{BidTeam: TeamOne, Made: false}
	g.Scores = [2]int{8, 11}
	if w := gameWinner(g, hs); w != TeamTwo {
		t.Fatalf("expected defenders to win, got %v", w)
	}

	g.Scores = [2]int{10, 10}
	if w := gameWinner(g, hs); w != TeamNone {
		t.Fatalf("expected game to continue, got %v", w)
	}
}

// With the led suit in hand a seat must follow or trump; a void seat may discard.
func TestLegalPlayFollowOrTrump(t *testing.T) {
	trump := SuitSpades
	trick := Trick{Cards: []TrickCard{{Seat: PlayerOne, Card: card(SuitHearts, RankAce)}}}
	hand := []Card{card(SuitHearts, Rank9), card(SuitSpades, Rank2), card(SuitClubs, RankAce)}

	if !legalPlay(hand, card(SuitHearts, Rank9), trick, &trump) {
		t.Fatalf("following suit must be legal")
	}
	if !legalPlay(hand, card(SuitSpades, Rank2), trick, &trump) {
		t.Fatalf("trumping must be legal")
	}
	if legalPlay(hand, card(SuitClubs, RankAce), trick, &trump) {
		t.Fatalf("discarding while holding the led suit must be illegal")
	}
	void := []Card{card(SuitClubs, RankAce)}
	if !legalPlay(void, card(SuitClubs, RankAce), trick, &trump) {
		t.Fatalf("a void seat may discard")
	}
}
