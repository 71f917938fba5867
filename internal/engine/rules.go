package engine

// GamePoints is the value a captured card adds towards the Game point.
func GamePoints(r Rank) int {
	switch r {
	case Rank10:
		return 10
	case RankAce:
		return 4
	case RankKing:
		return 3
	case RankQueen:
		return 2
	case RankJack:
		return 1
	default:
		return 0
	}
}

// TrickWinner returns the seat whose card takes the trick: the highest trump
// if any was played, otherwise the highest card of the suit led.
func TrickWinner(cards []TrickCard, trump Suit) Seat {
	if len(cards) == 0 {
		return SeatNone
	}
	leadSuit := cards[0].Card.Suit
	bestIdx := 0
	for i := 1; i < len(cards); i++ {
		c := cards[i].Card
		best := cards[bestIdx].Card

		if c.Suit == trump && best.Suit != trump {
			bestIdx = i
			continue
		}
		if c.Suit != trump && best.Suit == trump {
			continue
		}

		if c.Suit == best.Suit {
			if c.Rank > best.Rank {
				bestIdx = i
			}
			continue
		}

		if best.Suit != leadSuit && c.Suit == leadSuit {
			bestIdx = i
		}
	}
	return cards[bestIdx].Seat
}

// HandScore is the outcome of one hand. Category fields hold TeamNone when
// the point was withheld.
type HandScore struct {
	High       Team
	Low        Team
	Jack       Team
	Game       Team
	GamePoints [2]int
	Points     [2]int
	Delta      [2]int
	BidTeam    Team
	BidValue   int
	Made       bool
}

// scoreHand awards High, Low, Jack and Game for the completed tricks of the
// hand and applies the result to the running score. High and Low go to the
// team that played the card, Jack to the team that captured it, and Game to
// the team with more Game points; a tie for Game is not awarded.
func scoreHand(g *GameState) HandScore {
	hs := HandScore{
		High:     TeamNone,
		Low:      TeamNone,
		Jack:     TeamNone,
		Game:     TeamNone,
		BidTeam:  g.Round.BidWinner.Team(),
		BidValue: g.Round.BidValue,
	}
	if g.Round.Trump == nil {
		return hs
	}
	trump := *g.Round.Trump

	var high, low *TrickCard
	for _, t := range g.Round.Tricks {
		for i := range t.Cards {
			tc := t.Cards[i]
			hs.GamePoints[t.Winner.Team()] += GamePoints(tc.Card.Rank)
			if tc.Card.Suit != trump {
				continue
			}
			if high == nil || tc.Card.Rank > high.Card.Rank {
				high = &tc
			}
			if low == nil || tc.Card.Rank < low.Card.Rank {
				low = &tc
			}
			if tc.Card.Rank == RankJack {
				hs.Jack = t.Winner.Team()
			}
		}
	}
	if high != nil {
		hs.High = high.Seat.Team()
		hs.Low = low.Seat.Team()
	}
	switch {
	case hs.GamePoints[TeamOne] > hs.GamePoints[TeamTwo]:
		hs.Game = TeamOne
	case hs.GamePoints[TeamTwo] > hs.GamePoints[TeamOne]:
		hs.Game = TeamTwo
	}

	for _, t := range []Team{hs.High, hs.Low, hs.Jack, hs.Game} {
		if t != TeamNone {
			hs.Points[t]++
		}
	}

	// A bid of five is only made by sweeping all four points, and then scores five.
	bidTeam := hs.BidTeam
	if hs.BidValue >= 5 {
		hs.Made = hs.Points[bidTeam] == 4
		if hs.Made {
			hs.Points[bidTeam] = hs.BidValue
		}
	} else {
		hs.Made = hs.Points[bidTeam] >= hs.BidValue
	}

	for _, t := range []Team{TeamOne, TeamTwo} {
		if t == bidTeam && !hs.Made {
			hs.Delta[t] = -hs.BidValue
		} else {
			hs.Delta[t] = hs.Points[t]
		}
		g.Scores[t] += hs.Delta[t]
	}
	return hs
}

// gameWinner decides whether the match is over after a hand. The bidding
// team goes out first when both teams reach the target on the same hand.
func gameWinner(g GameState, hs HandScore) Team {
	win := g.Rules.WinScore
	if hs.Made && g.Scores[hs.BidTeam] >= win {
		return hs.BidTeam
	}
	for _, t := range []Team{TeamOne, TeamTwo} {
		if t != hs.BidTeam && g.Scores[t] >= win {
			return t
		}
	}
	return TeamNone
}
