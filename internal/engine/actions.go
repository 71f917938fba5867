package engine

type ActionType int

const (
	ActionBet ActionType = iota
	ActionPlayCard
)

type Action struct {
	Type   ActionType
	Amount Amount
	Card   Card
}

func (a Action) String() string {
	if a.Type == ActionBet {
		return "BET " + a.Amount.String()
	}
	return "PLAY " + a.Card.String()
}

func LegalActions(g GameState, seat Seat) []Action {
	// Ordering is deterministic: bets low to high, cards in hand order.
	switch g.Round.Phase {
	case PhaseBidding:
		return legalBets(g, seat)
	case PhasePlaying:
		return legalPlays(g, seat)
	default:
		return nil
	}
}

// CurrentPlayer returns the seat expected to act in the current phase.
func CurrentPlayer(g GameState) (Seat, bool) {
	switch g.Round.Phase {
	case PhaseBidding, PhasePlaying:
		return g.Round.Turn, true
	default:
		return SeatNone, false
	}
}

// betPhaseError reports why bets are not accepted in the current phase.
func betPhaseError(g *GameState) error {
	switch g.Round.Phase {
	case PhaseBidding:
		return nil
	case PhaseWaitingForPlayers:
		return &IllegalStateError{Phase: g.Round.Phase, Message: MsgStartGame}
	case PhaseGameOver:
		return &IllegalStateError{Phase: g.Round.Phase, Message: MsgGameOver}
	default:
		return &IllegalStateError{Phase: g.Round.Phase, Message: MsgBettingOver}
	}
}

func playPhaseError(g *GameState) error {
	switch g.Round.Phase {
	case PhasePlaying:
		return nil
	case PhaseWaitingForPlayers:
		return &IllegalStateError{Phase: g.Round.Phase, Message: MsgStartGame}
	case PhaseGameOver:
		return &IllegalStateError{Phase: g.Round.Phase, Message: MsgGameOver}
	default:
		return &IllegalStateError{Phase: g.Round.Phase, Message: MsgBettingOpen}
	}
}

// applyBet records one bet. It reports the bid as recorded, which differs
// from the requested amount when the dealer is forced to take.
func applyBet(g *GameState, seat Seat, amount Amount) (Bid, error) {
	if err := betPhaseError(g); err != nil {
		return Bid{}, err
	}
	if seat != g.Round.Turn {
		return Bid{}, &TurnError{Expected: g.Round.Turn, Message: MsgNotYourBet}
	}

	high := highBid(g.Round.Bids)
	bid := Bid{Seat: seat, Amount: amount}
	switch amount {
	case BetPass:
		if seat == g.Round.Dealer && high.Value == 0 {
			bid.Amount = BetTake
			bid.Value = g.Rules.MinBid
		}
	case BetTake:
		if seat != g.Round.Dealer {
			return Bid{}, &BetError{Amount: amount, Message: MsgOnlyDealerTakes}
		}
		bid.Value = high.Value
		if bid.Value < g.Rules.MinBid {
			bid.Value = g.Rules.MinBid
		}
	case BetTwo, BetThree, BetFour, BetFive:
		if amount.points() <= high.Value {
			return Bid{}, tooLow(amount, high.Amount)
		}
		bid.Value = amount.points()
	default:
		return Bid{}, &BetError{Amount: amount, Message: "Unknown bet!"}
	}

	g.Round.Bids = append(g.Round.Bids, bid)
	if len(g.Round.Bids) == len(Seats) {
		resolveBidding(g)
		return bid, nil
	}
	g.Round.Turn = seat.Next()
	return bid, nil
}

// highBid returns the strongest bid so far. A dealer's TAKE wins ties.
func highBid(bids []Bid) Bid {
	best := Bid{Seat: SeatNone, Amount: BetPass}
	for _, b := range bids {
		if b.Value > best.Value || (b.Value == best.Value && b.Value > 0 && b.Amount == BetTake) {
			best = b
		}
	}
	return best
}

func resolveBidding(g *GameState) {
	win := highBid(g.Round.Bids)
	g.Round.BidWinner = win.Seat
	g.Round.BidValue = win.Value
	g.Round.Phase = PhasePlaying
	g.Round.Leader = win.Seat
	g.Round.Turn = win.Seat
	g.Round.Trick = Trick{Leader: win.Seat}
}

// playResult tells the caller what a successful card play completed.
type playResult struct {
	TrickWinner Seat
	Score       *HandScore
	GameOver    bool
}

func applyPlay(g *GameState, seat Seat, card Card) (playResult, error) {
	res := playResult{TrickWinner: SeatNone}
	if err := playPhaseError(g); err != nil {
		return res, err
	}
	if seat != g.Round.Turn {
		return res, notYourTurn(g.Round.Turn)
	}
	hand := &g.Player(seat).Hand
	if !containsCard(*hand, card) {
		return res, &IllegalCardError{Card: card}
	}
	if !legalPlay(*hand, card, g.Round.Trick, g.Round.Trump) {
		return res, &RuleViolationError{Card: card, Message: MsgFollowSuit}
	}
	removeCard(hand, card)

	if len(g.Round.Trick.Cards) == 0 {
		g.Round.Trick.Leader = seat
		// The first card led after the auction names trump.
		if g.Round.Trump == nil {
			suit := card.Suit
			g.Round.Trump = &suit
		}
	}
	g.Round.Trick.Cards = append(g.Round.Trick.Cards, TrickCard{Seat: seat, Card: card})
	if len(g.Round.Trick.Cards) < len(Seats) {
		g.Round.Turn = seat.Next()
		return res, nil
	}

	winner := TrickWinner(g.Round.Trick.Cards, *g.Round.Trump)
	g.Round.Trick.Winner = winner
	g.Round.Tricks = append(g.Round.Tricks, g.Round.Trick)
	g.Round.Trick = Trick{Leader: winner}
	g.Round.Leader = winner
	g.Round.Turn = winner
	res.TrickWinner = winner

	if len(g.Player(winner).Hand) > 0 {
		return res, nil
	}

	g.Round.Phase = PhaseHandScoring
	hs := scoreHand(g)
	g.LastScore = &hs
	res.Score = &hs
	if t := gameWinner(*g, hs); t != TeamNone {
		g.Winner = t
		g.Round.Phase = PhaseGameOver
		res.GameOver = true
	}
	return res, nil
}

// nextHand rotates the deal after a scored hand that did not end the match.
func nextHand(g *GameState, shuffle Shuffler) {
	g.Round.Dealer = g.Round.Dealer.Next()
	g.Round.Number++
	DealRound(g, shuffle)
}

func legalBets(g GameState, seat Seat) []Action {
	if g.Round.Phase != PhaseBidding || seat != g.Round.Turn {
		return nil
	}
	high := highBid(g.Round.Bids)
	out := []Action{{Type: ActionBet, Amount: BetPass}}
	for _, a := range []Amount{BetTwo, BetThree, BetFour, BetFive} {
		if a.points() > high.Value {
			out = append(out, Action{Type: ActionBet, Amount: a})
		}
	}
	if seat == g.Round.Dealer {
		out = append(out, Action{Type: ActionBet, Amount: BetTake})
	}
	return out
}

func legalPlays(g GameState, seat Seat) []Action {
	if g.Round.Phase != PhasePlaying || seat != g.Round.Turn {
		return nil
	}
	hand := g.Player(seat).Hand
	out := make([]Action, 0, len(hand))
	for _, c := range hand {
		if legalPlay(hand, c, g.Round.Trick, g.Round.Trump) {
			out = append(out, Action{Type: ActionPlayCard, Card: c})
		}
	}
	return out
}

// legalPlay applies the follow rule: a seat holding the led suit must play
// it or trump. Trump may be played at any time, and a void seat plays anything.
func legalPlay(hand []Card, card Card, trick Trick, trump *Suit) bool {
	if len(trick.Cards) == 0 {
		return true
	}
	led := trick.Cards[0].Card.Suit
	if card.Suit == led || (trump != nil && card.Suit == *trump) {
		return true
	}
	return !hasSuit(hand, led)
}

func hasSuit(cards []Card, suit Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func containsCard(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

func removeCard(hand *[]Card, card Card) bool {
	for i, c := range *hand {
		if c == card {
			*hand = append((*hand)[:i], (*hand)[i+1:]...)
			return true
		}
	}
	return false
}

// LegalBets lists the amounts seat may bet right now, lowest first.
func LegalBets(g GameState, seat Seat) []Amount {
	var out []Amount
	for _, a := range legalBets(g, seat) {
		out = append(out, a.Amount)
	}
	return out
}

// LegalCards lists the cards seat may play right now, in hand order.
func LegalCards(g GameState, seat Seat) []Card {
	var out []Card
	for _, a := range legalPlays(g, seat) {
		out = append(out, a.Card)
	}
	return out
}
