package engine

import "fmt"

// Every error the engine returns leaves the game state untouched, and its
// message is the reply shown to the seat that caused it.

const (
	MsgStartGame       = "You must start the game!"
	MsgNotYourBet      = "It is not your turn to bet!"
	MsgBettingOver     = "Betting is over!"
	MsgBettingOpen     = "Betting has not been resolved!"
	MsgGameOver        = "The game is over!"
	MsgNoSuchCard      = "You don't have that card!"
	MsgFollowSuit      = "You must follow suit!"
	MsgOnlyDealerTakes = "Only the dealer may take!"
)

type SeatUnavailableError struct {
	Seat Seat
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("%s is not available", e.Seat)
}

type IllegalStateError struct {
	Phase   Phase
	Message string
}

func (e *IllegalStateError) Error() string {
	return e.Message
}

// TurnError reports an action from a seat other than Expected.
type TurnError struct {
	Expected Seat
	Message  string
}

func (e *TurnError) Error() string {
	return e.Message
}

type IllegalCardError struct {
	Card Card
}

func (e *IllegalCardError) Error() string {
	return MsgNoSuchCard
}

type RuleViolationError struct {
	Card    Card
	Message string
}

func (e *RuleViolationError) Error() string {
	return e.Message
}

// BetError rejects an amount that is not allowed at this point of the auction.
type BetError struct {
	Amount  Amount
	Message string
}

func (e *BetError) Error() string {
	return e.Message
}

func notYourTurn(expected Seat) *TurnError {
	return &TurnError{
		Expected: expected,
		Message:  fmt.Sprintf("It is not your turn! It is %s's turn!", expected),
	}
}

func tooLow(a Amount, high Amount) *BetError {
	return &BetError{Amount: a, Message: fmt.Sprintf("You must bet higher than %s!", high)}
}
