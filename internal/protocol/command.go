package protocol

import "strings"

type Command string

const (
	NoCommand          Command = "NO_COMMAND"
	Exit               Command = "EXIT"
	RequestPlayerOne   Command = "REQUEST_PLAYER_ONE"
	RequestPlayerTwo   Command = "REQUEST_PLAYER_TWO"
	RequestPlayerThree Command = "REQUEST_PLAYER_THREE"
	RequestPlayerFour  Command = "REQUEST_PLAYER_FOUR"
	ShowHand           Command = "SHOW_HAND"
	GetCurrentPlayer   Command = "GET_CURRENT_PLAYER"
	PlaceBet           Command = "PLACE_BET"
	PlayCard           Command = "PLAY_CARD"
)

var Commands = []Command{
	NoCommand, Exit,
	RequestPlayerOne, RequestPlayerTwo, RequestPlayerThree, RequestPlayerFour,
	ShowHand, GetCurrentPlayer, PlaceBet, PlayCard,
}

// Fixed replies that do not come from the engine.
const (
	ReplyNoCommand   = "No command"
	ReplyExit        = "EXIT"
	ReplyNoHand      = "You do not have a hand yet!"
	ReplyNoSeat      = "You have not selected a player!"
	selectedTemplate = "Player %s selected"
	rejectedTemplate = "Player %s rejected"
)

// CommandMessage is one decoded command line. Arguments may be empty.
type CommandMessage struct {
	Command   Command
	Arguments []string
}

func NewCommandMessage(c Command, args ...string) *CommandMessage {
	return &CommandMessage{Command: c, Arguments: args}
}

// Arg returns the i-th argument, or "" when it is missing.
func (m *CommandMessage) Arg(i int) string {
	if m == nil || i < 0 || i >= len(m.Arguments) {
		return ""
	}
	return m.Arguments[i]
}

// String renders the message back into a command line.
func (m *CommandMessage) String() string {
	if m == nil {
		return string(NoCommand)
	}
	return strings.Join(append([]string{string(m.Command)}, m.Arguments...), " ")
}

// Parse decodes a whitespace separated command line. Kinds are matched
// without regard to case; an empty line or an unknown kind is NO_COMMAND.
func Parse(line string) *CommandMessage {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return NewCommandMessage(NoCommand)
	}
	kind := Command(strings.ToUpper(fields[0]))
	for _, c := range Commands {
		if c == kind {
			return NewCommandMessage(c, fields[1:]...)
		}
	}
	return NewCommandMessage(NoCommand)
}
