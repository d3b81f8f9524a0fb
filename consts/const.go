package consts

import "time"

type StateID int

const (
	_ StateID = iota
	StateHandshake
	StateTurn
	StateGameOver
)

const (
	// MaxPip is the highest pip value of a double-six set.
	MaxPip    = 6
	StockSize = (MaxPip + 1) * (MaxPip + 2) / 2
	HandSize  = 7
	Players   = 2

	DefaultTCPAddr = ":7777"
	DefaultWSPath  = "/ws"

	// MaxLineLength bounds one protocol line including its terminator.
	MaxLineLength = 4096
	WriteTimeout  = 10 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsChanClosed     = NewErr(1, true, "Chan closed. ")
	ErrorsInputInvalid   = NewErr(2, false, "Input invalid. ")
	ErrorsInvalidMove    = NewErr(3, false, "Tile does not fit either open end. ")
	ErrorsTileNotInHand  = NewErr(4, false, "Tile is not in the current player's hand. ")
	ErrorsGameOver       = NewErr(5, true, "Game is over. ")
	ErrorsUnknownCommand = NewErr(6, false, "Unknown command. ")
	ErrorsMalformedTile  = NewErr(7, false, "Malformed tile. ")

	States = map[StateID]string{
		StateHandshake: "Handshake",
		StateTurn:      "Turn",
		StateGameOver:  "GameOver",
	}
)
