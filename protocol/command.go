package protocol

// Command is the closed set of server-to-participant keywords.
type Command int

const (
	_ Command = iota
	CmdWaitConnect
	CmdConnected
	CmdWaitPlayer1Name
	CmdWaitPlayer2Name
	CmdNameRequest
	CmdEndInit
	CmdTurn
	CmdStockSize
	CmdOpponentTileSize
	CmdTiles
	CmdBoard
	CmdWaitOpponentMove
	CmdNoAvailableMoves
	CmdDraw
	CmdOpponentDraw
	CmdPlayed
	CmdOppPlayed
	CmdPass
	CmdOppPass
	CmdIndex
	CmdInvalidMove
	CmdInvalidInput
	CmdGameOver
	CmdScore
)

var keywords = map[Command]string{
	CmdWaitConnect:      "WAIT_CONNECT",
	CmdConnected:        "CONNECTED",
	CmdWaitPlayer1Name:  "WAIT_PLAYER1_NAME",
	CmdWaitPlayer2Name:  "WAIT_PLAYER2_NAME",
	CmdNameRequest:      "NAME_REQUEST",
	CmdEndInit:          "END_INIT",
	CmdTurn:             "TURN",
	CmdStockSize:        "STOCK_SIZE",
	CmdOpponentTileSize: "OPPONENT_TILE_SIZE",
	CmdTiles:            "TILES",
	CmdBoard:            "BOARD",
	CmdWaitOpponentMove: "WAIT_OPPONENT_MOVE",
	CmdNoAvailableMoves: "NO_AVAILABLE_MOVES",
	CmdDraw:             "DRAW",
	CmdOpponentDraw:     "OPPONENT_DRAW",
	CmdPlayed:           "PLAYED",
	CmdOppPlayed:        "OPP_PLAYED",
	CmdPass:             "PASS",
	CmdOppPass:          "OPP_PASS",
	CmdIndex:            "INDEX",
	CmdInvalidMove:      "INVALID_MOVE",
	CmdInvalidInput:     "INVALID_INPUT",
	CmdGameOver:         "GAME_OVER",
	CmdScore:            "SCORE",
}

var commands = map[string]Command{}

func init() {
	for command, keyword := range keywords {
		commands[keyword] = command
	}
}

// Commands lists every command in declaration order.
func Commands() []Command {
	ret := make([]Command, 0, len(keywords))
	for command := CmdWaitConnect; command <= CmdScore; command++ {
		ret = append(ret, command)
	}
	return ret
}

func (c Command) String() string {
	if keyword, ok := keywords[c]; ok {
		return keyword
	}
	return "UNKNOWN"
}

// HasPayload reports whether the command carries data after the keyword.
// GAME_OVER carries the winner's name, or nothing on a drawn match.
func (c Command) HasPayload() bool {
	switch c {
	case CmdEndInit, CmdStockSize, CmdOpponentTileSize, CmdTiles, CmdBoard,
		CmdDraw, CmdPlayed, CmdOppPlayed, CmdGameOver, CmdScore:
		return true
	}
	return false
}
