package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/domino/domino/tile"
)

type State struct {
	PlayerName    string
	OpponentName  string
	Turn          bool
	StockSize     int
	OpponentTiles int
	Hand          tile.Tiles
	Line          tile.Tiles
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Board: %s", s.Line))
	lines = append(lines, fmt.Sprintf("Stock: %d tile(s), %s holds %d tile(s)", s.StockSize, s.OpponentName, s.OpponentTiles))
	lines = append(lines, fmt.Sprintf("Your hand: %s", s.Hand))
	return strings.Join(lines, "\n")
}
