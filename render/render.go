package render

import (
	"bytes"
	"fmt"

	"github.com/ratel-online/domino/domino/game"
	"github.com/ratel-online/domino/domino/tile"
)

func Tile(t tile.Tile) string {
	return TileStyle.Paint(t.String())
}

// Board paints the line with its open ends highlighted.
func Board(line tile.Tiles) string {
	if len(line) == 0 {
		return EndStyle.Paint("[]")
	}
	buf := bytes.Buffer{}
	buf.WriteString(EndStyle.Paintf("%d", line[0].A))
	buf.WriteString(" ")
	buf.WriteString(TileStyle.Paint(line.String()))
	buf.WriteString(" ")
	buf.WriteString(EndStyle.Paintf("%d", line[len(line)-1].B))
	return buf.String()
}

// Hand lists tiles with the indexes a player answers INDEX with.
func Hand(hand tile.Tiles) string {
	buf := bytes.Buffer{}
	for i, t := range hand {
		if i > 0 {
			buf.WriteString("  ")
		}
		buf.WriteString(fmt.Sprintf("%d)", i))
		buf.WriteString(Tile(t))
	}
	return buf.String()
}

func State(state game.State) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Board: %s\n", Board(state.Line)))
	buf.WriteString(fmt.Sprintf("Stock: %d tile(s), %s holds %d tile(s)\n", state.StockSize, state.OpponentName, state.OpponentTiles))
	buf.WriteString(fmt.Sprintf("%s's hand: %s\n", state.PlayerName, Hand(state.Hand)))
	return buf.String()
}

// Result announces the outcome; a drawn match has no winner.
func Result(result game.Result) string {
	if result.Draw() {
		return NoticeStyle.Paint("Game over! The match is a draw.")
	}
	return NoticeStyle.Paintf("Game over! The winner is: %s (+%d points)", result.Winner.Name(), result.Points)
}

func Scores(players []*game.Player) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-20s%-10s\n", "Name", "Score"))
	for _, player := range players {
		buf.WriteString(fmt.Sprintf("%-20s%-10d\n", player.Name(), player.Score()))
	}
	return buf.String()
}
