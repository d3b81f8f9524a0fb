package local

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/game"
	"github.com/ratel-online/domino/protocol"
	"github.com/ratel-online/domino/render"
)

type Options struct {
	DefaultNames [consts.Players]string
	NewStock     func() *game.Stock
	// NewEngine overrides dealing; tests seat fixed hands with it.
	NewEngine func(name1, name2 string) *game.Engine
}

// Game is a hot-seat match: both players share one console.
type Game struct {
	in     *bufio.Reader
	out    io.Writer
	opts   Options
	engine *game.Engine
}

func New(in io.Reader, out io.Writer, opts Options) *Game {
	if opts.DefaultNames[0] == "" {
		opts.DefaultNames[0] = "Player 1"
	}
	if opts.DefaultNames[1] == "" {
		opts.DefaultNames[1] = "Player 2"
	}
	if opts.NewStock == nil {
		opts.NewStock = game.StockSource(0)
	}
	if opts.NewEngine == nil {
		newStock := opts.NewStock
		opts.NewEngine = func(name1, name2 string) *game.Engine {
			return game.New(name1, name2, newStock())
		}
	}
	return &Game{in: bufio.NewReader(in), out: out, opts: opts}
}

func (g *Game) Engine() *game.Engine {
	return g.engine
}

// Run plays until the engine reports the game over. Running out of
// input ends the match with consts.ErrorsChanClosed.
func (g *Game) Run() (game.Result, error) {
	var names [consts.Players]string
	for seat := range names {
		name, err := g.ask(fmt.Sprintf("Enter name for Player %d: ", seat+1))
		if err != nil {
			return game.Result{}, err
		}
		if name == "" {
			name = g.opts.DefaultNames[seat]
		}
		names[seat] = name
	}
	g.engine = g.opts.NewEngine(names[0], names[1])

	for !g.engine.IsGameOver() {
		if err := g.turn(); err != nil {
			return game.Result{}, err
		}
	}
	result := g.engine.Settle()
	render.Println(g.out, render.PromptStyle, "%s", render.Result(result))
	g.printf("Final scores:\n%s", render.Scores(g.engine.Players()))
	return result, nil
}

func (g *Game) turn() error {
	e := g.engine
	current := e.Current()
	render.Println(g.out, render.PromptStyle, "Current player: %s", current.Name())
	g.printf("%s", render.State(e.ExtractState(current)))

	if !e.CanPlay() {
		g.drawUntilPlayed()
		return nil
	}
	for {
		line, err := g.ask("Choose a tile to play (index): ")
		if err != nil {
			return err
		}
		index, err := protocol.ParseIndex(line)
		if err != nil {
			render.Println(g.out, render.AlertStyle, "Invalid index. Try again.")
			continue
		}
		chosen, err := e.TileAt(index)
		if err != nil {
			render.Println(g.out, render.AlertStyle, "Invalid index. Try again.")
			continue
		}
		placement, err := e.PlayTile(chosen)
		if err != nil {
			render.Println(g.out, render.AlertStyle, "Tile does not fit. Try again.")
			continue
		}
		g.printf("%s played %s\n", current.Name(), render.Tile(placement.Face))
		return nil
	}
}

func (g *Game) drawUntilPlayed() {
	e := g.engine
	current := e.Current()
	render.Println(g.out, render.NoticeStyle, "No playable tiles. Drawing from the stock...")
	for {
		drawn, ok := e.DrawTile()
		if !ok {
			break
		}
		g.printf("Drew %s\n", render.Tile(drawn))
		if placement, err := e.PlayTile(drawn); err == nil {
			g.printf("%s played %s\n", current.Name(), render.Tile(placement.Face))
			return
		}
	}
	render.Println(g.out, render.NoticeStyle, "No more tiles in the stock. %s passes.", current.Name())
	e.Pass()
}

func (g *Game) ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(g.out, render.PromptStyle.Paint(prompt))
	line, err := g.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", consts.ErrorsChanClosed
	}
	return strings.TrimSpace(line), nil
}

func (g *Game) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(g.out, format, args...)
}
