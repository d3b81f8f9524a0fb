package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/tile"
	"github.com/ratel-online/domino/network"
	"github.com/ratel-online/domino/protocol"
	"github.com/ratel-online/domino/render"
)

// Summary is what a participant learns about the finished match.
type Summary struct {
	Name     string
	Opponent string
	// Winner is empty on a drawn match.
	Winner string
	Score  int
}

// Client is a terminal participant. It mirrors what the server tells
// it and only answers NAME_REQUEST and INDEX.
type Client struct {
	conn network.Conn
	in   *bufio.Reader
	out  io.Writer

	name          string
	opponent      string
	tiles         tile.Tiles
	board         tile.Tiles
	stockSize     int
	opponentTiles int
	summary       Summary
	finished      bool
}

func New(conn network.Conn, in io.Reader, out io.Writer) *Client {
	return &Client{conn: conn, in: bufio.NewReader(in), out: out}
}

// Run handles messages until the final SCORE arrives.
func (c *Client) Run() (Summary, error) {
	defer c.conn.Close()
	for !c.finished {
		line, err := c.conn.ReadLine()
		if err != nil {
			return c.summary, fmt.Errorf("connection lost: %w", err)
		}
		msg, err := protocol.Decode(line)
		if err != nil {
			log.Errorf("client skipped %q: %v\n", line, err)
			continue
		}
		if err := c.Handle(msg); err != nil {
			return c.summary, err
		}
	}
	return c.summary, nil
}

func (c *Client) Tiles() tile.Tiles {
	return c.tiles
}

func (c *Client) Board() tile.Tiles {
	return c.board
}

// Handle applies one server message.
func (c *Client) Handle(msg protocol.Message) error {
	switch msg.Command {
	case protocol.CmdWaitConnect:
		c.notice("Waiting for Player 2 to connect...")
	case protocol.CmdConnected:
		c.notice("Player 2 connected.")
	case protocol.CmdWaitPlayer1Name:
		c.notice("Waiting for Player 1 to enter their name...")
	case protocol.CmdWaitPlayer2Name:
		c.notice("Waiting for Player 2 to enter their name...")
	case protocol.CmdNameRequest:
		name, err := c.ask("Please enter your name: ")
		if err != nil {
			return err
		}
		c.name = name
		return c.reply(name)
	case protocol.CmdEndInit:
		c.opponent = msg.Payload
		c.summary.Name, c.summary.Opponent = c.name, c.opponent
		c.notice("Hello %s! Your opponent is: %s. The game is starting...", c.name, c.opponent)
	case protocol.CmdTurn:
		render.Println(c.out, render.PromptStyle, "It's your turn %s!", c.name)
	case protocol.CmdStockSize:
		n, err := msg.Int()
		if err != nil {
			return err
		}
		c.stockSize = n
		c.printf("The stock has %d tiles.\n", n)
	case protocol.CmdOpponentTileSize:
		n, err := msg.Int()
		if err != nil {
			return err
		}
		c.opponentTiles = n
		c.printf("%s has %d tiles.\n", c.opponent, n)
	case protocol.CmdTiles:
		ts, err := msg.Tiles()
		if err != nil {
			return err
		}
		c.tiles = ts
		c.printf("Your tiles: %s\n", render.Hand(ts))
	case protocol.CmdBoard:
		ts, err := msg.Tiles()
		if err != nil {
			return err
		}
		c.board = ts
		c.printf("Current board: %s\n", render.Board(ts))
	case protocol.CmdWaitOpponentMove:
		c.notice("Waiting for %s to make a move.", c.opponent)
	case protocol.CmdNoAvailableMoves:
		c.notice("No available moves. Drawing from stock...")
	case protocol.CmdDraw:
		t, err := msg.Tile()
		if err != nil {
			return err
		}
		c.tiles = append(c.tiles, t)
		c.printf("You drew: %s\n", render.Tile(t))
	case protocol.CmdOpponentDraw:
		c.opponentTiles++
		c.printf("%s drew a tile.\n", c.opponent)
	case protocol.CmdPlayed:
		t, err := msg.Tile()
		if err != nil {
			return err
		}
		c.removeTile(t)
		c.printf("You played: %s\n", render.Tile(t))
	case protocol.CmdOppPlayed:
		t, err := msg.Tile()
		if err != nil {
			return err
		}
		c.opponentTiles--
		c.printf("%s played: %s\n", c.opponent, render.Tile(t))
	case protocol.CmdPass:
		c.notice("No valid tiles to play and no more tiles in the stock. Passing turn.")
	case protocol.CmdOppPass:
		c.notice("%s has no valid tiles to play and the stock is empty. %s passed the turn.", c.opponent, c.opponent)
	case protocol.CmdIndex:
		index, err := c.ask("Enter the index of the tile you want to play: ")
		if err != nil {
			return err
		}
		return c.reply(index)
	case protocol.CmdInvalidMove:
		render.Println(c.out, render.AlertStyle, "Invalid move. Choose a different tile.")
	case protocol.CmdInvalidInput:
		render.Println(c.out, render.AlertStyle, "Invalid input or tile index. Try again.")
	case protocol.CmdGameOver:
		c.summary.Winner = msg.Payload
		if msg.Payload == "" {
			c.notice("Game over! The match is a draw.")
		} else {
			c.notice("Game over! The winner is: %s!", msg.Payload)
		}
	case protocol.CmdScore:
		n, err := msg.Int()
		if err != nil {
			return err
		}
		c.summary.Score = n
		c.finished = true
		c.notice("You scored: %d points!", n)
	default:
		return fmt.Errorf("%w%s", consts.ErrorsUnknownCommand, msg.Command)
	}
	return nil
}

func (c *Client) removeTile(t tile.Tile) {
	for i, held := range c.tiles {
		if held.Same(t) {
			c.tiles = append(c.tiles[:i], c.tiles[i+1:]...)
			return
		}
	}
}

func (c *Client) reply(line string) error {
	if err := c.conn.WriteLine(line); err != nil {
		return fmt.Errorf("connection lost: %w", err)
	}
	return nil
}

func (c *Client) ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(c.out, render.PromptStyle.Paint(prompt))
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", consts.ErrorsChanClosed
	}
	return strings.TrimSpace(line), nil
}

func (c *Client) notice(format string, args ...interface{}) {
	render.Println(c.out, render.NoticeStyle, format, args...)
}

func (c *Client) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
