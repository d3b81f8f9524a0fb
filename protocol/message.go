package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/tile"
)

// Message is one wire line: a keyword optionally followed by a single
// space and a payload running to the end of the line.
type Message struct {
	Command Command
	Payload string
}

func Bare(command Command) Message {
	return Message{Command: command}
}

func WithText(command Command, text string) Message {
	return Message{Command: command, Payload: text}
}

func WithInt(command Command, n int) Message {
	return Message{Command: command, Payload: strconv.Itoa(n)}
}

func WithTile(command Command, t tile.Tile) Message {
	return Message{Command: command, Payload: t.String()}
}

func WithTiles(command Command, ts tile.Tiles) Message {
	return Message{Command: command, Payload: ts.String()}
}

// String is the encoded line without its terminator.
func (m Message) String() string {
	if m.Payload == "" {
		return m.Command.String()
	}
	return m.Command.String() + " " + m.Payload
}

func (m Message) Int() (int, error) {
	return strconv.Atoi(m.Payload)
}

func (m Message) Tile() (tile.Tile, error) {
	return tile.Parse(m.Payload)
}

func (m Message) Tiles() (tile.Tiles, error) {
	return tile.ParseList(m.Payload)
}

// Decode splits a line at its first space and resolves the keyword.
func Decode(line string) (Message, error) {
	line = strings.TrimRight(line, "\r\n")
	keyword, payload := line, ""
	if i := strings.Index(line, " "); i >= 0 {
		keyword, payload = line[:i], line[i+1:]
	}
	command, ok := commands[keyword]
	if !ok {
		return Message{}, fmt.Errorf("%w%q", consts.ErrorsUnknownCommand, keyword)
	}
	return Message{Command: command, Payload: payload}, nil
}

// ParseIndex reads a participant's reply to INDEX.
func ParseIndex(line string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, consts.ErrorsInputInvalid
	}
	return index, nil
}
