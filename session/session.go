package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/game"
	"github.com/ratel-online/domino/network"
	"github.com/ratel-online/domino/protocol"
)

// State is one phase of a match. Next returns the following phase, or
// zero when the match is finished.
type State interface {
	Next(s *Session) (consts.StateID, error)
}

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateHandshake, &handshake{})
	register(consts.StateTurn, &turn{})
	register(consts.StateGameOver, &gameOver{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type Options struct {
	// DefaultNames replace blank names typed by the participants.
	DefaultNames [consts.Players]string
	// NewStock supplies the shuffled stock for the match.
	NewStock func() *game.Stock
	// NewEngine overrides dealing entirely; used for fixed scenarios.
	NewEngine func(name1, name2 string) *game.Engine
}

// Session drives one match between two connections. Only the current
// participant's connection is read; everything runs on the caller's
// goroutine.
type Session struct {
	ID        string
	StartedAt time.Time

	conns  [consts.Players]network.Conn
	names  [consts.Players]string
	opts   Options
	engine *game.Engine
	result game.Result
	state  consts.StateID
}

func New(first, second network.Conn, opts Options) *Session {
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
	return &Session{
		ID:    uuid.NewString(),
		conns: [consts.Players]network.Conn{first, second},
		opts:  opts,
		state: consts.StateHandshake,
	}
}

// Run plays the match to the end and closes both connections. A
// *TransportError is returned when either participant is lost.
func (s *Session) Run() (game.Result, error) {
	s.StartedAt = time.Now()
	registerSession(s)
	defer unregisterSession(s)
	defer s.close()

	log.Infof("match %s started: %s vs %s\n", s.ID, s.conns[0].RemoteAddr(), s.conns[1].RemoteAddr())
	for s.state > 0 {
		next, err := states[s.state].Next(s)
		if err != nil {
			log.Errorf("match %s aborted in %s: %v\n", s.ID, consts.States[s.state], err)
			return game.Result{}, err
		}
		s.state = next
	}
	log.Infof("match %s finished: %s\n", s.ID, s.describe())
	return s.result, nil
}

func (s *Session) Names() [consts.Players]string {
	return s.names
}

// Engine is nil until both names are known.
func (s *Session) Engine() *game.Engine {
	return s.engine
}

func (s *Session) State() consts.StateID {
	return s.state
}

func (s *Session) describe() string {
	if s.result.Draw() {
		return "draw"
	}
	return fmt.Sprintf("%s wins %d", s.result.Winner.Name(), s.result.Points)
}

func (s *Session) participant(seat int) string {
	if s.names[seat] != "" {
		return s.names[seat]
	}
	return s.conns[seat].RemoteAddr()
}

func (s *Session) send(seat int, msgs ...protocol.Message) error {
	for _, msg := range msgs {
		if err := s.conns[seat].WriteLine(msg.String()); err != nil {
			return &TransportError{Player: s.participant(seat), Op: "write", Err: err}
		}
	}
	return nil
}

func (s *Session) read(seat int) (string, error) {
	line, err := s.conns[seat].ReadLine()
	if err != nil {
		return "", &TransportError{Player: s.participant(seat), Op: "read", Err: err}
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) close() {
	for _, conn := range s.conns {
		if err := conn.Close(); err != nil {
			log.Error(err)
		}
	}
}
