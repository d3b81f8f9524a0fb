package session_test

import (
	"bufio"
	"errors"
	"io"
	"net"
	"strings"
	"testing"

	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/game"
	"github.com/ratel-online/domino/domino/tile"
	"github.com/ratel-online/domino/network"
	"github.com/ratel-online/domino/session"
	"github.com/stretchr/testify/require"
)

// scriptedConn replays canned replies and records every line written.
type scriptedConn struct {
	name    string
	replies []string
	written []string
	closed  bool
	onRead  func()
}

func (c *scriptedConn) ReadLine() (string, error) {
	if c.onRead != nil {
		c.onRead()
	}
	if len(c.replies) == 0 {
		return "", io.EOF
	}
	reply := c.replies[0]
	c.replies = c.replies[1:]
	return reply, nil
}

func (c *scriptedConn) WriteLine(line string) error {
	if c.closed {
		return io.ErrClosedPipe
	}
	c.written = append(c.written, line)
	return nil
}

func (c *scriptedConn) RemoteAddr() string { return c.name }

func (c *scriptedConn) Close() error {
	c.closed = true
	return nil
}

func tiles(pairs ...int) tile.Tiles {
	ret := make(tile.Tiles, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		ret = append(ret, tile.New(pairs[i], pairs[i+1]))
	}
	return ret
}

func fixed(hand1, hand2 tile.Tiles, stock ...tile.Tile) session.Options {
	return session.Options{
		NewEngine: func(name1, name2 string) *game.Engine {
			return game.NewFromHands(name1, name2, hand1, hand2, game.NewStockOf(stock...))
		},
	}
}

func TestRunFullMatch(t *testing.T) {
	alice := &scriptedConn{name: "alice", replies: []string{"Alice", "x", "5", "0", "0"}}
	bob := &scriptedConn{name: "bob", replies: []string{"Bob", "1", "0"}}
	opts := fixed(tiles(3, 4, 2, 2), tiles(4, 4, 1, 1), tile.New(0, 5), tile.New(2, 3), tile.New(6, 6))

	result, err := session.New(alice, bob, opts).Run()
	require.NoError(t, err)
	require.Equal(t, "Alice", result.Winner.Name())
	require.Equal(t, 9, result.Points)
	require.True(t, result.Blocked)

	require.Equal(t, []string{
		"NAME_REQUEST",
		"WAIT_PLAYER2_NAME",
		"END_INIT Bob",
		// Alice opens; two bad indexes then 3:4.
		"OPPONENT_TILE_SIZE 2", "TURN", "STOCK_SIZE 3", "TILES [3:4, 2:2]", "BOARD []",
		"INDEX", "INVALID_INPUT", "INDEX", "INVALID_INPUT", "INDEX", "PLAYED 3:4",
		// Bob's turn.
		"OPPONENT_TILE_SIZE 2", "STOCK_SIZE 3", "TILES [2:2]", "BOARD [3:4]", "WAIT_OPPONENT_MOVE",
		"OPP_PLAYED 4:4",
		// Alice is blocked and draws until 2:3 fits.
		"OPPONENT_TILE_SIZE 1", "TURN", "STOCK_SIZE 3", "TILES [2:2]", "BOARD [3:4, 4:4]",
		"NO_AVAILABLE_MOVES", "DRAW 0:5", "DRAW 2:3", "PLAYED 2:3",
		// Bob draws the last tile and passes.
		"OPPONENT_TILE_SIZE 1", "STOCK_SIZE 1", "TILES [2:2, 0:5]", "BOARD [2:3, 3:4, 4:4]", "WAIT_OPPONENT_MOVE",
		"OPPONENT_DRAW", "OPP_PASS",
		// The pass hands the turn back to Alice.
		"OPPONENT_TILE_SIZE 2", "TURN", "STOCK_SIZE 0", "TILES [2:2, 0:5]", "BOARD [2:3, 3:4, 4:4]",
		"INDEX", "PLAYED 2:2",
		"GAME_OVER Alice", "SCORE 9",
	}, alice.written)

	require.Equal(t, []string{
		"WAIT_PLAYER1_NAME",
		"NAME_REQUEST",
		"END_INIT Alice",
		"OPPONENT_TILE_SIZE 2", "STOCK_SIZE 3", "TILES [4:4, 1:1]", "BOARD []", "WAIT_OPPONENT_MOVE",
		"OPP_PLAYED 3:4",
		"OPPONENT_TILE_SIZE 1", "TURN", "STOCK_SIZE 3", "TILES [4:4, 1:1]", "BOARD [3:4]",
		"INDEX", "INVALID_MOVE", "INDEX", "PLAYED 4:4",
		"OPPONENT_TILE_SIZE 1", "STOCK_SIZE 3", "TILES [1:1]", "BOARD [3:4, 4:4]", "WAIT_OPPONENT_MOVE",
		"OPPONENT_DRAW", "OPPONENT_DRAW", "OPP_PLAYED 2:3",
		"OPPONENT_TILE_SIZE 2", "TURN", "STOCK_SIZE 1", "TILES [1:1]", "BOARD [2:3, 3:4, 4:4]",
		"NO_AVAILABLE_MOVES", "DRAW 6:6", "PASS",
		"OPPONENT_TILE_SIZE 2", "STOCK_SIZE 0", "TILES [1:1, 6:6]", "BOARD [2:3, 3:4, 4:4]", "WAIT_OPPONENT_MOVE",
		"OPP_PLAYED 2:2",
		"GAME_OVER Alice", "SCORE 0",
	}, bob.written)

	require.True(t, alice.closed)
	require.True(t, bob.closed)
}

func TestRunDominoScoresOpponentPips(t *testing.T) {
	alice := &scriptedConn{name: "alice", replies: []string{"Alice", "0"}}
	bob := &scriptedConn{name: "bob", replies: []string{"Bob"}}
	opts := fixed(tiles(3, 4), tiles(1, 1, 5, 5))

	result, err := session.New(alice, bob, opts).Run()
	require.NoError(t, err)
	require.Equal(t, "Alice", result.Winner.Name())
	require.Equal(t, 12, result.Points)
	require.Equal(t, []string{"GAME_OVER Alice", "SCORE 12"}, alice.written[len(alice.written)-2:])
	require.Equal(t, []string{"GAME_OVER Alice", "SCORE 0"}, bob.written[len(bob.written)-2:])
}

func TestRunEqualSumsIsADraw(t *testing.T) {
	alice := &scriptedConn{name: "alice", replies: []string{"Alice", "0"}}
	bob := &scriptedConn{name: "bob", replies: []string{"Bob"}}
	opts := fixed(tiles(3, 4, 2, 2), tiles(1, 1, 2, 0))

	result, err := session.New(alice, bob, opts).Run()
	require.NoError(t, err)
	require.True(t, result.Draw())
	require.Equal(t, []string{"GAME_OVER", "SCORE 0"}, alice.written[len(alice.written)-2:])
	require.Equal(t, []string{"GAME_OVER", "SCORE 0"}, bob.written[len(bob.written)-2:])
}

func TestRunBlankNamesFallBack(t *testing.T) {
	alice := &scriptedConn{name: "alice", replies: []string{"  ", "0"}}
	bob := &scriptedConn{name: "bob", replies: []string{""}}
	opts := fixed(tiles(3, 4), tiles(1, 1))
	opts.DefaultNames = [2]string{"North", "South"}

	s := session.New(alice, bob, opts)
	result, err := s.Run()
	require.NoError(t, err)
	require.Equal(t, [2]string{"North", "South"}, s.Names())
	require.Equal(t, "North", result.Winner.Name())
	require.Contains(t, alice.written, "END_INIT South")
	require.Contains(t, bob.written, "END_INIT North")
}

func TestRunTransportLoss(t *testing.T) {
	t.Run("read_failure", func(t *testing.T) {
		alice := &scriptedConn{name: "alice", replies: []string{"Alice"}}
		bob := &scriptedConn{name: "bob", replies: []string{"Bob"}}
		opts := fixed(tiles(3, 4, 2, 2), tiles(4, 4))

		s := session.New(alice, bob, opts)
		_, err := s.Run()
		require.Error(t, err)
		var transportErr *session.TransportError
		require.True(t, errors.As(err, &transportErr))
		require.Equal(t, "Alice", transportErr.Player)
		require.Equal(t, "read", transportErr.Op)
		require.True(t, errors.Is(err, io.EOF))
		require.Equal(t, consts.StateTurn, s.State())
		require.True(t, alice.closed)
		require.True(t, bob.closed)
	})

	t.Run("lost_before_naming", func(t *testing.T) {
		alice := &scriptedConn{name: "alice"}
		bob := &scriptedConn{name: "bob"}
		_, err := session.New(alice, bob, session.Options{}).Run()
		var transportErr *session.TransportError
		require.True(t, errors.As(err, &transportErr))
		require.Equal(t, "alice", transportErr.Player)
	})

	t.Run("write_failure", func(t *testing.T) {
		alice := &scriptedConn{name: "alice"}
		bob := &scriptedConn{name: "bob", closed: true}
		_, err := session.New(alice, bob, session.Options{}).Run()
		var transportErr *session.TransportError
		require.True(t, errors.As(err, &transportErr))
		require.Equal(t, "write", transportErr.Op)
		require.Equal(t, "bob", transportErr.Player)
	})

	t.Run("over_long_line", func(t *testing.T) {
		server, peer := net.Pipe()
		defer peer.Close()
		go func() {
			if _, err := bufio.NewReader(peer).ReadString('\n'); err != nil {
				return
			}
			_, _ = peer.Write([]byte(strings.Repeat("A", consts.MaxLineLength+1) + "\n"))
		}()
		bob := &scriptedConn{name: "bob"}

		_, err := session.New(network.NewTcpConn(server), bob, session.Options{}).Run()
		var transportErr *session.TransportError
		require.True(t, errors.As(err, &transportErr))
		require.Equal(t, "read", transportErr.Op)
		require.True(t, errors.Is(err, bufio.ErrTooLong))
		require.True(t, bob.closed)
	})
}

func TestRunDealsFromStockSource(t *testing.T) {
	alice := &scriptedConn{name: "alice", replies: []string{"Alice"}}
	bob := &scriptedConn{name: "bob", replies: []string{"Bob"}}
	s := session.New(alice, bob, session.Options{NewStock: game.StockSource(3)})
	_, err := s.Run()
	require.Error(t, err)

	e := s.Engine()
	require.NotNil(t, e)
	require.Equal(t, 28, e.Total())
	require.Equal(t, 7, e.Player(0).Hand().Size())
	require.Equal(t, 7, e.Player(1).Hand().Size())
	require.Contains(t, alice.written, "STOCK_SIZE 14")
}

func TestRegistry(t *testing.T) {
	alice := &scriptedConn{name: "alice", replies: []string{"Alice", "0"}}
	bob := &scriptedConn{name: "bob", replies: []string{"Bob"}}
	s := session.New(alice, bob, fixed(tiles(3, 4), tiles(1, 1)))

	var seen []*session.Session
	alice.onRead = func() {
		if seen == nil {
			seen = session.Active()
		}
	}
	_, err := s.Run()
	require.NoError(t, err)
	require.Contains(t, seen, s)
	require.NotContains(t, session.Active(), s)
	require.Nil(t, session.Get(s.ID))
}
