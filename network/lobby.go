package network

import (
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/domino/protocol"
)

// StartFunc runs one match between two paired connections. It owns
// both connections from then on.
type StartFunc func(first, second Conn)

// Lobby pairs connections in arrival order. The first of a pair is
// told to wait; the second completes the pair and starts a match.
type Lobby struct {
	sync.Mutex
	waiting *parkedConn
	start   StartFunc
}

func NewLobby(start StartFunc) *Lobby {
	return &Lobby{start: start}
}

func (l *Lobby) Join(conn Conn) error {
	l.Lock()
	first := l.waiting
	if first == nil {
		defer l.Unlock()
		if err := conn.WriteLine(protocol.Bare(protocol.CmdWaitConnect).String()); err != nil {
			return err
		}
		l.waiting = park(conn)
		l.watch(l.waiting)
		return nil
	}
	l.waiting = nil
	l.Unlock()

	if err := first.WriteLine(protocol.Bare(protocol.CmdConnected).String()); err != nil {
		log.Infof("waiting player %s lost before pairing: %v\n", first.RemoteAddr(), err)
		_ = first.Close()
		return l.Join(conn)
	}
	log.Infof("paired %s with %s\n", first.RemoteAddr(), conn.RemoteAddr())
	async.Async(func() {
		l.start(first, conn)
	})
	return nil
}

// Waiting reports whether a connection is parked for a partner.
func (l *Lobby) Waiting() bool {
	l.Lock()
	defer l.Unlock()
	return l.waiting != nil
}

// watch reads once from a parked connection. A parked participant has
// nothing to say before NAME_REQUEST, so a failed read means it hung up.
func (l *Lobby) watch(p *parkedConn) {
	async.Async(func() {
		line, err := p.Conn.ReadLine()
		p.first <- readResult{line: line, err: err}
		if err != nil {
			l.leave(p, err)
		}
	})
}

func (l *Lobby) leave(p *parkedConn, err error) {
	l.Lock()
	defer l.Unlock()
	if l.waiting != p {
		return
	}
	l.waiting = nil
	log.Infof("waiting player %s left: %v\n", p.RemoteAddr(), err)
	_ = p.Close()
}

type readResult struct {
	line string
	err  error
}

// parkedConn replays the watcher's read before reading the connection
// again, so nothing typed while waiting is lost.
type parkedConn struct {
	Conn
	first   chan readResult
	drained bool
}

func park(conn Conn) *parkedConn {
	return &parkedConn{Conn: conn, first: make(chan readResult, 1)}
}

func (p *parkedConn) ReadLine() (string, error) {
	if !p.drained {
		p.drained = true
		r := <-p.first
		return r.line, r.err
	}
	return p.Conn.ReadLine()
}
