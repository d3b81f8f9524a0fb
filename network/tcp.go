package network

import (
	"errors"
	"net"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

type Tcp struct {
	addr  string
	lobby *Lobby
}

func NewTcpServer(addr string, lobby *Lobby) Tcp {
	return Tcp{addr: addr, lobby: lobby}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("Tcp server listening on %s\n", t.addr)
	return t.ServeListener(listener)
}

// ServeListener accepts until the listener is closed.
func (t Tcp) ServeListener(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Infof("listener.Accept err %v\n", err)
			continue
		}
		async.Async(func() {
			handle(NewTcpConn(conn), t.lobby)
		})
	}
}
