package network

import (
	"github.com/ratel-online/core/log"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

func handle(conn Conn, lobby *Lobby) {
	log.Infof("new player connected from %s\n", conn.RemoteAddr())
	if err := lobby.Join(conn); err != nil {
		log.Error(err)
		_ = conn.Close()
	}
}
