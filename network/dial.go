package network

import (
	"net"
	"strings"

	"github.com/gorilla/websocket"
)

// Dial connects a participant to a server. Addresses starting with
// ws:// or wss:// go through the websocket transport, anything else is
// a TCP host:port.
func Dial(addr string) (Conn, error) {
	if strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://") {
		conn, _, err := websocket.DefaultDialer.Dial(addr, nil)
		if err != nil {
			return nil, err
		}
		return NewWebsocketConn(conn), nil
	}
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewTcpConn(conn), nil
}
