package network

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
)

type Websocket struct {
	addr  string
	path  string
	lobby *Lobby
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr, path string, lobby *Lobby) Websocket {
	return Websocket{addr: addr, path: path, lobby: lobby}
}

func (w Websocket) Serve() error {
	log.Infof("Websocket server listening on %s%s\n", w.addr, w.path)
	return http.ListenAndServe(w.addr, w.Handler())
}

func (w Websocket) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(w.path, w.serveWs)
	return mux
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	handle(NewWebsocketConn(conn), w.lobby)
}
