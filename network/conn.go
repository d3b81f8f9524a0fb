package network

import (
	"bufio"
	"io"
	"net"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/domino/consts"
)

// Conn is one participant's line-oriented byte stream.
type Conn interface {
	ReadLine() (string, error)
	WriteLine(line string) error
	RemoteAddr() string
	Close() error
}

type tcpConn struct {
	conn    net.Conn
	scanner *bufio.Scanner
}

// NewTcpConn reads lines that fit in consts.MaxLineLength bytes with
// their terminator; a longer line fails with bufio.ErrTooLong.
func NewTcpConn(conn net.Conn) Conn {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 256), consts.MaxLineLength)
	return &tcpConn{conn: conn, scanner: scanner}
}

func (c *tcpConn) ReadLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return trimLine(c.scanner.Text()), nil
}

func (c *tcpConn) WriteLine(line string) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(consts.WriteTimeout)); err != nil {
		return err
	}
	_, err := c.conn.Write([]byte(line + "\n"))
	return err
}

func (c *tcpConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *tcpConn) Close() error {
	return c.conn.Close()
}

// wsConn carries one line per text frame.
type wsConn struct {
	conn *websocket.Conn
}

func NewWebsocketConn(conn *websocket.Conn) Conn {
	conn.SetReadLimit(consts.MaxLineLength)
	return &wsConn{conn: conn}
}

func (c *wsConn) ReadLine() (string, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	return trimLine(string(data)), nil
}

func (c *wsConn) WriteLine(line string) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(consts.WriteTimeout)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, []byte(line))
}

func (c *wsConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

func trimLine(line string) string {
	return strings.TrimRight(line, "\r\n")
}
