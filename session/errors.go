package session

import "fmt"

// TransportError is fatal to a match: a participant's connection could
// not be read or written.
type TransportError struct {
	Player string
	Op     string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("session transport: %s %s: %v", e.Op, e.Player, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
