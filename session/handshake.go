package session

import (
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/protocol"
)

type handshake struct{}

// Next collects both names, first participant first, then deals.
func (*handshake) Next(s *Session) (consts.StateID, error) {
	if err := s.send(1, protocol.Bare(protocol.CmdWaitPlayer1Name)); err != nil {
		return 0, err
	}
	if err := s.askName(0); err != nil {
		return 0, err
	}
	if err := s.send(0, protocol.Bare(protocol.CmdWaitPlayer2Name)); err != nil {
		return 0, err
	}
	if err := s.askName(1); err != nil {
		return 0, err
	}
	s.engine = s.opts.NewEngine(s.names[0], s.names[1])
	if err := s.send(0, protocol.WithText(protocol.CmdEndInit, s.names[1])); err != nil {
		return 0, err
	}
	if err := s.send(1, protocol.WithText(protocol.CmdEndInit, s.names[0])); err != nil {
		return 0, err
	}
	return consts.StateTurn, nil
}

func (s *Session) askName(seat int) error {
	if err := s.send(seat, protocol.Bare(protocol.CmdNameRequest)); err != nil {
		return err
	}
	name, err := s.read(seat)
	if err != nil {
		return err
	}
	if name == "" {
		name = s.opts.DefaultNames[seat]
	}
	s.names[seat] = name
	return nil
}
