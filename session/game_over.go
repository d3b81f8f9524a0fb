package session

import (
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/protocol"
)

type gameOver struct{}

// Next settles the match and tells each participant the winner and
// their own score. A drawn match sends GAME_OVER with no name.
func (*gameOver) Next(s *Session) (consts.StateID, error) {
	s.result = s.engine.Settle()
	winner := ""
	if !s.result.Draw() {
		winner = s.result.Winner.Name()
	}
	for seat, player := range s.engine.Players() {
		err := s.send(seat,
			protocol.WithText(protocol.CmdGameOver, winner),
			protocol.WithInt(protocol.CmdScore, player.Score()),
		)
		if err != nil {
			return 0, err
		}
	}
	return 0, nil
}
