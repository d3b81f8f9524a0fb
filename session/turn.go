package session

import (
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/game"
	"github.com/ratel-online/domino/protocol"
)

type turn struct{}

// Next plays exactly one turn of the current participant.
func (*turn) Next(s *Session) (consts.StateID, error) {
	e := s.engine
	if e.IsGameOver() {
		return consts.StateGameOver, nil
	}
	current, opponent := e.CurrentSeat(), 1-e.CurrentSeat()
	if err := s.announce(current, opponent); err != nil {
		return 0, err
	}

	validMove := false
	for !validMove && !e.IsGameOver() {
		if !e.CanPlay() {
			passed, err := s.drawUntilPlayed(current, opponent)
			if err != nil {
				return 0, err
			}
			if passed {
				break
			}
			validMove = true
			continue
		}
		played, err := s.askMove(current, opponent)
		if err != nil {
			return 0, err
		}
		validMove = played
	}
	if e.IsGameOver() {
		return consts.StateGameOver, nil
	}
	return consts.StateTurn, nil
}

func (s *Session) announce(current, opponent int) error {
	e := s.engine
	line := e.Line()
	err := s.send(current,
		protocol.WithInt(protocol.CmdOpponentTileSize, e.Player(opponent).Hand().Size()),
		protocol.Bare(protocol.CmdTurn),
		protocol.WithInt(protocol.CmdStockSize, e.StockSize()),
		protocol.WithTiles(protocol.CmdTiles, e.Player(current).Tiles()),
		protocol.WithTiles(protocol.CmdBoard, line),
	)
	if err != nil {
		return err
	}
	return s.send(opponent,
		protocol.WithInt(protocol.CmdOpponentTileSize, e.Player(current).Hand().Size()),
		protocol.WithInt(protocol.CmdStockSize, e.StockSize()),
		protocol.WithTiles(protocol.CmdTiles, e.Player(opponent).Tiles()),
		protocol.WithTiles(protocol.CmdBoard, line),
		protocol.Bare(protocol.CmdWaitOpponentMove),
	)
}

// drawUntilPlayed draws for a blocked participant and offers each drawn
// tile to the line. It reports passed when the stock ran out first, in
// which case the turn has moved to the opponent.
func (s *Session) drawUntilPlayed(current, opponent int) (passed bool, err error) {
	e := s.engine
	if err := s.send(current, protocol.Bare(protocol.CmdNoAvailableMoves)); err != nil {
		return false, err
	}
	for {
		drawn, ok := e.DrawTile()
		if !ok {
			break
		}
		if err := s.send(current, protocol.WithTile(protocol.CmdDraw, drawn)); err != nil {
			return false, err
		}
		if err := s.send(opponent, protocol.Bare(protocol.CmdOpponentDraw)); err != nil {
			return false, err
		}
		if placement, err := e.PlayTile(drawn); err == nil {
			return false, s.reportPlayed(current, opponent, placement)
		}
	}
	if err := s.send(current, protocol.Bare(protocol.CmdPass)); err != nil {
		return false, err
	}
	if err := s.send(opponent, protocol.Bare(protocol.CmdOppPass)); err != nil {
		return false, err
	}
	e.Pass()
	return true, nil
}

// askMove prompts for a tile index. Bad input and misfits are reported
// to the same participant, who keeps the turn.
func (s *Session) askMove(current, opponent int) (played bool, err error) {
	e := s.engine
	if err := s.send(current, protocol.Bare(protocol.CmdIndex)); err != nil {
		return false, err
	}
	line, err := s.read(current)
	if err != nil {
		return false, err
	}
	index, err := protocol.ParseIndex(line)
	if err != nil {
		return false, s.send(current, protocol.Bare(protocol.CmdInvalidInput))
	}
	chosen, err := e.TileAt(index)
	if err != nil {
		return false, s.send(current, protocol.Bare(protocol.CmdInvalidInput))
	}
	placement, err := e.PlayTile(chosen)
	if err != nil {
		return false, s.send(current, protocol.Bare(protocol.CmdInvalidMove))
	}
	return true, s.reportPlayed(current, opponent, placement)
}

func (s *Session) reportPlayed(current, opponent int, placement game.Placement) error {
	if err := s.send(current, protocol.WithTile(protocol.CmdPlayed, placement.Face)); err != nil {
		return err
	}
	return s.send(opponent, protocol.WithTile(protocol.CmdOppPlayed, placement.Face))
}
