package game

import (
	"github.com/ratel-online/domino/consts"
	"github.com/ratel-online/domino/domino/tile"
)

// Engine owns the stock, both players and the line of play for one
// match. It is not safe for concurrent use; a match drives it from a
// single goroutine.
type Engine struct {
	stock   *Stock
	players [consts.Players]*Player
	current int
	line    *Line
	result  *Result
}

// New seats two players and deals consts.HandSize tiles to each,
// alternating from the top of stock. The first player moves first.
func New(name1, name2 string, stock *Stock) *Engine {
	e := NewFromHands(name1, name2, nil, nil, stock)
	e.deal(consts.HandSize)
	return e
}

// NewFromHands seats two players holding exactly the given tiles, with
// stock as the remaining pool. Nothing is dealt.
func NewFromHands(name1, name2 string, hand1, hand2 tile.Tiles, stock *Stock) *Engine {
	e := &Engine{
		stock:   stock,
		players: [consts.Players]*Player{NewPlayer(name1), NewPlayer(name2)},
		line:    NewLine(),
	}
	e.players[0].hand.AddTiles(hand1...)
	e.players[1].hand.AddTiles(hand2...)
	return e
}

func (e *Engine) deal(amount int) {
	for i := 0; i < amount; i++ {
		for _, player := range e.players {
			if t, ok := e.stock.Draw(); ok {
				player.hand.AddTiles(t)
			}
		}
	}
}

func (e *Engine) Players() []*Player {
	return e.players[:]
}

func (e *Engine) Player(seat int) *Player {
	return e.players[seat]
}

func (e *Engine) Current() *Player {
	return e.players[e.current]
}

func (e *Engine) CurrentSeat() int {
	return e.current
}

func (e *Engine) Opponent() *Player {
	return e.players[1-e.current]
}

func (e *Engine) OpponentOf(player *Player) *Player {
	if player == e.players[0] {
		return e.players[1]
	}
	return e.players[0]
}

func (e *Engine) StockSize() int {
	return e.stock.Size()
}

func (e *Engine) Line() tile.Tiles {
	return e.line.Tiles()
}

// Ends returns the open values of the line; ok is false while it is empty.
func (e *Engine) Ends() (left, right int, ok bool) {
	return e.line.Ends()
}

// TileAt resolves a participant-supplied index into the current hand.
func (e *Engine) TileAt(index int) (tile.Tile, error) {
	t, ok := e.Current().hand.At(index)
	if !ok {
		return tile.Tile{}, consts.ErrorsInputInvalid
	}
	return t, nil
}

// PlayTile places t from the current player's hand and hands the turn
// over. A tile fitting neither end leaves every location untouched.
// Once either hand is empty no further tile is accepted.
func (e *Engine) PlayTile(t tile.Tile) (Placement, error) {
	if e.handEmpty() {
		return Placement{}, consts.ErrorsGameOver
	}
	player := e.Current()
	if !player.hand.Contains(t) {
		return Placement{}, consts.ErrorsTileNotInHand
	}
	placement, ok := e.line.Place(t)
	if !ok {
		return Placement{}, consts.ErrorsInvalidMove
	}
	player.hand.RemoveTile(t)
	e.switchPlayer()
	return placement, nil
}

// CanPlay reports whether the current player holds a tile for either
// end. Anything goes on an empty line.
func (e *Engine) CanPlay() bool {
	return e.line.Size() == 0 || len(e.Playable()) > 0
}

// Playable lists the current player's tiles that fit the line.
func (e *Engine) Playable() tile.Tiles {
	return e.Current().hand.PlayableTiles(e.line)
}

// DrawTile moves the top of the stock into the current hand. The turn
// does not change.
func (e *Engine) DrawTile() (tile.Tile, bool) {
	t, ok := e.stock.Draw()
	if ok {
		e.Current().hand.AddTiles(t)
	}
	return t, ok
}

// Pass ends a blocked turn with an empty stock; the opponent moves next.
func (e *Engine) Pass() {
	e.switchPlayer()
}

// IsGameOver holds once a hand is empty, or the stock is empty and the
// player about to move is blocked. The waiting player is not inspected.
func (e *Engine) IsGameOver() bool {
	return e.handEmpty() || (e.stock.Empty() && !e.CanPlay())
}

func (e *Engine) handEmpty() bool {
	for _, player := range e.players {
		if player.hand.Empty() {
			return true
		}
	}
	return false
}

// Total counts every tile across stock, hands and line.
func (e *Engine) Total() int {
	return e.stock.Size() + e.players[0].hand.Size() + e.players[1].hand.Size() + e.line.Size()
}

func (e *Engine) switchPlayer() {
	e.current = 1 - e.current
}

// ExtractState is the view of the match offered to player.
func (e *Engine) ExtractState(player *Player) State {
	opponent := e.OpponentOf(player)
	return State{
		PlayerName:    player.Name(),
		OpponentName:  opponent.Name(),
		Turn:          player == e.Current(),
		StockSize:     e.stock.Size(),
		OpponentTiles: opponent.hand.Size(),
		Hand:          player.Tiles(),
		Line:          e.line.Tiles(),
	}
}
