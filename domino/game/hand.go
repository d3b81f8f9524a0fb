package game

import (
	"github.com/ratel-online/domino/domino/tile"
)

// Hand keeps tiles in the order they were received so that indexes
// shown to a participant stay stable until a tile leaves the hand.
type Hand struct {
	tiles tile.Tiles
}

func NewHand() *Hand {
	return &Hand{tiles: make(tile.Tiles, 0, 7)}
}

func (h *Hand) AddTiles(tiles ...tile.Tile) {
	h.tiles = append(h.tiles, tiles...)
}

func (h *Hand) Tiles() tile.Tiles {
	tiles := make(tile.Tiles, len(h.tiles))
	copy(tiles, h.tiles)
	return tiles
}

func (h *Hand) At(index int) (tile.Tile, bool) {
	if index < 0 || index >= len(h.tiles) {
		return tile.Tile{}, false
	}
	return h.tiles[index], true
}

func (h *Hand) Contains(t tile.Tile) bool {
	return h.indexOf(t) >= 0
}

func (h *Hand) Empty() bool {
	return len(h.tiles) == 0
}

// PlayableTiles returns the tiles line accepts, in hand order.
func (h *Hand) PlayableTiles(line *Line) tile.Tiles {
	var playable tile.Tiles
	for _, candidate := range h.tiles {
		if line.Accepts(candidate) {
			playable = append(playable, candidate)
		}
	}
	return playable
}

func (h *Hand) Pips() int {
	return h.tiles.Pips()
}

// RemoveTile drops one tile equal to t in either orientation.
func (h *Hand) RemoveTile(t tile.Tile) bool {
	index := h.indexOf(t)
	if index < 0 {
		return false
	}
	h.tiles = append(h.tiles[:index], h.tiles[index+1:]...)
	return true
}

func (h *Hand) Size() int {
	return len(h.tiles)
}

func (h *Hand) indexOf(t tile.Tile) int {
	for index, tileInHand := range h.tiles {
		if tileInHand.Same(t) {
			return index
		}
	}
	return -1
}
