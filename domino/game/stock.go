package game

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/ratel-online/domino/domino/tile"
)

// Stock is the undealt pool. It only ever shrinks.
type Stock struct {
	tiles tile.Tiles
}

// NewStock returns a full double-six set shuffled with rng. A nil rng
// falls back to a time-seeded source.
func NewStock(rng *rand.Rand) *Stock {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	tiles := tile.Set()
	shuffleTiles(rng, tiles)
	return &Stock{tiles: tiles}
}

// NewStockOf keeps the given order; the first tile is drawn first.
func NewStockOf(tiles ...tile.Tile) *Stock {
	stock := &Stock{tiles: make(tile.Tiles, len(tiles))}
	copy(stock.tiles, tiles)
	return stock
}

func (s *Stock) Draw() (tile.Tile, bool) {
	if len(s.tiles) == 0 {
		return tile.Tile{}, false
	}
	t := s.tiles[0]
	s.tiles = s.tiles[1:]
	return t, true
}

func (s *Stock) Size() int {
	return len(s.tiles)
}

func (s *Stock) Empty() bool {
	return len(s.tiles) == 0
}

func (s *Stock) Tiles() tile.Tiles {
	tiles := make(tile.Tiles, len(s.tiles))
	copy(tiles, s.tiles)
	return tiles
}

// StockSource yields a fresh shuffled stock per call. A zero seed uses
// the clock; any other seed makes the n-th stock reproducible. Each
// stock gets its own source so matches may shuffle concurrently.
func StockSource(seed int64) func() *Stock {
	var n int64
	return func() *Stock {
		if seed == 0 {
			return NewStock(nil)
		}
		next := atomic.AddInt64(&n, 1)
		return NewStock(rand.New(rand.NewSource(seed + next)))
	}
}

func shuffleTiles(rng *rand.Rand, tiles tile.Tiles) {
	rng.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
}
