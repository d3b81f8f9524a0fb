package tile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/domino/consts"
)

// Tile is a pair of pip values. The zero value is the blank double [0:0].
type Tile struct {
	A int
	B int
}

func New(a, b int) Tile {
	return Tile{A: a, B: b}
}

// Fits reports whether either side shows value.
func (t Tile) Fits(value int) bool {
	return t.A == value || t.B == value
}

// Matches reports whether the two tiles share any pip value.
func (t Tile) Matches(other Tile) bool {
	return t.Fits(other.A) || t.Fits(other.B)
}

func (t Tile) Flip() Tile {
	return Tile{A: t.B, B: t.A}
}

func (t Tile) Pips() int {
	return t.A + t.B
}

// Same compares pip values ignoring orientation.
func (t Tile) Same(other Tile) bool {
	return t == other || t == other.Flip()
}

func (t Tile) Valid() bool {
	return t.A >= 0 && t.A <= consts.MaxPip && t.B >= 0 && t.B <= consts.MaxPip
}

func (t Tile) String() string {
	return fmt.Sprintf("%d:%d", t.A, t.B)
}

// Parse reads the "a:b" form.
func Parse(s string) (Tile, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return Tile{}, fmt.Errorf("%w%q", consts.ErrorsMalformedTile, s)
	}
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		return Tile{}, fmt.Errorf("%w%q", consts.ErrorsMalformedTile, s)
	}
	b, err := strconv.Atoi(parts[1])
	if err != nil {
		return Tile{}, fmt.Errorf("%w%q", consts.ErrorsMalformedTile, s)
	}
	t := New(a, b)
	if !t.Valid() {
		return Tile{}, fmt.Errorf("%w%q", consts.ErrorsMalformedTile, s)
	}
	return t, nil
}

type Tiles []Tile

// String renders "[a:b, c:d]"; an empty list renders "[]".
func (ts Tiles) String() string {
	ret := make([]string, 0, len(ts))
	for _, t := range ts {
		ret = append(ret, t.String())
	}
	return "[" + strings.Join(ret, ", ") + "]"
}

func (ts Tiles) Pips() int {
	sum := 0
	for _, t := range ts {
		sum += t.Pips()
	}
	return sum
}

// ParseList is the inverse of Tiles.String.
func ParseList(s string) (Tiles, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("%w%q", consts.ErrorsMalformedTile, s)
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return Tiles{}, nil
	}
	parts := strings.Split(body, ",")
	ret := make(Tiles, 0, len(parts))
	for _, part := range parts {
		t, err := Parse(part)
		if err != nil {
			return nil, err
		}
		ret = append(ret, t)
	}
	return ret, nil
}

// Set returns every tile of a double-six set, (i,j) with 0 <= j <= i <= MaxPip.
func Set() Tiles {
	ret := make(Tiles, 0, consts.StockSize)
	for i := 0; i <= consts.MaxPip; i++ {
		for j := 0; j <= i; j++ {
			ret = append(ret, New(i, j))
		}
	}
	return ret
}
