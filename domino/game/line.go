package game

import (
	"github.com/ratel-online/domino/domino/tile"
)

type Side int

const (
	SideFirst Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "first"
	}
}

// Placement records how a hand tile landed on the line. Tile is the
// pip pair as held; Face is the same pair oriented for the line.
type Placement struct {
	Tile tile.Tile
	Face tile.Tile
	Side Side
}

// Line is the line of play. Faces are stored already oriented so that
// faces[i].B == faces[i+1].A for every adjacent pair.
type Line struct {
	faces tile.Tiles
}

func NewLine() *Line {
	return &Line{faces: make(tile.Tiles, 0, 28)}
}

// Ends returns the open values. ok is false on an empty line, where
// both values are the (0,0) sentinel.
func (l *Line) Ends() (left, right int, ok bool) {
	if len(l.faces) == 0 {
		return 0, 0, false
	}
	return l.faces[0].A, l.faces[len(l.faces)-1].B, true
}

// Accepts reports whether t can be placed at either end.
func (l *Line) Accepts(t tile.Tile) bool {
	left, right, ok := l.Ends()
	return !ok || t.Fits(left) || t.Fits(right)
}

// Place attaches t, checking the left end before the right end. The
// line is unchanged when t fits neither.
func (l *Line) Place(t tile.Tile) (Placement, bool) {
	left, right, ok := l.Ends()
	switch {
	case !ok:
		l.faces = append(l.faces, t)
		return Placement{Tile: t, Face: t, Side: SideFirst}, true
	case t.Fits(left):
		face := t
		if face.B != left {
			face = face.Flip()
		}
		l.faces = append(tile.Tiles{face}, l.faces...)
		return Placement{Tile: t, Face: face, Side: SideLeft}, true
	case t.Fits(right):
		face := t
		if face.A != right {
			face = face.Flip()
		}
		l.faces = append(l.faces, face)
		return Placement{Tile: t, Face: face, Side: SideRight}, true
	}
	return Placement{}, false
}

func (l *Line) Tiles() tile.Tiles {
	faces := make(tile.Tiles, len(l.faces))
	copy(faces, l.faces)
	return faces
}

func (l *Line) Size() int {
	return len(l.faces)
}

// Consistent reports whether every pair of touching values matches.
func (l *Line) Consistent() bool {
	for i := 1; i < len(l.faces); i++ {
		if l.faces[i-1].B != l.faces[i].A {
			return false
		}
	}
	return true
}
