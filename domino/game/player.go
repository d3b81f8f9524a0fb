package game

import (
	"fmt"

	"github.com/ratel-online/domino/domino/tile"
)

type Player struct {
	name  string
	hand  *Hand
	score int
}

func NewPlayer(name string) *Player {
	return &Player{name: name, hand: NewHand()}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() *Hand {
	return p.hand
}

func (p *Player) Tiles() tile.Tiles {
	return p.hand.Tiles()
}

func (p *Player) Score() int {
	return p.score
}

func (p *Player) addScore(points int) {
	p.score += points
}

func (p *Player) String() string {
	return fmt.Sprintf("%s%s(%d)", p.name, p.hand.Tiles(), p.score)
}
