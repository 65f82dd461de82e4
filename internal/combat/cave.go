package combat

import "strings"

type Tile int

const (
	Open Tile = iota
	Wall
)

func (t Tile) Symbol() byte {
	if t == Wall {
		return '#'
	}
	return '.'
}

// Cave is the static terrain. Any square that is not a wall is open.
type Cave struct {
	walls map[Position]struct{}
	area  Box
}

func NewCave(walls []Position) *Cave {
	c := &Cave{walls: make(map[Position]struct{}, len(walls))}
	for _, w := range walls {
		c.walls[w] = struct{}{}
	}
	c.area = boundingBox(walls)
	return c
}

func (c *Cave) Tile(p Position) Tile {
	if _, ok := c.walls[p]; ok {
		return Wall
	}
	return Open
}

func (c *Cave) Area() Box { return c.area }

func (c *Cave) String() string {
	var sb strings.Builder
	if c.area.Empty() {
		return ""
	}
	for y := c.area.Min.Y; y <= c.area.Max.Y; y++ {
		for x := c.area.Min.X; x <= c.area.Max.X; x++ {
			sb.WriteByte(c.Tile(Position{x, y}).Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
