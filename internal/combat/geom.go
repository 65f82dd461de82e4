package combat

import (
	"fmt"
	"math"
	"sort"
)

// Position is a square on the cave grid. X grows to the right, Y grows down.
type Position struct{ X, Y int }

func Pos(x, y int) Position { return Position{X: x, Y: y} }

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Compare orders positions in reading order: top to bottom, then left to right.
func (p Position) Compare(o Position) int {
	switch {
	case p.Y < o.Y:
		return -1
	case p.Y > o.Y:
		return 1
	case p.X < o.X:
		return -1
	case p.X > o.X:
		return 1
	}
	return 0
}

func (p Position) Less(o Position) bool { return p.Compare(o) < 0 }

func (p Position) North() (Position, bool) {
	if p.Y == math.MinInt {
		return p, false
	}
	return Position{p.X, p.Y - 1}, true
}

func (p Position) South() (Position, bool) {
	if p.Y == math.MaxInt {
		return p, false
	}
	return Position{p.X, p.Y + 1}, true
}

func (p Position) East() (Position, bool) {
	if p.X == math.MaxInt {
		return p, false
	}
	return Position{p.X + 1, p.Y}, true
}

func (p Position) West() (Position, bool) {
	if p.X == math.MinInt {
		return p, false
	}
	return Position{p.X - 1, p.Y}, true
}

// Adjacent returns the orthogonal neighbours in reading order.
func (p Position) Adjacent() []Position {
	out := make([]Position, 0, 4)
	for _, step := range [...]func() (Position, bool){p.North, p.West, p.East, p.South} {
		if n, ok := step(); ok {
			out = append(out, n)
		}
	}
	return out
}

func ManhattanDistance(a, b Position) int {
	return absDiff(a.X, b.X) + absDiff(a.Y, b.Y)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func SortReadingOrder(ps []Position) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}

// Box is an inclusive rectangle of squares.
type Box struct{ Min, Max Position }

func (b Box) Contains(p Position) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b Box) Grow(n int) Box {
	if b.Empty() {
		return b
	}
	return Box{Min: Position{b.Min.X - n, b.Min.Y - n}, Max: Position{b.Max.X + n, b.Max.Y + n}}
}

func (b Box) Empty() bool { return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y }

// Extend grows b just enough to contain p.
func (b Box) Extend(p Position) Box {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	return b
}

// emptyBox contains nothing; Extend on it yields the one-square box.
func emptyBox() Box {
	return Box{Min: Position{math.MaxInt, math.MaxInt}, Max: Position{math.MinInt, math.MinInt}}
}

func boundingBox(ps []Position) Box {
	b := emptyBox()
	for _, p := range ps {
		b = b.Extend(p)
	}
	return b
}
