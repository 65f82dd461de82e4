package combat

// distanceField runs a breadth-first search from origin over squares that
// are inside bounds and not blocked. The origin is always entered.
func distanceField(origin Position, blocked func(Position) bool, bounds Box) map[Position]int {
	dist := map[Position]int{origin: 0}
	queue := []Position{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Adjacent() {
			if _, seen := dist[n]; seen {
				continue
			}
			if !bounds.Contains(n) || blocked(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// ShortestPath returns the squares from start to end inclusive, or nil when
// end cannot be reached. Neither start nor end is treated as blocked.
// Among equally short paths every step goes to the neighbour that comes
// first in reading order.
func ShortestPath(start, end Position, blocked func(Position) bool, bounds Box) []Position {
	if start == end {
		return []Position{start}
	}
	// search backwards so the distance to end is known for every square
	// the walk from start can visit
	fromEnd := distanceField(end, func(p Position) bool { return p != start && blocked(p) }, bounds)
	d, ok := fromEnd[start]
	if !ok {
		return nil
	}
	path := make([]Position, 0, d+1)
	path = append(path, start)
	cur := start
	for cur != end {
		for _, n := range cur.Adjacent() {
			if nd, ok := fromEnd[n]; ok && nd == fromEnd[cur]-1 {
				cur = n
				break
			}
		}
		path = append(path, cur)
	}
	return path
}

// ShortestPath between two squares on the current board. Walls and living
// units other than the one at start are obstacles.
func (b *Battlefield) ShortestPath(start, end Position) []Position {
	return ShortestPath(start, end, b.blocked, b.searchBounds())
}

func (b *Battlefield) searchBounds() Box { return b.Area().Grow(1) }

// inRangeSquares lists the free squares next to any living unit of faction f.
func (b *Battlefield) inRangeSquares(f Faction) []Position {
	seen := map[Position]struct{}{}
	var out []Position
	for p := range b.units[f] {
		for _, n := range p.Adjacent() {
			if _, ok := seen[n]; ok || !b.IsFree(n) {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	SortReadingOrder(out)
	return out
}

// chooseDestination picks the in-range square reachable in the fewest
// steps from u; ties go to the square first in reading order.
func (b *Battlefield) chooseDestination(u *Unit, bounds Box) (Position, bool) {
	candidates := b.inRangeSquares(u.Faction.Enemy())
	if len(candidates) == 0 {
		return Position{}, false
	}
	dist := distanceField(u.Pos, b.blocked, bounds)
	best, bestDist, found := Position{}, 0, false
	for _, c := range candidates {
		d, ok := dist[c]
		if !ok {
			continue
		}
		// candidates are sorted, so strict < keeps the first in reading order
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// nextStep is the square u moves to this turn, if any.
func (b *Battlefield) nextStep(u *Unit) (Position, bool) {
	bounds := b.searchBounds()
	dest, ok := b.chooseDestination(u, bounds)
	if !ok {
		return Position{}, false
	}
	path := ShortestPath(u.Pos, dest, b.blocked, bounds)
	if len(path) < 2 {
		return Position{}, false
	}
	return path[1], true
}
