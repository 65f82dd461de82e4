package combat

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

var ErrInvariant = errors.New("battlefield invariant violated")

// Battlefield owns the cave, every living unit and the round counter.
type Battlefield struct {
	cave   *Cave
	units  [2]map[Position]*Unit // indexed by Faction
	rounds int
	rules  Rules
	idle   bool // nobody acted in the last round played

	emit func(Event)
	log  *zap.Logger
}

// NewBattlefield places fresh units at the given squares. Units get full
// hit points and ids in reading order of their start square.
func NewBattlefield(walls, elves, goblins []Position, rules Rules) (*Battlefield, error) {
	b := &Battlefield{
		cave:  NewCave(walls),
		rules: rules,
		log:   zap.NewNop(),
	}
	for f, starts := range [2][]Position{Elf: elves, Goblin: goblins} {
		faction := Faction(f)
		sorted := append([]Position(nil), starts...)
		SortReadingOrder(sorted)
		b.units[f] = make(map[Position]*Unit, len(sorted))
		for i, p := range sorted {
			if b.cave.Tile(p) == Wall {
				return nil, fmt.Errorf("%w: %s on wall at %s", ErrInvariant, faction, p)
			}
			if b.UnitAt(p) != nil {
				return nil, fmt.Errorf("%w: two units at %s", ErrInvariant, p)
			}
			b.units[f][p] = &Unit{ID: i + 1, Faction: faction, Pos: p, HP: rules.HitPoints, Power: rules.PowerOf(faction)}
		}
	}
	return b, nil
}

// Clone deep-copies the battlefield. The cave is immutable and shared.
func (b *Battlefield) Clone() *Battlefield {
	c := *b
	for f := range b.units {
		c.units[f] = make(map[Position]*Unit, len(b.units[f]))
		for p, u := range b.units[f] {
			cp := *u
			c.units[f][p] = &cp
		}
	}
	return &c
}

// WithElfPower returns a clone where every Elf hits with power.
func (b *Battlefield) WithElfPower(power int) *Battlefield {
	c := b.Clone()
	c.rules.ElfPower = power
	for _, u := range c.units[Elf] {
		u.Power = power
	}
	return c
}

func (b *Battlefield) Cave() *Cave         { return b.cave }
func (b *Battlefield) Rounds() int         { return b.rounds }
func (b *Battlefield) Rules() Rules        { return b.rules }
func (b *Battlefield) Count(f Faction) int { return len(b.units[f]) }

func (b *Battlefield) UnitAt(p Position) *Unit {
	if u, ok := b.units[Elf][p]; ok {
		return u
	}
	if u, ok := b.units[Goblin][p]; ok {
		return u
	}
	return nil
}

// Units of faction f in reading order.
func (b *Battlefield) Units(f Faction) []*Unit {
	out := make([]*Unit, 0, len(b.units[f]))
	for _, u := range b.units[f] {
		out = append(out, u)
	}
	sortUnits(out)
	return out
}

// AllUnits in reading order, both factions mixed.
func (b *Battlefield) AllUnits() []*Unit {
	out := make([]*Unit, 0, len(b.units[Elf])+len(b.units[Goblin]))
	for f := range b.units {
		for _, u := range b.units[f] {
			out = append(out, u)
		}
	}
	sortUnits(out)
	return out
}

func (b *Battlefield) TotalHitPoints(f Faction) int {
	sum := 0
	for _, u := range b.units[f] {
		sum += u.HP
	}
	return sum
}

func (b *Battlefield) IsFree(p Position) bool {
	return b.cave.Tile(p) == Open && b.UnitAt(p) == nil
}

func (b *Battlefield) blocked(p Position) bool { return !b.IsFree(p) }

// Area covers every wall and unit.
func (b *Battlefield) Area() Box {
	area := b.cave.Area()
	for f := range b.units {
		for p := range b.units[f] {
			area = area.Extend(p)
		}
	}
	return area
}

func (b *Battlefield) move(u *Unit, to Position) {
	delete(b.units[u.Faction], u.Pos)
	u.Pos = to
	b.units[u.Faction][to] = u
}

func (b *Battlefield) remove(u *Unit) { delete(b.units[u.Faction], u.Pos) }

// CheckInvariants reports the first broken ownership rule, if any.
func (b *Battlefield) CheckInvariants() error {
	for f := range b.units {
		for p, u := range b.units[f] {
			switch {
			case u.Pos != p:
				return fmt.Errorf("%w: unit %s indexed at %s", ErrInvariant, u, p)
			case u.Faction != Faction(f):
				return fmt.Errorf("%w: unit %s in %s map", ErrInvariant, u, Faction(f))
			case !u.Alive():
				return fmt.Errorf("%w: dead unit %s still on the field", ErrInvariant, u)
			case b.cave.Tile(p) == Wall:
				return fmt.Errorf("%w: unit %s on a wall", ErrInvariant, u)
			}
		}
	}
	for p := range b.units[Elf] {
		if _, ok := b.units[Goblin][p]; ok {
			return fmt.Errorf("%w: elf and goblin share %s", ErrInvariant, p)
		}
	}
	return nil
}

// String renders the board as ASCII, one line per row.
func (b *Battlefield) String() string { return b.render(false) }

// RenderWithHitPoints appends the hit points of each row's units,
// e.g. "#..G.E#   G(200), E(131)".
func (b *Battlefield) RenderWithHitPoints() string { return b.render(true) }

func (b *Battlefield) render(withHP bool) string {
	area := b.Area()
	if area.Empty() {
		return ""
	}
	var sb strings.Builder
	for y := area.Min.Y; y <= area.Max.Y; y++ {
		var row []string
		for x := area.Min.X; x <= area.Max.X; x++ {
			p := Position{x, y}
			if u := b.UnitAt(p); u != nil {
				sb.WriteByte(u.Faction.Symbol())
				row = append(row, fmt.Sprintf("%c(%d)", u.Faction.Symbol(), u.HP))
				continue
			}
			sb.WriteByte(b.cave.Tile(p).Symbol())
		}
		if withHP && len(row) > 0 {
			sb.WriteString("   ")
			sb.WriteString(strings.Join(row, ", "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func sortUnits(us []*Unit) {
	sort.Slice(us, func(i, j int) bool { return us[i].Pos.Less(us[j].Pos) })
}
