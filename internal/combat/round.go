package combat

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrStalemate = errors.New("stalemate: no unit can move or attack")

// Fight plays rounds until one faction is gone. A round in which nobody
// moves or attacks leaves the board unchanged, so every later round would
// too; Fight reports that as ErrStalemate.
func (b *Battlefield) Fight() (Outcome, error) {
	for {
		st := b.FightRound()
		if st.Terminal() {
			b.log.Debug("combat finished",
				zap.Stringer("outcome", st),
				zap.Int("rounds", b.rounds))
			return st, nil
		}
		if b.idle {
			return st, fmt.Errorf("%w after %d rounds", ErrStalemate, b.rounds)
		}
	}
}

// FightRounds plays at most n rounds and returns the last outcome.
func (b *Battlefield) FightRounds(n int) Outcome {
	st := b.Status()
	for i := 0; i < n && !st.Terminal(); i++ {
		st = b.FightRound()
	}
	return st
}

// FightRound lets every living unit act once, in reading order of where the
// units stood when the round began. A unit that starts its turn with no
// enemy left ends combat; that round is not counted.
func (b *Battlefield) FightRound() Outcome {
	if st := b.Status(); st.Terminal() {
		return st
	}
	b.idle = true
	for _, u := range b.AllUnits() {
		if !u.Alive() {
			continue
		}
		if b.Count(u.Faction.Enemy()) == 0 {
			b.idle = false
			b.log.Debug("combat ends mid-round", append(unitFields(u), zap.Int("round", b.rounds+1))...)
			return b.Status()
		}
		if b.takeTurn(u) {
			b.idle = false
		}
	}
	b.emitEvent(EventRoundEnd, map[string]any{
		"elves": b.Count(Elf), "goblins": b.Count(Goblin),
	})
	b.rounds++
	return b.Status()
}

// takeTurn moves u if no enemy is adjacent and then attacks if one is.
// It reports whether u did anything.
func (b *Battlefield) takeTurn(u *Unit) bool {
	acted := false
	target := b.attackTarget(u)
	if target == nil {
		if step, ok := b.nextStep(u); ok {
			from := u.Pos
			b.move(u, step)
			acted = true
			b.emitEvent(EventMove, map[string]any{
				"faction": u.Faction.String(), "id": u.ID,
				"from": []int{from.X, from.Y}, "to": []int{step.X, step.Y},
			})
			b.log.Debug("unit moved", append(unitFields(u), zap.Stringer("from", from))...)
		}
		target = b.attackTarget(u)
	}
	if target != nil {
		b.attack(u, target)
		acted = true
	}
	return acted
}

// attackTarget is the adjacent enemy with the fewest hit points, first in
// reading order on ties.
func (b *Battlefield) attackTarget(u *Unit) *Unit {
	enemies := b.units[u.Faction.Enemy()]
	var best *Unit
	for _, n := range u.Pos.Adjacent() {
		e, ok := enemies[n]
		if !ok {
			continue
		}
		if best == nil || e.HP < best.HP {
			best = e
		}
	}
	return best
}

func (b *Battlefield) attack(u, target *Unit) {
	target.HP -= u.Power
	b.emitEvent(EventAttack, map[string]any{
		"attacker": u.Faction.String(), "attacker_id": u.ID,
		"target": target.Faction.String(), "target_id": target.ID,
		"dmg": u.Power, "hp": target.HP,
	})
	if target.Alive() {
		return
	}
	b.remove(target)
	b.emitEvent(EventDeath, map[string]any{
		"faction": target.Faction.String(), "id": target.ID,
		"x": target.Pos.X, "y": target.Pos.Y,
	})
	b.log.Debug("unit died", unitFields(target)...)
}
