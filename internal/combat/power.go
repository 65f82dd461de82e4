package combat

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrNoWinningPower = errors.New("no elf attack power avoids elf losses")

type PowerResult struct {
	Power    int
	Outcome  Outcome
	Rounds   int
	Attempts int
	Final    *Battlefield
}

// MinimumElfPower finds the smallest Elf attack power, counting up from
// Rules.SearchStartPower, with which the Elves win without a single loss.
// Every attempt starts from a fresh clone of initial, which is left as is.
func MinimumElfPower(initial *Battlefield) (PowerResult, error) {
	log := initial.log
	elves := initial.Count(Elf)
	power := max(initial.rules.SearchStartPower, 1)
	for attempt := 1; ; attempt++ {
		b := initial.WithElfPower(power)
		st, err := fightWithoutLosses(b, elves)
		if err != nil {
			return PowerResult{}, fmt.Errorf("elf power %d: %w", power, err)
		}
		if b.Count(Elf) == elves {
			log.Info("elves win without losses",
				zap.Int("power", power),
				zap.Int("rounds", b.rounds),
				zap.Stringer("outcome", st),
				zap.Int("attempts", attempt))
			return PowerResult{Power: power, Outcome: st, Rounds: b.rounds, Attempts: attempt, Final: b}, nil
		}
		// one elf hit already kills any unit, more power changes nothing
		if power >= initial.rules.HitPoints {
			return PowerResult{}, fmt.Errorf("%w (tried up to %d)", ErrNoWinningPower, power)
		}
		log.Info("elves lost a unit, restarting",
			zap.Int("power", power),
			zap.Int("lost", elves-b.Count(Elf)),
			zap.Int("round", b.rounds))
		initial.emitRestart(power, elves-b.Count(Elf), b.rounds)
		power++
	}
}

// fightWithoutLosses plays b until it ends or an Elf falls.
func fightWithoutLosses(b *Battlefield, elves int) (Outcome, error) {
	for {
		st := b.FightRound()
		if b.Count(Elf) < elves || st.Terminal() {
			return st, nil
		}
		if b.idle {
			return st, fmt.Errorf("%w after %d rounds", ErrStalemate, b.rounds)
		}
	}
}

func (b *Battlefield) emitRestart(power, lost, round int) {
	if b.emit == nil {
		return
	}
	b.emit(Event{Round: round, Type: EventRestart, Payload: map[string]any{
		"power": power, "lost": lost, "next_power": power + 1,
	}})
}
