package combat

import "fmt"

type Status int

const (
	Ongoing Status = iota
	ElvesWin
	GoblinsWin
	Tie
)

func (s Status) String() string {
	switch s {
	case ElvesWin:
		return "elves_win"
	case GoblinsWin:
		return "goblins_win"
	case Tie:
		return "tie"
	}
	return "ongoing"
}

// Outcome is the state of a battle. HitPoints is the total left to the
// winning side and is zero unless one faction won.
type Outcome struct {
	Status    Status
	HitPoints int
}

func (o Outcome) Terminal() bool { return o.Status != Ongoing }

func (o Outcome) Winner() (Faction, bool) {
	switch o.Status {
	case ElvesWin:
		return Elf, true
	case GoblinsWin:
		return Goblin, true
	}
	return 0, false
}

func (o Outcome) String() string {
	if _, ok := o.Winner(); ok {
		return fmt.Sprintf("%s(%d)", o.Status, o.HitPoints)
	}
	return o.Status.String()
}

// Score is the remaining hit points times the completed rounds. It must
// only be called on a finished battle.
func (o Outcome) Score(rounds int) int {
	switch o.Status {
	case ElvesWin, GoblinsWin:
		return o.HitPoints * rounds
	case Tie:
		return 0
	}
	panic("combat: score of an ongoing battle")
}

// Status derives the outcome from the living units alone.
func (b *Battlefield) Status() Outcome {
	elves, goblins := b.Count(Elf), b.Count(Goblin)
	switch {
	case elves == 0 && goblins == 0:
		return Outcome{Status: Tie}
	case elves == 0:
		return Outcome{Status: GoblinsWin, HitPoints: b.TotalHitPoints(Goblin)}
	case goblins == 0:
		return Outcome{Status: ElvesWin, HitPoints: b.TotalHitPoints(Elf)}
	}
	return Outcome{Status: Ongoing}
}
