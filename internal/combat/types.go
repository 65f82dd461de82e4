package combat

import "fmt"

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventMove     = "Move"
	EventAttack   = "Attack"
	EventDeath    = "Death"
	EventRoundEnd = "RoundEnd"
	EventRestart  = "Restart"
)

type Faction int

const (
	Elf Faction = iota
	Goblin
)

func (f Faction) Enemy() Faction {
	if f == Elf {
		return Goblin
	}
	return Elf
}

func (f Faction) Symbol() byte {
	if f == Elf {
		return 'E'
	}
	return 'G'
}

func (f Faction) String() string {
	if f == Elf {
		return "elf"
	}
	return "goblin"
}

type Unit struct {
	ID      int
	Faction Faction
	Pos     Position // 当前所在格
	HP      int
	Power   int
}

func (u *Unit) Alive() bool { return u.HP > 0 }

func (u *Unit) String() string {
	return fmt.Sprintf("%s#%d@%s hp=%d", u.Faction, u.ID, u.Pos, u.HP)
}

// Rules are the numeric parameters of a battle. GoblinPower never changes
// during a simulation; ElfPower is what the power search tunes.
type Rules struct {
	HitPoints        int `json:"hit_points"`
	ElfPower         int `json:"elf_power"`
	GoblinPower      int `json:"goblin_power"`
	SearchStartPower int `json:"search_start_power"`
}

func DefaultRules() Rules {
	return Rules{HitPoints: 200, ElfPower: 3, GoblinPower: 3, SearchStartPower: 4}
}

func (r Rules) PowerOf(f Faction) int {
	if f == Elf {
		return r.ElfPower
	}
	return r.GoblinPower
}
