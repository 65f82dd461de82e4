package config

import (
	"errors"
	"fmt"

	"bandits/internal/combat"
	"bandits/internal/logging"
)

type SimConfig struct {
	Rules   RulesConfig    `yaml:"rules" toml:"rules"`
	Run     RunConfig      `yaml:"run" toml:"run"`
	Logging logging.Config `yaml:"logging" toml:"logging"`
}

type RulesConfig struct {
	HitPoints        int `yaml:"hit_points" toml:"hit_points"`
	ElfPower         int `yaml:"elf_power" toml:"elf_power"`
	GoblinPower      int `yaml:"goblin_power" toml:"goblin_power"`
	SearchStartPower int `yaml:"search_start_power" toml:"search_start_power"`
}

type RunConfig struct {
	Mode         string `yaml:"mode" toml:"mode"`                   // fight or power
	Workers      int    `yaml:"workers" toml:"workers"`             // maps simulated in parallel
	RecordEvents bool   `yaml:"record_events" toml:"record_events"` // keep the event log in reports
	RenderBoard  bool   `yaml:"render_board" toml:"render_board"`   // keep the final board in reports
}

func Default() *SimConfig {
	r := combat.DefaultRules()
	return &SimConfig{
		Rules: RulesConfig{
			HitPoints:        r.HitPoints,
			ElfPower:         r.ElfPower,
			GoblinPower:      r.GoblinPower,
			SearchStartPower: r.SearchStartPower,
		},
		Run: RunConfig{
			Mode:        combat.ModeFight,
			Workers:     8,
			RenderBoard: true,
		},
		Logging: logging.Config{Level: "info", Encoding: "console"},
	}
}

var errInvalid = errors.New("invalid config")

func (c *SimConfig) Validate() error {
	switch {
	case c.Rules.HitPoints <= 0:
		return fmt.Errorf("%w: rules.hit_points must be positive", errInvalid)
	case c.Rules.ElfPower <= 0 || c.Rules.GoblinPower <= 0:
		return fmt.Errorf("%w: attack powers must be positive", errInvalid)
	case c.Rules.SearchStartPower <= 0:
		return fmt.Errorf("%w: rules.search_start_power must be positive", errInvalid)
	case c.Run.Mode != combat.ModeFight && c.Run.Mode != combat.ModePower:
		return fmt.Errorf("%w: run.mode %q", errInvalid, c.Run.Mode)
	case c.Run.Workers < 0:
		return fmt.Errorf("%w: run.workers must not be negative", errInvalid)
	}
	return nil
}

func (c *SimConfig) CombatRules() combat.Rules {
	return combat.Rules{
		HitPoints:        c.Rules.HitPoints,
		ElfPower:         c.Rules.ElfPower,
		GoblinPower:      c.Rules.GoblinPower,
		SearchStartPower: c.Rules.SearchStartPower,
	}
}
