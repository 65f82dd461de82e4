package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMinimumElfPowerExamples(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		power    int
		rounds   int
		hp       int
		score    int
		attempts int
	}{
		{"example1", example1, 15, 29, 172, 4988, 12},
		{"example3", example3, 4, 33, 948, 31284, 1},
		{"example4", example4, 15, 37, 94, 3478, 12},
		{"example5", example5, 12, 39, 166, 6474, 9},
		{"example6", example6, 34, 30, 38, 1140, 31},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustParse(t, tc.input)
			res, err := MinimumElfPower(b)
			require.NoError(t, err)
			assert.Equal(t, tc.power, res.Power)
			assert.Equal(t, tc.rounds, res.Rounds)
			assert.Equal(t, Outcome{Status: ElvesWin, HitPoints: tc.hp}, res.Outcome)
			assert.Equal(t, tc.score, res.Outcome.Score(res.Rounds))
			assert.Equal(t, tc.attempts, res.Attempts)
			assert.Equal(t, b.Count(Elf), res.Final.Count(Elf), "no elf may die")
			assert.Equal(t, tc.power, res.Final.Rules().ElfPower)
		})
	}
}

func TestMinimumElfPowerLeavesInitialUntouched(t *testing.T) {
	b := mustParse(t, example1)
	before := b.Clone()

	_, err := MinimumElfPower(b)
	require.NoError(t, err)

	assert.Equal(t, example1, b.String())
	assert.Equal(t, 0, b.Rounds())
	assert.Equal(t, 3, b.Rules().ElfPower)
	for _, u := range b.AllUnits() {
		orig := before.UnitAt(u.Pos)
		require.NotNil(t, orig)
		assert.Equal(t, *orig, *u)
	}
}

func TestRestartStartsFromPristineState(t *testing.T) {
	b := mustParse(t, example1)

	failed := b.WithElfPower(4)
	failed.FightRounds(30)
	require.Less(t, failed.Count(Elf), b.Count(Elf), "power 4 loses an elf early")

	next := b.WithElfPower(5)
	assert.Equal(t, 0, next.Rounds())
	assert.Equal(t, example1, next.String())
	for _, u := range next.AllUnits() {
		assert.Equal(t, 200, u.HP)
		assert.Equal(t, next.Rules().PowerOf(u.Faction), u.Power)
	}
	assert.Equal(t, 5, next.Rules().ElfPower)
	assert.Equal(t, 3, next.Rules().GoblinPower)
}

func TestMinimumElfPowerLogsRestarts(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	b := mustParse(t, example1)
	b.SetLogger(zap.New(core))
	rec := &Recorder{}
	b.SetEmitter(rec.Emit)

	res, err := MinimumElfPower(b)
	require.NoError(t, err)

	restarts := logs.FilterMessage("elves lost a unit, restarting").All()
	assert.Len(t, restarts, res.Power-4)
	assert.Equal(t, int64(4), restarts[0].ContextMap()["power"])
	assert.Len(t, logs.FilterMessage("elves win without losses").All(), 1)
	assert.Equal(t, res.Power-4, rec.Count(EventRestart))
}

func TestMinimumElfPowerWithoutElves(t *testing.T) {
	b := mustParse(t, "#####\n#G.G#\n#####\n")
	res, err := MinimumElfPower(b)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Power)
	assert.Equal(t, GoblinsWin, res.Outcome.Status)
	assert.Equal(t, 1, res.Attempts)
}

func TestMinimumElfPowerHopeless(t *testing.T) {
	// an elf with 1 hit point dies to the first goblin swing whatever its power
	rules := DefaultRules()
	rules.HitPoints = 1
	b := mustParseWithRules(t, "#####\n#GE.#\n#####\n", rules)

	_, err := MinimumElfPower(b)
	assert.ErrorIs(t, err, ErrNoWinningPower)
}

func TestMinimumElfPowerStalemate(t *testing.T) {
	b := mustParse(t, "#######\n#E#.G.#\n#######\n")
	_, err := MinimumElfPower(b)
	assert.ErrorIs(t, err, ErrStalemate)
}
