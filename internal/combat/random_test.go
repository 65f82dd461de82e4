package combat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bandits/internal/util"
)

func TestRandomCavesKeepInvariants(t *testing.T) {
	rng := util.New(1518)
	for i := 0; i < 40; i++ {
		text := util.RandomMap(rng, util.DefaultMapSpec())
		b := mustParse(t, text)
		for !b.Status().Terminal() {
			b.FightRound()
			require.NoError(t, b.CheckInvariants(), "map %d round %d\n%s", i, b.Rounds(), text)
			if b.idle {
				break
			}
		}
		st := b.Status()
		if st.Terminal() {
			assert.GreaterOrEqual(t, st.Score(b.Rounds()), 0)
		}
	}
}

func TestRandomCavesPathsAreShortestAndReadingFirst(t *testing.T) {
	rng := util.New(2018)
	for i := 0; i < 40; i++ {
		b := mustParse(t, util.RandomMap(rng, util.DefaultMapSpec()))
		bounds := b.searchBounds()
		for _, u := range b.AllUnits() {
			dist := distanceField(u.Pos, b.blocked, bounds)
			for _, end := range b.inRangeSquares(u.Faction.Enemy()) {
				path := b.ShortestPath(u.Pos, end)
				d, reachable := dist[end]
				if !reachable {
					assert.Nil(t, path)
					continue
				}
				require.Len(t, path, d+1)
				// the first step must be the earliest neighbour that still
				// lies on some shortest path
				fromEnd := distanceField(end, func(p Position) bool { return p != u.Pos && b.blocked(p) }, bounds)
				for _, n := range u.Pos.Adjacent() {
					if nd, ok := fromEnd[n]; ok && nd == d-1 {
						assert.Equal(t, n, path[1])
						break
					}
				}
			}
		}
	}
}

func TestRandomCavesPowerSearch(t *testing.T) {
	rng := util.New(99)
	for i := 0; i < 10; i++ {
		b := mustParse(t, util.RandomMap(rng, util.DefaultMapSpec()))
		res, err := MinimumElfPower(b)
		if errors.Is(err, ErrStalemate) {
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, b.Count(Elf), res.Final.Count(Elf))
		assert.GreaterOrEqual(t, res.Power, 4)
		assert.Equal(t, res.Power-3, res.Attempts)
	}
}
