package combat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const example1 = `#######
#.G...#
#...EG#
#.#.#G#
#..G#E#
#.....#
#######
`

const example2 = `#######
#G..#E#
#E#E.E#
#G.##.#
#...#E#
#...E.#
#######
`

const example3 = `#######
#E..EG#
#.#G.E#
#E.##E#
#G..#.#
#..E#.#
#######
`

const example4 = `#######
#E.G#.#
#.#G..#
#G.#.G#
#G..#.#
#...E.#
#######
`

const example5 = `#######
#.E...#
#.#..G#
#.###.#
#E#G#G#
#...#G#
#######
`

const example6 = `#########
#G......#
#.E.#...#
#..##..G#
#...##..#
#...#...#
#.G...G.#
#.....G.#
#########
`

func mustParse(t *testing.T, text string) *Battlefield {
	t.Helper()
	b, err := ParseMap(text)
	require.NoError(t, err)
	return b
}

func mustParseWithRules(t *testing.T, text string, rules Rules) *Battlefield {
	t.Helper()
	b, err := ParseMapWithRules(text, rules)
	require.NoError(t, err)
	return b
}
