package util

import (
	"math/rand"
	"strings"
)

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// MapSpec sizes a random cave. Width and Height include the outer wall;
// the chances apply to each inner square.
type MapSpec struct {
	Width, Height int
	Walls         float64
	Elves         float64
	Goblins       float64
}

func DefaultMapSpec() MapSpec {
	return MapSpec{Width: 12, Height: 10, Walls: 0.2, Elves: 0.04, Goblins: 0.05}
}

// RandomMap draws a cave in the '#', '.', 'E', 'G' text format, fully
// enclosed by walls.
func RandomMap(rng *rand.Rand, spec MapSpec) string {
	var sb strings.Builder
	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			if x == 0 || y == 0 || x == spec.Width-1 || y == spec.Height-1 {
				sb.WriteByte('#')
				continue
			}
			switch r := rng.Float64(); {
			case r < spec.Walls:
				sb.WriteByte('#')
			case r < spec.Walls+spec.Elves:
				sb.WriteByte('E')
			case r < spec.Walls+spec.Elves+spec.Goblins:
				sb.WriteByte('G')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
