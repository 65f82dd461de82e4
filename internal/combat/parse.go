package combat

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrMalformedMap = errors.New("malformed map")

func ParseMap(text string) (*Battlefield, error) {
	return ParseMapWithRules(text, DefaultRules())
}

// ParseMapWithRules reads '.', '#', 'E' and 'G'. Row index is Y, column
// index is X, both from zero. Whitespace is skipped.
func ParseMapWithRules(text string, rules Rules) (*Battlefield, error) {
	var walls, elves, goblins []Position
	for y, line := range strings.Split(text, "\n") {
		for x, ch := range line {
			p := Position{X: x, Y: y}
			switch ch {
			case '.':
			case '#':
				walls = append(walls, p)
			case 'E':
				elves = append(elves, p)
			case 'G':
				goblins = append(goblins, p)
			default:
				if unicode.IsSpace(ch) {
					continue
				}
				return nil, fmt.Errorf("%w: unexpected %q at row %d column %d", ErrMalformedMap, ch, y, x)
			}
		}
	}
	return NewBattlefield(walls, elves, goblins, rules)
}
