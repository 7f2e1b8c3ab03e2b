// Package core holds the small shared primitives the game packages are
// built on: grid coordinates, distances and the color palette.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/yarrl/dice"
)

// Loc is a row/column coordinate on the world grid.
type Loc struct {
	Row, Col int
}

// MarshalText encodes a Loc as "row,col" so it can key JSON maps in
// save files.
func (l Loc) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d,%d", l.Row, l.Col)), nil
}

// UnmarshalText decodes the "row,col" form.
func (l *Loc) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), ",", 2)
	if len(parts) != 2 {
		return fmt.Errorf("malformed loc %q", text)
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("malformed loc row %q: %w", text, err)
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("malformed loc col %q: %w", text, err)
	}
	l.Row, l.Col = row, col
	return nil
}

// Manhattan returns the taxicab distance between two squares.
func Manhattan(r0, c0, r1, c1 int) int {
	dr := r0 - r1
	if dr < 0 {
		dr = -dr
	}
	dc := c0 - c1
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Cartesian returns the straight-line distance, truncated to an int.
func Cartesian(r0, c0, r1, c1 int) int {
	dr := float64(r0 - r1)
	dc := float64(c0 - c1)
	return int(math.Sqrt(dr*dr + dc*dc))
}

// Adjacent reports whether two distinct squares touch, diagonals
// included.
func Adjacent(r0, c0, r1, c1 int) bool {
	if r0 == r1 && c0 == c1 {
		return false
	}
	dr := r0 - r1
	dc := c0 - c1
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// RandAdj returns a uniformly random offset to one of the 8 neighbours.
func RandAdj() (int, int) {
	switch dice.Roll(8, 1, 0) {
	case 1:
		return -1, -1
	case 2:
		return -1, 0
	case 3:
		return -1, 1
	case 4:
		return 0, -1
	case 5:
		return 0, 1
	case 6:
		return 1, -1
	case 7:
		return 1, 0
	default:
		return 1, 1
	}
}

// DirBetween names the compass direction from one square toward
// another. Only the sign of each delta matters.
func DirBetween(r0, c0, r1, c1 int) string {
	var dir strings.Builder
	if r1 < r0 {
		dir.WriteString("N")
	} else if r1 > r0 {
		dir.WriteString("S")
	}
	if c1 < c0 {
		dir.WriteString("W")
	} else if c1 > c0 {
		dir.WriteString("E")
	}
	return dir.String()
}

// MoveDelta maps a compass direction to a row/col offset.
func MoveDelta(dir string) (int, int) {
	switch dir {
	case "N":
		return -1, 0
	case "S":
		return 1, 0
	case "W":
		return 0, -1
	case "E":
		return 0, 1
	case "NW":
		return -1, -1
	case "NE":
		return -1, 1
	case "SW":
		return 1, -1
	default:
		return 1, 1
	}
}

// BresenhamCircle returns the grid points on a circle of the given
// radius using the midpoint algorithm.
func BresenhamCircle(row, col, radius int) []Loc {
	var pts []Loc
	x := radius
	y := 0
	err := 0

	for x >= y {
		pts = append(pts,
			Loc{row + y, col + x},
			Loc{row + y, col - x},
			Loc{row - y, col + x},
			Loc{row - y, col - x},
			Loc{row + x, col + y},
			Loc{row + x, col - y},
			Loc{row - x, col + y},
			Loc{row - x, col - y},
		)

		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}

	return pts
}
