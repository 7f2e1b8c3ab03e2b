package world

import "github.com/lixenwraith/yarrl/core"

// Flood-fill analytics used by the content generator to read the shape
// of a freshly generated island.

// FloodFill collects the 8-connected block of target tiles containing
// (r, c).
func FloodFill(m Map, target Kind, r, c int) map[core.Loc]bool {
	block := map[core.Loc]bool{}
	queue := []core.Loc{{Row: r, Col: c}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		block[curr] = true

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				nr, nc := curr.Row+dr, curr.Col+dc
				if !m.InBounds(nr, nc) {
					continue
				}
				loc := core.Loc{Row: nr, Col: nc}
				if m.At(nr, nc).Kind != target || block[loc] {
					continue
				}
				block[loc] = true
				queue = append(queue, loc)
			}
		}
	}

	return block
}

// LargestContiguousBlock finds the biggest block of a tile kind.
func LargestContiguousBlock(m Map, target Kind) []core.Loc {
	found := map[core.Loc]bool{}
	var best []core.Loc

	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			if m.At(r, c).Kind != target || found[core.Loc{Row: r, Col: c}] {
				continue
			}
			block := FloodFill(m, target, r, c)
			locs := make([]core.Loc, 0, len(block))
			for sq := range block {
				found[sq] = true
				locs = append(locs, sq)
			}
			if len(locs) > len(best) {
				best = locs
			}
		}
	}

	return best
}

// Seacoast flood-fills the ocean from the map edge and returns the land
// squares it laps against.
func Seacoast(m Map) []core.Loc {
	var queue []core.Loc
	visited := map[core.Loc]bool{}
	var coast []core.Loc

	// The generator occasionally writes land on the very edge, so find
	// an actual ocean square to start from.
	for c := 0; c < m.Width(); c++ {
		if m.At(0, c).Kind == DeepWater {
			start := core.Loc{Row: 0, Col: c}
			queue = append(queue, start)
			visited[start] = true
			break
		}
	}

	coastSeen := map[core.Loc]bool{}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				nr, nc := curr.Row+dr, curr.Col+dc
				if !m.InBounds(nr, nc) {
					continue
				}
				loc := core.Loc{Row: nr, Col: nc}
				k := m.At(nr, nc).Kind
				if k != DeepWater && k != Water {
					if !coastSeen[loc] {
						coastSeen[loc] = true
						coast = append(coast, loc)
					}
				} else if !visited[loc] {
					visited[loc] = true
					queue = append(queue, loc)
				}
			}
		}
	}

	return coast
}

// HiddenValleys finds pockets of trees completely enclosed by trees,
// mountains and snow peaks. The generator makes them by accident and
// they are too good a treasure spot to waste.
func HiddenValleys(m Map) [][]core.Loc {
	var valleys [][]core.Loc
	claimed := map[core.Loc]bool{}

	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			if m.At(r, c).Kind != Tree || claimed[core.Loc{Row: r, Col: c}] {
				continue
			}
			valley := hiddenValleyAt(m, r, c)
			if len(valley) == 0 {
				claimed[core.Loc{Row: r, Col: c}] = true
				continue
			}
			for _, sq := range valley {
				claimed[sq] = true
			}
			valleys = append(valleys, valley)
		}
	}

	return valleys
}

func hiddenValleyAt(m Map, r, c int) []core.Loc {
	valley := map[core.Loc]bool{}
	queue := []core.Loc{{Row: r, Col: c}}

	for len(queue) > 0 {
		loc := queue[0]
		queue = queue[1:]
		valley[loc] = true

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				nr, nc := loc.Row+dr, loc.Col+dc
				if !m.InBounds(nr, nc) {
					return nil
				}

				switch m.At(nr, nc).Kind {
				case Tree:
					next := core.Loc{Row: nr, Col: nc}
					if !valley[next] {
						valley[next] = true
						queue = append(queue, next)
					}
				case Mountain, SnowPeak:
					// Enclosing terrain, fine.
				default:
					// Open to the rest of the island, not hidden.
					return nil
				}
			}
		}
	}

	locs := make([]core.Loc, 0, len(valley))
	for sq := range valley {
		locs = append(locs, sq)
	}
	return locs
}

// NearestClearNW walks in from the NW corner until the leading row and
// column touch land, then backs off one square. Used when stamping a
// generated island onto the ocean grid.
func NearestClearNW(m Map) (int, int) {
	nwR, nwC := 0, 0

	for nwR < m.Height()-1 && nwC < m.Width()-1 {
		nwR++
		nwC++

		for c := nwC; c < m.Width(); c++ {
			k := m.At(nwR, c).Kind
			if k != Water && k != DeepWater {
				return nwR - 1, nwC - 1
			}
		}
		for r := nwR; r < m.Height(); r++ {
			k := m.At(r, nwC).Kind
			if k != Water && k != DeepWater {
				return nwR - 1, nwC - 1
			}
		}
	}

	return 0, 0
}
