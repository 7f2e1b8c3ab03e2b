package world

import "github.com/lixenwraith/yarrl/dice"

// Cave generation: seed ~55% floor, run one generation of the 4-5
// cellular automata rule, wall the border, then join or fill the
// disjoint caves so every floor square is reachable.

// GenerateCave builds a width x depth cave of walls and stone floor.
func GenerateCave(width, depth int) Map {
	// true means wall in the working grid.
	grid := make([][]bool, depth)
	for r := range grid {
		grid[r] = make([]bool, width)
		for c := range grid[r] {
			grid[r][c] = dice.Float() >= 0.55
		}
	}

	// 4-5 rule: 3 or fewer neighbouring walls starves a square into
	// floor, more than 5 grows a wall. One generation is enough.
	next := make([][]bool, depth)
	for r := range next {
		next[r] = make([]bool, width)
	}
	for r := 1; r < depth-1; r++ {
		for c := 1; c < width-1; c++ {
			adj := countNeighbouringWalls(grid, r, c, width, depth)
			switch {
			case adj < 4:
				next[r][c] = false
			case adj > 5:
				next[r][c] = true
			default:
				next[r][c] = grid[r][c]
			}
		}
	}

	for c := 0; c < width; c++ {
		next[0][c] = true
		next[depth-1][c] = true
	}
	for r := 1; r < depth-1; r++ {
		next[r][0] = true
		next[r][width-1] = true
	}

	caveQA(next, width, depth)

	m := make(Map, depth)
	for r := range next {
		row := make([]Tile, width)
		for c, wall := range next[r] {
			if wall {
				row[c] = Of(Wall)
			} else {
				row[c] = Of(StoneFloor)
			}
		}
		m[r] = row
	}

	return m
}

func countNeighbouringWalls(grid [][]bool, row, col, width, depth int) int {
	adj := 0
	for r := -1; r <= 1; r++ {
		for c := -1; c <= 1; c++ {
			nr, nc := row+r, col+c
			if nr < 0 || nc < 0 || nr == depth || nc == width {
				adj++
			} else if !(r == 0 && c == 0) && grid[nr][nc] {
				adj++
			}
		}
	}
	return adj
}

// Disjoint-set over floor squares, 4-connected.

func dsUnion(ds []int, r1, r2 int) {
	x := dsFind(ds, r1)
	y := dsFind(ds, r2)
	if x != y {
		ds[y] = x
	}
}

func dsFind(ds []int, x int) int {
	if ds[x] < 0 {
		return x
	}
	return dsFind(ds, ds[x])
}

func findIsolatedCaves(grid [][]bool, width, depth int) []int {
	ds := make([]int, width*depth)
	for i := range ds {
		ds[i] = -1
	}

	for r := 1; r < depth-1; r++ {
		for c := 1; c < width-1; c++ {
			if grid[r][c] {
				continue
			}
			v := r*width + c
			if !grid[r-1][c] {
				dsUnion(ds, v, v-width)
			}
			if !grid[r+1][c] {
				dsUnion(ds, v, v+width)
			}
			if !grid[r][c-1] {
				dsUnion(ds, v, v-1)
			}
			if !grid[r][c+1] {
				dsUnion(ds, v, v+1)
			}
		}
	}

	return ds
}

// caveQA removes single walls that separate two caves, then fills every
// cave but the largest. After it runs, any two floor squares are
// mutually reachable, which the feature placers rely on.
func caveQA(grid [][]bool, width, depth int) {
	ds := findIsolatedCaves(grid, width, depth)

	for r := 1; r < depth-1; r++ {
		for c := 1; c < width-1; c++ {
			if !grid[r][c] {
				continue
			}
			i := r*width + c
			adjSets := make(map[int]bool)
			var nf, sf, ef, wf bool

			if !grid[r-1][c] {
				adjSets[dsFind(ds, i-width)] = true
				nf = true
			}
			if !grid[r+1][c] {
				adjSets[dsFind(ds, i+width)] = true
				sf = true
			}
			if !grid[r][c-1] {
				adjSets[dsFind(ds, i-1)] = true
				wf = true
			}
			if !grid[r][c+1] {
				adjSets[dsFind(ds, i+1)] = true
				ef = true
			}

			if len(adjSets) > 1 {
				grid[r][c] = false
				if nf {
					dsUnion(ds, i, i-width)
				}
				if sf {
					dsUnion(ds, i, i+width)
				}
				if wf {
					dsUnion(ds, i, i-1)
				}
				if ef {
					dsUnion(ds, i, i+1)
				}
			}
		}
	}

	sets := make(map[int]int)
	for r := 1; r < depth-1; r++ {
		for c := 1; c < width-1; c++ {
			if grid[r][c] {
				continue
			}
			sets[dsFind(ds, r*width+c)]++
		}
	}

	largestSet := 0
	largestCount := 0
	for root, count := range sets {
		if count > largestCount {
			largestSet = root
			largestCount = count
		}
	}

	for r := 1; r < depth-1; r++ {
		for c := 1; c < width-1; c++ {
			if grid[r][c] {
				continue
			}
			if dsFind(ds, r*width+c) != largestSet {
				grid[r][c] = true
			}
		}
	}
}
