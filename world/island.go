package world

import (
	"math"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
)

// Island generation: diamond-square heightmap, one smoothing pass, a
// radial warp that sinks the edges into ocean, then thresholds to
// terrain bands.

func valToTerrain(val float64) Tile {
	switch {
	case val < -0.5:
		return Of(DeepWater)
	case val < -0.25:
		return Of(Water)
	case val < 0.20:
		return Of(Sand)
	case val < 0.45:
		return Of(Grass)
	case val < 0.85:
		return Of(Tree)
	case val < 1.5:
		return Of(Mountain)
	default:
		return Of(SnowPeak)
	}
}

func fuzz(width int, scale float64) float64 {
	return (dice.Float()*2 - 1) * float64(width) * scale
}

func diamondStep(grid [][]float64, r, c, width int, scale float64) {
	avg := grid[r][c]
	avg += grid[r][c+width-1]
	avg += grid[r+width-1][c]
	avg += grid[r+width-1][c+width-1]
	avg /= 4

	grid[r+width/2][c+width/2] = avg + fuzz(width, scale)
}

func calcDiamondAvg(grid [][]float64, r, c, width int, scale float64) {
	count := 0
	avg := 0.0
	if width <= c {
		avg += grid[r][c-width]
		count++
	}
	if c+width < len(grid) {
		avg += grid[r][c+width]
		count++
	}
	if width <= r {
		avg += grid[r-width][c]
		count++
	}
	if r+width < len(grid) {
		avg += grid[r+width][c]
		count++
	}

	grid[r][c] = avg/float64(count) + fuzz(width, scale)
}

func squareStep(grid [][]float64, r, c, width int, scale float64) {
	half := width / 2

	calcDiamondAvg(grid, r-half, c, half, scale)
	calcDiamondAvg(grid, r+half, c, half, scale)
	calcDiamondAvg(grid, r, c-half, half, scale)
	calcDiamondAvg(grid, r, c+half, half, scale)
}

func diamondSq(grid [][]float64, r, c, width int, scale float64) {
	diamondStep(grid, r, c, width, scale)
	half := width / 2
	squareStep(grid, r+half, c+half, width, scale)

	if half == 1 {
		return
	}

	newScale := scale * 1.95
	diamondSq(grid, r, c, half+1, newScale)
	diamondSq(grid, r, c+half, half+1, newScale)
	diamondSq(grid, r+half, c, half+1, newScale)
	diamondSq(grid, r+half, c+half, half+1, newScale)
}

func smoothMap(grid [][]float64, width int) {
	for r := 0; r < width; r++ {
		for c := 0; c < width; c++ {
			avg := grid[r][c]
			count := 1

			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if nr < 0 || nc < 0 || nr >= width || nc >= width {
						continue
					}
					avg += grid[nr][nc]
					count++
				}
			}

			grid[r][c] = avg / float64(count)
		}
	}
}

// warpToIsland lowers the grid toward the edges so the landmass sits in
// open ocean.
func warpToIsland(grid [][]float64, width int) {
	const islandSize = 0.96
	for r := 0; r < width; r++ {
		for c := 0; c < width; c++ {
			xd := float64(c)/float64(width-1)*2 - 1
			yd := float64(r)/float64(width)*2 - 1
			grid[r][c] += islandSize - math.Sqrt(xd*xd+yd*yd)*3
		}
	}
}

func generateIsland(width int, nw, ne, sw, se float64) Map {
	grid := make([][]float64, width)
	for r := range grid {
		grid[r] = make([]float64, width)
	}

	grid[0][0] = nw
	grid[0][width-1] = ne
	grid[width-1][0] = sw
	grid[width-1][width-1] = se

	diamondSq(grid, 0, 0, width, 1/float64(width))
	smoothMap(grid, width)
	warpToIsland(grid, width)

	m := make(Map, width)
	for r := 0; r < width; r++ {
		row := make([]Tile, width)
		for c := 0; c < width; c++ {
			row[c] = valToTerrain(grid[r][c])
		}
		m[r] = row
	}

	return m
}

// GenerateStdIsland builds a 65x65 island with random corner heights.
func GenerateStdIsland() Map {
	return generateIsland(65, dice.Float(), dice.Float(), dice.Float(), dice.Float())
}

// GenerateAtoll builds a large, mostly sunken ring island.
func GenerateAtoll() Map {
	return generateIsland(129, -1.0, -0.75, -0.5, -1.0)
}

// GenerateMountainousIsland biases the corners high; the result has a
// good chance of a central range.
func GenerateMountainousIsland() Map {
	return generateIsland(65, 1.25, 1.75, 1.5, 1.0)
}

// GenerateVolcanicIsland retries the mountainous generator until it has
// a respectable snow-peak block, carves a lava crater at its centre and
// pours a handful of lava flows down to the sea.
func GenerateVolcanicIsland() Map {
	var island Map
	var peaks []core.Loc
	for {
		island = GenerateMountainousIsland()
		peaks = LargestContiguousBlock(island, SnowPeak)
		if len(peaks) > 20 {
			break
		}
	}

	minR, maxR := island.Height(), 0
	minC, maxC := island.Width(), 0
	for _, sq := range peaks {
		if sq.Row < minR {
			minR = sq.Row
		}
		if sq.Row > maxR {
			maxR = sq.Row
		}
		if sq.Col < minC {
			minC = sq.Col
		}
		if sq.Col > maxC {
			maxC = sq.Col
		}
	}
	centerR := (minR + maxR) / 2
	centerC := (minC + maxC) / 2

	for r := centerR - 1; r <= centerR+1; r++ {
		for c := centerC - 1; c <= centerC+1; c++ {
			if island.InBounds(r, c) {
				island.Set(r, c, Of(Lava))
			}
		}
	}

	flows := dice.Range(3, 6) + 2
	for i := 0; i < flows; i++ {
		drawLavaFlow(island, centerR, centerC)
	}

	return island
}

func ptOnLine(r, c, d, angle float64) (int, int) {
	return int(r + d*math.Sin(angle)), int(c + d*math.Cos(angle))
}

func drawLavaFlow(m Map, startR, startC int) {
	angle := dice.Float() * 2 * math.Pi
	r := float64(startR)
	c := float64(startC)
	d := 0.0

	for {
		nextR, nextC := ptOnLine(r, c, d, angle)
		if !m.InBounds(nextR, nextC) {
			break
		}
		if m.At(nextR, nextC).Kind == DeepWater {
			break
		}
		m.Set(nextR, nextC, Of(Lava))

		// Widen the flow a touch on either side of the line.
		nextR, nextC = ptOnLine(r, c, d, angle-0.05)
		if m.InBounds(nextR, nextC) {
			m.Set(nextR, nextC, Of(Lava))
		}
		nextR, nextC = ptOnLine(r, c, d, angle+0.05)
		if m.InBounds(nextR, nextC) {
			m.Set(nextR, nextC, Of(Lava))
		}

		d++
		angle += dice.Float()*0.1 - 0.05
	}
}
