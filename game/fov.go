package game

import (
	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/ship"
	"github.com/lixenwraith/yarrl/world"
)

// actualTile is what the player sees on a visible square: the top item
// if one is showing, otherwise any creature, otherwise the terrain.
func (gs *GameState) actualTile(r, c int) world.Tile {
	if gs.Items.CountAt(r, c) > 0 {
		i := gs.Items.PeekTop(r, c)
		if !i.Hidden {
			return world.ThingTile(i.Color, i.Symbol)
		}
		return gs.Map.At(r, c)
	}
	if npc, ok := gs.NPCs[core.Loc{Row: r, Col: c}]; ok {
		return world.ThingTile(npc.Color, npc.Symbol)
	}
	return gs.Map.At(r, c)
}

// markVisible casts a Bresenham beam from the player to a view-edge
// square, filling in every square the beam crosses. Sight stops at the
// first opaque square, which is itself shown. Trees do not block the
// beam but each one shortens it by three squares.
func (gs *GameState) markVisible(r2, c2 int, vm [][]world.Tile, height, width int) {
	r1, c1 := gs.Player.Row, gs.Player.Col
	r, c := r1, c1
	errAcc := 0

	rStep, deltaR := 1, r2-r
	if deltaR < 0 {
		deltaR = -deltaR
		rStep = -1
	}
	cStep, deltaC := 1, c2-c
	if deltaC < 0 {
		deltaC = -deltaC
		cStep = -1
	}

	rEnd, cEnd := r2, c2

	if deltaC <= deltaR {
		criterion := deltaR / 2
		for {
			if rStep > 0 && r >= rEnd+rStep {
				return
			} else if rStep < 0 && r <= rEnd+rStep {
				return
			}
			if !gs.Map.InBounds(r, c) {
				return
			}

			vm[r-r1+height/2][c-c1+width/2] = gs.actualTile(r, c)
			gs.WorldSeen[core.Loc{Row: r, Col: c}] = true

			tile := gs.Map.At(r, c)
			if !tile.Clear() {
				return
			}
			if tile.Kind == world.Tree && !(r == r1 && c == c1) {
				if rStep > 0 {
					rEnd -= 3
				} else {
					rEnd += 3
				}
			}

			r += rStep
			errAcc += deltaC
			if errAcc > criterion {
				errAcc -= deltaR
				c += cStep
			}
		}
	}

	criterion := deltaC / 2
	for {
		if cStep > 0 && c >= cEnd+cStep {
			return
		} else if cStep < 0 && c <= cEnd+cStep {
			return
		}
		if !gs.Map.InBounds(r, c) {
			return
		}

		vm[r-r1+height/2][c-c1+width/2] = gs.actualTile(r, c)
		gs.WorldSeen[core.Loc{Row: r, Col: c}] = true

		tile := gs.Map.At(r, c)
		if !tile.Clear() {
			return
		}
		if tile.Kind == world.Tree && !(r == r1 && c == c1) {
			if cStep > 0 {
				cEnd -= 3
			} else {
				cEnd += 3
			}
		}

		c += cStep
		errAcc += deltaR
		if errAcc > criterion {
			errAcc -= deltaC
			r += rStep
		}
	}
}

// paintShip draws a ship's three glyphs over visible squares. vmRow and
// vmCol are the view coordinates of the deck.
func paintShip(vm [][]world.Tile, vmRow, vmCol int, s *ship.Ship) {
	vm[vmRow][vmCol] = world.Glyph(world.ShipPart, s.DeckCh)

	bowRow := vmRow + s.BowRow - s.Row
	bowCol := vmCol + s.BowCol - s.Col
	aftRow := vmRow + s.AftRow - s.Row
	aftCol := vmCol + s.AftCol - s.Col

	if bowRow >= 0 && bowRow < len(vm) && bowCol >= 0 && bowCol < len(vm[0]) &&
		vm[bowRow][bowCol].Kind != world.Blank {
		vm[bowRow][bowCol] = world.Glyph(world.ShipPart, s.BowCh)
	}
	if aftRow >= 0 && aftRow < len(vm) && aftCol >= 0 && aftCol < len(vm[0]) &&
		vm[aftRow][aftCol].Kind != world.Blank {
		vm[aftRow][aftCol] = world.Glyph(world.ShipPart, s.AftCh)
	}
}

// Ships span three squares, so they are simpler to stamp over the
// finished view than to fold into the beamcast.
func (gs *GameState) paintShips(vm [][]world.Tile, height, width int) {
	for r := -height / 2; r < height/2; r++ {
		for c := -width / 2; c < width/2; c++ {
			if !gs.Map.InBounds(gs.Player.Row+r, gs.Player.Col+c) {
				continue
			}
			loc := core.Loc{Row: gs.Player.Row + r, Col: gs.Player.Col + c}
			if vm[r+height/2][c+width/2].Kind == world.Blank {
				continue
			}
			if s, ok := gs.Ships[loc]; ok {
				paintShip(vm, r+height/2, c+width/2, s)
			}
		}
	}
}

// paintClouds blots out visible squares sitting under a weather system.
func (gs *GameState) paintClouds(vm [][]world.Tile, height, width int) {
	if gs.Weather == nil {
		return
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if vm[r][c].Kind == world.Blank {
				continue
			}
			mr := gs.Player.Row + r - height/2
			mc := gs.Player.Col + c - width/2
			if gs.Weather.CloudAt(mr, mc) {
				vm[r][c] = world.ThingTile(core.Grey, '#')
			}
		}
	}
}

// CalcVMatrix builds the visible portion of the world centered on the
// player. Beams are cast only to the view's perimeter; for a view this
// size that covers every square without visible blind spots.
func (gs *GameState) CalcVMatrix(height, width int) [][]world.Tile {
	vm := make([][]world.Tile, height)
	for r := range vm {
		vm[r] = make([]world.Tile, width)
	}

	for col := 0; col < width; col++ {
		gs.markVisible(gs.Player.Row-height/2, gs.Player.Col+col-width/2, vm, height, width)
		gs.markVisible(gs.Player.Row+height-1-height/2, gs.Player.Col+col-width/2, vm, height, width)
	}
	for row := 0; row < height; row++ {
		gs.markVisible(gs.Player.Row+row-height/2, gs.Player.Col-width/2, vm, height, width)
		gs.markVisible(gs.Player.Row+row-height/2, gs.Player.Col+width-1-width/2, vm, height, width)
	}

	gs.paintShips(vm, height, width)
	gs.paintClouds(vm, height, width)

	switch {
	case gs.Player.OnShip:
		vm[height/2][width/2] = world.Player(core.Brown)
	case gs.Map.At(gs.Player.Row, gs.Player.Col).Kind == world.DeepWater &&
		gs.Ships[gs.playerLoc()] == nil:
		vm[height/2][width/2] = world.Player(core.LightBlue)
	default:
		vm[height/2][width/2] = world.Player(core.White)
	}

	return vm
}
