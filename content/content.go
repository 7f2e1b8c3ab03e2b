// Package content builds a fresh voyage: the strait and its islands,
// the wrecks and hidden caches, the creatures, and the clue chain that
// leads to the pirate lord's hoard.
package content

import (
	"fmt"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
	"github.com/lixenwraith/yarrl/game"
	"github.com/lixenwraith/yarrl/item"
	"github.com/lixenwraith/yarrl/ship"
	"github.com/lixenwraith/yarrl/weather"
	"github.com/lixenwraith/yarrl/world"
)

// World dimensions, in squares.
const (
	WorldHeight = 150
	WorldWidth  = 250
)

var lordFirstNames = []string{
	"Alejo", "Bessie", "Crawford", "Delilah", "Ezekiel",
	"Hannah", "Jacquotte", "Mordecai", "Okeke", "Siobhan",
}

var lordEpithets = []string{
	"the Black", "the Cruel", "Three-Fingers", "the Gold-Toothed",
	"Squid-Eye", "the Devout", "Half-Hanged", "Rumbelly",
	"the Unsinkable", "Dead-Reckoning",
}

func pirateLordName() string {
	first := lordFirstNames[dice.Intn(len(lordFirstNames))]
	epithet := lordEpithets[dice.Intn(len(lordEpithets))]
	return fmt.Sprintf("%s %s", first, epithet)
}

func initializeMap() world.Map {
	m := world.NewMap(WorldHeight, WorldWidth, world.DeepWater)
	for c := 0; c < WorldWidth; c++ {
		m.Set(0, c, world.Of(world.WorldEdge))
		m.Set(WorldHeight-1, c, world.Of(world.WorldEdge))
	}
	for r := 0; r < WorldHeight; r++ {
		m.Set(r, 0, world.Of(world.WorldEdge))
		m.Set(r, WorldWidth-1, world.Of(world.WorldEdge))
	}
	return m
}

// blitIsland copies an island onto the world so that the island square
// (fromR, fromC) lands at world square (atR, atC).
func blitIsland(m world.Map, island world.Map, fromR, fromC, atR, atC int) {
	for r := fromR; r < island.Height(); r++ {
		for c := fromC; c < island.Width(); c++ {
			wr := atR + r - fromR
			wc := atC + c - fromC
			if wr < 1 || wr >= WorldHeight-1 || wc < 1 || wc >= WorldWidth-1 {
				continue
			}
			m.Set(wr, wc, island.At(r, c))
		}
	}
}

func addHidden(items *item.Table, row, col int, name string) {
	i, ok := item.ByName(name)
	if !ok {
		return
	}
	i.Hidden = true
	items.Add(row, col, i)
}

// addCache buries a small stash of loot on a square. What's in it, if
// anything, is up to the dice.
func addCache(items *item.Table, row, col int) {
	if dice.Float() < 0.5 {
		for n := dice.Intn(3); n > 0; n-- {
			addHidden(items, row, col, "draught of rum")
		}
	}
	if dice.Float() < 0.5 {
		for n := dice.Intn(6); n > 0; n-- {
			addHidden(items, row, col, "lead ball")
		}
	}
	if dice.Float() < 0.333 {
		for n := dice.Intn(12); n > 0; n-- {
			addHidden(items, row, col, "doubloon")
		}
	}
	if dice.Float() < 0.10 {
		addHidden(items, row, col, "rusty cutlass")
	}
}

// addShipwreck strews a wreck along an island's coast: the deck with
// the lost ship's name, a fallen mast, scattered hull parts, and often
// a cache in the debris. offR and offC translate island coordinates to
// world coordinates for the cache. The deck's world square is returned
// so clues can point at a particular wreck.
func addShipwreck(m world.Map, coast []core.Loc, items *item.Table,
	offR, offC int, name string) core.Loc {
	centre := coast[dice.Intn(len(coast))]
	m.Set(centre.Row, centre.Col, world.ShipwreckTile(ship.DeckAngle, name))

	var mastCh rune
	switch dice.Roll(3, 1, 0) {
	case 1:
		mastCh = '|'
	case 2:
		mastCh = '\\'
	default:
		mastCh = '/'
	}
	mastDR, mastDC := core.RandAdj()
	if m.InBounds(centre.Row+mastDR, centre.Col+mastDC) {
		m.Set(centre.Row+mastDR, centre.Col+mastDC, world.Glyph(world.Mast, mastCh))
	}

	for {
		dr, dc := core.RandAdj()
		if dr == mastDR && dc == mastDC {
			continue
		}
		partCh := ship.DeckStraight
		if dice.Roll(2, 1, 0) == 1 {
			partCh = ship.DeckAngle
		}
		if m.InBounds(centre.Row+dr, centre.Col+dc) {
			m.Set(centre.Row+dr, centre.Col+dc, world.Glyph(world.Mast, partCh))
		}
		if dice.Float() < 0.5 {
			addCache(items, centre.Row+dr+offR, centre.Col+dc+offC)
		}
		break
	}

	// A bow fragment flung a little further out, sometimes.
	dr, dc := core.RandAdj()
	bows := []rune{ship.BowNE, ship.BowNW, ship.BowSE, ship.BowSW}
	if r := dice.Roll(4, 1, 0); r < 4 {
		if m.InBounds(centre.Row+dr*2, centre.Col+dc*2) {
			m.Set(centre.Row+dr*2, centre.Col+dc*2, world.Glyph(world.Mast, bows[r-1]))
		}
	}

	return core.Loc{Row: centre.Row + offR, Col: centre.Col + offC}
}

// randLandLoc hunts for a walkable land square inside a world rect that
// no creature holds yet.
func randLandLoc(gs *game.GameState, r0, c0, r1, c1 int) (core.Loc, bool) {
	land := world.LandKinds()
	for tries := 0; tries < 500; tries++ {
		r := dice.Range(r0, r1)
		c := dice.Range(c0, c1)
		if !gs.Map.InBounds(r, c) || !land[gs.Map.At(r, c).Kind] {
			continue
		}
		loc := core.Loc{Row: r, Col: c}
		if _, taken := gs.NPCs[loc]; taken {
			continue
		}
		return loc, true
	}
	return core.Loc{}, false
}

func randWaterLoc(gs *game.GameState, r0, c0, r1, c1 int) (core.Loc, bool) {
	for tries := 0; tries < 500; tries++ {
		r := dice.Range(r0, r1)
		c := dice.Range(c0, c1)
		if !gs.Map.InBounds(r, c) || gs.Map.At(r, c).Kind != world.DeepWater {
			continue
		}
		loc := core.Loc{Row: r, Col: c}
		if _, taken := gs.NPCs[loc]; taken {
			continue
		}
		return loc, true
	}
	return core.Loc{}, false
}

// addWildlife scatters boars and snakes over an island's rect.
func addWildlife(gs *game.GameState, r0, c0, r1, c1 int) {
	for n := dice.Range(4, 9); n > 0; n-- {
		loc, ok := randLandLoc(gs, r0, c0, r1, c1)
		if !ok {
			return
		}
		if dice.Float() < 0.5 {
			gs.NPCs[loc] = game.NewBoar(loc.Row, loc.Col)
		} else {
			gs.NPCs[loc] = game.NewSnake(loc.Row, loc.Col)
		}
	}
}

// addPirateCamp sets an old fire pit with a band of pirates loitering
// around it. The pit anchors them; they won't chase far from camp.
func addPirateCamp(gs *game.GameState, r0, c0, r1, c1 int) {
	camp, ok := randLandLoc(gs, r0, c0, r1, c1)
	if !ok {
		return
	}
	gs.Map.Set(camp.Row, camp.Col, world.Of(world.OldFirePit))
	addCache(gs.Items, camp.Row, camp.Col)

	for n := dice.Range(2, 5); n > 0; n-- {
		loc, found := randLandLoc(gs, camp.Row-4, camp.Col-4, camp.Row+5, camp.Col+5)
		if !found {
			return
		}
		gs.NPCs[loc] = game.NewPirate(loc.Row, loc.Col, camp)
	}
}

func addSharks(gs *game.GameState, count int) {
	for n := 0; n < count; n++ {
		if loc, ok := randWaterLoc(gs, 1, 1, WorldHeight-1, WorldWidth-1); ok {
			gs.NPCs[loc] = game.NewShark(loc.Row, loc.Col)
		}
	}
}

func addMerfolk(gs *game.GameState, r0, c0, r1, c1 int, count int) {
	for n := 0; n < count; n++ {
		if loc, ok := randWaterLoc(gs, r0, c0, r1, c1); ok {
			gs.NPCs[loc] = game.NewMerfolk(loc.Row, loc.Col)
		}
	}
}

// macguffinSpot picks a square on an island for the buried chest: any
// land square well inside the coast.
func macguffinSpot(gs *game.GameState, r0, c0, r1, c1 int) core.Loc {
	if loc, ok := randLandLoc(gs, r0+5, c0+5, r1-5, c1-5); ok {
		return loc
	}
	if loc, ok := randLandLoc(gs, r0, c0, r1, c1); ok {
		return loc
	}
	return core.Loc{Row: (r0 + r1) / 2, Col: (c0 + c1) / 2}
}

// valleySpot picks a square inside one of an island's hidden valleys,
// translated to world coordinates for an island blitted so that island
// square (fromR, fromC) lands at world square (atR, atC).
func valleySpot(island world.Map, fromR, fromC, atR, atC int) (core.Loc, bool) {
	var spots []core.Loc
	for _, valley := range world.HiddenValleys(island) {
		for _, sq := range valley {
			if sq.Row < fromR || sq.Col < fromC {
				continue
			}
			wr := atR + sq.Row - fromR
			wc := atC + sq.Col - fromC
			if wr >= 1 && wr < WorldHeight-1 && wc >= 1 && wc < WorldWidth-1 {
				spots = append(spots, core.Loc{Row: wr, Col: wc})
			}
		}
	}
	if len(spots) == 0 {
		return core.Loc{}, false
	}
	return spots[dice.Intn(len(spots))], true
}

// addFog scatters fog banks over the strait.
func addFog(gs *game.GameState) {
	systems := dice.Range(2, 5)
	for i := 0; i < systems; i++ {
		row := dice.Range(20, WorldHeight-20)
		col := dice.Range(20, WorldWidth-20)
		radius := dice.Range(8, 18)
		intensity := 0.3 + dice.Float()*0.4
		gs.Weather.Systems = append(gs.Weather.Systems,
			weather.NewSystem(row, col, radius, intensity))
	}
	gs.Weather.CalcClouds(gs.Map)
}

// GenerateWorld lays out the Obstreperous Strait and everything in it,
// then sets the player adrift at its northwest corner.
func GenerateWorld(gs *game.GameState) {
	gs.Map = initializeMap()

	gs.PirateLord = pirateLordName()
	gs.PirateLordShip = ship.RandomName()
	gs.PlayerShip = ship.RandomName()
	gs.StarterClue = dice.Intn(2)

	// The volcanic island fills the northwest quadrant. Its nearest
	// clear corner lands at the player's start so the first view is
	// open water with the island looming southeast.
	volcano := world.GenerateVolcanicIsland()
	nwR, nwC := world.NearestClearNW(volcano)
	coast := world.Seacoast(volcano)
	firstCache := addShipwreck(volcano, coast, gs.Items, 5-nwR, 5-nwC, ship.RandomName())
	blitIsland(gs.Map, volcano, nwR, nwC, 5, 5)
	volcanoR1 := 5 + volcano.Height() - nwR
	volcanoC1 := 5 + volcano.Width() - nwC

	// The atoll sits across the strait to the east; the pirate lord's
	// ship went down on its reef.
	atoll := world.GenerateAtoll()
	atollCoast := world.Seacoast(atoll)
	lordWreck := addShipwreck(atoll, atollCoast, gs.Items, 2, 100, gs.PirateLordShip)
	for i := 0; i < 2; i++ {
		addShipwreck(atoll, atollCoast, gs.Items, 2, 100, ship.RandomName())
	}
	blitIsland(gs.Map, atoll, 0, 0, 2, 100)
	atollR1 := 2 + atoll.Height()
	atollC1 := 100 + atoll.Width()

	// A quieter island in the south hides the hoard itself.
	southern := world.GenerateStdIsland()
	southCoast := world.Seacoast(southern)
	addShipwreck(southern, southCoast, gs.Items, 80, 20, ship.RandomName())
	blitIsland(gs.Map, southern, 0, 0, 80, 20)
	southR1 := 80 + southern.Height()
	southC1 := 20 + southern.Width()

	// The clue chain. A first clue leads to a cache on the volcanic
	// island holding a note that names the lord's lost ship. Debris by
	// that wreck hides the enchanted eye patch and a map with an X on
	// the southern island. Only a searcher wearing the patch turns up
	// the chest.
	noteCache := firstCache
	if loc, ok := randLandLoc(gs, 10, 10, volcanoR1, volcanoC1); ok {
		noteCache = loc
	}
	if loc, ok := valleySpot(volcano, nwR, nwC, 5, 5); ok {
		noteCache = loc
	}
	addCache(gs.Items, noteCache.Row, noteCache.Col)
	note := item.NewNote(1)
	note.Hidden = true
	gs.Items.Add(noteCache.Row, noteCache.Col, note)
	gs.Notes[1] = item.NoteText(gs.PirateLordShip)
	gs.NoteCount = 1

	xSpot := macguffinSpot(gs, 80, 20, southR1, southC1)
	macguffin := item.NewMacguffin(gs.PirateLord)
	gs.Items.Add(xSpot.Row, xSpot.Col, macguffin)

	patch, _ := item.ByName("magic eye patch")
	patch.Hidden = true
	gs.Items.Add(lordWreck.Row, lordWreck.Col, patch)
	lordMap := item.NewTreasureMap(core.Loc{Row: 80, Col: 20}, xSpot, 2)
	lordMap.Hidden = true
	gs.Items.Add(lordWreck.Row, lordWreck.Col, lordMap)

	// Creatures.
	addWildlife(gs, 5, 5, volcanoR1, volcanoC1)
	addWildlife(gs, 80, 20, southR1, southC1)
	addPirateCamp(gs, 5, 5, volcanoR1, volcanoC1)
	addPirateCamp(gs, 80, 20, southR1, southC1)
	addSharks(gs, 12)
	addMerfolk(gs, 2, 90, atollR1+10, atollC1+10, 6)

	addFog(gs)

	// The player, their keelboat, and the clue that starts it all.
	gs.Player.OnShip = true
	gs.Player.Bearing = 6
	gs.Player.Wheel = 0
	gs.Player.Row = 5
	gs.Player.Col = 5

	if gs.StarterClue == 0 {
		startMap := item.NewTreasureMap(
			core.Loc{Row: noteCache.Row - 10, Col: noteCache.Col - 10}, noteCache, 1)
		gs.Player.Inventory.Add(startMap)
	}

	s := ship.New(gs.PlayerShip)
	s.Row = gs.Player.Row
	s.Col = gs.Player.Col
	s.Bearing = 6
	s.Wheel = 0
	s.UpdateLocInfo()
	gs.Ships[core.Loc{Row: s.Row, Col: s.Col}] = s
}
