package world

import (
	"testing"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
)

func TestMapBounds(t *testing.T) {
	m := NewMap(10, 20, DeepWater)

	if m.Height() != 10 || m.Width() != 20 {
		t.Errorf("Expected 10x20 map, got %dx%d", m.Height(), m.Width())
	}

	cases := []struct {
		r, c int
		want bool
	}{
		{0, 0, true},
		{9, 19, true},
		{-1, 5, false},
		{5, -1, false},
		{10, 5, false},
		{5, 20, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.r, c.c); got != c.want {
			t.Errorf("InBounds(%d,%d): expected %v, got %v", c.r, c.c, c.want, got)
		}
	}
}

func TestPassability(t *testing.T) {
	blocked := []Kind{Wall, Blank, WorldEdge, Mountain, SnowPeak, Gate, WoodWall, Window}
	for _, k := range blocked {
		if Of(k).Passable() {
			t.Errorf("Expected kind %d to block movement", k)
		}
	}
	open := []Kind{Water, DeepWater, Grass, Tree, Dirt, Sand, Lava, FirePit, StoneFloor}
	for _, k := range open {
		if !Of(k).Passable() {
			t.Errorf("Expected kind %d to be passable", k)
		}
	}
}

func TestSightClearance(t *testing.T) {
	opaque := []Kind{Wall, Blank, Mountain, SnowPeak, WoodWall}
	for _, k := range opaque {
		if Of(k).Clear() {
			t.Errorf("Expected kind %d to block sight", k)
		}
	}
	// Trees attenuate vision in the FOV pass but do not block it here.
	if !Of(Tree).Clear() {
		t.Error("Expected trees to pass sight")
	}
	if !Of(Gate).Clear() {
		t.Error("Expected gates to pass sight")
	}
}

func TestGenerateStdIslandShape(t *testing.T) {
	dice.Reseed(7)
	m := GenerateStdIsland()

	if m.Height() != 65 || m.Width() != 65 {
		t.Fatalf("Expected 65x65 island, got %dx%d", m.Height(), m.Width())
	}

	// The radial warp sinks the corners into ocean.
	for _, sq := range []core.Loc{{Row: 0, Col: 0}, {Row: 0, Col: 64}, {Row: 64, Col: 0}, {Row: 64, Col: 64}} {
		k := m.At(sq.Row, sq.Col).Kind
		if k != DeepWater && k != Water {
			t.Errorf("Expected ocean at corner (%d,%d), got kind %d", sq.Row, sq.Col, k)
		}
	}

	// There should be some land somewhere.
	land := 0
	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			switch m.At(r, c).Kind {
			case Sand, Grass, Tree, Mountain, SnowPeak:
				land++
			}
		}
	}
	if land == 0 {
		t.Error("Expected the island generator to produce land")
	}
}

func TestGenerateVolcanicIslandHasLava(t *testing.T) {
	dice.Reseed(11)
	m := GenerateVolcanicIsland()

	lava := 0
	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			if m.At(r, c).Kind == Lava {
				lava++
			}
		}
	}
	if lava < 9 {
		t.Errorf("Expected at least a 3x3 crater of lava, got %d tiles", lava)
	}
}

func TestGenerateCaveConnected(t *testing.T) {
	dice.Reseed(3)
	m := GenerateCave(40, 30)

	if m.Height() != 30 || m.Width() != 40 {
		t.Fatalf("Expected 30x40 cave, got %dx%d", m.Height(), m.Width())
	}

	// Border must be solid.
	for c := 0; c < m.Width(); c++ {
		if m.At(0, c).Kind != Wall || m.At(m.Height()-1, c).Kind != Wall {
			t.Fatal("Expected a walled cave border")
		}
	}

	// Every floor square must be in one connected block.
	floors := 0
	var start core.Loc
	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			if m.At(r, c).Kind == StoneFloor {
				if floors == 0 {
					start = core.Loc{Row: r, Col: c}
				}
				floors++
			}
		}
	}
	if floors == 0 {
		t.Fatal("Expected the cave to contain floor")
	}
	block := FloodFill(m, StoneFloor, start.Row, start.Col)
	if len(block) != floors {
		t.Errorf("Expected one connected cave of %d floors, largest block has %d", floors, len(block))
	}
}

func TestSeacoastBordersLand(t *testing.T) {
	dice.Reseed(5)
	m := GenerateStdIsland()
	coast := Seacoast(m)

	if len(coast) == 0 {
		t.Fatal("Expected the island to have a coastline")
	}
	for _, sq := range coast {
		k := m.At(sq.Row, sq.Col).Kind
		if k == Water || k == DeepWater {
			t.Errorf("Expected coast square (%d,%d) to be land, got kind %d", sq.Row, sq.Col, k)
		}
	}
}

func TestLargestContiguousBlock(t *testing.T) {
	m := NewMap(10, 10, DeepWater)
	// Two sand blocks, sizes 3 and 5.
	for _, sq := range []core.Loc{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}} {
		m.Set(sq.Row, sq.Col, Of(Sand))
	}
	for _, sq := range []core.Loc{{Row: 7, Col: 7}, {Row: 7, Col: 8}, {Row: 8, Col: 7}, {Row: 8, Col: 8}, {Row: 6, Col: 8}} {
		m.Set(sq.Row, sq.Col, Of(Sand))
	}

	best := LargestContiguousBlock(m, Sand)
	if len(best) != 5 {
		t.Errorf("Expected largest block of 5, got %d", len(best))
	}
}

func TestHiddenValleys(t *testing.T) {
	m := NewMap(9, 9, Mountain)
	// A 2-tile tree pocket sealed by mountains.
	m.Set(4, 4, Of(Tree))
	m.Set(4, 5, Of(Tree))

	valleys := HiddenValleys(m)
	if len(valleys) != 1 {
		t.Fatalf("Expected one hidden valley, got %d", len(valleys))
	}
	if len(valleys[0]) != 2 {
		t.Errorf("Expected a 2-tile valley, got %d", len(valleys[0]))
	}

	// Breach the wall: no longer hidden.
	m.Set(4, 6, Of(Grass))
	if valleys := HiddenValleys(m); len(valleys) != 0 {
		t.Errorf("Expected no valley after breaching the wall, got %d", len(valleys))
	}
}
