package content

import (
	"testing"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
	"github.com/lixenwraith/yarrl/game"
	"github.com/lixenwraith/yarrl/item"
	"github.com/lixenwraith/yarrl/world"
)

func TestGenerateWorld(t *testing.T) {
	dice.Reseed(5)
	gs := game.NewGameState("Mary Read", game.Swab, nil)
	GenerateWorld(gs)

	if gs.Map.Height() != WorldHeight || gs.Map.Width() != WorldWidth {
		t.Fatalf("Expected a %dx%d world, got %dx%d",
			WorldHeight, WorldWidth, gs.Map.Height(), gs.Map.Width())
	}
	for c := 0; c < WorldWidth; c++ {
		if gs.Map.At(0, c).Kind != world.WorldEdge ||
			gs.Map.At(WorldHeight-1, c).Kind != world.WorldEdge {
			t.Fatal("Expected the world rimmed with edge tiles")
		}
	}

	if gs.Player.Row != 5 || gs.Player.Col != 5 {
		t.Errorf("Expected the player at 5,5, got %d,%d", gs.Player.Row, gs.Player.Col)
	}
	if !gs.Player.OnShip || gs.Player.Bearing != 6 {
		t.Error("Expected the player at the helm, bearing southeast")
	}
	s, ok := gs.Ships[core.Loc{Row: 5, Col: 5}]
	if !ok {
		t.Fatal("Expected the keelboat under the player")
	}
	if s.Name != gs.PlayerShip {
		t.Errorf("Expected the keelboat named %q, got %q", gs.PlayerShip, s.Name)
	}

	if gs.PirateLord == "" || gs.PirateLordShip == "" {
		t.Error("Expected the lord and their ship named")
	}
	if gs.Notes[1] == "" {
		t.Error("Expected the first note's text set")
	}

	land := 0
	for r := 0; r < WorldHeight; r++ {
		for c := 0; c < WorldWidth; c++ {
			if world.LandKinds()[gs.Map.At(r, c).Kind] {
				land++
			}
		}
	}
	if land < 500 {
		t.Errorf("Expected islands in the strait, only %d land squares", land)
	}

	if len(gs.NPCs) == 0 {
		t.Error("Expected creatures in the strait")
	}

	macguffins := 0
	patches := 0
	for _, pile := range gs.Items.Piles {
		for _, i := range pile {
			if i.Type == item.MacGuffin {
				macguffins++
				if !i.Hidden {
					t.Error("Expected the chest buried")
				}
			}
			if i.Name == "magic eye patch" {
				patches++
			}
		}
	}
	if macguffins != 1 {
		t.Errorf("Expected exactly one chest, got %d", macguffins)
	}
	if patches != 1 {
		t.Errorf("Expected exactly one enchanted eye patch, got %d", patches)
	}
}

func TestGenerateWorldSeedsFog(t *testing.T) {
	dice.Reseed(17)
	gs := game.NewGameState("Anne Bonny", game.Seadog, nil)
	GenerateWorld(gs)

	n := len(gs.Weather.Systems)
	if n < 2 || n > 4 {
		t.Fatalf("Expected 2 to 4 fog systems, got %d", n)
	}
	for _, s := range gs.Weather.Systems {
		if s.Radius < 8 || s.Radius > 17 {
			t.Errorf("Expected a fog radius in 8..17, got %d", s.Radius)
		}
		if s.Intensity < 0.3 || s.Intensity >= 0.7 {
			t.Errorf("Expected a fog intensity in [0.3, 0.7), got %f", s.Intensity)
		}
	}

	clouded := false
	for turn := 0; turn < 10 && !clouded; turn++ {
		gs.Weather.CalcClouds(gs.Map)
		clouded = len(gs.Weather.Clouds) > 0
	}
	if !clouded {
		t.Error("Expected fog banks to cloud some squares")
	}
}

func TestValleySpot(t *testing.T) {
	dice.Reseed(21)
	m := world.NewMap(7, 7, world.Mountain)
	m.Set(3, 3, world.Of(world.Tree))

	loc, ok := valleySpot(m, 0, 0, 10, 20)
	if !ok {
		t.Fatal("Expected the enclosed tree pocket found")
	}
	if loc.Row != 13 || loc.Col != 23 {
		t.Errorf("Expected the valley square at 13,23, got %d,%d", loc.Row, loc.Col)
	}

	if _, ok := valleySpot(m, 5, 5, 10, 20); ok {
		t.Error("Expected no valley when the pocket sits outside the blit corner")
	}
}

func TestPirateLordName(t *testing.T) {
	dice.Reseed(9)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		name := pirateLordName()
		if name == "" {
			t.Fatal("Expected a name")
		}
		seen[name] = true
	}
	if len(seen) < 2 {
		t.Error("Expected some variety in lord names")
	}
}

func TestAddCacheHidesLoot(t *testing.T) {
	dice.Reseed(13)
	items := item.NewTable()
	for i := 0; i < 40; i++ {
		addCache(items, 3, 3)
	}
	if items.CountAt(3, 3) != 0 {
		t.Error("Expected cached loot to stay out of sight")
	}
	if !items.AnyHidden(core.Loc{Row: 3, Col: 3}) {
		t.Error("Expected forty caches to bury something")
	}
}
