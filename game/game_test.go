package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
	"github.com/lixenwraith/yarrl/item"
	"github.com/lixenwraith/yarrl/ship"
	"github.com/lixenwraith/yarrl/world"
)

func mustItem(t *testing.T, name string) item.Item {
	t.Helper()
	i, ok := item.ByName(name)
	if !ok {
		t.Fatalf("Unknown item %q", name)
	}
	return i
}

func shipAt(gs *GameState, row, col, bearing int) *ship.Ship {
	s := ship.New("Naughty Mermaid")
	s.Row = row
	s.Col = col
	s.Bearing = bearing
	s.UpdateLocInfo()
	gs.Ships[core.Loc{Row: row, Col: col}] = s
	return s
}

func testState(t *testing.T, kind world.Kind) *GameState {
	t.Helper()
	gs := NewGameState("Ned Low", Swab, nil)
	gs.Map = world.NewMap(20, 20, kind)
	gs.Player.Row = 10
	gs.Player.Col = 10
	return gs
}

func TestStatMod(t *testing.T) {
	cases := []struct{ stat, mod int }{
		{3, -4}, {10, 0}, {11, 0}, {12, 1}, {18, 4},
	}
	for _, c := range cases {
		if got := StatMod(c.stat); got != c.mod {
			t.Errorf("StatMod(%d): expected %d, got %d", c.stat, c.mod, got)
		}
	}
}

func TestNewPirates(t *testing.T) {
	dice.Reseed(17)

	swab := NewSwab("Anne")
	if swab.CurrStamina != swab.MaxStamina {
		t.Errorf("Expected full stamina, got %d of %d", swab.CurrStamina, swab.MaxStamina)
	}
	if _, ok := swab.Inventory.EquippedWeapon(); !ok {
		t.Error("Expected the swab to start with a readied weapon")
	}
	if swab.Dexterity < swab.Constitution {
		t.Errorf("Expected best roll on dexterity: dex %d con %d", swab.Dexterity, swab.Constitution)
	}

	seadog := NewSeadog("Teach")
	if _, ok := seadog.Inventory.EquippedFirearm(); !ok {
		t.Error("Expected the seadog to start with a readied firearm")
	}
	if seadog.Constitution < seadog.Verve {
		t.Errorf("Expected best roll on constitution: con %d verve %d", seadog.Constitution, seadog.Verve)
	}
	if av := seadog.Inventory.TotalArmourValue(); av != 3 {
		t.Errorf("Expected overcoat and tricorn worth 3, got %d", av)
	}
	want := 10 + 3 + StatMod(seadog.Dexterity)
	if want < 0 {
		want = 0
	}
	if seadog.AC != want {
		t.Errorf("Expected AC %d, got %d", want, seadog.AC)
	}
}

func TestPluralize(t *testing.T) {
	cases := []struct{ in, out string }{
		{"doubloon", "doubloons"},
		{"draught of rum", "draughts of rum"},
		{"flask of oil", "flasks of oil"},
		{"box", "boxes"},
	}
	for _, c := range cases {
		if got := pluralize(c.in); got != c.out {
			t.Errorf("pluralize(%q): expected %q, got %q", c.in, c.out, got)
		}
	}
}

func TestMsgHistoryFolding(t *testing.T) {
	gs := testState(t, world.Grass)
	gs.WriteMsg("You splash in the shallow water.")
	gs.WriteMsg("You splash in the shallow water.")
	gs.WriteMsg("You begin to swim.")

	if len(gs.MsgHistory) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(gs.MsgHistory))
	}
	if gs.MsgHistory[0].Text != "You begin to swim." {
		t.Errorf("Expected newest entry first, got %q", gs.MsgHistory[0].Text)
	}
	if gs.MsgHistory[1].Count != 2 {
		t.Errorf("Expected folded count 2, got %d", gs.MsgHistory[1].Count)
	}

	msgs := gs.DrainMsgs()
	if len(msgs) != 3 {
		t.Errorf("Expected 3 queued lines, got %d", len(msgs))
	}
	if len(gs.DrainMsgs()) != 0 {
		t.Error("Expected the queue to be empty after draining")
	}
}

func TestMsgHistoryCap(t *testing.T) {
	gs := testState(t, world.Grass)
	for i := 0; i < MsgHistoryLength+20; i++ {
		gs.WriteMsg(strings.Repeat("x", i+1))
	}
	if len(gs.MsgHistory) != MsgHistoryLength {
		t.Errorf("Expected history capped at %d, got %d", MsgHistoryLength, len(gs.MsgHistory))
	}
}

func TestPlayerTakesDmg(t *testing.T) {
	p := &Player{CurrStamina: 10, MaxStamina: 10}
	if err := playerTakesDmg(p, 3, "burn"); err != nil {
		t.Fatalf("Expected survival, got %v", err)
	}
	if p.CurrStamina != 7 {
		t.Errorf("Expected 7 stamina, got %d", p.CurrStamina)
	}

	err := playerTakesDmg(p, 8, "swimming")
	var end *RunEnd
	if !errors.As(err, &end) {
		t.Fatalf("Expected a run end, got %v", err)
	}
	if end.Outcome != OutcomeDead || end.Cause != "swimming" {
		t.Errorf("Expected death by swimming, got %v %q", end.Outcome, end.Cause)
	}
}

func TestEnvironmentHazards(t *testing.T) {
	gs := testState(t, world.DeepWater)
	gs.Player.CurrStamina = 20
	gs.Player.MaxStamina = 20

	if err := gs.checkEnvironmentHazards(); err != nil {
		t.Fatalf("Expected the swimmer to live, got %v", err)
	}
	if gs.Player.CurrStamina != 18 {
		t.Errorf("Expected swimming to cost 2 stamina, got %d", gs.Player.CurrStamina)
	}

	gs.Player.OnShip = true
	gs.checkEnvironmentHazards()
	if gs.Player.CurrStamina != 18 {
		t.Errorf("Expected no cost aboard ship, got %d", gs.Player.CurrStamina)
	}

	gs.Map.Set(gs.Player.Row, gs.Player.Col, world.Of(world.Lava))
	err := gs.checkEnvironmentHazards()
	var end *RunEnd
	if !errors.As(err, &end) {
		t.Fatalf("Expected lava to end the run, got %v", err)
	}
}

func TestMoveBlocked(t *testing.T) {
	gs := testState(t, world.Grass)
	gs.Map.Set(10, 11, world.Of(world.Mountain))
	turn := gs.Turn

	if err := gs.doMove("E"); err != nil {
		t.Fatalf("Expected no run end, got %v", err)
	}
	if gs.Player.Col != 10 {
		t.Errorf("Expected the player held at col 10, got %d", gs.Player.Col)
	}
	if gs.Turn != turn {
		t.Error("Expected a blocked move to cost no time")
	}
	msgs := gs.DrainMsgs()
	if len(msgs) == 0 || msgs[len(msgs)-1] != "You cannot go that way." {
		t.Errorf("Expected a blocked-move message, got %v", msgs)
	}
}

func TestMoveAndItemMessage(t *testing.T) {
	gs := testState(t, world.Grass)
	gs.Items.Add(10, 11, mustItem(t, "doubloon"))

	if err := gs.doMove("E"); err != nil {
		t.Fatalf("Expected no run end, got %v", err)
	}
	if gs.Player.Col != 11 {
		t.Errorf("Expected the player at col 11, got %d", gs.Player.Col)
	}
	msgs := gs.DrainMsgs()
	found := false
	for _, m := range msgs {
		if m == "You see a doubloon here." {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected an item notice, got %v", msgs)
	}
}

func TestAttackKillScores(t *testing.T) {
	gs := testState(t, world.Grass)
	gs.Player.Strength = 18
	gs.Player.ProfBonus = 4
	start := gs.Player.MaxStamina

	boar := NewBoar(10, 11)
	boar.HP = 1
	boar.AC = 0
	gs.NPCs[core.Loc{Row: 10, Col: 11}] = boar

	gs.doMove("E")

	if _, ok := gs.NPCs[core.Loc{Row: 10, Col: 11}]; ok {
		t.Fatal("Expected the boar slain")
	}
	if gs.Player.Score != boar.Score {
		t.Errorf("Expected score %d, got %d", boar.Score, gs.Player.Score)
	}
	if gs.Player.MaxStamina != start+1 {
		t.Errorf("Expected max stamina %d, got %d", start+1, gs.Player.MaxStamina)
	}
}

func TestChaseClosesDistance(t *testing.T) {
	gs := testState(t, world.Grass)
	boar := NewBoar(10, 14)
	gs.NPCs[core.Loc{Row: 10, Col: 14}] = boar

	boar.Act(gs)

	d := core.Manhattan(boar.Row, boar.Col, 10, 10)
	if d >= 4 {
		t.Errorf("Expected the boar to close in, still at distance %d", d)
	}
	if boar.Row == 10 && boar.Col == 10 {
		t.Error("Expected the boar beside the player, not on top of them")
	}
}

func TestSailDeltaAlternation(t *testing.T) {
	// Bearing 1 is north by northeast: the ship alternates north and
	// northeast moves.
	dr, dc := sailDelta(1, 0, 0)
	if dr != -1 || dc != 0 {
		t.Fatalf("Expected first move north, got %d,%d", dr, dc)
	}
	dr, dc = sailDelta(1, dr, dc)
	if dr != -1 || dc != 1 {
		t.Fatalf("Expected second move northeast, got %d,%d", dr, dc)
	}
	dr, dc = sailDelta(1, dr, dc)
	if dr != -1 || dc != 0 {
		t.Fatalf("Expected third move north again, got %d,%d", dr, dc)
	}

	// Cardinal bearings never alternate.
	for i := 0; i < 3; i++ {
		if dr, dc := sailDelta(4, 0, 1); dr != 0 || dc != 1 {
			t.Fatalf("Expected due east, got %d,%d", dr, dc)
		}
	}
}

func TestSailMovesShipAndPlayer(t *testing.T) {
	gs := testState(t, world.DeepWater)
	s := shipAt(gs, 10, 10, 4)
	s.Anchored = false

	if err := gs.sail(); err != nil {
		t.Fatalf("Expected open water sailing, got %v", err)
	}
	if gs.Player.Row != 10 || gs.Player.Col != 11 {
		t.Errorf("Expected the player carried to 10,11, got %d,%d", gs.Player.Row, gs.Player.Col)
	}
	if _, ok := gs.Ships[core.Loc{Row: 10, Col: 11}]; !ok {
		t.Error("Expected the ship re-keyed to its new deck square")
	}
}

func TestSailAnchored(t *testing.T) {
	gs := testState(t, world.DeepWater)
	shipAt(gs, 10, 10, 4)

	gs.sail()

	if gs.Player.Col != 10 {
		t.Errorf("Expected an anchored ship to hold, player at col %d", gs.Player.Col)
	}
	msgs := gs.DrainMsgs()
	if len(msgs) == 0 || msgs[len(msgs)-1] != "The ship bobs." {
		t.Errorf("Expected bobbing, got %v", msgs)
	}
}

func TestTurnWheelClamp(t *testing.T) {
	gs := testState(t, world.DeepWater)
	s := shipAt(gs, 10, 10, 0)

	gs.turnWheel(1)
	gs.turnWheel(1)
	if s.Wheel != 2 {
		t.Fatalf("Expected wheel at 2, got %d", s.Wheel)
	}
	gs.turnWheel(1)
	if s.Wheel != 2 {
		t.Errorf("Expected the wheel pinned at 2, got %d", s.Wheel)
	}
	msgs := gs.DrainMsgs()
	if msgs[len(msgs)-1] != "The wheel's as far to port as she'll turn" {
		t.Errorf("Expected the hard-over message, got %q", msgs[len(msgs)-1])
	}
}

func TestFOVCenterAndWalls(t *testing.T) {
	gs := testState(t, world.Grass)
	// A wall due east of the player.
	for r := 0; r < 20; r++ {
		gs.Map.Set(r, 12, world.Of(world.Wall))
	}

	vm := gs.CalcVMatrix(FOVHeight, FOVWidth)

	center := vm[FOVHeight/2][FOVWidth/2]
	if center.Kind != world.PlayerTile {
		t.Fatalf("Expected the player at center, got kind %d", center.Kind)
	}
	if center.Color != core.White {
		t.Errorf("Expected a white player marker on land, got %v", center.Color)
	}

	// The wall itself is lit, the square behind it is not.
	if vm[FOVHeight/2][FOVWidth/2+2].Kind != world.Wall {
		t.Error("Expected the wall face visible")
	}
	if vm[FOVHeight/2][FOVWidth/2+3].Kind != world.Blank {
		t.Error("Expected the square behind the wall hidden")
	}
	if !gs.WorldSeen[core.Loc{Row: 10, Col: 12}] {
		t.Error("Expected the wall remembered in the world map")
	}
}

func TestFOVShowsCreatures(t *testing.T) {
	gs := testState(t, world.Grass)
	boar := NewBoar(10, 13)
	gs.NPCs[core.Loc{Row: 10, Col: 13}] = boar

	vm := gs.CalcVMatrix(FOVHeight, FOVWidth)
	tile := vm[FOVHeight/2][FOVWidth/2+3]
	if tile.Kind != world.Thing || tile.Ch != 'b' {
		t.Errorf("Expected the boar's glyph, got kind %d ch %q", tile.Kind, tile.Ch)
	}
}

func TestFOVHidesHiddenItems(t *testing.T) {
	gs := testState(t, world.Grass)
	i := mustItem(t, "doubloon")
	i.Hidden = true
	gs.Items.Add(10, 13, i)

	vm := gs.CalcVMatrix(FOVHeight, FOVWidth)
	tile := vm[FOVHeight/2][FOVWidth/2+3]
	if tile.Kind != world.Grass {
		t.Errorf("Expected a hidden cache to show terrain, got kind %d", tile.Kind)
	}
}

func TestSearchFindsCache(t *testing.T) {
	gs := testState(t, world.Grass)
	gs.Player.ProfBonus = 50 // the check always lands
	i := mustItem(t, "doubloon")
	i.Hidden = true
	gs.Items.Add(10, 10, i)

	gs.search()

	msgs := gs.DrainMsgs()
	if msgs[len(msgs)-1] != "You find a hidden cache!" {
		t.Errorf("Expected the cache found, got %v", msgs)
	}
	top := gs.Items.PeekTop(10, 10)
	if top.Hidden {
		t.Error("Expected the cache revealed")
	}
}
