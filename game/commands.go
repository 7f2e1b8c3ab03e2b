package game

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
	"github.com/lixenwraith/yarrl/item"
	"github.com/lixenwraith/yarrl/ship"
	"github.com/lixenwraith/yarrl/world"
)

// articledName prefixes an item's article, or nothing for unique
// treasure.
func articledName(definite bool, i item.Item) string {
	var article string
	if definite {
		article = i.DefiniteArticle()
	} else {
		article = i.IndefiniteArticle()
	}
	if article == "" {
		return i.Name
	}
	return article + " " + i.Name
}

// pluralize assumes names of the form "foo of bar" so the result can
// be "foos of bar".
func pluralize(name string) string {
	words := strings.Split(name, " ")
	first := words[0]
	if strings.HasSuffix(first, "s") || strings.HasSuffix(first, "x") {
		first += "es"
	} else {
		first += "s"
	}
	if len(words) == 1 {
		return first
	}
	return first + " " + strings.Join(words[1:], " ")
}

func (gs *GameState) checkEnvironmentHazards() error {
	switch gs.Map.At(gs.Player.Row, gs.Player.Col).Kind {
	case world.DeepWater:
		if !gs.Player.OnShip {
			return playerTakesDmg(gs.Player, 2, "swimming")
		}
	case world.FirePit:
		return playerTakesDmg(gs.Player, dice.Roll(6, 1, 0), "burn")
	case world.Lava:
		return playerTakesDmg(gs.Player, 25, "burn")
	}
	return nil
}

func (gs *GameState) doMove(dir string) error {
	dr, dc := core.MoveDelta(dir)

	// The poisoned and the deeply drunk sometimes stagger.
	if gs.Player.Poisoned || gs.Player.Drunkenness > 20 {
		if dice.Float() < 0.25 {
			gs.WriteMsg("You stagger!")
			dr, dc = core.RandAdj()
		}
	}

	startTile := gs.Map.At(gs.Player.Row, gs.Player.Col)
	nextRow := gs.Player.Row + dr
	nextCol := gs.Player.Col + dc
	nextLoc := core.Loc{Row: nextRow, Col: nextCol}
	tile := gs.Map.At(nextRow, nextCol)

	if _, ok := gs.NPCs[nextLoc]; ok {
		gs.attackNPC(nextRow, nextCol)
		return nil
	}

	if s, ok := gs.Ships[nextLoc]; ok {
		gs.Player.Row = nextRow
		gs.Player.Col = nextCol
		gs.WriteMsg(fmt.Sprintf("You climb aboard the %s.", s.Name))
		gs.Turn++
		return nil
	}

	if !tile.Passable() {
		gs.WriteMsg("You cannot go that way.")
		return nil
	}

	gs.Player.Row = nextRow
	gs.Player.Col = nextCol

	switch tile.Kind {
	case world.Water:
		gs.WriteMsg("You splash in the shallow water.")
	case world.DeepWater:
		if startTile.Kind != world.DeepWater {
			gs.WriteMsg("You begin to swim.")
		}
		if gs.Player.CurrStamina < 10 {
			gs.WriteMsg("You're getting tired...")
		}
	case world.Lava:
		gs.WriteMsg("MOLTEN LAVA!")
	case world.FirePit:
		gs.WriteMsg("You step in the fire!")
	case world.Shipwreck:
		gs.WriteMsg(fmt.Sprintf("The wreck of the %s", tile.Name))
	case world.OldFirePit:
		gs.WriteMsg("An old campsite! Rum runners? A castaway?")
	default:
		if startTile.Kind == world.DeepWater && gs.Player.CurrStamina < 10 {
			gs.WriteMsg("Whew, you stumble ashore.")
		}
	}

	count := gs.Items.CountAt(gs.Player.Row, gs.Player.Col)
	if count == 1 {
		i := gs.Items.PeekTop(gs.Player.Row, gs.Player.Col)
		gs.WriteMsg(fmt.Sprintf("You see %s here.", articledName(false, i)))
	} else if count > 1 {
		gs.WriteMsg("You see a few items here.")
	}

	gs.Turn++
	return nil
}

func (gs *GameState) attackNPC(npcRow, npcCol int) {
	loc := core.Loc{Row: npcRow, Col: npcCol}
	npc := gs.NPCs[loc]
	npc.Aware = true
	npc.Hostile = true
	strMod := StatMod(gs.Player.Stat(StatStrength))

	if dice.Check(strMod, npc.AC, gs.Player.ProfBonus) {
		var dmg int
		if w, ok := gs.Player.Inventory.EquippedWeapon(); ok {
			gs.WriteMsg(fmt.Sprintf("You hit the %s!", npc.Name))
			dmg = dice.Roll(w.Dmg, w.DmgDice, w.Bonus) + strMod
		} else {
			gs.WriteMsg(fmt.Sprintf("You punch the %s!", npc.Name))
			dmg = 1 + strMod
		}
		if dmg < 0 {
			dmg = 0
		}

		if dmg > npc.HP {
			gs.WriteMsg(fmt.Sprintf("You kill the %s!", npc.Name))
			gs.Player.Score += npc.Score
			if npc.Score > 0 {
				gs.Player.MaxStamina++
			}
			delete(gs.NPCs, loc)
		} else {
			npc.HP -= dmg
		}
	} else {
		gs.WriteMsg(fmt.Sprintf("You miss the %s!", npc.Name))
	}

	gs.Turn++
}

func calcBulletCh(dr, dc int) rune {
	if dr == 0 {
		return '-'
	}
	if dc == 0 {
		return '|'
	}
	if (dr == -1 && dc == -1) || (dr == 1 && dc == 1) {
		return '\\'
	}
	return '/'
}

// shoot walks a bullet square by square, redrawing the view so the
// player watches it fly.
func (gs *GameState) shoot(dr, dc int, gun item.Item, dexMod int, ui UI) {
	bulletR := gs.Player.Row
	bulletC := gs.Player.Col
	distance := 0
	travelledR, travelledC := 0, 0

	for {
		bulletR += dr
		bulletC += dc
		travelledR += dr
		travelledC += dc
		distance++

		if !gs.Map.InBounds(bulletR, bulletC) {
			return
		}
		if !gs.Map.At(bulletR, bulletC).Passable() {
			return
		}
		if distance > gun.Range {
			return
		}

		vm := gs.CalcVMatrix(FOVHeight, FOVWidth)
		tileR := FOVHeight/2 + travelledR
		tileC := FOVWidth/2 + travelledC
		if tileR >= 0 && tileR < FOVHeight && tileC >= 0 && tileC < FOVWidth &&
			vm[tileR][tileC].Kind != world.Blank {
			vm[tileR][tileC] = world.Glyph(world.Bullet, calcBulletCh(dr, dc))
		}
		ui.UpdateView(vm)
		ui.WriteScreen(gs.DrainMsgs(), gs.CurrSidebarInfo())

		loc := core.Loc{Row: bulletR, Col: bulletC}
		npc, ok := gs.NPCs[loc]
		if !ok {
			continue
		}
		if !dice.Check(dexMod, npc.AC, gs.Player.ProfBonus) {
			continue
		}

		gs.WriteMsg(fmt.Sprintf("Your bullet hits the %s!", npc.Name))
		npc.Hostile = true
		npc.Aware = true

		dmg := dice.Roll(gun.Dmg, gun.DmgDice, gun.Bonus) + dexMod
		if dmg < 0 {
			dmg = 0
		}
		if dmg > npc.HP {
			gs.WriteMsg(fmt.Sprintf("You kill the %s!", npc.Name))
			gs.Player.Score += npc.Score
			delete(gs.NPCs, loc)
			return
		}
		npc.HP -= dmg
		return
	}
}

func (gs *GameState) fireGun(ui UI) {
	dexMod := StatMod(gs.Player.Stat(StatDexterity))

	gun, ok := gs.Player.Inventory.EquippedFirearm()
	if !ok {
		gs.WriteMsg("You don't have a firearm ready.")
		return
	}

	if !gun.Loaded {
		gs.WriteMsg("Click, click.")
		gs.Turn++
		return
	}

	if dir, picked := ui.PickDirection(gs.CurrSidebarInfo()); picked {
		gs.WriteMsg("Bang!")
		dr, dc := core.MoveDelta(dir)
		gs.shoot(dr, dc, gun, dexMod, ui)
		gs.Player.Inventory.FirearmFired()
		gs.Turn++
	} else {
		gs.WriteMsg("Nevermind.")
	}
}

func (gs *GameState) consumeNourishment(i item.Item) {
	gs.Player.AddStamina(dice.Roll(i.Bonus, 1, 0))

	switch i.Name {
	case "draught of rum":
		gs.WriteMsg("You drink some rum.")
		gs.Player.Drunkenness += 10
	case "coconut", "banana":
		gs.WriteMsg("Munch munch.")
	case "salted pork":
		gs.WriteMsg("Not very satisfying.")
	}
}

func (gs *GameState) quaff(ui UI) {
	if len(gs.Player.Inventory.Menu()) == 0 {
		gs.WriteMsg("You are empty handed.")
		return
	}

	slot, ok := ui.QuerySingleResponse("Quaff what?", gs.CurrSidebarInfo())
	if !ok {
		gs.WriteMsg("Nevermind.")
		return
	}

	t, present := gs.Player.Inventory.TypeInSlot(slot)
	switch {
	case !present:
		gs.WriteMsg("You do not have that item.")
	case t != item.Drink:
		gs.WriteMsg("Uh...ye can't drink that.")
	default:
		drink := gs.Player.Inventory.RemoveCount(slot, 1)
		gs.consumeNourishment(drink[0])
		gs.Turn++
	}
}

func (gs *GameState) eat(ui UI) {
	if len(gs.Player.Inventory.Menu()) == 0 {
		gs.WriteMsg("You are empty handed.")
		return
	}

	slot, ok := ui.QuerySingleResponse("Eat what?", gs.CurrSidebarInfo())
	if !ok {
		gs.WriteMsg("Nevermind.")
		return
	}

	t, present := gs.Player.Inventory.TypeInSlot(slot)
	switch {
	case !present:
		gs.WriteMsg("You do not have that item.")
	case t != item.Food:
		gs.WriteMsg("Uh...ye can't eat that.")
	default:
		food := gs.Player.Inventory.RemoveCount(slot, 1)
		gs.consumeNourishment(food[0])
		gs.Turn++
	}
}

func (gs *GameState) read(ui UI) {
	if len(gs.Player.Inventory.Menu()) == 0 {
		gs.WriteMsg("You are empty handed.")
		return
	}

	slot, ok := ui.QuerySingleResponse("Read what?", gs.CurrSidebarInfo())
	if !ok {
		gs.WriteMsg("Nevermind.")
		return
	}

	t, present := gs.Player.Inventory.TypeInSlot(slot)
	switch {
	case !present:
		gs.WriteMsg("You do not have that item.")
	case t == item.TreasureMap:
		tm, _ := gs.Player.Inventory.PeekAt(slot)
		ui.ShowTreasureMap(gs, tm)
		gs.Turn++
	case t == item.Note:
		note, _ := gs.Player.Inventory.PeekAt(slot)
		gs.WriteMsg(gs.Notes[note.Bonus])
		gs.Turn++
	default:
		gs.WriteMsg("Hmm...nary a label nor instructions.")
	}
}

// search hunts for hidden caches on the player's square. The pirate
// lord's chest only turns up for an eye wearing the magic patch.
func (gs *GameState) search() {
	loc := gs.playerLoc()

	searchDC := 15
	if gs.Items.MacguffinAt(loc) {
		if gs.Player.Inventory.EquippedMagicEyePatch() {
			searchDC = 0
		} else {
			searchDC = 99
		}
	}

	if gs.Items.AnyHidden(loc) && dice.Check(0, searchDC, gs.Player.ProfBonus) {
		gs.WriteMsg("You find a hidden cache!")
		gs.Items.RevealHidden(loc)
	} else if gs.Items.CountAt(gs.Player.Row, gs.Player.Col) > 0 {
		gs.WriteMsg("You find no secrets.")
	} else {
		gs.WriteMsg("You find nothing.")
	}

	gs.Turn++
}

func (gs *GameState) reload() {
	gun, ok := gs.Player.Inventory.EquippedFirearm()
	if !ok {
		gs.WriteMsg("You don't have a readied firearm.")
		return
	}

	if gun.Loaded {
		gs.WriteMsg(fmt.Sprintf("Your %s is already loaded.", gun.Name))
	} else if gs.Player.Inventory.FindAmmo() {
		gs.WriteMsg(fmt.Sprintf("You reload your %s.", gun.Name))
		gs.Player.Inventory.ReloadFirearm()
	} else {
		gs.WriteMsg("Uhoh, all out of bullets...")
	}
	gs.Turn++
}

func (gs *GameState) dropItem(ui UI) {
	if len(gs.Player.Inventory.Menu()) == 0 {
		gs.WriteMsg("You are empty handed.")
		return
	}

	sbi := gs.CurrSidebarInfo()
	slot, ok := ui.QuerySingleResponse("Drop what?", sbi)
	if !ok {
		gs.WriteMsg("Nevermind.")
		return
	}

	count := gs.Player.Inventory.CountInSlot(slot)
	switch {
	case count == 0:
		gs.WriteMsg("You do not have that item.")
	case count > 1:
		n, answered := ui.QueryNaturalNum("Drop how many?", sbi)
		if !answered || n == 0 {
			gs.WriteMsg("Nevermind.")
			break
		}
		pile := gs.Player.Inventory.RemoveCount(slot, n)
		if len(pile) == 0 {
			gs.WriteMsg("Nevermind.")
			break
		}
		gs.WriteMsg(fmt.Sprintf("You drop %d %s", len(pile), pluralize(pile[0].Name)))
		gs.Turn++
		for _, i := range pile {
			i.Equipped = false
			gs.Items.Add(gs.Player.Row, gs.Player.Col, i)
		}
	default:
		i := gs.Player.Inventory.Remove(slot)
		i.Equipped = false
		gs.WriteMsg(fmt.Sprintf("You drop %s.", articledName(true, i)))
		gs.Items.Add(gs.Player.Row, gs.Player.Col, i)
		gs.Turn++
	}

	gs.Player.CalcAC()
}

func (gs *GameState) pickUp(ui UI) error {
	count := gs.Items.CountAt(gs.Player.Row, gs.Player.Col)
	if count == 0 {
		gs.WriteMsg("There is nothing here to pick up.")
		return nil
	}

	if count == 1 {
		i := gs.Items.TakeTop(gs.Player.Row, gs.Player.Col)
		isMacguffin := i.Type == item.MacGuffin
		gs.WriteMsg(fmt.Sprintf("You pick up %s.", articledName(true, i)))
		gs.Player.Inventory.Add(i)
		gs.Turn++

		if isMacguffin {
			return &RunEnd{Outcome: OutcomeVictory}
		}
		return nil
	}

	menu := gs.Items.Menu(gs.Player.Row, gs.Player.Col)
	answers := len(menu)
	menu = append([]string{"Pick up what: (* to get everything)"}, menu...)
	picks, ok := ui.MenuPicker(menu, answers, false, false)
	if !ok {
		gs.WriteMsg("Nevermind.")
		return nil
	}

	gs.Turn++
	for _, i := range gs.Items.TakeMany(gs.Player.Row, gs.Player.Col, picks) {
		isMacguffin := i.Type == item.MacGuffin
		gs.WriteMsg(fmt.Sprintf("You pick up %s.", articledName(true, i)))
		gs.Player.Inventory.Add(i)

		if isMacguffin {
			return &RunEnd{Outcome: OutcomeVictory}
		}
	}
	return nil
}

func (gs *GameState) toggleEquipment(ui UI) {
	if len(gs.Player.Inventory.Menu()) == 0 {
		gs.WriteMsg("You are empty handed.")
		return
	}

	slot, ok := ui.QuerySingleResponse("Ready/unready what?", gs.CurrSidebarInfo())
	if !ok {
		gs.WriteMsg("Nevermind.")
	} else {
		msg, _ := gs.Player.Inventory.ToggleSlot(slot)
		gs.WriteMsg(msg)
		gs.Turn++
	}

	gs.Player.CalcAC()
}

func (gs *GameState) showInventory(ui UI) {
	menu := gs.Player.Inventory.Menu()
	if len(menu) == 0 {
		gs.WriteMsg("You are empty-handed.")
		return
	}
	menu = append([]string{"You are carrying:"}, menu...)
	ui.WriteLongMsg(menu, false)
}

// ShowCharacterSheet is exported for the opening sequence, which shows
// the fresh pirate before the world exists.
func (gs *GameState) ShowCharacterSheet(ui UI) {
	lines := []string{
		fmt.Sprintf("%s, a bilge rat", gs.Player.Name),
		"",
		fmt.Sprintf("Strength: %d", gs.Player.Strength),
		fmt.Sprintf("Dexterity: %d", gs.Player.Dexterity),
		fmt.Sprintf("Constitution: %d", gs.Player.Constitution),
		fmt.Sprintf("Verve: %d", gs.Player.Verve),
		"",
		fmt.Sprintf("AC: %d    Stamina: %d(%d)", gs.Player.AC, gs.Player.CurrStamina, gs.Player.MaxStamina),
	}
	ui.WriteLongMsg(lines, true)
}

func (gs *GameState) showMessageHistory(ui UI) {
	lines := []string{""}
	for _, e := range gs.MsgHistory {
		s := e.Text
		if e.Count > 1 {
			s = fmt.Sprintf("%s (x%d)", s, e.Count)
		}
		lines = append(lines, s)
	}
	ui.WriteLongMsg(lines, true)
}

// sqOpen reports whether a square is free of terrain and hull for a
// tossed or teleported body to land on.
func (gs *GameState) sqOpen(row, col int) bool {
	if !gs.Map.InBounds(row, col) || !gs.Map.At(row, col).Passable() {
		return false
	}
	for _, s := range gs.Ships {
		if (s.Row == row && s.Col == col) ||
			(s.BowRow == row && s.BowCol == col) ||
			(s.AftRow == row && s.AftCol == col) {
			return false
		}
	}
	return true
}

func (gs *GameState) openSqAdjPlayer() (core.Loc, bool) {
	var sqs []core.Loc
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := gs.Player.Row+dr, gs.Player.Col+dc
			if gs.sqOpen(r, c) {
				sqs = append(sqs, core.Loc{Row: r, Col: c})
			}
		}
	}
	if len(sqs) == 0 {
		return core.Loc{}, false
	}
	return sqs[dice.Roll(len(sqs), 1, 0)-1], true
}

func (gs *GameState) shipHitLand(s *ship.Ship) error {
	gs.WriteMsg("Ye've run yer ship aground!!")
	gs.WriteMsg("You lose control o' the wheel!")
	newWheel := (s.Wheel+2+dice.Roll(5, 1, 0))%5 - 2
	s.Wheel = newWheel
	gs.Player.Wheel = newWheel

	if !dice.Check(StatMod(gs.Player.Stat(StatDexterity)), 13, 0) {
		if loc, ok := gs.openSqAdjPlayer(); ok {
			gs.WriteMsg("You're tossed from the ship!")
			gs.Player.OnShip = false
			gs.Player.Row = loc.Row
			gs.Player.Col = loc.Col
			return playerTakesDmg(gs.Player, dice.Roll(6, 1, 0), "falling")
		}
	}
	return nil
}

// sailDelta picks the move for a bearing. On the half-point bearings
// the ship alternates between the two neighbouring directions, sailing
// a long diagonal.
func sailDelta(bearing, prevR, prevC int) (int, int) {
	switch bearing {
	case 0:
		return -1, 0
	case 1:
		if prevR == -1 && prevC == 0 {
			return -1, 1
		}
		return -1, 0
	case 2:
		return -1, 1
	case 3:
		if prevR == -1 && prevC == 1 {
			return 0, 1
		}
		return -1, 1
	case 4:
		return 0, 1
	case 5:
		if prevR == 0 && prevC == 1 {
			return 1, 1
		}
		return 0, 1
	case 6:
		return 1, 1
	case 7:
		if prevR == 1 && prevC == 1 {
			return 1, 0
		}
		return 1, 1
	case 8:
		return 1, 0
	case 9:
		if prevR == 1 && prevC == -1 {
			return 1, 0
		}
		return 1, -1
	case 10:
		return 1, -1
	case 11:
		if prevR == 0 && prevC == -1 {
			return 1, -1
		}
		return 0, -1
	case 12:
		return 0, -1
	case 13:
		if prevR == 0 && prevC == -1 {
			return -1, -1
		}
		return 0, -1
	case 14:
		return -1, -1
	default:
		if prevR == -1 && prevC == 0 {
			return -1, -1
		}
		return -1, 0
	}
}

// sail advances the ship the player is standing on for one turn.
func (gs *GameState) sail() error {
	loc := gs.playerLoc()
	s, ok := gs.Ships[loc]
	if !ok {
		return nil
	}
	delete(gs.Ships, loc)
	defer func() {
		gs.Ships[core.Loc{Row: s.Row, Col: s.Col}] = s
	}()

	bowTile := gs.Map.At(s.BowRow, s.BowCol)

	if s.Anchored {
		gs.WriteMsg("The ship bobs.")
		return nil
	}
	if bowTile.Kind != world.Water && bowTile.Kind != world.DeepWater {
		gs.WriteMsg("Your ship is beached!")
		return nil
	}

	dr, dc := sailDelta(s.Bearing, s.PrevMove[0], s.PrevMove[1])

	// After movement, a turned wheel swings the bearing.
	if s.Wheel != 0 {
		s.Turn()
		gs.Player.Bearing = s.Bearing
	}

	gs.Player.Row += dr
	gs.Player.Col += dc
	s.Row += dr
	s.Col += dc
	s.UpdateLocInfo()
	s.PrevMove = [2]int{dr, dc}

	bow := gs.Map.At(s.BowRow, s.BowCol)
	if bow.Kind == world.Water {
		gs.WriteMsg("Shallow water...")
	} else if bow.Kind != world.DeepWater {
		return gs.shipHitLand(s)
	}

	return nil
}

// toggleAnchor reports whether the anchor came up, which sets the ship
// moving at once.
func (gs *GameState) toggleAnchor() bool {
	s, ok := gs.Ships[gs.playerLoc()]
	if !ok {
		return false
	}
	s.Anchored = !s.Anchored
	gs.Turn++

	if s.Anchored {
		gs.WriteMsg("You lower the anchor.")
		return false
	}
	gs.WriteMsg("You raise the anchor.")
	return true
}

func (gs *GameState) turnWheel(change int) {
	s, ok := gs.Ships[gs.playerLoc()]
	if !ok {
		return
	}
	gs.Turn++

	if change < 0 && s.Wheel == -2 {
		gs.WriteMsg("The wheel's as far to starboard as she'll turn")
		return
	}
	if change > 0 && s.Wheel == 2 {
		gs.WriteMsg("The wheel's as far to port as she'll turn")
		return
	}

	s.Wheel += change
	gs.Player.Wheel = s.Wheel

	if s.Wheel > -2 && s.Wheel < 2 {
		gs.WriteMsg("You adjust the tiller.")
	} else {
		gs.WriteMsg("Hard about!")
	}
}

func (gs *GameState) takeHelm() {
	s, ok := gs.Ships[gs.playerLoc()]
	if !ok {
		gs.WriteMsg("You need to find yerself a ship before you can take the helm.")
		return
	}

	gs.Player.OnShip = true
	gs.Player.Bearing = s.Bearing
	gs.Player.Wheel = s.Wheel
	gs.WriteMsg(fmt.Sprintf("You step to the wheel of the %s.", s.Name))
	gs.Turn++
}

func (gs *GameState) leaveHelm() {
	gs.Player.OnShip = false
	gs.WriteMsg("You step to the gunwale.")
	gs.Turn++
}
