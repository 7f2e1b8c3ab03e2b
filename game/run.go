package game

import (
	"fmt"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
	"github.com/lixenwraith/yarrl/item"
	"github.com/lixenwraith/yarrl/path"
	"github.com/lixenwraith/yarrl/world"
)

// Outcome says how a voyage ended.
type Outcome int

const (
	OutcomeQuit Outcome = iota
	OutcomeDead
	OutcomeVictory
	OutcomeSaved
)

// RunEnd is the error that unwinds the turn loop when a voyage is
// over. Cause carries the killer's name or damage source for the
// death screen.
type RunEnd struct {
	Outcome Outcome
	Cause   string
}

func (e *RunEnd) Error() string {
	switch e.Outcome {
	case OutcomeVictory:
		return "victory"
	case OutcomeQuit:
		return "quit"
	case OutcomeSaved:
		return "saved"
	default:
		return "killed: " + e.Cause
	}
}

func playerTakesDmg(p *Player, dmg int, source string) error {
	if p.CurrStamina < dmg {
		return &RunEnd{Outcome: OutcomeDead, Cause: source}
	}
	p.CurrStamina -= dmg
	return nil
}

type CmdKind int

const (
	CmdNone CmdKind = iota
	CmdQuit
	CmdMove
	CmdMsgHistory
	CmdPickUp
	CmdShowInventory
	CmdDropItem
	CmdShowCharacterSheet
	CmdToggleEquipment
	CmdPass
	CmdWheelClockwise
	CmdWheelAnticlockwise
	CmdToggleAnchor
	CmdToggleHelm
	CmdQuaff
	CmdFireGun
	CmdReload
	CmdWorldMap
	CmdSearch
	CmdRead
	CmdEat
	CmdSaveAndQuit
)

// Cmd is one player input. Dir is set for CmdMove.
type Cmd struct {
	Kind CmdKind
	Dir  string
}

// UI is the terminal front end the turn loop talks to.
type UI interface {
	GetCommand(gs *GameState) Cmd
	UpdateView(vm [][]world.Tile)
	WriteScreen(msgs []string, sbi SidebarInfo)
	PickDirection(sbi SidebarInfo) (string, bool)
	QuerySingleResponse(question string, sbi SidebarInfo) (byte, bool)
	QueryNaturalNum(question string, sbi SidebarInfo) (int, bool)
	QueryYesNo(question string, sbi SidebarInfo) bool
	QueryUser(question string, maxLen int, sbi SidebarInfo) (string, bool)
	MenuPicker(menu []string, answers int, singleChoice, smallText bool) (map[int]bool, bool)
	WriteLongMsg(lines []string, pause bool)
	ShowWorldMap(gs *GameState)
	ShowTreasureMap(gs *GameState, tm item.Item)
	PauseForMore()
}

// Run drives the voyage until a RunEnd comes back: the player quits,
// saves, dies, or lifts the pirate lord's chest.
func Run(gs *GameState, ui UI) error {
	gs.WriteMsg(fmt.Sprintf("Welcome, %s!", gs.Player.Name))
	gs.refreshView(ui)

	for {
		startTurn := gs.Turn

		var err error
		if gs.Player.Charmed {
			err = gs.actionWhileCharmed()
		} else {
			err = gs.dispatch(ui.GetCommand(gs), ui)
		}
		if err != nil {
			return err
		}

		if gs.Turn > startTurn {
			if err := gs.upkeep(); err != nil {
				return err
			}
		}

		gs.refreshView(ui)
	}
}

func (gs *GameState) refreshView(ui UI) {
	ui.UpdateView(gs.CalcVMatrix(FOVHeight, FOVWidth))
	ui.WriteScreen(gs.DrainMsgs(), gs.CurrSidebarInfo())
}

func (gs *GameState) dispatch(cmd Cmd, ui UI) error {
	switch cmd.Kind {
	case CmdQuit:
		return gs.confirmQuit(ui)
	case CmdSaveAndQuit:
		if ui.QueryYesNo("Save and quit? (y/n)", gs.CurrSidebarInfo()) {
			return &RunEnd{Outcome: OutcomeSaved}
		}
	case CmdMove:
		return gs.doMove(cmd.Dir)
	case CmdMsgHistory:
		gs.showMessageHistory(ui)
	case CmdDropItem:
		gs.dropItem(ui)
	case CmdPickUp:
		return gs.pickUp(ui)
	case CmdShowInventory:
		gs.showInventory(ui)
	case CmdShowCharacterSheet:
		gs.ShowCharacterSheet(ui)
	case CmdToggleEquipment:
		gs.toggleEquipment(ui)
	case CmdToggleAnchor:
		if gs.toggleAnchor() {
			return gs.sail()
		}
	case CmdPass:
		if gs.Player.OnShip {
			if err := gs.sail(); err != nil {
				return err
			}
		}
		gs.Turn++
	case CmdWheelClockwise:
		gs.turnWheel(1)
		return gs.sail()
	case CmdWheelAnticlockwise:
		gs.turnWheel(-1)
		return gs.sail()
	case CmdToggleHelm:
		if !gs.Player.OnShip {
			gs.takeHelm()
		} else {
			gs.leaveHelm()
		}
	case CmdQuaff:
		gs.quaff(ui)
	case CmdEat:
		gs.eat(ui)
	case CmdFireGun:
		gs.fireGun(ui)
	case CmdReload:
		gs.reload()
	case CmdWorldMap:
		ui.ShowWorldMap(gs)
	case CmdSearch:
		gs.search()
	case CmdRead:
		gs.read(ui)
	}
	return nil
}

func (gs *GameState) confirmQuit(ui UI) error {
	if ui.QueryYesNo("Do you really want to Quit? (y/n)", gs.CurrSidebarInfo()) {
		return &RunEnd{Outcome: OutcomeQuit, Cause: "quit"}
	}
	return nil
}

// upkeep is everything that happens after the player's action on a
// turn that cost time: hazards, monsters, afflictions, burning lamps.
func (gs *GameState) upkeep() error {
	if err := gs.checkEnvironmentHazards(); err != nil {
		return err
	}

	locs := make([]core.Loc, 0, len(gs.NPCs))
	for loc := range gs.NPCs {
		locs = append(locs, loc)
	}
	for _, loc := range locs {
		npc, ok := gs.NPCs[loc]
		if !ok {
			continue
		}
		if core.Cartesian(loc.Row, loc.Col, gs.Player.Row, gs.Player.Col) < 75 {
			delete(gs.NPCs, loc)
			if err := npc.Act(gs); err != nil {
				return err
			}
			gs.NPCs[npc.loc()] = npc
		}
	}

	if gs.Player.Poisoned {
		conMod := StatMod(gs.Player.Stat(StatConstitution))
		if dice.Check(conMod, 13, 0) {
			gs.WriteMsg("You feel better.")
			gs.Player.Poisoned = false
		} else if err := playerTakesDmg(gs.Player, 1, "venom"); err != nil {
			return err
		}
	}

	if gs.Player.Charmed {
		verveMod := StatMod(gs.Player.Stat(StatVerve))
		bonus := (gs.Player.Drunkenness + 2) / 5
		if dice.Check(verveMod, 14, bonus) {
			gs.WriteMsg("You snap out of it!")
			gs.Player.Charmed = false
		}
	}

	if gs.Player.Drunkenness > 0 {
		gs.Player.Drunkenness--
	}

	for _, spent := range gs.Player.Inventory.TickFuel() {
		if spent.Name == "torch" {
			gs.WriteMsg("Your torch is spent.")
		} else {
			gs.WriteMsg(fmt.Sprintf("Your %s goes out.", spent.Name))
		}
	}

	if gs.Turn%25 == 0 {
		gs.Player.AddStamina(1)
	}

	gs.Weather.CalcClouds(gs.Map)

	return nil
}

// actionWhileCharmed drags the player toward the nearest singer.
func (gs *GameState) actionWhileCharmed() error {
	if gs.Player.OnShip {
		gs.Player.OnShip = false
		gs.WriteMsg("You walk away from the helm.")
		gs.Turn++
		return nil
	}

	nearest := 999
	var best core.Loc
	found := false
	for r := -12; r <= 12; r++ {
		for c := -12; c <= 12; c++ {
			loc := core.Loc{Row: gs.Player.Row + r, Col: gs.Player.Col + c}
			m, ok := gs.NPCs[loc]
			if !ok || !m.IsMerfolk() {
				continue
			}
			d := core.Cartesian(gs.Player.Row, gs.Player.Col, loc.Row, loc.Col)
			if d < nearest {
				nearest = d
				best = loc
				found = true
			}
		}
	}

	if found && nearest > 1 {
		p := path.FindPath(gs.Map, gs.Player.Row, gs.Player.Col,
			best.Row, best.Col, world.AllPassable())
		if len(p) > 1 {
			gs.WriteMsg("You are drawn to the merfolk!")
			dir := core.DirBetween(gs.Player.Row, gs.Player.Col, p[1].Row, p[1].Col)
			return gs.doMove(dir)
		}
	}

	gs.WriteMsg("You are entranced by the merfolk!")
	gs.Turn++
	return nil
}
