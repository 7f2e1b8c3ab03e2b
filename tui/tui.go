// Package tui renders the game in a terminal with tcell and turns
// keystrokes into commands.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/game"
	"github.com/lixenwraith/yarrl/item"
	"github.com/lixenwraith/yarrl/world"
)

const (
	screenWidth  = 58
	screenHeight = 22
)

// TUI draws the fixed-size game frame: one message line, the view
// matrix with a separator column, and the sidebar.
type TUI struct {
	screen tcell.Screen
	vm     [][]world.Tile
	log    *zap.SugaredLogger
}

func New(logger *zap.SugaredLogger) (*TUI, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()

	return &TUI{screen: screen, log: logger}, nil
}

func (t *TUI) Close() {
	t.screen.Fini()
}

func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// sqInfo is the glyph and color for a tile.
func sqInfo(tile world.Tile) (rune, tcell.Color) {
	switch tile.Kind {
	case world.Blank:
		return ' ', toTcell(core.Black)
	case world.Wall:
		return '#', toTcell(core.Grey)
	case world.WoodWall:
		return '#', toTcell(core.DarkBrown)
	case world.Window:
		return '"', toTcell(core.DarkBrown)
	case world.Tree:
		return 'ϙ', toTcell(core.Green)
	case world.Dirt:
		return '.', toTcell(core.Brown)
	case world.Grass:
		return '̖', toTcell(core.Green)
	case world.PlayerTile:
		return '@', toTcell(tile.Color)
	case world.Water:
		return '}', toTcell(core.LightBlue)
	case world.DeepWater, world.WorldEdge:
		return '}', toTcell(core.Blue)
	case world.Sand:
		return '.', toTcell(core.Beige)
	case world.StoneFloor:
		return '.', toTcell(core.Grey)
	case world.Floor:
		return '.', toTcell(core.Brown)
	case world.Mountain:
		return 'Λ', toTcell(core.Grey)
	case world.SnowPeak:
		return 'Λ', toTcell(core.White)
	case world.Lava:
		return '{', toTcell(core.BrightRed)
	case world.FirePit:
		return '"', toTcell(core.BrightRed)
	case world.OldFirePit:
		return '"', toTcell(core.Grey)
	case world.Gate:
		return '#', toTcell(core.LightBlue)
	case world.Thing:
		return tile.Ch, toTcell(tile.Color)
	case world.Separator:
		return '|', toTcell(core.White)
	case world.ShipPart, world.Shipwreck, world.Mast:
		return tile.Ch, toTcell(core.Brown)
	case world.Bullet:
		return tile.Ch, toTcell(core.White)
	default:
		return ' ', toTcell(core.Black)
	}
}

func (t *TUI) setSq(row, col int, ch rune, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack)
	t.screen.SetContent(col, row, ch, nil, style)
}

func (t *TUI) writeLine(row int, line string) {
	col := 0
	for _, ch := range line {
		if col >= screenWidth {
			break
		}
		t.setSq(row, col, ch, toTcell(core.White))
		col++
	}
	for ; col < screenWidth; col++ {
		t.setSq(row, col, ' ', toTcell(core.White))
	}
}

// waitForKey blocks for one keystroke. The second value is false when
// the player hit Escape.
func (t *TUI) waitForKey() (rune, bool) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape:
				return 0, false
			case tcell.KeyEnter:
				return '\n', true
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				return '\b', true
			case tcell.KeyRune:
				return ev.Rune(), true
			}
		}
	}
}

// GetCommand maps a keystroke to a command. At the helm h and j work
// the wheel instead of stepping the player.
func (t *TUI) GetCommand(gs *game.GameState) game.Cmd {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlH:
				return game.Cmd{Kind: game.CmdMsgHistory}
			case tcell.KeyCtrlC:
				return game.Cmd{Kind: game.CmdQuit}
			case tcell.KeyRune:
				if cmd, ok := keyToCmd(ev.Rune(), gs.Player.OnShip); ok {
					return cmd
				}
			}
		}
	}
}

func keyToCmd(key rune, onShip bool) (game.Cmd, bool) {
	switch key {
	case 'Q':
		return game.Cmd{Kind: game.CmdQuit}, true
	case 'S':
		return game.Cmd{Kind: game.CmdSaveAndQuit}, true
	case 'i':
		return game.Cmd{Kind: game.CmdShowInventory}, true
	case '@':
		return game.Cmd{Kind: game.CmdShowCharacterSheet}, true
	case 'w':
		return game.Cmd{Kind: game.CmdToggleEquipment}, true
	case ' ', '.':
		return game.Cmd{Kind: game.CmdPass}, true
	case 'B':
		return game.Cmd{Kind: game.CmdToggleHelm}, true
	case 'q':
		return game.Cmd{Kind: game.CmdQuaff}, true
	case 'E':
		return game.Cmd{Kind: game.CmdEat}, true
	case 'f':
		return game.Cmd{Kind: game.CmdFireGun}, true
	case 'r':
		return game.Cmd{Kind: game.CmdReload}, true
	case 'M':
		return game.Cmd{Kind: game.CmdWorldMap}, true
	case 'R':
		return game.Cmd{Kind: game.CmdRead}, true
	}

	if onShip {
		switch key {
		case 'A':
			return game.Cmd{Kind: game.CmdToggleAnchor}, true
		case 'h':
			return game.Cmd{Kind: game.CmdWheelAnticlockwise}, true
		case 'j':
			return game.Cmd{Kind: game.CmdWheelClockwise}, true
		}
		return game.Cmd{}, false
	}

	switch key {
	case 'k':
		return game.Cmd{Kind: game.CmdMove, Dir: "N"}, true
	case 'j':
		return game.Cmd{Kind: game.CmdMove, Dir: "S"}, true
	case 'l':
		return game.Cmd{Kind: game.CmdMove, Dir: "E"}, true
	case 'h':
		return game.Cmd{Kind: game.CmdMove, Dir: "W"}, true
	case 'y':
		return game.Cmd{Kind: game.CmdMove, Dir: "NW"}, true
	case 'u':
		return game.Cmd{Kind: game.CmdMove, Dir: "NE"}, true
	case 'b':
		return game.Cmd{Kind: game.CmdMove, Dir: "SW"}, true
	case 'n':
		return game.Cmd{Kind: game.CmdMove, Dir: "SE"}, true
	case ',':
		return game.Cmd{Kind: game.CmdPickUp}, true
	case 'd':
		return game.Cmd{Kind: game.CmdDropItem}, true
	case 's':
		return game.Cmd{Kind: game.CmdSearch}, true
	case 'A':
		return game.Cmd{Kind: game.CmdToggleAnchor}, true
	}
	return game.Cmd{}, false
}

func (t *TUI) UpdateView(vm [][]world.Tile) {
	t.vm = vm
}

var bearingNames = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func (t *TUI) writeSidebar(sbi game.SidebarInfo) {
	fovW := game.FOVWidth + 1

	t.writeSidebarLine(sbi.Name, fovW, 1, core.White)
	t.writeSidebarLine(fmt.Sprintf("AC: %d", sbi.AC), fovW, 2, core.White)
	t.writeSidebarLine(fmt.Sprintf("Stamina: %d(%d)", sbi.CurrStamina, sbi.MaxStamina), fovW, 3, core.White)
	t.writeSidebarLine(fmt.Sprintf("Turn: %d", sbi.Turn), fovW, 21, core.White)

	if sbi.Poisoned {
		t.writeSidebarLine("POISONED", fovW, 11, core.Green)
	}
	if sbi.Charmed {
		t.writeSidebarLine("CHARMED", fovW, 12, core.LightBlue)
	}
	if sbi.Drunkenness > 20 {
		t.writeSidebarLine("DRUNK", fovW, 13, core.Gold)
	}

	if sbi.Bearing < 0 {
		return
	}

	t.writeSidebarLine("Bearing: "+bearingNames[sbi.Bearing%16], fovW, 5, core.White)
	t.writeSidebarLine(`      \|/`, fovW, 7, core.Brown)
	t.writeSidebarLine("      -o-", fovW, 8, core.Brown)
	t.writeSidebarLine(`      /|\`, fovW, 9, core.Brown)

	// The wheel marker shows how hard over the helm is.
	switch sbi.Wheel {
	case 0:
		t.setSq(6, fovW+7, '|', toTcell(core.Grey))
	case -1:
		t.setSq(6, fovW+6, '\\', toTcell(core.Grey))
	case 1:
		t.setSq(6, fovW+8, '/', toTcell(core.Grey))
	case 2:
		t.setSq(7, fovW+8, '-', toTcell(core.Grey))
	case -2:
		t.setSq(7, fovW+6, '-', toTcell(core.Grey))
	}
}

func (t *TUI) writeSidebarLine(line string, startCol, row int, color core.Color) {
	for i, ch := range line {
		t.setSq(row, startCol+i, ch, toTcell(color))
	}
}

func (t *TUI) drawFrame(msg string, sbi game.SidebarInfo) {
	t.screen.Clear()
	t.writeLine(0, msg)

	for row := 0; row < game.FOVHeight && row < len(t.vm); row++ {
		for col := 0; col < game.FOVWidth && col < len(t.vm[row]); col++ {
			ch, color := sqInfo(t.vm[row][col])
			t.setSq(row+1, col, ch, color)
		}
		ch, color := sqInfo(world.Of(world.Separator))
		t.setSq(row+1, game.FOVWidth, ch, color)
	}

	if sbi.Name != "" {
		t.writeSidebar(sbi)
	}

	t.screen.Show()
}

// WriteScreen folds the queued messages into the message line, paging
// with --More-- when they run long.
func (t *TUI) WriteScreen(msgs []string, sbi game.SidebarInfo) {
	if len(msgs) == 0 {
		t.drawFrame("", sbi)
		return
	}

	var words []string
	for _, m := range msgs {
		words = append(words, strings.Fields(m)...)
	}

	s := ""
	for len(words) > 0 {
		word := words[0]
		if len(s)+len(word)+1 >= screenWidth-9 {
			s += "--More--"
			t.drawFrame(s, sbi)
			t.PauseForMore()
			s = ""
			continue
		}
		s += word + " "
		words = words[1:]
	}
	if len(s) > 0 {
		t.drawFrame(s, sbi)
	}
}

func (t *TUI) PauseForMore() {
	for {
		ev := t.screen.PollEvent()
		if key, ok := ev.(*tcell.EventKey); ok {
			if key.Key() == tcell.KeyRune && key.Rune() == ' ' {
				return
			}
			if key.Key() == tcell.KeyEnter {
				return
			}
		}
	}
}

func (t *TUI) QuerySingleResponse(question string, sbi game.SidebarInfo) (byte, bool) {
	t.drawFrame(question, sbi)
	ch, ok := t.waitForKey()
	if !ok || ch == '\n' || ch == '\b' {
		return 0, false
	}
	return byte(ch), true
}

func (t *TUI) QueryYesNo(question string, sbi game.SidebarInfo) bool {
	for {
		t.drawFrame(question, sbi)
		ch, ok := t.waitForKey()
		if !ok || ch == 'n' {
			return false
		}
		if ch == 'y' {
			return true
		}
	}
}

func (t *TUI) PickDirection(sbi game.SidebarInfo) (string, bool) {
	dirs := map[rune]string{
		'h': "W", 'j': "S", 'k': "N", 'l': "E",
		'y': "NW", 'u': "NE", 'b': "SW", 'n': "SE",
	}
	for {
		t.drawFrame("In which direction?", sbi)
		ch, ok := t.waitForKey()
		if !ok {
			return "", false
		}
		if dir, found := dirs[ch]; found {
			return dir, true
		}
	}
}

func (t *TUI) QueryNaturalNum(query string, sbi game.SidebarInfo) (int, bool) {
	answer := ""
	for {
		t.drawFrame(fmt.Sprintf("%s %s", query, answer), sbi)
		ch, ok := t.waitForKey()
		switch {
		case !ok:
			return 0, false
		case ch == '\n':
			n := 0
			for _, d := range answer {
				n = n*10 + int(d-'0')
			}
			return n, true
		case ch == '\b':
			if len(answer) > 0 {
				answer = answer[:len(answer)-1]
			}
		case ch >= '0' && ch <= '9':
			answer += string(ch)
		}
	}
}

func (t *TUI) QueryUser(question string, maxLen int, sbi game.SidebarInfo) (string, bool) {
	answer := ""
	for {
		t.drawFrame(fmt.Sprintf("%s %s", question, answer), sbi)
		ch, ok := t.waitForKey()
		switch {
		case !ok:
			return "", false
		case ch == '\n':
			return answer, true
		case ch == '\b':
			if len(answer) > 0 {
				answer = answer[:len(answer)-1]
			}
		default:
			if len(answer) < maxLen {
				answer += string(ch)
			}
		}
	}
}

// MenuPicker shows a menu whose first line is a header and whose
// options are lettered from a. In multi-choice mode selections toggle
// and * takes everything; Return accepts.
func (t *TUI) MenuPicker(menu []string, answers int, singleChoice, smallText bool) (map[int]bool, bool) {
	picks := map[int]bool{}

	for {
		t.screen.Clear()
		for i, line := range menu {
			if i > 0 && picks[i-1] {
				t.writeLine(i, "✓ "+line)
			} else {
				t.writeLine(i, line)
			}
		}
		if !singleChoice {
			t.writeLine(len(menu)+2, "Select one or more options, then hit Return.")
		}
		t.screen.Show()

		ch, ok := t.waitForKey()
		if !ok {
			return nil, false
		}

		if singleChoice {
			if ch >= 'a' && int(ch-'a') < answers {
				picks[int(ch-'a')] = true
				return picks, true
			}
			continue
		}

		switch {
		case ch == '*':
			for i := 0; i < answers; i++ {
				picks[i] = true
			}
			return picks, true
		case ch >= 'a' && int(ch-'a') < answers:
			i := int(ch - 'a')
			if picks[i] {
				delete(picks, i)
			} else {
				picks[i] = true
			}
		case ch == '\n' || ch == ' ':
			return picks, true
		}
	}
}

// WriteLongMsg shows full-screen text, paging by screen height.
func (t *TUI) WriteLongMsg(lines []string, pause bool) {
	row := 0
	t.screen.Clear()
	for _, line := range lines {
		if row >= screenHeight-1 {
			t.writeLine(row, "--More--")
			t.screen.Show()
			t.waitForKey()
			t.screen.Clear()
			row = 0
		}
		t.writeLine(row, line)
		row++
	}
	t.screen.Show()
	if pause {
		t.waitForKey()
	}
}

// ShowWorldMap draws everywhere the player has seen, three world
// squares to a cell.
func (t *TUI) ShowWorldMap(gs *game.GameState) {
	t.screen.Clear()
	title := "~Ye Olde World Map~"
	t.writeLine(0, strings.Repeat(" ", (screenWidth-len(title))/2)+title)

	for loc := range gs.WorldSeen {
		_, color := sqInfo(gs.Map.At(loc.Row, loc.Col))
		style := tcell.StyleDefault.Background(color)
		t.screen.SetContent(loc.Col/3, 1+loc.Row/3, ' ', nil, style)
	}

	t.screen.Show()
	t.waitForKey()
}

// ShowTreasureMap sketches the terrain around a map's corner with an X
// over the dig site. Water is left blank; a scrap of paper only shows
// the coast.
func (t *TUI) ShowTreasureMap(gs *game.GameState, tm item.Item) {
	t.screen.Clear()
	title := "~Scrawled on a scrap of paper~"
	t.writeLine(0, strings.Repeat(" ", (screenWidth-len(title))/2)+title)

	startCol := screenWidth/2 - 15
	for r := 0; r < 25; r++ {
		for c := 0; c < 30; c++ {
			locR := tm.NWCorner.Row + r
			locC := tm.NWCorner.Col + c
			if !gs.Map.InBounds(locR, locC) {
				continue
			}
			if locR == tm.XCoord.Row && locC == tm.XCoord.Col {
				t.setSq(1+r, startCol+c, 'X', toTcell(core.White))
				continue
			}
			ch, _ := sqInfo(gs.Map.At(locR, locC))
			if ch == '}' {
				ch = ' '
			}
			t.setSq(1+r, startCol+c, ch, toTcell(core.BrightRed))
		}
	}

	t.screen.Show()
	t.waitForKey()
}
