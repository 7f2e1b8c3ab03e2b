// Package game holds the run state and turn logic: the player and the
// creatures hunting them, sight lines, ship handling and the treasure
// hunt that ends the voyage.
package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/item"
	"github.com/lixenwraith/yarrl/ship"
	"github.com/lixenwraith/yarrl/weather"
	"github.com/lixenwraith/yarrl/world"
)

const MsgHistoryLength = 50

// View dimensions, in squares.
const (
	FOVWidth  = 41
	FOVHeight = 21
)

// MsgEntry is one line of the message history with a repeat count for
// consecutive duplicates.
type MsgEntry struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// GameState is everything a voyage carries from turn to turn.
type GameState struct {
	Player  *Player                 `json:"player"`
	Map     world.Map               `json:"map"`
	NPCs    map[core.Loc]*Monster   `json:"npcs"`
	Ships   map[core.Loc]*ship.Ship `json:"ships"`
	Items   *item.Table             `json:"items"`
	Weather *weather.Weather        `json:"weather"`
	Turn    int                     `json:"turn"`

	WorldSeen map[core.Loc]bool `json:"world_seen"`

	PirateLord     string         `json:"pirate_lord"`
	PirateLordShip string         `json:"pirate_lord_ship"`
	PlayerShip     string         `json:"player_ship"`
	StarterClue    int            `json:"starter_clue"`
	Notes          map[int]string `json:"notes"`
	NoteCount      int            `json:"note_count"`

	MsgBuff    []string   `json:"-"`
	MsgHistory []MsgEntry `json:"msg_history"`

	log *zap.SugaredLogger
}

func NewGameState(name string, pt PirateType, logger *zap.SugaredLogger) *GameState {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	var p *Player
	if pt == Swab {
		p = NewSwab(name)
	} else {
		p = NewSeadog(name)
	}

	return &GameState{
		Player:    p,
		NPCs:      map[core.Loc]*Monster{},
		Ships:     map[core.Loc]*ship.Ship{},
		Items:     item.NewTable(),
		Weather:   weather.New(),
		WorldSeen: map[core.Loc]bool{},
		Notes:     map[int]string{},
		log:       logger,
	}
}

// SetLogger reattaches a logger after a save is restored.
func (gs *GameState) SetLogger(logger *zap.SugaredLogger) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	gs.log = logger
}

// WriteMsg queues a line for the message bar and folds consecutive
// repeats in the history.
func (gs *GameState) WriteMsg(msg string) {
	gs.MsgBuff = append(gs.MsgBuff, msg)

	if len(msg) == 0 {
		return
	}
	if len(gs.MsgHistory) == 0 || msg != gs.MsgHistory[0].Text {
		gs.MsgHistory = append([]MsgEntry{{Text: msg, Count: 1}}, gs.MsgHistory...)
	} else {
		gs.MsgHistory[0].Count++
	}
	if len(gs.MsgHistory) > MsgHistoryLength {
		gs.MsgHistory = gs.MsgHistory[:MsgHistoryLength]
	}
}

// DrainMsgs hands the queued message lines to the caller and clears
// the queue.
func (gs *GameState) DrainMsgs() []string {
	msgs := gs.MsgBuff
	gs.MsgBuff = nil
	return msgs
}

// SidebarInfo is the player snapshot shown beside the view. Wheel and
// Bearing are -1 when the player is not at a helm.
type SidebarInfo struct {
	Name        string
	AC          int
	CurrStamina int
	MaxStamina  int
	Wheel       int
	Bearing     int
	Turn        int
	Charmed     bool
	Poisoned    bool
	Drunkenness int
}

func (gs *GameState) CurrSidebarInfo() SidebarInfo {
	wheel, bearing := -1, -1
	if gs.Player.OnShip {
		wheel = gs.Player.Wheel
		bearing = gs.Player.Bearing
	}

	return SidebarInfo{
		Name:        gs.Player.Name,
		AC:          gs.Player.AC,
		CurrStamina: gs.Player.CurrStamina,
		MaxStamina:  gs.Player.MaxStamina,
		Wheel:       wheel,
		Bearing:     bearing,
		Turn:        gs.Turn,
		Charmed:     gs.Player.Charmed,
		Poisoned:    gs.Player.Poisoned,
		Drunkenness: gs.Player.Drunkenness,
	}
}

func (gs *GameState) playerLoc() core.Loc {
	return core.Loc{Row: gs.Player.Row, Col: gs.Player.Col}
}
