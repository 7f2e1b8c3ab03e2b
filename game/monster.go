package game

import (
	"fmt"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
	"github.com/lixenwraith/yarrl/path"
	"github.com/lixenwraith/yarrl/world"
)

type Monster struct {
	Name       string     `json:"name"`
	AC         int        `json:"ac"`
	HP         int        `json:"hp"`
	Symbol     rune       `json:"symbol"`
	Row        int        `json:"row"`
	Col        int        `json:"col"`
	Color      core.Color `json:"color"`
	HitBonus   int        `json:"hit_bonus"`
	Dmg        int        `json:"dmg"`
	DmgDice    int        `json:"dmg_dice"`
	DmgBonus   int        `json:"dmg_bonus"`
	SpecialDmg string     `json:"special_dmg"`
	Score      int        `json:"score"`
	Gender     int        `json:"gender"`
	Anchor     core.Loc   `json:"anchor"`
	Hostile    bool       `json:"hostile"`
	Aware      bool       `json:"aware"`
}

func newMonster(name string, ac, hp int, symbol rune, row, col int, color core.Color,
	hitBonus, dmg, dmgDice, dmgBonus, score int) *Monster {
	return &Monster{
		Name: name, AC: ac, HP: hp, Symbol: symbol, Row: row, Col: col,
		Color: color, HitBonus: hitBonus, Dmg: dmg, DmgDice: dmgDice,
		DmgBonus: dmgBonus, Score: score,
	}
}

// NewPirate makes a marooned pirate who guards the camp at anchor.
func NewPirate(row, col int, anchor core.Loc) *Monster {
	p := newMonster("marooned pirate", 14, dice.Roll(8, 3, 0), '@', row, col,
		core.Grey, 5, 6, 1, 0, 10)
	p.Anchor = anchor

	roll := dice.Float()
	if roll < 0.33 {
		p.Gender = 1
	} else if roll < 0.66 {
		p.Gender = 2
	}
	return p
}

func NewSnake(row, col int) *Monster {
	var colour core.Color
	roll := dice.Float()
	if roll < 0.33 {
		colour = core.BrightRed
	} else if roll < 0.66 {
		colour = core.Gold
	} else {
		colour = core.Green
	}

	s := newMonster("snake", 14, dice.Roll(6, 2, 0), 'S', row, col, colour,
		4, 4, 1, 0, 10)
	s.SpecialDmg = "poison"
	return s
}

func NewShark(row, col int) *Monster {
	return newMonster("shark", 12, dice.Roll(8, 3, 0), '^', row, col,
		core.Grey, 4, 8, 1, 2, 10)
}

func NewBoar(row, col int) *Monster {
	return newMonster("wild boar", 12, dice.Roll(6, 2, 0), 'b', row, col,
		core.DarkBrown, 4, 6, 1, 2, 5)
}

// NewMerfolk makes one of the singing sea folk. They never strike a
// blow; their song does the work.
func NewMerfolk(row, col int) *Monster {
	var name string
	roll := dice.Float()
	if roll < 0.33 {
		name = "mermaid"
	} else if roll < 0.66 {
		name = "merman"
	} else {
		name = "merperson"
	}
	return newMonster(name, 12, dice.Roll(6, 3, 0), 'm', row, col,
		core.LightBlue, 2, 1, 1, 0, 8)
}

func (m *Monster) IsMerfolk() bool {
	return m.Name == "mermaid" || m.Name == "merman" || m.Name == "merperson"
}

// Act gives the monster its move for the turn. A RunEnd comes back
// when its attack finishes the player off.
func (m *Monster) Act(gs *GameState) error {
	switch {
	case m.Name == "shark":
		return m.sharkAction(gs)
	case m.Name == "wild boar":
		return m.basicAction(gs, "gores")
	case m.Name == "snake":
		return m.basicAction(gs, "bites")
	case m.Name == "marooned pirate":
		return m.pirateAction(gs)
	case m.IsMerfolk():
		return m.merfolkAction(gs)
	}
	return nil
}

func (m *Monster) loc() core.Loc {
	return core.Loc{Row: m.Row, Col: m.Col}
}

func (m *Monster) attackRoll(gs *GameState) bool {
	return dice.Check(m.HitBonus, gs.Player.AC, 0)
}

func (m *Monster) specialDmg(gs *GameState) {
	if m.SpecialDmg == "poison" {
		conMod := StatMod(gs.Player.Stat(StatConstitution))
		if !gs.Player.Poisoned && !dice.Check(conMod, 13, 0) {
			gs.WriteMsg("You are poisoned!")
			gs.Player.Poisoned = true
		}
	}
}

// findAdjEmptySq picks a random adjacent square the monster could
// stand on, or stays put when there is none.
func findAdjEmptySq(row, col int, m world.Map, passable world.KindSet) (int, int) {
	var adj []core.Loc
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if !m.InBounds(nr, nc) || !passable[m.At(nr, nc).Kind] {
				continue
			}
			adj = append(adj, core.Loc{Row: nr, Col: nc})
		}
	}
	if len(adj) == 0 {
		return row, col
	}
	pick := adj[dice.Roll(len(adj), 1, 0)-1]
	return pick.Row, pick.Col
}

// chase steps the monster toward the player along its passable set.
// It reports whether the monster ended up with a square to move to.
func (m *Monster) chase(gs *GameState, passable world.KindSet) (int, int, bool) {
	p := path.FindPath(gs.Map, m.Row, m.Col, gs.Player.Row, gs.Player.Col, passable)
	if len(p) > 1 {
		next := p[1]
		if _, blocked := gs.NPCs[next]; blocked {
			gs.WriteMsg(fmt.Sprintf("The %s is blocked.", m.Name))
			return 0, 0, false
		}
		return next.Row, next.Col, true
	}
	r, c := findAdjEmptySq(m.Row, m.Col, gs.Map, passable)
	return r, c, true
}

func (m *Monster) basicAction(gs *GameState, verb string) error {
	if core.Adjacent(m.Row, m.Col, gs.Player.Row, gs.Player.Col) {
		if m.attackRoll(gs) {
			gs.WriteMsg(fmt.Sprintf("The %s %s you!", m.Name, verb))
			dmg := dice.Roll(m.Dmg, m.DmgDice, m.DmgBonus)
			if err := playerTakesDmg(gs.Player, dmg, m.Name); err != nil {
				return err
			}
			if m.SpecialDmg != "" {
				m.specialDmg(gs)
			}
		} else {
			gs.WriteMsg(fmt.Sprintf("The %s missed!", m.Name))
		}
		return nil
	}

	if core.Manhattan(m.Row, m.Col, gs.Player.Row, gs.Player.Col) < 25 {
		if r, c, ok := m.chase(gs, world.LandKinds()); ok {
			m.Row, m.Col = r, c
		}
	}
	return nil
}

var pirateLines = []string{
	"Ye scurvy dog!",
	"Arroint thee, barnacle!",
	"I'll scuttle you!",
	"To the locker with ye!",
	"I've smelled better bilges!",
}

func (m *Monster) pirateAction(gs *GameState) error {
	pronoun := "their"
	if m.Gender == 1 {
		pronoun = "her"
	} else if m.Gender == 2 {
		pronoun = "his"
	}

	if core.Adjacent(m.Row, m.Col, gs.Player.Row, gs.Player.Col) {
		if m.attackRoll(gs) {
			gs.WriteMsg(fmt.Sprintf("The %s slashes with %s cutlass!", m.Name, pronoun))
			dmg := dice.Roll(m.Dmg, m.DmgDice, m.DmgBonus)
			if err := playerTakesDmg(gs.Player, dmg, m.Name); err != nil {
				return err
			}
		} else {
			gs.WriteMsg(fmt.Sprintf("The %s missed!", m.Name))
		}

		if dice.Float() < 0.2 {
			gs.WriteMsg(pirateLines[dice.Intn(len(pirateLines))])
		}
		return nil
	}

	if core.Manhattan(m.Row, m.Col, gs.Player.Row, gs.Player.Col) < 20 {
		nextR, nextC, ok := m.chase(gs, world.ShallowKinds())
		if !ok {
			return nil
		}
		// Pirates won't wander too far from their campsite.
		if core.Manhattan(m.Anchor.Row, m.Anchor.Col, nextR, nextC) < 9 {
			m.Row, m.Col = nextR, nextC
		}
	}
	return nil
}

func (m *Monster) sharkAction(gs *GameState) error {
	if core.Adjacent(m.Row, m.Col, gs.Player.Row, gs.Player.Col) {
		if m.attackRoll(gs) {
			gs.WriteMsg("The shark bites you!")
			dmg := dice.Roll(m.Dmg, m.DmgDice, m.DmgBonus)
			if err := playerTakesDmg(gs.Player, dmg, "shark"); err != nil {
				return err
			}
		} else {
			gs.WriteMsg("The shark misses!")
		}
		return nil
	}

	if core.Manhattan(m.Row, m.Col, gs.Player.Row, gs.Player.Col) < 50 {
		if r, c, ok := m.chase(gs, world.DeepWaterOnly()); ok {
			m.Row, m.Col = r, c
		}
	}
	return nil
}

// Merfolk keep to deep water and sing. A player in earshot who fails
// a verve save is charmed and drawn toward the singer. Rum-soaked ears
// resist better.
func (m *Monster) merfolkAction(gs *GameState) error {
	d := core.Cartesian(m.Row, m.Col, gs.Player.Row, gs.Player.Col)
	if d <= 12 && !gs.Player.Charmed {
		verveMod := StatMod(gs.Player.Stat(StatVerve))
		bonus := (gs.Player.Drunkenness + 2) / 5
		if !dice.Check(verveMod, 14, bonus) {
			gs.WriteMsg(fmt.Sprintf("The %s sings an entrancing melody!", m.Name))
			gs.Player.Charmed = true
		}
	}

	// Drift randomly in the deep; no chasing, the song does that.
	r, c := findAdjEmptySq(m.Row, m.Col, gs.Map, world.DeepWaterOnly())
	if _, occupied := gs.NPCs[core.Loc{Row: r, Col: c}]; !occupied {
		m.Row, m.Col = r, c
	}
	return nil
}
