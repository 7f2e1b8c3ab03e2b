package game

import (
	"sort"

	"github.com/lixenwraith/yarrl/dice"
	"github.com/lixenwraith/yarrl/item"
)

type PirateType int

const (
	Swab PirateType = iota
	Seadog
)

// Stat indices, shared with trinket bonuses.
const (
	StatStrength = iota
	StatConstitution
	StatDexterity
	StatVerve
)

type Player struct {
	Name         string          `json:"name"`
	AC           int             `json:"ac"`
	MaxStamina   int             `json:"max_stamina"`
	CurrStamina  int             `json:"curr_stamina"`
	Strength     int             `json:"strength"`
	Constitution int             `json:"constitution"`
	Dexterity    int             `json:"dexterity"`
	Verve        int             `json:"verve"`
	ProfBonus    int             `json:"prof_bonus"`
	Row          int             `json:"row"`
	Col          int             `json:"col"`
	Inventory    *item.Inventory `json:"inventory"`
	Type         PirateType      `json:"type"`
	OnShip       bool            `json:"on_ship"`
	Bearing      int             `json:"bearing"`
	Wheel        int             `json:"wheel"`
	Score        int             `json:"score"`
	Poisoned     bool            `json:"poisoned"`
	Charmed      bool            `json:"charmed"`
	Drunkenness  int             `json:"drunkenness"`
}

// StatMod is the d20 modifier for a raw stat value.
func StatMod(stat int) int {
	return stat/2 - 5
}

func rollStats(bonus int) []int {
	v := make([]int, 4)
	for i := range v {
		v[i] = dice.Roll(6, 3, bonus)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(v)))
	return v
}

// NewSwab makes a young pirate: quick and spirited, a little green.
// Best rolls go to dexterity and verve.
func NewSwab(name string) *Player {
	stats := rollStats(2)
	hp := 8 + dice.Roll(8, 4, StatMod(stats[3]))

	p := &Player{
		Name: name, AC: 10,
		MaxStamina: hp, CurrStamina: hp,
		Dexterity: stats[0], Verve: stats[1],
		Strength: stats[2], Constitution: stats[3],
		ProfBonus: 3,
		Inventory: item.NewInventory(),
		Type:      Swab,
	}

	p.grab("rusty cutlass")
	p.grab("leather jerkin")
	p.grab("draught of rum")
	p.grab("draught of rum")
	p.grab("draught of rum")

	p.Inventory.ToggleSlot('a')
	p.Inventory.ToggleSlot('b')
	p.CalcAC()

	return p
}

// NewSeadog makes an old hand: tougher, better trained, and armed with
// a flintlock. Best rolls go to constitution.
func NewSeadog(name string) *Player {
	stats := rollStats(0)
	hp := 8 + dice.Roll(8, 6, StatMod(stats[0]))

	p := &Player{
		Name: name, AC: 10,
		MaxStamina: hp, CurrStamina: hp,
		Constitution: stats[0], Strength: stats[1],
		Dexterity: stats[2], Verve: stats[3],
		ProfBonus: 4,
		Inventory: item.NewInventory(),
		Type:      Seadog,
	}

	p.grab("rusty cutlass")
	p.grab("flintlock pistol")
	p.grab("overcoat")
	p.grab("battered tricorn")
	p.grab("draught of rum")
	p.grab("draught of rum")
	p.grab("draught of rum")
	for i := 0; i < 12; i++ {
		p.grab("lead ball")
	}

	p.Inventory.ToggleSlot('a')
	p.Inventory.ToggleSlot('b')
	p.Inventory.ToggleSlot('c')
	p.Inventory.ToggleSlot('d')
	p.CalcAC()

	return p
}

func (p *Player) grab(name string) {
	if i, ok := item.ByName(name); ok {
		p.Inventory.Add(i)
	}
}

// fetishBonus is the passive adjustment from an active trinket.
func (p *Player) fetishBonus(stat int) int {
	if f, ok := p.Inventory.EquippedFetish(); ok && f.StatBonus.Stat == stat {
		return f.StatBonus.Amount
	}
	return 0
}

// Stat returns a stat with any trinket bonus folded in.
func (p *Player) Stat(stat int) int {
	base := 0
	switch stat {
	case StatStrength:
		base = p.Strength
	case StatConstitution:
		base = p.Constitution
	case StatDexterity:
		base = p.Dexterity
	case StatVerve:
		base = p.Verve
	}
	return base + p.fetishBonus(stat)
}

func (p *Player) AddStamina(stamina int) {
	p.CurrStamina += stamina
	if p.CurrStamina > p.MaxStamina {
		p.CurrStamina = p.MaxStamina
	}
}

func (p *Player) CalcAC() {
	total := 10 + p.Inventory.TotalArmourValue() + StatMod(p.Stat(StatDexterity))
	if total < 0 {
		total = 0
	}
	p.AC = total
}
