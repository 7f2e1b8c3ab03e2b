// Package item holds the gear, loot and provisions found
// aboard ships and scattered across the islands.
package item

import (
	"fmt"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
)

type Type int

const (
	Weapon Type = iota
	Coat
	Hat
	Shoes
	Drink
	Firearm
	Bullet
	Coin
	TreasureMap
	Food
	EyePatch
	Note
	MacGuffin
	Light
	Fuel
	Fetish
)

// StatBonus is a passive adjustment a worn trinket grants.
// Stat is an index into the wearer's stat block.
type StatBonus struct {
	Stat   int `json:"stat"`
	Amount int `json:"amount"`
}

type Item struct {
	Name        string     `json:"name"`
	Type        Type       `json:"type"`
	Weight      int        `json:"weight"`
	Symbol      rune       `json:"symbol"`
	Color       core.Color `json:"color"`
	Stackable   bool       `json:"stackable"`
	PrevSlot    byte       `json:"prev_slot"`
	Dmg         int        `json:"dmg"`
	DmgDice     int        `json:"dmg_dice"`
	Bonus       int        `json:"bonus"`
	Range       int        `json:"range"`
	ArmourValue int        `json:"armour_value"`
	Equipped    bool       `json:"equipped"`
	Loaded      bool       `json:"loaded"`
	Hidden      bool       `json:"hidden"`
	NWCorner    core.Loc   `json:"nw_corner"`
	XCoord      core.Loc   `json:"x_coord"`
	OfMapID     int        `json:"of_map_id"`
	Activated   bool       `json:"activated"`
	Fuel        int        `json:"fuel"`
	StatBonus   StatBonus  `json:"stat_bonus"`
}

func newItem(name string, t Type, weight int, stackable bool, sym rune, color core.Color) Item {
	return Item{
		Name: name, Type: t, Weight: weight, Symbol: sym, Color: color,
		Stackable: stackable, Dmg: 1, DmgDice: 1,
	}
}

// SameAs reports whether two items stack together. Only the name
// matters; charge and wear state is carried per-stack.
func (i Item) SameAs(other Item) bool {
	return i.Name == other.Name
}

func (i Item) Equipable() bool {
	switch i.Type {
	case Weapon, Coat, Hat, Firearm, EyePatch, Fetish:
		return true
	}
	return false
}

// IndefiniteArticle is "" for unique treasure, which carries a
// possessive name of its own.
func (i Item) IndefiniteArticle() string {
	if i.Type == MacGuffin {
		return ""
	}
	switch i.Name[0] {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return "an"
	}
	return "a"
}

func (i Item) DefiniteArticle() string {
	if i.Type == MacGuffin {
		return ""
	}
	return "the"
}

func (i Item) FullName() string {
	s := i.Name
	if i.Equipped {
		switch i.Type {
		case Weapon, Firearm:
			s += " (in hand)"
		case Coat, Hat, EyePatch:
			s += " (being worn)"
		case Fetish:
			s += " (active)"
		}
	}
	if i.Type == Light && i.Activated {
		s += " (lit)"
	}
	return s
}

// NewTreasureMap makes a map leading to the X at xCoord on the island
// whose chart corner is nwCorner.
func NewTreasureMap(nwCorner, xCoord core.Loc, mapID int) Item {
	m := newItem("treasure map", TreasureMap, 0, false, '?', core.White)
	m.NWCorner = nwCorner
	m.XCoord = xCoord
	m.OfMapID = mapID
	return m
}

// NewMacguffin makes the hidden chest the whole voyage is about.
func NewMacguffin(pirateLord string) Item {
	mg := newItem(pirateLord+"'s chest", MacGuffin, 0, false, '=', core.Gold)
	mg.Hidden = true
	return mg
}

func NewNote(noteNum int) Item {
	n := newItem("scrap of paper", Note, 0, false, '?', core.White)
	n.Bonus = noteNum
	return n
}

func NoteText(shipName string) string {
	switch dice.Intn(4) {
	case 0:
		return fmt.Sprintf("A ship's manifest from the %s.", shipName)
	case 1:
		return fmt.Sprintf("A love letter addressed to the bosun of the %s.", shipName)
	case 2:
		return fmt.Sprintf("'Wanted for piracy, the crew of the %s.'", shipName)
	default:
		return fmt.Sprintf("An invoice for 10 barrels of beer for the %s.", shipName)
	}
}

var fetishNames = []string{
	"ugly fetish", "smelly fetish", "cloth fetish", "bone fetish",
	"seashell fetish", "ivory fetish", "wood fetish", "scrimshaw fetish",
}

func fetishName() string {
	return fetishNames[dice.Intn(len(fetishNames))]
}

// ByName builds a fresh item from the catalog. The second return is
// false for names the catalog does not know.
func ByName(name string) (Item, bool) {
	switch name {
	case "draught of rum":
		i := newItem(name, Drink, 1, true, '!', core.Brown)
		i.Bonus = 15
		return i, true
	case "rusty cutlass":
		i := newItem(name, Weapon, 3, false, '|', core.White)
		i.Dmg = 5
		return i, true
	case "battered tricorn":
		i := newItem(name, Hat, 1, false, '[', core.Brown)
		i.ArmourValue = 1
		return i, true
	case "leather jerkin":
		i := newItem(name, Coat, 2, false, '[', core.Brown)
		i.ArmourValue = 1
		return i, true
	case "overcoat":
		i := newItem(name, Coat, 3, false, '[', core.Blue)
		i.ArmourValue = 2
		return i, true
	case "stout boots":
		i := newItem(name, Shoes, 2, false, '[', core.Brown)
		i.ArmourValue = 2
		return i, true
	case "magic eye patch":
		return newItem(name, EyePatch, 0, false, '[', core.BrightRed), true
	case "flintlock pistol":
		i := newItem(name, Firearm, 2, false, '-', core.Grey)
		i.Loaded = true
		i.Dmg = 6
		i.DmgDice = 2
		i.Range = 6
		return i, true
	case "corroded flintlock":
		i := newItem(name, Firearm, 2, false, '-', core.Grey)
		i.Dmg = 5
		i.DmgDice = 2
		i.Range = 6
		return i, true
	case "lead ball":
		return newItem(name, Bullet, 1, true, '*', core.Grey), true
	case "doubloon":
		return newItem(name, Coin, 1, true, '$', core.Gold), true
	case "coconut":
		i := newItem(name, Food, 1, true, '%', core.Beige)
		i.Bonus = 7
		return i, true
	case "banana":
		i := newItem(name, Food, 1, true, '(', core.Yellow)
		i.Bonus = 5
		return i, true
	case "salted pork":
		i := newItem(name, Food, 1, true, '%', core.Brown)
		i.Bonus = 3
		return i, true
	case "lantern":
		i := newItem(name, Light, 1, false, '(', core.Yellow)
		i.Fuel = dice.Range(100, 300)
		return i, true
	case "torch":
		i := newItem(name, Light, 1, true, '(', core.Brown)
		i.Fuel = dice.Range(25, 100)
		return i, true
	case "flask of oil":
		return newItem(name, Fuel, 1, true, '!', core.Yellow), true
	case "fetish":
		i := newItem(fetishName(), Fetish, 1, false, ';', core.YellowOrange)
		i.StatBonus = StatBonus{Stat: dice.Intn(4), Amount: 2}
		return i, true
	}
	return Item{}, false
}
