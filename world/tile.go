// Package world holds the tile grid and its procedural generators.
package world

import "github.com/lixenwraith/yarrl/core"

// Kind identifies a terrain or overlay tile.
type Kind int

const (
	Blank Kind = iota
	Wall
	WoodWall
	Tree
	Dirt
	Grass
	Water
	DeepWater
	WorldEdge
	Sand
	Mountain
	SnowPeak
	Gate
	StoneFloor
	Floor
	Lava
	FirePit
	OldFirePit
	Window
	Mast
	ShipPart
	Shipwreck
	PlayerTile
	Thing
	Bullet
	Separator
)

// Tile is a map square. Ch, Color and Name are payloads only some kinds
// carry: glyph for ship parts, masts, windows, bullets and things;
// color for things and the player marker; ship name for wrecks.
type Tile struct {
	Kind  Kind       `json:"kind"`
	Ch    rune       `json:"ch,omitempty"`
	Color core.Color `json:"color,omitempty"`
	Name  string     `json:"name,omitempty"`
}

// Of builds a plain tile of a kind.
func Of(k Kind) Tile {
	return Tile{Kind: k}
}

// Glyph builds a tile whose appearance is its payload rune.
func Glyph(k Kind, ch rune) Tile {
	return Tile{Kind: k, Ch: ch}
}

// ThingTile marks an item or creature in the view matrix.
func ThingTile(color core.Color, ch rune) Tile {
	return Tile{Kind: Thing, Ch: ch, Color: color}
}

// Player marks the player's square in the view matrix.
func Player(color core.Color) Tile {
	return Tile{Kind: PlayerTile, Color: color}
}

// ShipwreckTile builds a wreck deck carrying the lost ship's name.
func ShipwreckTile(ch rune, name string) Tile {
	return Tile{Kind: Shipwreck, Ch: ch, Name: name}
}

// Passable reports whether a creature can occupy the tile. Water counts
// as passable; drowning is the turn loop's problem.
func (t Tile) Passable() bool {
	switch t.Kind {
	case Wall, Blank, WorldEdge, Mountain, SnowPeak, Gate, WoodWall, Window:
		return false
	default:
		return true
	}
}

// Clear reports whether sight passes through the tile.
func (t Tile) Clear() bool {
	switch t.Kind {
	case Wall, Blank, Mountain, SnowPeak, WoodWall:
		return false
	default:
		return true
	}
}

// KindSet is a passability class for pathfinding.
type KindSet map[Kind]bool

// LandKinds is the walking set used by land creatures.
func LandKinds() KindSet {
	return KindSet{Dirt: true, Grass: true, Sand: true, Tree: true, Floor: true}
}

// ShallowKinds adds wading to the walking set.
func ShallowKinds() KindSet {
	s := LandKinds()
	s[Water] = true
	return s
}

// DeepWaterOnly is the swimming set used by sharks and merfolk.
func DeepWaterOnly() KindSet {
	return KindSet{DeepWater: true}
}

// AllPassable covers every tile a desperate creature could enter.
func AllPassable() KindSet {
	return KindSet{
		Water: true, DeepWater: true, Grass: true, Tree: true,
		Dirt: true, Sand: true, Lava: true, Floor: true,
		StoneFloor: true, FirePit: true, OldFirePit: true,
		ShipPart: true, Shipwreck: true, Mast: true,
	}
}
