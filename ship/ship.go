// Package ship models the two-tile sailing vessels the player and
// rival crews move about the ocean.
package ship

import (
	"github.com/lixenwraith/yarrl/dice"
)

// Hull glyphs. The bow glyph turns with the ship's bearing; the deck
// and aft share a block that squares up on the cardinals.
const (
	DeckStraight = '■'
	DeckAngle    = '◆'
	BowNE        = '◥'
	BowSE        = '◢'
	BowSW        = '◣'
	BowNW        = '◤'
	BowW         = '◀'
	BowE         = '▶'
	BowN         = '▲'
	BowS         = '▼'
	AftStraight  = '■'
	AftAngle     = '◆'
)

// Ship occupies three squares: the deck (its anchor point in Row/Col),
// the bow ahead of it and the aft behind. Bearing is a 16-point
// compass, 0 at north running clockwise. Wheel is the helm setting in
// -2..2; each sailing turn it swings the bearing.
type Ship struct {
	Name     string `json:"name"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	BowRow   int    `json:"bow_row"`
	BowCol   int    `json:"bow_col"`
	AftRow   int    `json:"aft_row"`
	AftCol   int    `json:"aft_col"`
	BowCh    rune   `json:"bow_ch"`
	AftCh    rune   `json:"aft_ch"`
	DeckCh   rune   `json:"deck_ch"`
	Wheel    int    `json:"wheel"`
	Bearing  int    `json:"bearing"`
	Anchored bool   `json:"anchored"`
	PrevMove [2]int `json:"prev_move"`
}

func New(name string) *Ship {
	return &Ship{Name: name, Anchored: true}
}

// UpdateLocInfo recomputes the bow and aft squares and hull glyphs
// from the deck square and current bearing.
func (s *Ship) UpdateLocInfo() {
	var bowCh, aftCh, deckCh rune
	var bowDr, bowDc, aftDr, aftDc int

	switch {
	case s.Bearing == 0 || s.Bearing == 1 || s.Bearing == 15:
		bowCh, bowDr, bowDc = BowN, -1, 0
		aftCh, aftDr, aftDc = AftStraight, 1, 0
		deckCh = DeckStraight
	case s.Bearing == 2:
		bowCh, bowDr, bowDc = BowNE, -1, 1
		aftCh, aftDr, aftDc = AftAngle, 1, -1
		deckCh = DeckAngle
	case s.Bearing >= 3 && s.Bearing <= 5:
		bowCh, bowDr, bowDc = BowE, 0, 1
		aftCh, aftDr, aftDc = AftStraight, 0, -1
		deckCh = DeckStraight
	case s.Bearing == 6:
		bowCh, bowDr, bowDc = BowSE, 1, 1
		aftCh, aftDr, aftDc = AftAngle, -1, -1
		deckCh = DeckAngle
	case s.Bearing >= 7 && s.Bearing <= 9:
		bowCh, bowDr, bowDc = BowS, 1, 0
		aftCh, aftDr, aftDc = AftStraight, -1, 0
		deckCh = DeckStraight
	case s.Bearing == 10:
		bowCh, bowDr, bowDc = BowSW, 1, -1
		aftCh, aftDr, aftDc = AftAngle, -1, 1
		deckCh = DeckAngle
	case s.Bearing >= 11 && s.Bearing <= 13:
		bowCh, bowDr, bowDc = BowW, 0, -1
		aftCh, aftDr, aftDc = AftStraight, 0, 1
		deckCh = DeckStraight
	default:
		bowCh, bowDr, bowDc = BowNW, -1, -1
		aftCh, aftDr, aftDc = AftAngle, 1, 1
		deckCh = DeckAngle
	}

	s.BowCh = bowCh
	s.BowRow = s.Row + bowDr
	s.BowCol = s.Col + bowDc
	s.AftCh = aftCh
	s.AftRow = s.Row + aftDr
	s.AftCol = s.Col + aftDc
	s.DeckCh = deckCh
}

// Turn applies the wheel to the bearing for one sailing move.
func (s *Ship) Turn() {
	s.Bearing = ((s.Bearing+s.Wheel)%16 + 16) % 16
}

var shipAdjectives = []string{
	"Salty", "Crimson", "Drunken", "Wayward", "Gilded",
	"Rotten", "Howling", "Merry", "Black", "Leaky",
}

var shipNouns = []string{
	"Guppy", "Kraken", "Mermaid", "Doubloon", "Cutlass",
	"Albatross", "Barnacle", "Widow", "Sargasso", "Monsoon",
}

func RandomName() string {
	return "The " + shipAdjectives[dice.Intn(len(shipAdjectives))] +
		" " + shipNouns[dice.Intn(len(shipNouns))]
}
