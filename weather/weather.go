// Package weather drifts fog banks over the ocean. Fog hides squares
// from view without blocking movement.
package weather

import (
	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
	"github.com/lixenwraith/yarrl/world"
)

// System is a patchy disc of fog. Intensity is the chance any square
// within it is clouded on a given turn.
type System struct {
	Row       int     `json:"row"`
	Col       int     `json:"col"`
	Radius    int     `json:"radius"`
	Intensity float64 `json:"intensity"`
}

func NewSystem(row, col, radius int, intensity float64) System {
	return System{Row: row, Col: col, Radius: radius, Intensity: intensity}
}

type Weather struct {
	Systems []System          `json:"systems"`
	Clouds  map[core.Loc]bool `json:"clouds"`
}

func New() *Weather {
	return &Weather{Clouds: map[core.Loc]bool{}}
}

// CalcClouds rerolls the cloud cover for every system. The patchiness
// shifts each turn so fog banks shimmer rather than sit solid.
func (w *Weather) CalcClouds(m world.Map) {
	w.Clouds = map[core.Loc]bool{}

	for _, s := range w.Systems {
		for r := 1; r <= s.Radius; r++ {
			for _, pt := range core.BresenhamCircle(s.Row, s.Col, r) {
				if dice.Float() < s.Intensity && m.InBounds(pt.Row, pt.Col) {
					w.Clouds[pt] = true
				}
			}
		}
	}
}

func (w *Weather) CloudAt(r, c int) bool {
	return w.Clouds[core.Loc{Row: r, Col: c}]
}
