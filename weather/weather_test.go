package weather

import (
	"testing"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/dice"
	"github.com/lixenwraith/yarrl/world"
)

func TestFullIntensityCloudsWholeDisc(t *testing.T) {
	dice.Reseed(2)
	m := world.NewMap(40, 40, world.DeepWater)
	w := New()
	w.Systems = append(w.Systems, NewSystem(20, 20, 5, 1.0))

	w.CalcClouds(m)
	if len(w.Clouds) == 0 {
		t.Fatal("Expected clouds at full intensity")
	}
	for pt := range w.Clouds {
		if d := core.Cartesian(20, 20, pt.Row, pt.Col); d > 5 {
			t.Errorf("Cloud at (%d,%d) is %d squares out, beyond the radius", pt.Row, pt.Col, d)
		}
	}
	if !w.CloudAt(20, 25) {
		t.Error("Expected the rim of the disc to be clouded at full intensity")
	}
}

func TestZeroIntensityStaysClear(t *testing.T) {
	dice.Reseed(2)
	m := world.NewMap(40, 40, world.DeepWater)
	w := New()
	w.Systems = append(w.Systems, NewSystem(20, 20, 5, 0.0))

	w.CalcClouds(m)
	if len(w.Clouds) != 0 {
		t.Errorf("Expected no clouds at zero intensity, got %d", len(w.Clouds))
	}
}

func TestCloudsClampedToMap(t *testing.T) {
	dice.Reseed(2)
	m := world.NewMap(10, 10, world.DeepWater)
	w := New()
	w.Systems = append(w.Systems, NewSystem(0, 0, 6, 1.0))

	w.CalcClouds(m)
	for pt := range w.Clouds {
		if !m.InBounds(pt.Row, pt.Col) {
			t.Errorf("Cloud at (%d,%d) lies off the map", pt.Row, pt.Col)
		}
	}
}

func TestRecalcClearsOldClouds(t *testing.T) {
	dice.Reseed(2)
	m := world.NewMap(40, 40, world.DeepWater)
	w := New()
	w.Systems = append(w.Systems, NewSystem(20, 20, 3, 1.0))
	w.CalcClouds(m)

	w.Systems = nil
	w.CalcClouds(m)
	if len(w.Clouds) != 0 {
		t.Errorf("Expected stale clouds to clear, got %d", len(w.Clouds))
	}
}
