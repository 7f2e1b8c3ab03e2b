package dice

import "testing"

func TestRollRange(t *testing.T) {
	Reseed(1)
	for i := 0; i < 1000; i++ {
		v := Roll(6, 2, 0)
		if v < 2 || v > 12 {
			t.Errorf("Expected 2d6 in [2,12], got %d", v)
		}
	}
}

func TestRollModifier(t *testing.T) {
	Reseed(1)
	for i := 0; i < 1000; i++ {
		v := Roll(4, 1, 3)
		if v < 4 || v > 7 {
			t.Errorf("Expected 1d4+3 in [4,7], got %d", v)
		}
	}
}

func TestRollNeverNegative(t *testing.T) {
	Reseed(1)
	for i := 0; i < 1000; i++ {
		if v := Roll(4, 1, -10); v != 0 {
			t.Errorf("Expected clamped roll of 0, got %d", v)
		}
	}
}

func TestCheckBounds(t *testing.T) {
	Reseed(1)
	// 1d20+10 always meets DC 11; 1d20-1 never meets DC 99.
	for i := 0; i < 100; i++ {
		if !Check(10, 11, 0) {
			t.Error("Expected check with +10 vs DC 11 to always pass")
		}
		if Check(-1, 99, 0) {
			t.Error("Expected check vs DC 99 to always fail")
		}
	}
}

func TestReseedDeterminism(t *testing.T) {
	Reseed(42)
	a := make([]int, 10)
	for i := range a {
		a[i] = Roll(20, 1, 0)
	}
	Reseed(42)
	for i := range a {
		if v := Roll(20, 1, 0); v != a[i] {
			t.Errorf("Expected repeat roll %d at index %d, got %d", a[i], i, v)
		}
	}
}
