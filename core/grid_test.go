package core

import "testing"

func TestManhattan(t *testing.T) {
	if d := Manhattan(0, 0, 3, 4); d != 7 {
		t.Errorf("Expected distance 7, got %d", d)
	}
	if d := Manhattan(5, 5, 2, 9); d != 7 {
		t.Errorf("Expected distance 7, got %d", d)
	}
	if d := Manhattan(2, 2, 2, 2); d != 0 {
		t.Errorf("Expected distance 0, got %d", d)
	}
}

func TestCartesian(t *testing.T) {
	if d := Cartesian(0, 0, 3, 4); d != 5 {
		t.Errorf("Expected distance 5, got %d", d)
	}
	if d := Cartesian(1, 1, 1, 2); d != 1 {
		t.Errorf("Expected distance 1, got %d", d)
	}
}

func TestAdjacent(t *testing.T) {
	cases := []struct {
		r0, c0, r1, c1 int
		want           bool
	}{
		{5, 5, 4, 4, true},
		{5, 5, 4, 5, true},
		{5, 5, 6, 6, true},
		{5, 5, 5, 5, false},
		{5, 5, 7, 5, false},
		{5, 5, 5, 3, false},
	}
	for _, c := range cases {
		if got := Adjacent(c.r0, c.c0, c.r1, c.c1); got != c.want {
			t.Errorf("Adjacent(%d,%d,%d,%d): expected %v, got %v",
				c.r0, c.c0, c.r1, c.c1, c.want, got)
		}
	}
}

func TestDirBetween(t *testing.T) {
	cases := []struct {
		r0, c0, r1, c1 int
		want           string
	}{
		{5, 5, 4, 5, "N"},
		{5, 5, 6, 5, "S"},
		{5, 5, 5, 4, "W"},
		{5, 5, 5, 6, "E"},
		{5, 5, 4, 6, "NE"},
		{5, 5, 6, 4, "SW"},
	}
	for _, c := range cases {
		if got := DirBetween(c.r0, c.c0, c.r1, c.c1); got != c.want {
			t.Errorf("DirBetween(%d,%d,%d,%d): expected %q, got %q",
				c.r0, c.c0, c.r1, c.c1, c.want, got)
		}
	}
}

func TestMoveDeltaInvertsDirBetween(t *testing.T) {
	for _, dir := range []string{"N", "S", "E", "W", "NE", "NW", "SE", "SW"} {
		dr, dc := MoveDelta(dir)
		if got := DirBetween(5, 5, 5+dr, 5+dc); got != dir {
			t.Errorf("Expected direction %q to round-trip, got %q", dir, got)
		}
	}
}

func TestBresenhamCircleRadius(t *testing.T) {
	pts := BresenhamCircle(10, 10, 4)
	if len(pts) == 0 {
		t.Fatal("Expected circle points, got none")
	}
	for _, p := range pts {
		d := Cartesian(10, 10, p.Row, p.Col)
		if d < 3 || d > 4 {
			t.Errorf("Expected point (%d,%d) near radius 4, distance %d", p.Row, p.Col, d)
		}
	}
}

func TestLocTextRoundTrip(t *testing.T) {
	l := Loc{Row: 12, Col: -3}
	text, err := l.MarshalText()
	if err != nil {
		t.Fatalf("Expected marshal to succeed, got %v", err)
	}
	var back Loc
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("Expected unmarshal to succeed, got %v", err)
	}
	if back != l {
		t.Errorf("Expected %v, got %v", l, back)
	}
}
