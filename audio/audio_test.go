package audio

import "testing"

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := New(false, nil)
	if p.ready {
		t.Error("Expected a disabled player to stay unready")
	}
	// Must not panic without a speaker.
	p.Play(CueCannon)
	p.Play(Cue(99))
}

func TestEveryCueSpecified(t *testing.T) {
	for _, c := range []Cue{CueCannon, CueBell, CueSplash, CueTreasure} {
		spec, ok := cues[c]
		if !ok {
			t.Fatalf("Cue %d has no spec", c)
		}
		if spec.freq <= 0 || spec.duration <= 0 {
			t.Errorf("Cue %d has a degenerate spec %+v", c, spec)
		}
	}
}
