// Package audio plays short tone cues with beep. A failed speaker init
// leaves the game silent, never broken.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a game sound.
type Cue int

const (
	CueCannon Cue = iota
	CueBell
	CueSplash
	CueTreasure
)

type cueSpec struct {
	freq     float64
	duration time.Duration
}

var cues = map[Cue]cueSpec{
	CueCannon:   {freq: 110, duration: 180 * time.Millisecond},
	CueBell:     {freq: 880, duration: 120 * time.Millisecond},
	CueSplash:   {freq: 330, duration: 90 * time.Millisecond},
	CueTreasure: {freq: 660, duration: 250 * time.Millisecond},
}

// Player owns the speaker. Play is safe to call whether or not the
// speaker came up.
type Player struct {
	ready bool
	log   *zap.SugaredLogger
}

func New(enabled bool, logger *zap.SugaredLogger) *Player {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	p := &Player{log: logger}
	if !enabled {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warnw("audio unavailable", "error", err)
		return p
	}
	p.ready = true
	return p
}

func (p *Player) Play(c Cue) {
	if !p.ready {
		return
	}
	spec, ok := cues[c]
	if !ok {
		return
	}

	sine, err := generators.SineTone(sampleRate, spec.freq)
	if err != nil {
		p.log.Warnw("tone generation failed", "cue", c, "error", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(spec.duration), sine))
}
