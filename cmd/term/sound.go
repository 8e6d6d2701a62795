package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type sound struct{}

func newSound() (*sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &sound{}, nil
}

// clearTone is the pitch played for clearing rows at once. More rows sound
// higher.
func clearTone(rows int64) float64 {
	return 440 * float64(min(max(rows, 1), 4))
}

// playClear plays a short tone for clearing rows.
func (s *sound) playClear(rows int64) {
	sine, err := generators.SineTone(sampleRate, clearTone(rows))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(80*time.Millisecond), sine))
}

func (s *sound) close() {
	speaker.Close()
}
