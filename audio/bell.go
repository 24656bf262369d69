// Package audio provides a software bell for applications whose terminal
// has no audible bell: a short shaped sine tone played through the system
// mixer.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	bellFreq     = 880.0
	bellDuration = 60 * time.Millisecond
	fadeDuration = 10 * time.Millisecond
)

// Bell plays short notification tones. Zero value is unusable; call Open.
type Bell struct {
	freq float64
	open bool
}

// Open initializes the speaker. Failure is non-fatal for callers: a UI can
// run without sound.
func Open() (*Bell, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio init: %w", err)
	}
	return &Bell{freq: bellFreq, open: true}, nil
}

// SetPitch changes the tone frequency in Hz.
func (b *Bell) SetPitch(freq float64) {
	if freq > 0 {
		b.freq = freq
	}
}

// Ring plays one tone. Asynchronous; returns immediately.
func (b *Bell) Ring() {
	if b == nil || !b.open {
		return
	}
	tone, err := generators.SineTone(sampleRate, b.freq)
	if err != nil {
		return
	}
	n := sampleRate.N(bellDuration)
	speaker.Play(newFade(beep.Take(n, tone), n))
}

// Close shuts the speaker down.
func (b *Bell) Close() {
	if b == nil || !b.open {
		return
	}
	b.open = false
	speaker.Close()
}

// fade shapes a streamer with linear attack and release so the tone does
// not click at its edges.
type fade struct {
	streamer beep.Streamer
	position int
	edge     int
	total    int
}

func newFade(s beep.Streamer, total int) beep.Streamer {
	edge := sampleRate.N(fadeDuration)
	if 2*edge > total {
		edge = total / 2
	}
	return &fade{streamer: s, edge: edge, total: total}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case f.position < f.edge:
			vol = float64(f.position) / math.Max(1, float64(f.edge))
		case f.position >= f.total-f.edge:
			vol = float64(f.total-f.position) / math.Max(1, float64(f.edge))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.streamer.Err()
}
