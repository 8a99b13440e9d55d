// Package audio provides interaction sound feedback.
package audio

import (
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Blip frequencies: selecting a region plays the higher tone, deselecting
// the lower one.
const (
	selectFreq   = 880.0
	deselectFreq = 523.25
	blipDuration = 70 * time.Millisecond
)

// Manager synthesizes and plays the short click feedback tones.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	muted       bool
	volume      float64 // 0.0 to 1.0

	// Mixer for concurrent playback of overlapping blips
	mixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		volume: 0.8,
		mixer:  &beep.Mixer{},
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the feedback volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the feedback volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// SetMuted enables or disables feedback sounds.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted returns whether feedback sounds are disabled.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// PlaySelect plays the region-selected blip.
func (m *Manager) PlaySelect() {
	m.play(selectFreq)
}

// PlayDeselect plays the region-deselected blip.
func (m *Manager) PlayDeselect() {
	m.play(deselectFreq)
}

func (m *Manager) play(freq float64) {
	m.mu.RLock()
	initialized := m.initialized
	muted := m.muted
	vol := m.volume
	rate := m.sampleRate
	m.mu.RUnlock()

	if !initialized || muted || vol <= 0 {
		return
	}

	tone := newBlip(rate, freq, blipDuration)
	m.mixer.Add(&effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   volumeToDb(vol),
		Silent:   false,
	})
}

// volumeToDb converts a 0-1 volume to the decibel scale beep expects.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return 20 * gomath.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// blip is a sine tone with a linear attack/decay envelope so it starts and
// ends without clicks.
type blip struct {
	rate    beep.SampleRate
	freq    float64
	total   int
	pos     int
	attack  int
	release int
}

func newBlip(rate beep.SampleRate, freq float64, d time.Duration) *blip {
	total := rate.N(d)
	edge := total / 8
	if edge < 1 {
		edge = 1
	}
	return &blip{
		rate:    rate,
		freq:    freq,
		total:   total,
		attack:  edge,
		release: edge,
	}
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= b.total {
		return 0, false
	}
	for i := range samples {
		if b.pos >= b.total {
			return i, true
		}
		t := float64(b.pos) / float64(b.rate)
		v := gomath.Sin(2 * gomath.Pi * b.freq * t)

		// Envelope
		env := 1.0
		if b.pos < b.attack {
			env = float64(b.pos) / float64(b.attack)
		} else if remaining := b.total - b.pos; remaining < b.release {
			env = float64(remaining) / float64(b.release)
		}
		v *= env * 0.4

		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *blip) Err() error {
	return nil
}
