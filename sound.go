package main

import (
	"bytes"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/consoletris/consoletris/internal/engine"
)

type SoundEvent int

const (
	SoundLock SoundEvent = iota
	SoundLine1
	SoundLine2
	SoundLine3
	SoundLine4
	SoundRotate
	SoundMove
	SoundDrop
	SoundGameOver
)

type SoundEngine struct {
	mu         sync.RWMutex
	ctx        *oto.Context
	enabled    bool
	sampleRate int
	volume     float64
}

func NewSoundEngine(ctx *oto.Context, sampleRate int, enabled bool) *SoundEngine {
	return &SoundEngine{
		ctx:        ctx,
		enabled:    enabled && ctx != nil,
		sampleRate: sampleRate,
		volume:     0.7,
	}
}

func (s *SoundEngine) SetEnabled(enabled bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.enabled = enabled && s.ctx != nil
	s.mu.Unlock()
}

func (s *SoundEngine) SetVolume(volume float64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.volume = clampVolume(volume)
	s.mu.Unlock()
}

func (s *SoundEngine) Enabled() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// Play renders the tones for event and plays them on a background
// goroutine so the game loop never waits on the device.
func (s *SoundEngine) Play(event SoundEvent) {
	if s == nil {
		return
	}
	s.mu.RLock()
	ctx, enabled, volume := s.ctx, s.enabled, s.volume
	s.mu.RUnlock()
	if !enabled || ctx == nil {
		return
	}
	sequence := tonesForEvent(event)
	if len(sequence) == 0 {
		return
	}
	go func() {
		player := ctx.NewPlayer(bytes.NewReader(renderToneSequence(sequence, s.sampleRate, volume)))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			debugLog.Debug("close effect player", "err", err)
		}
	}()
}

// soundEventFor picks the effect for what one loop iteration did. polled is
// the player command applied in that iteration, if any.
func soundEventFor(polled engine.Command, result engine.Result) (SoundEvent, bool) {
	switch {
	case result.GameOver:
		return SoundGameOver, true
	case result.Cleared >= 4:
		return SoundLine4, true
	case result.Cleared == 3:
		return SoundLine3, true
	case result.Cleared == 2:
		return SoundLine2, true
	case result.Cleared == 1:
		return SoundLine1, true
	case result.Locked && polled == engine.HardDrop:
		return SoundDrop, true
	case result.Locked:
		return SoundLock, true
	case result.Rotated:
		return SoundRotate, true
	case result.Moved && (polled == engine.MoveLeft || polled == engine.MoveRight):
		return SoundMove, true
	}
	return SoundLock, false
}

type toneSpec struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

func tonesForEvent(event SoundEvent) []toneSpec {
	switch event {
	case SoundLock:
		return []toneSpec{{frequency: 220, duration: 70 * time.Millisecond, volume: 0.3}}
	case SoundLine1:
		return []toneSpec{{frequency: 440, duration: 90 * time.Millisecond, volume: 0.3}}
	case SoundLine2:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case SoundLine3:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case SoundLine4:
		return []toneSpec{
			{frequency: 660, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 990, duration: 120 * time.Millisecond, volume: 0.3},
		}
	case SoundRotate:
		return []toneSpec{{frequency: 520, duration: 40 * time.Millisecond, volume: 0.25}}
	case SoundMove:
		return []toneSpec{{frequency: 380, duration: 25 * time.Millisecond, volume: 0.18}}
	case SoundDrop:
		return []toneSpec{{frequency: 240, duration: 55 * time.Millisecond, volume: 0.22}}
	case SoundGameOver:
		return []toneSpec{
			{frequency: 330, duration: 120 * time.Millisecond, volume: 0.28},
			{frequency: 180, duration: 220 * time.Millisecond, volume: 0.28},
		}
	default:
		return nil
	}
}

const (
	toneGap        = 10 * time.Millisecond
	bytesPerSample = 4 // 16-bit stereo
)

func samplesFor(d time.Duration, sampleRate int) int {
	return int(float64(sampleRate) * d.Seconds())
}

// renderToneSequence renders 16-bit little-endian stereo PCM for sequence
// with a short silence between tones.
func renderToneSequence(sequence []toneSpec, sampleRate int, masterVolume float64) []byte {
	gapSamples := samplesFor(toneGap, sampleRate)
	total := 0
	for i, spec := range sequence {
		total += samplesFor(spec.duration, sampleRate)
		if i < len(sequence)-1 {
			total += gapSamples
		}
	}
	buffer := make([]byte, total*bytesPerSample)
	offset := 0
	for _, spec := range sequence {
		renderTone(buffer[offset:], spec, sampleRate, spec.volume*clampVolume(masterVolume))
		offset += (samplesFor(spec.duration, sampleRate) + gapSamples) * bytesPerSample
	}
	return buffer
}

func renderTone(buffer []byte, spec toneSpec, sampleRate int, volume float64) {
	const maxInt16 = 1<<15 - 1
	samples := samplesFor(spec.duration, sampleRate)
	fade := samplesFor(3*time.Millisecond, sampleRate)
	for i := 0; i < samples && (i+1)*bytesPerSample <= len(buffer); i++ {
		env := 1.0
		if fade > 0 {
			if i < fade {
				env = float64(i) / float64(fade)
			} else if i > samples-fade {
				env = math.Max(0, float64(samples-i)/float64(fade))
			}
		}
		sample := math.Sin(2 * math.Pi * spec.frequency * float64(i) / float64(sampleRate))
		value := int16(sample * volume * env * maxInt16)
		at := i * bytesPerSample
		buffer[at] = byte(value)
		buffer[at+1] = byte(value >> 8)
		buffer[at+2] = byte(value)
		buffer[at+3] = byte(value >> 8)
	}
}

func clampVolume(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
