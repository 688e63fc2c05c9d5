package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
)

// MusicPlayer loops a user supplied mp3 file for as long as a game runs.
type MusicPlayer struct {
	ctx    *oto.Context
	path   string
	mu     sync.Mutex
	file   *os.File
	player *oto.Player
	stop   chan struct{}

	volumeMu sync.Mutex
	volume   float64
}

func NewMusicPlayer(ctx *oto.Context, path string, volume float64) *MusicPlayer {
	if ctx == nil || path == "" {
		return nil
	}
	return &MusicPlayer{
		ctx:    ctx,
		path:   path,
		volume: clampVolume(volume),
	}
}

func (m *MusicPlayer) SetVolume(volume float64) {
	if m == nil {
		return
	}
	m.volumeMu.Lock()
	m.volume = clampVolume(volume)
	m.volumeMu.Unlock()
}

func (m *MusicPlayer) volumeValue() float64 {
	m.volumeMu.Lock()
	defer m.volumeMu.Unlock()
	return m.volume
}

// Start begins playback from the top of the file. Calling it while already
// playing is a no-op.
func (m *MusicPlayer) Start() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.player != nil {
		return nil
	}
	file, mp3Dec, err := openMusic(m.path, audioSampleRate)
	if err != nil {
		return err
	}
	dec := &safeDecoder{dec: mp3Dec}
	player := m.ctx.NewPlayer(&volumeReader{reader: dec, getVolume: m.volumeValue})
	player.Play()
	m.file = file
	m.player = player
	m.stop = make(chan struct{})
	go m.loop(player, dec, m.stop)
	return nil
}

func (m *MusicPlayer) loop(player *oto.Player, dec *safeDecoder, stop chan struct{}) {
	ticker := time.NewTicker(120 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if player.IsPlaying() {
				continue
			}
			m.mu.Lock()
			if _, err := dec.Seek(0, io.SeekStart); err != nil {
				m.mu.Unlock()
				debugLog.Debug("music rewind failed", "err", err)
				return
			}
			player.Play()
			m.mu.Unlock()
		}
	}
}

func (m *MusicPlayer) Stop() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stop != nil {
		close(m.stop)
		m.stop = nil
	}
	if m.player != nil {
		_ = m.player.Close()
		m.player = nil
	}
	if m.file != nil {
		_ = m.file.Close()
		m.file = nil
	}
}

// openMusic opens path and checks it decodes at the rate of the output
// device, since oto does not resample.
func openMusic(path string, sampleRate int) (*os.File, *mp3.Decoder, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open music: %w", err)
	}
	dec, err := mp3.NewDecoder(file)
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("decode music %s: %w", path, err)
	}
	if dec.SampleRate() != sampleRate {
		_ = file.Close()
		return nil, nil, fmt.Errorf("music %s: sample rate %d, want %d", path, dec.SampleRate(), sampleRate)
	}
	return file, dec, nil
}

// safeDecoder serializes access to the decoder, which oto reads from its own
// goroutine while the rewind loop seeks.
type safeDecoder struct {
	mu  sync.Mutex
	dec io.ReadSeeker
}

func (s *safeDecoder) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dec.Read(p)
}

func (s *safeDecoder) Seek(offset int64, whence int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dec.Seek(offset, whence)
}

// volumeReader scales 16-bit samples read from reader.
type volumeReader struct {
	reader    io.Reader
	getVolume func() float64
}

func (v *volumeReader) Read(p []byte) (int, error) {
	n, err := v.reader.Read(p)
	volume := clampVolume(v.getVolume())
	if volume >= 0.999 {
		return n, err
	}
	for i := 0; i+1 < n; i += 2 {
		sample := int16(binary.LittleEndian.Uint16(p[i:]))
		scaled := int16(float64(sample) * volume)
		binary.LittleEndian.PutUint16(p[i:], uint16(scaled))
	}
	return n, err
}
