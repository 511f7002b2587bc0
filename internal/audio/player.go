package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ebitengine/oto/v3"
)

// Looper starts and stops a repeating playback stream. Playback is fire and
// forget: the countdown only touches it at state transitions.
type Looper interface {
	Loop(samples []float64)
	Stop()
}

// NopLooper discards all playback requests. It stands in when sound is
// disabled or no audio device is available.
type NopLooper struct{}

func (NopLooper) Loop([]float64) {}
func (NopLooper) Stop()          {}

// Player loops a mono clip through the system audio device via oto.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewPlayer initializes the audio device. The device can be opened only once
// per process, so the returned Player is reused across sessions.
func NewPlayer(sampleRate int) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready
	return &Player{ctx: ctx}, nil
}

// Loop starts repeating playback of the clip, replacing any prior stream.
func (p *Player) Loop(samples []float64) {
	p.Stop()
	p.player = p.ctx.NewPlayer(newLoopReader(encodeFloat32LE(samples)))
	p.player.Play()
}

// Stop tears down the current stream, if any.
func (p *Player) Stop() {
	if p.player != nil {
		_ = p.player.Close()
		p.player = nil
	}
}

func encodeFloat32LE(samples []float64) []byte {
	buf := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(float32(s)))
	}
	return buf
}

// loopReader replays its backing buffer forever, wrapping mid-Read so the
// stream never starves at the clip boundary.
type loopReader struct {
	data []byte
	off  int
}

func newLoopReader(data []byte) *loopReader {
	return &loopReader{data: data}
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.off:])
		n += c
		r.off = (r.off + c) % len(r.data)
	}
	return n, nil
}
