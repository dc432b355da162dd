package sound

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/oto/v2"
)

const defaultVolume = 0.5

// Player plays cues through an oto context. A nil *Player is a valid,
// silent player.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	logger *log.Logger

	cache  map[Cue][]byte
	active []oto.Player
}

func New(logger *log.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: defaultVolume,
		logger: logger,
		cache:  make(map[Cue][]byte),
	}, nil
}

// Play starts c without blocking. Cues requested before the device is ready
// are dropped.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}

	samples, ok := p.cache[c]
	if !ok {
		samples = Synthesize(c)
		p.cache[c] = samples
	}
	if len(samples) == 0 {
		return
	}

	player := p.ctx.NewPlayer(bytes.NewReader(samples))
	player.SetVolume(p.volume)
	player.Play()
	p.active = append(p.active, player)
}

// Reap closes players that finished. Call once per frame.
func (p *Player) Reap() {
	if p == nil {
		return
	}
	live := p.active[:0]
	for _, player := range p.active {
		if player.IsPlaying() {
			live = append(live, player)
			continue
		}
		p.closePlayer(player)
	}
	p.active = live
}

// Close stops and releases every player still running.
func (p *Player) Close() {
	if p == nil {
		return
	}
	for _, player := range p.active {
		p.closePlayer(player)
	}
	p.active = nil
}

func (p *Player) closePlayer(player oto.Player) {
	if err := player.Close(); err != nil && p.logger != nil {
		p.logger.Printf("close audio player: %v", err)
	}
}
