// Package sfx plays short synthesized tones for gameplay events.
package sfx

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/superanimalrun/ecs"
)

const SampleRate = 44100

// Tone is a sine sweep from Freq to EndFreq with a linear fade out.
type Tone struct {
	Freq    float64
	EndFreq float64
	Seconds float64
	Volume  float64
}

var Tones = map[ecs.EventType]Tone{
	ecs.EventJump:       {Freq: 420, EndFreq: 680, Seconds: 0.08, Volume: 0.2},
	ecs.EventCoin:       {Freq: 880, EndFreq: 1320, Seconds: 0.07, Volume: 0.2},
	ecs.EventStomp:      {Freq: 320, EndFreq: 140, Seconds: 0.1, Volume: 0.3},
	ecs.EventHurt:       {Freq: 220, EndFreq: 90, Seconds: 0.25, Volume: 0.3},
	ecs.EventBossHit:    {Freq: 180, EndFreq: 110, Seconds: 0.12, Volume: 0.35},
	ecs.EventBossRoar:   {Freq: 110, EndFreq: 70, Seconds: 0.35, Volume: 0.35},
	ecs.EventBossDefeat: {Freq: 330, EndFreq: 990, Seconds: 0.4, Volume: 0.3},
	ecs.EventLevelWin:   {Freq: 523, EndFreq: 1046, Seconds: 0.5, Volume: 0.25},
	ecs.EventGameOver:   {Freq: 300, EndFreq: 80, Seconds: 0.6, Volume: 0.3},
	ecs.EventSaved:      {Freq: 660, EndFreq: 660, Seconds: 0.06, Volume: 0.15},
	ecs.EventLoaded:     {Freq: 660, EndFreq: 990, Seconds: 0.08, Volume: 0.15},
}

// Synth renders t as 16-bit little-endian stereo PCM at SampleRate.
func Synth(t Tone) []byte {
	n := int(t.Seconds * SampleRate)
	if n <= 0 {
		return nil
	}
	pcm := make([]byte, n*4)
	phase := 0.0
	for i := range n {
		progress := float64(i) / float64(n)
		freq := t.Freq + (t.EndFreq-t.Freq)*progress
		env := 1 - progress
		s := int16(math.Sin(phase) * t.Volume * env * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[4*i:], uint16(s))
		binary.LittleEndian.PutUint16(pcm[4*i+2:], uint16(s))
		phase += 2 * math.Pi * freq / SampleRate
	}
	return pcm
}

// Player owns one audio player per event type.
type Player struct {
	players map[ecs.EventType]*audio.Player
	muted   bool
}

func New(ctx *audio.Context) *Player {
	p := &Player{players: make(map[ecs.EventType]*audio.Player, len(Tones))}
	if ctx == nil {
		return p
	}
	for evt, tone := range Tones {
		p.players[evt] = ctx.NewPlayerFromBytes(Synth(tone))
	}
	return p
}

func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

// Play starts the tone of every event with one; repeats within a frame play
// once.
func (p *Player) Play(events []ecs.Event) {
	if p == nil || p.muted {
		return
	}
	for _, evt := range events {
		player := p.players[evt.Type]
		if player == nil {
			continue
		}
		if err := player.Rewind(); err != nil {
			continue
		}
		player.Play()
	}
}
