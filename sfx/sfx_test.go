package sfx

import (
	"encoding/binary"
	"testing"

	"github.com/milk9111/superanimalrun/ecs"
)

func TestSynthLength(t *testing.T) {
	cases := []struct {
		name    string
		tone    Tone
		samples int
	}{
		{name: "short", tone: Tone{Freq: 440, EndFreq: 440, Seconds: 0.01, Volume: 0.5}, samples: 441},
		{name: "empty", tone: Tone{Freq: 440, Seconds: 0}, samples: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(Synth(tc.tone)); got != tc.samples*4 {
				t.Fatalf("len = %d, want %d", got, tc.samples*4)
			}
		})
	}
}

func TestSynthStereoAndBounded(t *testing.T) {
	tone := Tone{Freq: 300, EndFreq: 900, Seconds: 0.05, Volume: 0.5}
	pcm := Synth(tone)
	limit := int16(32767/2) + 1 // 0.5*32767 truncated
	for i := 0; i+3 < len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("sample %d: channels differ", i/4)
		}
		if l > limit || l < -limit {
			t.Fatalf("sample %d = %d exceeds volume", i/4, l)
		}
	}
	if first := int16(binary.LittleEndian.Uint16(pcm)); first != 0 {
		t.Fatalf("first sample = %d, want 0", first)
	}
}

func TestEveryGameplayEventHasATone(t *testing.T) {
	for _, evt := range []ecs.EventType{
		ecs.EventJump, ecs.EventCoin, ecs.EventStomp, ecs.EventHurt,
		ecs.EventBossHit, ecs.EventBossDefeat, ecs.EventLevelWin, ecs.EventGameOver,
	} {
		if _, ok := Tones[evt]; !ok {
			t.Fatalf("no tone for %s", evt)
		}
	}
}

func TestPlayWithoutContext(t *testing.T) {
	p := New(nil)
	p.Play([]ecs.Event{{Type: ecs.EventCoin}})
	p.SetMuted(true)
	p.Play([]ecs.Event{{Type: ecs.EventCoin}})
	var nilPlayer *Player
	nilPlayer.Play([]ecs.Event{{Type: ecs.EventCoin}})
}
