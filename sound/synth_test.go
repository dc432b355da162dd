package sound

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	tests := []struct {
		cue      Cue
		duration float64
	}{
		{CueEat, 0.08},
		{CueGameOver, 0.6},
		{CueWin, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			buf := Synthesize(tt.cue)
			frames := int(tt.duration * SampleRate)
			require.Len(t, buf, frames*frameBytes)

			var peak float64
			for i := 0; i < frames; i++ {
				left := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*frameBytes:]))
				right := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*frameBytes+4:]))
				require.Equal(t, left, right, "frame %d", i)
				require.LessOrEqual(t, math.Abs(float64(left)), 1.0)
				peak = math.Max(peak, math.Abs(float64(left)))
			}
			assert.Greater(t, peak, 0.05, "cue is audible")
		})
	}

	assert.Nil(t, Synthesize(Cue(42)))
}

func TestAdsr(t *testing.T) {
	assert.InDelta(t, 0.5, adsr(0.05, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 1.0, adsr(0.1, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.5, adsr(0.5, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.0, adsr(1.0, 0.1, 0.2, 0.5, 0.2), 1e-9)
}

func TestSoftSatBounded(t *testing.T) {
	for _, x := range []float64{-10, -1, -0.5, 0, 0.5, 1, 10} {
		assert.LessOrEqual(t, math.Abs(softSat(x)), 1.0, "x=%v", x)
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	assert.NotPanics(t, func() {
		p.Play(CueEat)
		p.Reap()
		p.Close()
	})
}
