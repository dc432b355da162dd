package sound

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 4 * ChannelCount // stereo float32 LE
)

// Cue identifies a sound effect.
type Cue int

const (
	CueEat Cue = iota
	CueGameOver
	CueWin
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueGameOver:
		return "game-over"
	case CueWin:
		return "win"
	}
	return "unknown"
}

// Synthesize renders c as interleaved stereo float32 LE PCM.
func Synthesize(c Cue) []byte {
	switch c {
	case CueEat:
		return genEat()
	case CueGameOver:
		return genGameOver()
	case CueWin:
		return genWin()
	}
	return nil
}

// putStereoF32 writes a [-1,1] sample to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*frameBytes + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat saturates gently instead of clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns the envelope at normalized progress [0,1]; attack, decay and
// release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func render(mix []float64) []byte {
	buf := make([]byte, len(mix)*frameBytes)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genEat: short rising blip.
func genEat() []byte {
	n := int(0.08 * SampleRate)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0.0, 0.1)
		freq := 520 + 640*p
		mix[i] = fm(t, freq, 2.0, 2.5*env) * env * 0.45
	}
	return render(mix)
}

type note struct{ freq, onset float64 }

func chord(dur float64, notes []note, fall float64) []float64 {
	n := int(dur * SampleRate)
	mix := make([]float64, n)
	for _, nt := range notes {
		start := int(nt.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.25, 0.3, 0.45)
			freq := nt.freq * (1 - np*fall)
			mix[i] += fm(t, freq, 2.0, 1.8*env) * env * 0.3
		}
	}
	return mix
}

// genGameOver: descending minor triad.
func genGameOver() []byte {
	return render(chord(0.6, []note{
		{329.63, 0.00}, // E4
		{261.63, 0.12}, // C4
		{220.00, 0.24}, // A3
	}, 0.03))
}

// genWin: rising major arpeggio.
func genWin() []byte {
	return render(chord(0.8, []note{
		{261.63, 0.00}, // C4
		{329.63, 0.10}, // E4
		{392.00, 0.20}, // G4
		{523.25, 0.30}, // C5
	}, 0))
}
