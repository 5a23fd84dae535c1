package synth

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the sample count, giving up
// after limit samples
func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return total
}

func TestOscillatorLength(t *testing.T) {
	osc := newOscillator(440, 100*time.Millisecond, SampleRate)

	if got, want := drain(osc, 1<<20), SampleRate.N(100*time.Millisecond); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

func TestOscillatorRange(t *testing.T) {
	osc := newOscillator(880, 50*time.Millisecond, SampleRate)
	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		if math.Abs(samples[i][0]) > 1 || samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d out of range or not mono: %v", i, samples[i])
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := SampleRate
	env := newEnvelope(newOscillator(440, time.Second, rate), 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(time.Second))
	n, ok := env.Stream(samples)
	if ok {
		t.Error("envelope should end the stream")
	}
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("envelope length = %d, want %d", n, rate.N(100*time.Millisecond))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want silent start", samples[0][0])
	}
	if last := math.Abs(samples[n-1][0]); last > 0.01 {
		t.Errorf("last sample = %v, want faded out", last)
	}
}

func TestChimePool(t *testing.T) {
	if len(ChimeNotes) != 5 {
		t.Fatalf("chime pool has %d notes, want 5", len(ChimeNotes))
	}

	limit := 4 * SampleRate.N(ChimeDuration)
	for i := range ChimeNotes {
		got := drain(Chime(i, SampleRate), limit)
		if got == 0 || got >= limit {
			t.Errorf("chime %d streamed %d samples, want a finite one-shot", i, got)
		}
	}
}

func TestChimeIsAudible(t *testing.T) {
	samples := make([][2]float64, SampleRate.N(50*time.Millisecond))
	Chime(0, SampleRate).Stream(samples)

	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("chime peak = %v, want audible and unclipped", peak)
	}
}

func TestMusicBedNeverEnds(t *testing.T) {
	bed := NewMusicBed(SampleRate)
	buf := make([][2]float64, 4096)

	// Ten seconds of audio
	for i := 0; i < SampleRate.N(10*time.Second)/len(buf); i++ {
		n, ok := bed.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("music bed ended after %d buffers", i)
		}
		for _, s := range buf {
			if math.Abs(s[0]) > 1 {
				t.Fatalf("music bed clipped: %v", s[0])
			}
		}
	}
}

func TestWithVolume(t *testing.T) {
	ones := func() beep.Streamer {
		return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for i := range samples {
				samples[i] = [2]float64{1, 1}
			}
			return len(samples), true
		})
	}

	tests := []struct {
		vol  float64
		want float64
	}{
		{0.5, 0.5},
		{1, 1},
		{0, 0},
		{-1, 0},
	}

	for _, tt := range tests {
		buf := make([][2]float64, 8)
		WithVolume(ones(), tt.vol).Stream(buf)
		if math.Abs(buf[0][0]-tt.want) > 1e-9 {
			t.Errorf("volume %v: sample = %v, want %v", tt.vol, buf[0][0], tt.want)
		}
	}
}
