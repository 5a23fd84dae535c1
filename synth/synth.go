// Package synth generates the game's audio in code: a looping bass and
// kick bed for the background music and a pool of short bell chimes for
// food pickups.
package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate = beep.SampleRate(44100)

// Chime timings
const (
	ChimeDuration        = 300 * time.Millisecond
	ChimeAttack          = 5 * time.Millisecond
	ChimeFundamentalTail = 280 * time.Millisecond
	ChimeOvertoneTail    = 150 * time.Millisecond
)

// ChimeNotes is the one-shot pool, a C major pentatonic run (C6 D6 E6 G6 A6)
var ChimeNotes = []float64{1046.50, 1174.66, 1318.51, 1567.98, 1760.00}

// oscillator is a finite sine wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// WithVolume scales a stream by a linear factor. Zero or less is silent.
func WithVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Chime returns the one-shot bell for note i of ChimeNotes
func Chime(i int, rate beep.SampleRate) beep.Streamer {
	freq := ChimeNotes[i%len(ChimeNotes)]

	fund := newEnvelope(newOscillator(freq, ChimeDuration, rate),
		ChimeDuration, ChimeAttack, ChimeFundamentalTail, rate)
	over := newEnvelope(newOscillator(freq*2, ChimeDuration, rate),
		ChimeDuration, ChimeAttack, ChimeOvertoneTail, rate)

	return beep.Mix(WithVolume(fund, 0.6), WithVolume(over, 0.25))
}

// MusicBed is an endless 100 BPM kick over a held A2 bass. It never
// reports the end of the stream, so it can be paused but not run out.
type MusicBed struct {
	sr      beep.SampleRate
	pos     int
	beat    int
	kickLen int
}

func NewMusicBed(sr beep.SampleRate) *MusicBed {
	return &MusicBed{
		sr:      sr,
		beat:    sr.N(600 * time.Millisecond),
		kickLen: sr.N(100 * time.Millisecond),
	}
}

func (g *MusicBed) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kickLen {
			env := 1.0 - float64(beatPos)/float64(g.kickLen)
			freq := 60 * (1 + 2*env)
			kick = 0.4 * env * math.Sin(2*math.Pi*freq*t)
		}
		bass := 0.15 * math.Sin(2*math.Pi*110*t)

		samples[i][0] = kick + bass
		samples[i][1] = kick + bass
		g.pos++
	}
	return len(samples), true
}

func (g *MusicBed) Err() error { return nil }
