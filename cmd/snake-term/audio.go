package main

import (
	"time"

	"gridsnake/config"
	"gridsnake/synth"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// speakerAudio drives the synthesised music bed and chimes through the
// system speaker. The music is one endless stream behind a pause switch.
type speakerAudio struct {
	mixer *beep.Mixer
	music *beep.Ctrl
	rng   *rand.Rand
}

func newSpeakerAudio(rng *rand.Rand) (*speakerAudio, error) {
	if err := speaker.Init(synth.SampleRate, synth.SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, errors.Wrap(err, "speaker init")
	}

	a := &speakerAudio{
		mixer: &beep.Mixer{},
		music: &beep.Ctrl{
			Streamer: synth.WithVolume(synth.NewMusicBed(synth.SampleRate), config.MusicVolume),
			Paused:   true,
		},
		rng: rng,
	}
	a.mixer.Add(a.music)
	speaker.Play(a.mixer)
	return a, nil
}

func (a *speakerAudio) PlayMusic() {
	speaker.Lock()
	a.music.Paused = false
	speaker.Unlock()
}

func (a *speakerAudio) StopMusic() {
	speaker.Lock()
	a.music.Paused = true
	speaker.Unlock()
}

// PlayFoodSound queues one chime from the pool; the mixer drops it once
// it has played
func (a *speakerAudio) PlayFoodSound() {
	chime := synth.Chime(a.rng.Intn(config.FoodSoundCount), synth.SampleRate)
	speaker.Lock()
	a.mixer.Add(chime)
	speaker.Unlock()
}

func (a *speakerAudio) Close() {
	speaker.Clear()
	speaker.Close()
}
