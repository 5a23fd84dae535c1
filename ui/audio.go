package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"gridsnake/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Audio plays the background loop and the food one-shots through raylib's
// audio device.
type Audio struct {
	music  rl.Music
	sounds []rl.Sound
	rng    *rand.Rand
}

// NewAudio opens the audio device and loads the music track and the food
// sound pool from dir.
func NewAudio(dir string, rng *rand.Rand) (*Audio, error) {
	paths := []string{filepath.Join(dir, config.MusicFile)}
	for i := 1; i <= config.FoodSoundCount; i++ {
		paths = append(paths, filepath.Join(dir, fmt.Sprintf(config.FoodSoundFormat, i)))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return nil, errors.Wrapf(err, "audio asset %s", p)
		}
	}

	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return nil, errors.New("audio device not ready")
	}

	a := &Audio{rng: rng}
	rl.TraceLog(rl.LogInfo, "loading music %s", paths[0])
	a.music = rl.LoadMusicStream(paths[0])
	a.music.Looping = true
	rl.SetMusicVolume(a.music, config.MusicVolume)

	for _, p := range paths[1:] {
		rl.TraceLog(rl.LogInfo, "loading sound %s", p)
		a.sounds = append(a.sounds, rl.LoadSound(p))
	}
	return a, nil
}

func (a *Audio) PlayMusic() {
	if !rl.IsMusicStreamPlaying(a.music) {
		rl.PlayMusicStream(a.music)
	}
}

func (a *Audio) StopMusic() {
	if rl.IsMusicStreamPlaying(a.music) {
		rl.StopMusicStream(a.music)
	}
}

// PlayFoodSound fires one sound from the pool and forgets it
func (a *Audio) PlayFoodSound() {
	rl.PlaySound(a.sounds[a.rng.Intn(len(a.sounds))])
}

// Update refills the music stream buffers; call once per frame
func (a *Audio) Update() {
	rl.UpdateMusicStream(a.music)
}

func (a *Audio) Close() {
	for _, s := range a.sounds {
		rl.UnloadSound(s)
	}
	rl.UnloadMusicStream(a.music)
	rl.CloseAudioDevice()
}
