package manager

// AudioCue is the audio collaborator driven by the state machine.
// Every method must be idempotent and safe to call once per host frame.
type AudioCue interface {
	// PlayMusic ensures the looping background track is playing.
	PlayMusic()
	// StopMusic ensures the background track is stopped.
	StopMusic()
	// PlayFoodSound fires one randomly chosen one-shot effect.
	PlayFoodSound()
}

// NopAudio discards every cue
type NopAudio struct{}

func (NopAudio) PlayMusic()     {}
func (NopAudio) StopMusic()     {}
func (NopAudio) PlayFoodSound() {}
