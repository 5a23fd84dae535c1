package ai

import (
	"io"
	"log"

	"gridsnake/game"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Rewards
const (
	FoodReward    = 5.0
	DeathReward   = -2.0
	CloserReward  = 0.5
	FartherReward = -0.3
	StepReward    = -0.005
)

// Autopilot steers a session in place of the keyboard. It decides once per
// processed tick and only ever turns left, right or keeps going.
type Autopilot struct {
	learner *Learner
	logger  *log.Logger

	started   bool
	finished  bool
	lastState State
	lastKey   string
	lastAct   Action
	lastTicks int
	lastScore int
}

func NewAutopilot(seed uint64, logger *log.Logger) *Autopilot {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Autopilot{
		learner: NewLearner(0.5, 0.9, rand.New(rand.NewSource(seed))),
		logger:  logger,
	}
}

// Learner exposes the underlying table for inspection
func (a *Autopilot) Learner() *Learner {
	return a.learner
}

// Next returns the input for this frame. A direction is only emitted on
// the first frame after a processed tick.
func (a *Autopilot) Next(v game.View) types.Input {
	switch v.State {
	case types.GameOver:
		if a.started && !a.finished {
			a.learner.EndEpisode(a.lastKey, a.lastAct, DeathReward)
			a.finished = true
			a.logger.Printf("autopilot episode over: score=%d reward=%.2f", v.Score, a.learner.TotalReward)
		}
		return types.Input{}
	case types.Paused:
		return types.Input{}
	}

	if a.started && v.Ticks == a.lastTicks {
		return types.Input{}
	}

	state := Observe(v)
	key := state.Key()
	if a.started {
		a.learner.Update(a.lastKey, a.lastAct, a.reward(state, v.Score), key)
	}

	act := a.learner.GetAction(key)
	a.started = true
	a.lastState = state
	a.lastKey = key
	a.lastAct = act
	a.lastTicks = v.Ticks
	a.lastScore = v.Score

	return types.Input{Direction: act.Apply(state.Heading)}
}

func (a *Autopilot) reward(next State, score int) float64 {
	switch {
	case score > a.lastScore:
		return FoodReward
	case next.FoodDist < a.lastState.FoodDist:
		return CloserReward
	case next.FoodDist > a.lastState.FoodDist:
		return FartherReward
	default:
		return StepReward
	}
}
