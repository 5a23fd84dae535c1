package manager

import (
	"io"
	"log"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Settings is the part of the configuration the state machine consumes
type Settings struct {
	Grid     types.Grid
	Speed    float32
	Interval time.Duration
}

// StateManager owns the snake, the food and the lifecycle state, and
// advances them at a fixed rate against the clock.
type StateManager struct {
	grid         types.Grid
	snake        *entity.Snake
	foodManager  *FoodManager
	collisionMgr *CollisionManager
	audio        AudioCue
	clock        Clock
	logger       *log.Logger

	state      types.GameState
	pending    types.Direction
	interval   time.Duration
	lastUpdate time.Time
	ticks      int
	score      int
}

func NewStateManager(settings Settings, rng *rand.Rand, audio AudioCue, clock Clock, logger *log.Logger) *StateManager {
	if audio == nil {
		audio = NopAudio{}
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	x, y := settings.Grid.Center()
	snake := entity.NewSnake(x, y, settings.Grid)
	if settings.Speed >= 1 {
		snake.Speed = settings.Speed
	}

	return &StateManager{
		grid:         settings.Grid,
		snake:        snake,
		foodManager:  NewFoodManager(settings.Grid, rng),
		collisionMgr: NewCollisionManager(),
		audio:        audio,
		clock:        clock,
		logger:       logger,
		state:        types.Playing,
		pending:      types.None,
		interval:     settings.Interval,
		lastUpdate:   clock.Now(),
	}
}

// Update is called once per host frame. Input is applied immediately; the
// simulation only advances when a full interval has elapsed.
func (sm *StateManager) Update(in types.Input) {
	sm.HandleInput(in)

	now := sm.clock.Now()
	if now.Sub(sm.lastUpdate) >= sm.interval {
		switch sm.state {
		case types.Playing:
			sm.step()
			sm.lastUpdate = now
		case types.GameOver:
			sm.audio.StopMusic()
		}
	}

	if sm.state != types.GameOver {
		sm.audio.PlayMusic()
	}
}

// HandleInput applies a pause toggle and latches a direction intent.
// Direction intents are dropped unless the game is playing.
func (sm *StateManager) HandleInput(in types.Input) {
	if in.Pause {
		sm.TogglePause()
	}
	if in.Direction != types.None {
		sm.QueueDirection(in.Direction)
	}
}

// TogglePause flips between Playing and Paused; GameOver is terminal
func (sm *StateManager) TogglePause() {
	switch sm.state {
	case types.Playing:
		sm.state = types.Paused
		sm.pending = types.None
		sm.logger.Printf("paused at tick %d", sm.ticks)
	case types.Paused:
		sm.state = types.Playing
		sm.logger.Printf("resumed at tick %d", sm.ticks)
	}
}

// QueueDirection records the direction to apply on the next tick. The
// latest intent wins; the reverse veto is applied when the tick runs.
func (sm *StateManager) QueueDirection(dir types.Direction) {
	if sm.state != types.Playing {
		return
	}
	sm.pending = dir
}

func (sm *StateManager) step() {
	if sm.pending != types.None {
		if sm.pending != sm.snake.Direction.Opposite() {
			sm.snake.Direction = sm.pending
		}
		sm.pending = types.None
	}

	sm.snake.MoveSegments()
	sm.ticks++

	out := sm.collisionMgr.Resolve(sm.snake, sm.foodManager)
	if out.Ate {
		sm.score++
		sm.audio.PlayFoodSound()
		sm.logger.Printf("food eaten: score=%d length=%d", sm.score, sm.snake.Len())
	}
	if !out.Alive {
		sm.state = types.GameOver
		sm.logger.Printf("game over after %d ticks: score=%d length=%d", sm.ticks, sm.score, sm.snake.Len())
	}
}

func (sm *StateManager) GetState() types.GameState {
	return sm.state
}

func (sm *StateManager) IsGameOver() bool {
	return sm.state == types.GameOver
}

func (sm *StateManager) GetSnake() *entity.Snake {
	return sm.snake
}

func (sm *StateManager) GetFood() *entity.Food {
	return sm.foodManager.GetFood()
}

func (sm *StateManager) GetGrid() types.Grid {
	return sm.grid
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetTicks() int {
	return sm.ticks
}

// PendingDirection returns the intent waiting for the next tick
func (sm *StateManager) PendingDirection() types.Direction {
	return sm.pending
}
