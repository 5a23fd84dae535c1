package ai

import (
	"math"

	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Action is a move relative to the current heading. A relative action can
// never reverse the snake.
type Action int

const (
	TurnLeft Action = iota
	Straight
	TurnRight

	numActions = 3
)

// Apply turns the heading by the action
func (a Action) Apply(d types.Direction) types.Direction {
	switch a {
	case TurnLeft:
		return turnLeft(d)
	case TurnRight:
		return turnRight(d)
	default:
		return d
	}
}

func turnLeft(d types.Direction) types.Direction {
	switch d {
	case types.Up:
		return types.Left
	case types.Right:
		return types.Up
	case types.Down:
		return types.Right
	case types.Left:
		return types.Down
	default:
		return d
	}
}

func turnRight(d types.Direction) types.Direction {
	switch d {
	case types.Up:
		return types.Right
	case types.Right:
		return types.Down
	case types.Down:
		return types.Left
	case types.Left:
		return types.Up
	default:
		return d
	}
}

// QTable stores the value of each action per state key
type QTable map[string][]float64

// Learner is an epsilon-greedy tabular Q-learning agent
type Learner struct {
	QTable         QTable
	LearningRate   float64
	Discount       float64
	Epsilon        float64
	InitialEpsilon float64
	MinEpsilon     float64
	EpsilonDecay   float64
	Episode        int
	TotalReward    float64

	rng *rand.Rand
}

func NewLearner(learningRate, discount float64, rng *rand.Rand) *Learner {
	return &Learner{
		QTable:         make(QTable),
		LearningRate:   learningRate,
		Discount:       discount,
		Epsilon:        0.9,
		InitialEpsilon: 0.9,
		MinEpsilon:     0.05,
		EpsilonDecay:   0.99,
		rng:            rng,
	}
}

// GetAction selects an action with an epsilon-greedy policy
func (l *Learner) GetAction(state string) Action {
	if l.rng.Float64() < l.Epsilon {
		return Action(l.rng.Intn(numActions))
	}
	return l.getBestAction(state)
}

// Update applies Q(s,a) += lr * (r + discount * max Q(s',.) - Q(s,a))
func (l *Learner) Update(state string, action Action, reward float64, nextState string) {
	l.ensure(state)
	l.ensure(nextState)

	currentQ := l.QTable[state][action]
	maxNextQ := l.getMaxQValue(nextState)
	l.QTable[state][action] = currentQ + l.LearningRate*(reward+l.Discount*maxNextQ-currentQ)
	l.TotalReward += reward
}

// EndEpisode applies a terminal reward and decays exploration
func (l *Learner) EndEpisode(state string, action Action, reward float64) {
	l.ensure(state)
	currentQ := l.QTable[state][action]
	l.QTable[state][action] = currentQ + l.LearningRate*(reward-currentQ)
	l.TotalReward += reward

	l.Episode++
	l.Epsilon = l.InitialEpsilon * math.Pow(l.EpsilonDecay, float64(l.Episode))
	if l.Epsilon < l.MinEpsilon {
		l.Epsilon = l.MinEpsilon
	}
}

func (l *Learner) ensure(state string) {
	if _, exists := l.QTable[state]; !exists {
		l.QTable[state] = make([]float64, numActions)
	}
}

func (l *Learner) getBestAction(state string) Action {
	l.ensure(state)

	best := Straight
	maxQ := l.QTable[state][Straight]
	for action, qValue := range l.QTable[state] {
		if qValue > maxQ {
			maxQ = qValue
			best = Action(action)
		}
	}
	return best
}

func (l *Learner) getMaxQValue(state string) float64 {
	if _, exists := l.QTable[state]; !exists {
		return 0
	}

	maxQ := math.Inf(-1)
	for _, qValue := range l.QTable[state] {
		if qValue > maxQ {
			maxQ = qValue
		}
	}
	return maxQ
}
