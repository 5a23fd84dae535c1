package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	food *entity.Food
}

// NewFoodManager places the first food item at a random cell
func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		rng:  rng,
		food: &entity.Food{},
	}
	fm.Respawn()
	return fm
}

// Respawn moves the food to a uniformly random cell with a new random color.
// The snake's body is deliberately not consulted: food may land on it.
func (fm *FoodManager) Respawn() {
	x := fm.rng.Intn(fm.grid.Width) * fm.grid.Cell
	y := fm.rng.Intn(fm.grid.Height) * fm.grid.Cell

	fm.food.Segment = types.NewSegment(float32(x), float32(y), fm.grid.Cell)
	fm.food.Color = types.Color{
		R: fm.rng.Float32(),
		G: fm.rng.Float32(),
		B: fm.rng.Float32(),
		A: 1,
	}
}

func (fm *FoodManager) GetFood() *entity.Food {
	return fm.food
}
