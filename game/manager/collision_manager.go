package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Outcome is the result of resolving collisions for one tick
type Outcome struct {
	Ate   bool
	Alive bool
}

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// Resolve runs the food check and then the self-collision check against the
// post-movement head. A food hit respawns the food and grows the snake before
// the self check, which therefore also sees the freshly grown placeholder.
func (cm *CollisionManager) Resolve(snake *entity.Snake, food *FoodManager) Outcome {
	var out Outcome

	if cm.IsFoodCollision(snake.GetHead(), food.GetFood().Segment) {
		food.Respawn()
		snake.Grow()
		out.Ate = true
	}

	out.Alive = !cm.IsSelfCollision(snake)
	return out
}

// IsFoodCollision checks if the head sits exactly on the food
func (cm *CollisionManager) IsFoodCollision(head, food types.Segment) bool {
	return head.SamePosition(food)
}

// IsSelfCollision checks the head against every trailing segment
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	head := snake.GetHead()
	for _, part := range snake.Body[1:] {
		if head.SamePosition(part) {
			return true
		}
	}
	return false
}
