package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports the collision the snake's head is in, checking
// itself before the walls.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	if cm.isSelfCollision(snake) {
		return types.SelfCollision
	}
	if cm.isWallCollision(snake.GetHead()) {
		return types.WallCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position is off any of the four edges
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision compares the head against every segment from the tail
// slot up to the neck.
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake) bool {
	head := snake.GetHead()
	for i := snake.Len(); i > 0; i-- {
		if head == snake.Segment(i) {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
