package manager

import (
	"classic-snake/game/types"
)

// Source is the random draw the food manager needs. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}

// FoodManager places the apple. Placement is uniform over the whole board
// and may land under the snake.
type FoodManager struct {
	grid types.Grid
	rng  Source
	food types.Point
}

func NewFoodManager(grid types.Grid, rng Source) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// GenerateFood draws a new apple cell and makes it current.
func (fm *FoodManager) GenerateFood() types.Point {
	fm.food = types.Point{
		X: fm.rng.Intn(fm.grid.Columns()) * fm.grid.Unit,
		Y: fm.rng.Intn(fm.grid.Rows()) * fm.grid.Unit,
	}
	return fm.food
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}
