package game

import (
	"classic-snake/config"
	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

// TickSource is whatever drives Advance. The game stops it in the same call
// that ends the game.
type TickSource interface {
	Stop()
}

// Snapshot is a read-only copy of the game taken between ticks.
type Snapshot struct {
	Body      []types.Point
	Apple     types.Point
	Direction types.Direction
	Score     int
	Running   bool
}

// Game owns the whole game state. It is not safe for concurrent use: every
// call must come from the loop's goroutine.
type Game struct {
	UUID          string
	Grid          types.Grid
	Steps         int
	LastCollision types.CollisionType

	snake        *entity.Snake
	score        int
	running      bool
	ticker       TickSource
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
}

// NewGame builds an idle game: the snake is stacked on the origin heading
// right and no apple has been placed yet.
func NewGame(cfg config.Config, rng manager.Source) *Game {
	grid := cfg.Grid()
	return &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		snake:        entity.NewSnake(types.Point{}, cfg.InitialBodyParts, cfg.GameUnits(), types.RIGHT),
		foodMgr:      manager.NewFoodManager(grid, rng),
		collisionMgr: manager.NewCollisionManager(grid),
	}
}

// Start places the first apple and marks the game running. ticker is
// stopped when the game ends; it may be nil.
func (g *Game) Start(ticker TickSource) {
	g.ticker = ticker
	g.NewApple()
	g.running = true
	glog.Infof("game %s started: apple at %+v", g.UUID, g.Apple())
}

// Advance runs one tick: move, eat, collide. It does nothing once the game
// has stopped.
func (g *Game) Advance() {
	if !g.running {
		return
	}
	g.Steps++

	g.snake.Shift()
	g.snake.MoveHead(g.Grid.Unit)

	g.checkApple()
	g.checkCollisions()

	glog.V(2).Infof("game %s tick %d: head %+v dir %v len %d", g.UUID, g.Steps, g.snake.GetHead(), g.snake.Direction, g.snake.Len())
}

func (g *Game) checkApple() {
	if !g.collisionMgr.IsFoodCollision(g.snake.GetHead(), g.foodMgr.GetFood()) {
		return
	}
	g.snake.Grow()
	g.score++
	glog.V(1).Infof("game %s: apple eaten at %+v, score %d", g.UUID, g.snake.GetHead(), g.score)
	g.NewApple()
}

func (g *Game) checkCollisions() {
	collision := g.collisionMgr.CheckCollision(g.snake)
	if collision == types.NoCollision {
		return
	}
	g.LastCollision = collision
	g.running = false
	if g.ticker != nil {
		g.ticker.Stop()
	}
	glog.Infof("game %s over: %v collision at %+v after %d ticks, score %d", g.UUID, collision, g.snake.GetHead(), g.Steps, g.score)
}

// NewApple moves the apple to a random cell.
func (g *Game) NewApple() types.Point {
	return g.foodMgr.GenerateFood()
}

// SetDirection changes heading; reversing straight into the neck is ignored.
func (g *Game) SetDirection(dir types.Direction) {
	if !g.snake.SetDirection(dir) {
		glog.V(2).Infof("game %s: rejected turn %v while heading %v", g.UUID, dir, g.snake.Direction)
	}
}

func (g *Game) IsRunning() bool {
	return g.running
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) BodyParts() int {
	return g.snake.Len()
}

// Body returns the occupied cells, head first.
func (g *Game) Body() []types.Point {
	return g.snake.Body()
}

func (g *Game) GetHead() types.Point {
	return g.snake.GetHead()
}

func (g *Game) Apple() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

// Snapshot copies the state a renderer needs.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:      g.snake.Body(),
		Apple:     g.Apple(),
		Direction: g.snake.Direction,
		Score:     g.score,
		Running:   g.running,
	}
}
