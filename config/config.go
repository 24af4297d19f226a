package config

import (
	"fmt"
	"time"

	"classic-snake/game/types"
)

// Game constants
const (
	ScreenWidth      = 600
	ScreenHeight     = 600
	UnitSize         = 25
	Delay            = 75 * time.Millisecond
	InitialBodyParts = 6
	WindowTitle      = "Snake"
)

// Config holds the fixed parameters of a game.
type Config struct {
	ScreenWidth      int
	ScreenHeight     int
	UnitSize         int
	Delay            time.Duration
	InitialBodyParts int
}

// Default returns the classic 600x600 board with 25 unit cells ticking every 75ms.
func Default() Config {
	return Config{
		ScreenWidth:      ScreenWidth,
		ScreenHeight:     ScreenHeight,
		UnitSize:         UnitSize,
		Delay:            Delay,
		InitialBodyParts: InitialBodyParts,
	}
}

// Grid returns the board geometry.
func (c Config) Grid() types.Grid {
	return types.Grid{
		Width:  c.ScreenWidth,
		Height: c.ScreenHeight,
		Unit:   c.UnitSize,
	}
}

// GameUnits is the maximum number of cells the snake can occupy.
func (c Config) GameUnits() int {
	return c.Grid().Cells()
}

// Validate checks that the geometry describes a playable board.
func (c Config) Validate() error {
	if c.UnitSize <= 0 {
		return fmt.Errorf("unit size must be positive, got %d", c.UnitSize)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.ScreenWidth%c.UnitSize != 0 || c.ScreenHeight%c.UnitSize != 0 {
		return fmt.Errorf("screen size %dx%d is not a multiple of unit %d", c.ScreenWidth, c.ScreenHeight, c.UnitSize)
	}
	if c.Delay <= 0 {
		return fmt.Errorf("tick delay must be positive, got %v", c.Delay)
	}
	if c.InitialBodyParts < 1 {
		return fmt.Errorf("initial body parts must be at least 1, got %d", c.InitialBodyParts)
	}
	if c.InitialBodyParts > c.GameUnits() {
		return fmt.Errorf("initial body parts %d exceed board capacity %d", c.InitialBodyParts, c.GameUnits())
	}
	return nil
}
