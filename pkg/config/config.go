package config

import "time"

// Grid and timing
const (
	GridWidth  = 32
	GridHeight = 32

	TicksPerSecond = 60
	TickDuration   = time.Second / TicksPerSecond
)

// Presentation cadence (independent of the simulation tick)
const (
	RenderInterval       = 50 * time.Millisecond
	StatusUpdateInterval = 500 * time.Millisecond
)

// Snake motion
const (
	PlayerStartSpeed = 0.15
	EnemyStartSpeed  = 0.05
	MaxSpeed         = 0.3

	NormalSpeedStep = 0.005
	BoostSpeedStep  = 0.05

	// Segments removed from the tail end when a cut resolves
	CutSegments = 3
)

// Food model
const (
	TargetFoodNumber = 2

	// Boost and cut foods revert to normal after 5 seconds
	FoodMaxCountdown = 5 * TicksPerSecond

	BoostChancePct = 15
	CutChancePct   = 15

	// Respawn placement gives up after this many rejected cells instead
	// of spinning on a nearly full grid
	PlaceFoodMaxAttempts = 1024
)

// Scoring per food type
const (
	NormalScore = 1
	BoostScore  = 3
	CutScore    = 3
)
