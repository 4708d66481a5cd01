package game

// Point is a discrete cell on the grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is a snake heading.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reversed heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// FoodType classifies a food slot's current effect.
type FoodType int

const (
	FoodNormal FoodType = iota
	FoodBoost
	FoodCut
)

func (t FoodType) String() string {
	switch t {
	case FoodBoost:
		return "boost"
	case FoodCut:
		return "cut"
	default:
		return "normal"
	}
}

// SnakeState is a copy of the externally visible snake fields, taken under
// the snake's guard so presentation never sees a half-updated entity.
type SnakeState struct {
	Head  Point   `json:"head"`
	Body  []Point `json:"body"`
	Alive bool    `json:"alive"`
	Speed float64 `json:"speed"`
	Size  int     `json:"size"`
}

// FoodInfo is the per-slot view handed to presentation consumers.
type FoodInfo struct {
	Pos  Point    `json:"pos"`
	Type FoodType `json:"type"`
}

// State is a full presentation snapshot of one tick.
type State struct {
	Tick        uint64     `json:"tick"`
	Player      SnakeState `json:"player"`
	Enemy       SnakeState `json:"enemy"`
	Foods       []FoodInfo `json:"foods"`
	PlayerScore int        `json:"playerScore"`
	EnemyScore  int        `json:"enemyScore"`
	Over        bool       `json:"over"`
}

// BoardConfig is the static geometry sent to web clients on connect.
type BoardConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
