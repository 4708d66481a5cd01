package game

import (
	"math"
	"sync"

	"github.com/songshan0321/CPPND/pkg/config"
)

// Snake is one grid agent. The head moves with sub-cell precision; the body
// is the trail of integer cells, oldest first. A mutex guards mutation by
// the simulation loop against snapshot reads from presentation, so readers
// never observe a half-updated entity.
type Snake struct {
	mu sync.Mutex

	headX, headY float64
	direction    Direction
	speed        float64

	body  []Point
	alive bool

	growing bool
	cutting bool

	gridWidth  int
	gridHeight int
}

// NewSnake places a snake at (x, y) heading up, with two trailing body
// cells below the head.
func NewSnake(gridWidth, gridHeight, x, y int, speed float64) *Snake {
	s := &Snake{
		headX:      float64(x),
		headY:      float64(y),
		direction:  Up,
		speed:      speed,
		alive:      true,
		gridWidth:  gridWidth,
		gridHeight: gridHeight,
	}
	s.body = append(s.body, Point{X: x, Y: y + 2}, Point{X: x, Y: y + 1})
	return s
}

// Update advances the head one tick and, when the motion crossed into a new
// cell, runs the body update and self-collision check. A dead snake no
// longer moves.
func (s *Snake) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.alive {
		return
	}
	prev := Point{X: int(s.headX), Y: int(s.headY)}
	s.updateHead()
	cur := Point{X: int(s.headX), Y: int(s.headY)}
	if cur != prev {
		s.updateBody(cur, prev)
	}
}

func (s *Snake) updateHead() {
	switch s.direction {
	case Up:
		s.headY -= s.speed
	case Down:
		s.headY += s.speed
	case Left:
		s.headX -= s.speed
	case Right:
		s.headX += s.speed
	}

	// Wrap onto the torus. Adding the grid size first keeps negative
	// overshoot in range.
	s.headX = math.Mod(s.headX+float64(s.gridWidth), float64(s.gridWidth))
	s.headY = math.Mod(s.headY+float64(s.gridHeight), float64(s.gridHeight))
}

func (s *Snake) updateBody(cur, prev Point) {
	s.body = append(s.body, prev)

	if !s.growing {
		s.body = s.body[1:]
	} else {
		s.growing = false
	}

	if s.cutting {
		cut := config.CutSegments
		if cut > len(s.body) {
			cut = len(s.body)
		}
		s.body = s.body[cut:]
		s.cutting = false
	}

	for _, cell := range s.body {
		if cur == cell {
			s.alive = false
		}
	}
}

// GrowBody schedules one segment of growth, consumed by the next body
// update. The flag is boolean: repeated calls within a tick grow once.
func (s *Snake) GrowBody() {
	s.mu.Lock()
	s.growing = true
	s.mu.Unlock()
}

// CutBody schedules removal of the oldest segments, consumed by the next
// body update.
func (s *Snake) CutBody() {
	s.mu.Lock()
	s.cutting = true
	s.mu.Unlock()
}

// Occupies reports whether the cell coincides with the truncated head cell
// or any body cell.
func (s *Snake) Occupies(x, y int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.occupiesLocked(x, y)
}

func (s *Snake) occupiesLocked(x, y int) bool {
	if x == int(s.headX) && y == int(s.headY) {
		return true
	}
	for _, cell := range s.body {
		if x == cell.X && y == cell.Y {
			return true
		}
	}
	return false
}

// SetDirection applies a new heading, rejecting a direct reversal while the
// snake still has a body to run into.
func (s *Snake) SetDirection(d Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.body) > 0 && d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Steer applies a heading without the reversal check. Navigation owns its
// own safety logic and may legitimately double back on the torus.
func (s *Snake) Steer(d Direction) {
	s.mu.Lock()
	s.direction = d
	s.mu.Unlock()
}

// Accelerate raises the speed by delta. With capped set the speed never
// exceeds the configured maximum; boost food ignores the cap.
func (s *Snake) Accelerate(delta float64, capped bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speed += delta
	if capped && s.speed > config.MaxSpeed {
		s.speed = config.MaxSpeed
	}
}

// HeadCell returns the head truncated to its grid cell.
func (s *Snake) HeadCell() Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Point{X: int(s.headX), Y: int(s.headY)}
}

// Heading returns the current direction.
func (s *Snake) Heading() Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.direction
}

// Speed returns the current speed.
func (s *Snake) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// Size returns the current body length.
func (s *Snake) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.body)
}

// Alive reports whether the snake is still alive. Death is permanent.
func (s *Snake) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alive
}

// State returns a copy of the externally visible snake state.
func (s *Snake) State() SnakeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	body := make([]Point, len(s.body))
	copy(body, s.body)
	return SnakeState{
		Head:  Point{X: int(s.headX), Y: int(s.headY)},
		Body:  body,
		Alive: s.alive,
		Speed: s.speed,
		Size:  len(s.body),
	}
}
