package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/songshan0321/CPPND/pkg/config"
)

// ErrInvalidSlot reports a food slot index outside the manager's fixed range.
var ErrInvalidSlot = errors.New("invalid food slot")

// Food is a perishable item occupying one grid cell. Boost and cut foods
// revert to normal when their countdown expires; the slot itself persists
// until the orchestrator respawns it somewhere else.
type Food struct {
	Pos       Point
	Type      FoodType
	countdown int
}

// NewFood returns a food parked at the off-grid sentinel position.
func NewFood() Food {
	return Food{
		Pos:       Point{X: -1, Y: -1},
		Type:      FoodNormal,
		countdown: config.FoodMaxCountdown,
	}
}

// Update moves the food to a new cell with a new type and restarts its
// countdown.
func (f *Food) Update(x, y int, t FoodType) {
	f.Pos = Point{X: x, Y: y}
	f.Type = t
	f.countdown = config.FoodMaxCountdown
}

// Tick advances the countdown by one simulation tick. On expiry the type
// reverts to normal; the countdown clamps at zero.
func (f *Food) Tick() {
	if f.countdown > 0 {
		f.countdown--
	}
	if f.countdown == 0 {
		f.Type = FoodNormal
	}
}

// Countdown reports the remaining ticks before the type reverts to normal.
func (f *Food) Countdown() int { return f.countdown }

// FoodManager owns a fixed set of food slots. Every public method runs
// under a single mutex, so no caller can observe a half-updated slot.
// Consecutive calls are not atomic as a group; the orchestrator is the only
// writer, so interleaved reads from presentation lose nothing.
type FoodManager struct {
	mu    sync.Mutex
	foods []Food
}

// NewFoodManager creates the manager with its fixed number of slots, all
// parked at the sentinel position until first placement.
func NewFoodManager() *FoodManager {
	m := &FoodManager{foods: make([]Food, 0, config.TargetFoodNumber)}
	for i := 0; i < config.TargetFoodNumber; i++ {
		m.foods = append(m.foods, NewFood())
	}
	return m
}

// UpdateFood repositions and retypes a slot, restarting its countdown.
// A slot index outside the fixed range is a programmer error and is
// rejected with ErrInvalidSlot.
func (m *FoodManager) UpdateFood(slot, x, y int, t FoodType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slot < 0 || slot >= len(m.foods) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidSlot, slot, len(m.foods))
	}
	m.foods[slot].Update(x, y, t)
	return nil
}

// CheckFood returns the lowest-index slot occupying the cell.
func (m *FoodManager) CheckFood(x, y int) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.foods {
		if m.foods[i].Pos.X == x && m.foods[i].Pos.Y == y {
			return i, true
		}
	}
	return -1, false
}

// GetType reports the current type of a slot.
func (m *FoodManager) GetType(slot int) (FoodType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slot < 0 || slot >= len(m.foods) {
		return FoodNormal, fmt.Errorf("%w: %d of %d", ErrInvalidSlot, slot, len(m.foods))
	}
	return m.foods[slot].Type, nil
}

// Foods returns a copy of all slots in spawn order.
func (m *FoodManager) Foods() []Food {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Food, len(m.foods))
	copy(out, m.foods)
	return out
}

// Count reports the fixed number of slots.
func (m *FoodManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.foods)
}

// Tick advances every slot's countdown by one.
func (m *FoodManager) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.foods {
		m.foods[i].Tick()
	}
}
