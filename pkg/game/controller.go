package game

import "sync"

// Action carries one tick of player input: an optional turn request and a
// continuation flag. Continue false ends the simulation loop.
type Action struct {
	Direction Direction
	Turn      bool
	Continue  bool
}

// Controller supplies the player's action once per simulation tick. The
// input collaborator (keyboard, websocket client) sits behind this.
type Controller interface {
	GetAction() Action
}

// ManualController relays externally produced input to the simulation loop.
// Producers call SetDirection and Quit from their own goroutines.
type ManualController struct {
	mu     sync.Mutex
	action Action
}

func NewManualController() *ManualController {
	return &ManualController{action: Action{Continue: true}}
}

// GetAction returns the pending action. A turn request is consumed so the
// same keypress is not re-applied every tick.
func (c *ManualController) GetAction() Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	a := c.action
	c.action.Turn = false
	return a
}

// SetDirection records a desired heading for the next tick.
func (c *ManualController) SetDirection(d Direction) {
	c.mu.Lock()
	c.action.Direction = d
	c.action.Turn = true
	c.mu.Unlock()
}

// Quit clears the continuation flag; the loop exits on its next tick.
func (c *ManualController) Quit() {
	c.mu.Lock()
	c.action.Continue = false
	c.mu.Unlock()
}

// Policy chooses the enemy snake's heading each tick.
type Policy interface {
	NextDirection(g *Game) Direction
}

// HeuristicPolicy is the nearest-food navigation heuristic.
type HeuristicPolicy struct{}

func (HeuristicPolicy) NextDirection(g *Game) Direction {
	enemy := g.Enemy()
	return NextMove(
		enemy.Heading(),
		enemy.HeadCell(),
		g.FoodManager().Foods(),
		enemy.Occupies,
		g.gridWidth,
		g.gridHeight,
	)
}
