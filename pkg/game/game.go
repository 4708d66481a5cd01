package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/songshan0321/CPPND/pkg/config"
)

// ErrStarvedRespawn reports that no free cell was found for a food respawn
// within the bounded number of attempts.
var ErrStarvedRespawn = errors.New("no free cell for food respawn")

// Game owns the two snakes, the food slots and the score board, and drives
// the fixed-rate simulation loop. Presentation consumers read snapshots
// through Snapshot or the per-aggregate accessors while the loop runs.
type Game struct {
	player *Snake
	enemy  *Snake

	foods  *FoodManager
	scores *ScoreBoard

	policy Policy

	gridWidth  int
	gridHeight int

	rng  *rand.Rand
	tick atomic.Uint64

	recorder *Recorder

	done     chan struct{}
	stopOnce sync.Once
}

// NewGame sets up a session: player left of center, enemy below right, both
// food slots placed on free cells.
func NewGame(gridWidth, gridHeight int) (*Game, error) {
	g := &Game{
		player:     NewSnake(gridWidth, gridHeight, gridWidth/2-5, gridHeight/2, config.PlayerStartSpeed),
		enemy:      NewSnake(gridWidth, gridHeight, gridWidth/2+5, gridHeight/2+5, config.EnemyStartSpeed),
		foods:      NewFoodManager(),
		scores:     NewScoreBoard(),
		policy:     HeuristicPolicy{},
		gridWidth:  gridWidth,
		gridHeight: gridHeight,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		done:       make(chan struct{}),
	}
	for slot := 0; slot < g.foods.Count(); slot++ {
		if err := g.placeFood(slot); err != nil {
			return nil, fmt.Errorf("initial food placement: %w", err)
		}
	}
	return g, nil
}

// SetPolicy swaps the enemy policy. Call before Run.
func (g *Game) SetPolicy(p Policy) { g.policy = p }

// AttachRecorder streams a snapshot per tick to the recorder. Call before Run.
func (g *Game) AttachRecorder(r *Recorder) { g.recorder = r }

// Run drives the simulation at the configured tick rate until the
// controller drops its continuation flag or Stop is called. An overrunning
// tick is not compensated; the loop simply picks up at the next one.
func (g *Game) Run(ctrl Controller) {
	ticker := time.NewTicker(config.TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-g.done:
			return
		case <-ticker.C:
			action := ctrl.GetAction()
			if !action.Continue {
				return
			}
			if action.Turn {
				g.player.SetDirection(action.Direction)
			}
			g.Step()
			if g.recorder != nil {
				g.recorder.RecordStep(g.Snapshot())
			}
		}
	}
}

// Stop terminates a running simulation loop. Safe to call more than once.
func (g *Game) Stop() {
	g.stopOnce.Do(func() { close(g.done) })
}

// Step runs one simulation tick: motion, then resolution.
func (g *Game) Step() {
	// Motion freezes entirely once either snake is dead; the loop keeps
	// ticking until explicitly stopped.
	if g.player.Alive() && g.enemy.Alive() {
		g.enemy.Steer(g.policy.NextDirection(g))
		g.player.Update()
		g.enemy.Update()
	}

	g.foods.Tick()

	// Player resolves first, so a shared cell goes to the player and the
	// enemy sees the slot already moved.
	g.resolve(g.player, g.scores.AddPlayer)
	g.resolve(g.enemy, g.scores.AddEnemy)

	g.tick.Add(1)
}

// resolve applies food consumption for one snake: effect, score, respawn.
func (g *Game) resolve(s *Snake, addScore func(int)) {
	if !s.Alive() {
		return
	}
	head := s.HeadCell()
	slot, ok := g.foods.CheckFood(head.X, head.Y)
	if !ok {
		return
	}
	t, err := g.foods.GetType(slot)
	if err != nil {
		log.Printf("food resolution: %v", err)
		return
	}

	// The simulation goroutine is the sole writer of snake effects, so only
	// the counter increment needs the score guard here.
	switch t {
	case FoodNormal:
		s.GrowBody()
		s.Accelerate(config.NormalSpeedStep, true)
		addScore(config.NormalScore)
	case FoodBoost:
		s.GrowBody()
		s.Accelerate(config.BoostSpeedStep, false)
		addScore(config.BoostScore)
	case FoodCut:
		s.GrowBody()
		s.CutBody()
		addScore(config.CutScore)
	}

	if err := g.placeFood(slot); err != nil {
		log.Printf("food respawn: %v", err)
	}
}

// placeFood respawns a slot at a random free cell with a freshly drawn
// type. Attempts are bounded so a nearly full grid reports an error instead
// of stalling the tick.
func (g *Game) placeFood(slot int) error {
	for attempt := 0; attempt < config.PlaceFoodMaxAttempts; attempt++ {
		x := g.rng.Intn(g.gridWidth)
		y := g.rng.Intn(g.gridHeight)
		if g.player.Occupies(x, y) || g.enemy.Occupies(x, y) {
			continue
		}
		return g.foods.UpdateFood(slot, x, y, g.rollFoodType())
	}
	return fmt.Errorf("%w: slot %d after %d attempts", ErrStarvedRespawn, slot, config.PlaceFoodMaxAttempts)
}

// rollFoodType draws a type from the fixed partition: 15% boost, 15% cut,
// 70% normal.
func (g *Game) rollFoodType() FoodType {
	n := g.rng.Intn(100)
	switch {
	case n < config.BoostChancePct:
		return FoodBoost
	case n < config.BoostChancePct+config.CutChancePct:
		return FoodCut
	default:
		return FoodNormal
	}
}

// Player returns the player snake for direct reads.
func (g *Game) Player() *Snake { return g.player }

// Enemy returns the enemy snake for direct reads.
func (g *Game) Enemy() *Snake { return g.enemy }

// FoodManager returns the shared food manager.
func (g *Game) FoodManager() *FoodManager { return g.foods }

// Scores returns both counters.
func (g *Game) Scores() (player, enemy int) { return g.scores.Scores() }

// Board returns the static grid geometry.
func (g *Game) Board() BoardConfig {
	return BoardConfig{Width: g.gridWidth, Height: g.gridHeight}
}

// Snapshot copies the full presentable state. Each aggregate is copied
// under its own guard; the combination is not one atomic cut of the tick.
func (g *Game) Snapshot() State {
	player := g.player.State()
	enemy := g.enemy.State()
	foods := g.foods.Foods()
	playerScore, enemyScore := g.scores.Scores()

	infos := make([]FoodInfo, len(foods))
	for i, f := range foods {
		infos[i] = FoodInfo{Pos: f.Pos, Type: f.Type}
	}

	return State{
		Tick:        g.tick.Load(),
		Player:      player,
		Enemy:       enemy,
		Foods:       infos,
		PlayerScore: playerScore,
		EnemyScore:  enemyScore,
		Over:        !player.Alive || !enemy.Alive,
	}
}
