package game

import "sync"

// ScoreBoard holds the two session counters behind a single mutex. The
// simulation loop writes; presentation reads on its own cadence.
type ScoreBoard struct {
	mu     sync.Mutex
	player int
	enemy  int
}

func NewScoreBoard() *ScoreBoard { return &ScoreBoard{} }

// AddPlayer credits the player counter.
func (b *ScoreBoard) AddPlayer(n int) {
	b.mu.Lock()
	b.player += n
	b.mu.Unlock()
}

// AddEnemy credits the enemy counter.
func (b *ScoreBoard) AddEnemy(n int) {
	b.mu.Lock()
	b.enemy += n
	b.mu.Unlock()
}

// Scores returns both counters from one consistent read.
func (b *ScoreBoard) Scores() (player, enemy int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.player, b.enemy
}

// Outcome names the winner of a finished session.
func Outcome(player, enemy int) string {
	switch {
	case player > enemy:
		return "player"
	case enemy > player:
		return "enemy"
	default:
		return "tie"
	}
}
