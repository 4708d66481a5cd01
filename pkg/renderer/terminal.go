// Package renderer draws game snapshots to the terminal. It is a pure
// consumer: it polls state on its own cadence and never mutates it.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/songshan0321/CPPND/pkg/config"
	"github.com/songshan0321/CPPND/pkg/game"
)

// Cell kinds on the draw board
const (
	cellEmpty = iota
	cellPlayerHead
	cellPlayerBody
	cellEnemyHead
	cellEnemyBody
	cellFoodNormal
	cellFoodBoost
	cellFoodCut
	cellDeadHead
)

var glyphs = map[int]string{
	cellEmpty:      "  ",
	cellPlayerHead: "🔵",
	cellPlayerBody: "🟦",
	cellEnemyHead:  "🔴",
	cellEnemyBody:  "🟥",
	cellFoodNormal: "⚪",
	cellFoodBoost:  "🟢",
	cellFoodCut:    "🟡",
	cellDeadHead:   "💀",
}

// TerminalRenderer repaints the board with ANSI escapes and a string
// builder, reusing its buffers between frames.
type TerminalRenderer struct {
	width  int
	height int
	board  [][]int
	buffer strings.Builder

	// The status line refreshes on its own throttle, like a window title.
	statusLine string
	statusAt   time.Time
}

func NewTerminalRenderer(width, height int) *TerminalRenderer {
	board := make([][]int, height)
	for i := range board {
		board[i] = make([]int, width)
	}
	return &TerminalRenderer{width: width, height: height, board: board}
}

// HideCursor hides the terminal cursor. Call on start.
func (r *TerminalRenderer) HideCursor() { fmt.Print("\033[?25l") }

// ShowCursor restores the terminal cursor. Call on exit.
func (r *TerminalRenderer) ShowCursor() { fmt.Print("\033[?25h") }

func (r *TerminalRenderer) clearScreen() { fmt.Print("\033[H\033[2J\033[3J") }

// Render repaints the terminal from one snapshot.
func (r *TerminalRenderer) Render(st game.State) {
	r.clearScreen()
	fmt.Print(r.Frame(st))
}

// Frame builds the full frame string for one snapshot.
func (r *TerminalRenderer) Frame(st game.State) string {
	r.buffer.Reset()

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	for _, f := range st.Foods {
		if !r.inBounds(f.Pos) {
			continue
		}
		switch f.Type {
		case game.FoodBoost:
			r.board[f.Pos.Y][f.Pos.X] = cellFoodBoost
		case game.FoodCut:
			r.board[f.Pos.Y][f.Pos.X] = cellFoodCut
		default:
			r.board[f.Pos.Y][f.Pos.X] = cellFoodNormal
		}
	}

	r.drawSnake(st.Player, cellPlayerHead, cellPlayerBody)
	r.drawSnake(st.Enemy, cellEnemyHead, cellEnemyBody)

	r.buffer.WriteString("\n  🐍 SNAKE vs SNAKE 🐍\n")
	r.buffer.WriteString(r.status(st))
	r.buffer.WriteString("\n\n")

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			r.buffer.WriteString(glyphs[cell])
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  WASD or arrows to steer, Q to quit\n")
	if st.Over {
		r.buffer.WriteString("\n  💀 GAME OVER - press Q to see the final score\n")
	}

	return r.buffer.String()
}

func (r *TerminalRenderer) drawSnake(s game.SnakeState, headCell, bodyCell int) {
	for _, p := range s.Body {
		if r.inBounds(p) {
			r.board[p.Y][p.X] = bodyCell
		}
	}
	if r.inBounds(s.Head) {
		if s.Alive {
			r.board[s.Head.Y][s.Head.X] = headCell
		} else {
			r.board[s.Head.Y][s.Head.X] = cellDeadHead
		}
	}
}

// status rebuilds the score line at most twice a second, the same throttle
// the game applies to its window title.
func (r *TerminalRenderer) status(st game.State) string {
	if time.Since(r.statusAt) >= config.StatusUpdateInterval || r.statusLine == "" {
		r.statusLine = fmt.Sprintf("  Your Score: %d  |  Enemy Score: %d  |  Speed: %.3f",
			st.PlayerScore, st.EnemyScore, st.Player.Speed)
		r.statusAt = time.Now()
	}
	return r.statusLine
}

func (r *TerminalRenderer) inBounds(p game.Point) bool {
	return p.X >= 0 && p.X < r.width && p.Y >= 0 && p.Y < r.height
}
