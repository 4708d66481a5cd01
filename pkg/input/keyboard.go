// Package input turns keyboard events into simulation actions. It is a
// producer for the game's controller: it never touches game state itself.
package input

import (
	"github.com/eiannone/keyboard"

	"github.com/songshan0321/CPPND/pkg/game"
)

// KeyEvent is one raw keyboard event.
type KeyEvent struct {
	Char rune
	Key  keyboard.Key
}

// KeyboardHandler owns the terminal keyboard and forwards events on a
// channel until stopped.
type KeyboardHandler struct {
	events chan KeyEvent
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{events: make(chan KeyEvent)}
}

// Start opens the keyboard and begins forwarding events.
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.events <- KeyEvent{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop releases the keyboard.
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// Events returns the event channel.
func (h *KeyboardHandler) Events() <-chan KeyEvent {
	return h.events
}

// ParseDirection maps arrows and WASD to a heading.
func ParseDirection(ev KeyEvent) (game.Direction, bool) {
	switch ev.Key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}

	switch ev.Char {
	case 'w', 'W':
		return game.Up, true
	case 's', 'S':
		return game.Down, true
	case 'a', 'A':
		return game.Left, true
	case 'd', 'D':
		return game.Right, true
	}

	return game.Up, false
}

// IsQuit reports whether the event asks to end the session.
func IsQuit(ev KeyEvent) bool {
	return ev.Char == 'q' || ev.Char == 'Q' || ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC
}
