package game

import (
	"errors"
	"testing"

	"github.com/songshan0321/CPPND/pkg/config"
)

// TestFoodCountdownMonotonic checks that the countdown strictly decreases
// every tick until expiry, then clamps at zero with the type reverted.
func TestFoodCountdownMonotonic(t *testing.T) {
	f := NewFood()
	f.Update(3, 4, FoodBoost)

	prev := f.Countdown()
	for i := 0; i < config.FoodMaxCountdown; i++ {
		f.Tick()
		if f.Countdown() >= prev {
			t.Fatalf("tick %d: countdown %d did not decrease from %d", i, f.Countdown(), prev)
		}
		prev = f.Countdown()
	}

	if f.Countdown() != 0 {
		t.Fatalf("expected countdown 0 after %d ticks, got %d", config.FoodMaxCountdown, f.Countdown())
	}
	if f.Type != FoodNormal {
		t.Fatalf("expected type to revert to normal on expiry, got %v", f.Type)
	}

	// Further ticks neither go negative nor change the type back.
	f.Tick()
	f.Tick()
	if f.Countdown() != 0 || f.Type != FoodNormal {
		t.Fatalf("expired food changed after extra ticks: countdown=%d type=%v", f.Countdown(), f.Type)
	}

	// Expiry leaves the position alone; the slot keeps existing.
	if (f.Pos != Point{X: 3, Y: 4}) {
		t.Fatalf("expiry moved the food to %v", f.Pos)
	}
}

// TestFoodUpdateResetsCountdown checks that every (re)placement restarts
// the countdown at its maximum.
func TestFoodUpdateResetsCountdown(t *testing.T) {
	f := NewFood()
	f.Update(1, 1, FoodCut)
	for i := 0; i < 10; i++ {
		f.Tick()
	}
	if f.Countdown() == config.FoodMaxCountdown {
		t.Fatal("countdown did not advance")
	}

	f.Update(2, 2, FoodBoost)
	if f.Countdown() != config.FoodMaxCountdown {
		t.Fatalf("expected countdown reset to %d, got %d", config.FoodMaxCountdown, f.Countdown())
	}
}

func TestFoodManagerFixedSize(t *testing.T) {
	m := NewFoodManager()
	if m.Count() != config.TargetFoodNumber {
		t.Fatalf("expected %d slots, got %d", config.TargetFoodNumber, m.Count())
	}
	for i, f := range m.Foods() {
		if (f.Pos != Point{X: -1, Y: -1}) {
			t.Fatalf("slot %d not at sentinel position: %v", i, f.Pos)
		}
	}
}

// TestCheckFoodLowestIndex checks the first-match rule when two slots share
// a cell.
func TestCheckFoodLowestIndex(t *testing.T) {
	m := NewFoodManager()
	if err := m.UpdateFood(0, 5, 5, FoodNormal); err != nil {
		t.Fatal(err)
	}
	if err := m.UpdateFood(1, 5, 5, FoodBoost); err != nil {
		t.Fatal(err)
	}

	slot, ok := m.CheckFood(5, 5)
	if !ok || slot != 0 {
		t.Fatalf("expected lowest-index slot 0, got %d (ok=%v)", slot, ok)
	}

	if _, ok := m.CheckFood(9, 9); ok {
		t.Fatal("found food on an empty cell")
	}
}

func TestFoodManagerInvalidSlot(t *testing.T) {
	m := NewFoodManager()

	if err := m.UpdateFood(m.Count(), 1, 1, FoodNormal); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if err := m.UpdateFood(-1, 1, 1, FoodNormal); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot for negative slot, got %v", err)
	}
	if _, err := m.GetType(7); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot from GetType, got %v", err)
	}
}

// TestFoodManagerTickReverts checks the per-tick countdown advance across
// every slot.
func TestFoodManagerTickReverts(t *testing.T) {
	m := NewFoodManager()
	if err := m.UpdateFood(0, 2, 2, FoodBoost); err != nil {
		t.Fatal(err)
	}
	if err := m.UpdateFood(1, 3, 3, FoodCut); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < config.FoodMaxCountdown; i++ {
		m.Tick()
	}

	for slot := 0; slot < m.Count(); slot++ {
		got, err := m.GetType(slot)
		if err != nil {
			t.Fatal(err)
		}
		if got != FoodNormal {
			t.Fatalf("slot %d: expected normal after expiry, got %v", slot, got)
		}
	}
}
