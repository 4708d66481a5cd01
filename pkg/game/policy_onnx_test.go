package game

import (
	"testing"
	"time"
)

// TestOnnxPolicyFallsBackWhenModelUnavailable runs the inference worker
// without a loaded model and checks a policy query still returns promptly
// with the heuristic's answer instead of blocking the simulation tick.
func TestOnnxPolicyFallsBackWhenModelUnavailable(t *testing.T) {
	go servePolicyQueue(nil)

	g, err := NewGame(32, 32)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan Direction, 1)
	go func() {
		done <- OnnxPolicy{}.NextDirection(g)
	}()

	select {
	case got := <-done:
		want := (HeuristicPolicy{}).NextDirection(g)
		if got != want {
			t.Fatalf("expected heuristic fallback direction %v, got %v", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("policy query blocked with no model loaded")
	}
}
