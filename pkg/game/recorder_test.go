package game

import (
	"encoding/json"
	"os"
	"strings"
	"sync"
	"testing"
)

func TestRecorderWritesFrames(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), "test")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		rec.RecordStep(State{Tick: uint64(i), PlayerScore: i})
	}
	rec.Close()

	data, err := os.ReadFile(rec.Path())
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 frames, got %d", len(lines))
	}

	var last State
	if err := json.Unmarshal([]byte(lines[9]), &last); err != nil {
		t.Fatal(err)
	}
	if last.Tick != 9 || last.PlayerScore != 9 {
		t.Fatalf("unexpected last frame: %+v", last)
	}
}

func TestRecorderClosedDropsSilently(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), "test")
	if err != nil {
		t.Fatal(err)
	}
	rec.Close()

	// Neither call may panic on the closed channel.
	rec.RecordStep(State{Tick: 1})
	rec.Close()
}

// TestRecorderConcurrentClose closes the recorder while other goroutines
// are still recording; no send may land on the closed channel.
func TestRecorderConcurrentClose(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), "test")
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				rec.RecordStep(State{Tick: uint64(j)})
			}
		}()
	}

	rec.Close()
	wg.Wait()
}

func TestRecorderFullBufferDrops(t *testing.T) {
	rec, err := NewRecorder(t.TempDir(), "test")
	if err != nil {
		t.Fatal(err)
	}

	// Far more frames than the buffer holds; the call must never block.
	for i := 0; i < 20000; i++ {
		rec.RecordStep(State{Tick: uint64(i)})
	}
	rec.Close()

	data, err := os.ReadFile(rec.Path())
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("no frames reached the file")
	}
}
