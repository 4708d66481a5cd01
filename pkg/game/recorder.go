package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Recorder streams per-tick snapshots to a jsonl file from a background
// goroutine, so the simulation loop never blocks on disk.
type Recorder struct {
	file   *os.File
	writer *bufio.Writer
	ch     chan State
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// NewRecorder creates a recorder writing to dir/session_{id}_{unix}.jsonl.
func NewRecorder(dir, sessionID string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}

	name := fmt.Sprintf("session_%s_%d.jsonl", sessionID, time.Now().Unix())
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("create record file: %w", err)
	}

	r := &Recorder{
		file:   f,
		writer: bufio.NewWriter(f),
		ch:     make(chan State, 1000),
	}
	r.wg.Add(1)
	go r.writeLoop()
	return r, nil
}

// Path returns the file the recorder writes to.
func (r *Recorder) Path() string { return r.file.Name() }

// RecordStep queues a snapshot. Non-blocking: when the buffer is full the
// frame is dropped rather than stalling the tick. The send happens under the
// mutex so it can never race a concurrent Close onto a closed channel.
func (r *Recorder) RecordStep(st State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.ch <- st:
	default:
	}
}

// Close flushes queued frames and closes the file.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.ch)
	r.mu.Unlock()

	r.wg.Wait()
	r.file.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for st := range r.ch {
		if err := encoder.Encode(st); err != nil {
			fmt.Fprintf(os.Stderr, "record frame: %v\n", err)
		}
	}
	r.writer.Flush()
}
