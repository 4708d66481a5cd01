// Replays a recorded session (jsonl of per-tick snapshots) through the
// terminal renderer.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/songshan0321/CPPND/pkg/config"
	"github.com/songshan0321/CPPND/pkg/game"
	"github.com/songshan0321/CPPND/pkg/renderer"
)

func main() {
	speed := flag.Float64("speed", 1.0, "playback speed multiplier")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: replay [-speed N] <session.jsonl>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal("open recording:", err)
	}
	defer f.Close()

	render := renderer.NewTerminalRenderer(config.GridWidth, config.GridHeight)
	render.HideCursor()
	defer render.ShowCursor()

	interval := time.Duration(float64(config.TickDuration) / *speed)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last game.State
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		var st game.State
		if err := json.Unmarshal(scanner.Bytes(), &st); err != nil {
			log.Printf("skipping malformed frame: %v", err)
			continue
		}
		last = st
		render.Render(st)
		<-ticker.C
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("read recording:", err)
	}

	render.ShowCursor()
	fmt.Printf("\nReplay finished at tick %d | Your Score: %d | Enemy Score: %d\n",
		last.Tick, last.PlayerScore, last.EnemyScore)
}
