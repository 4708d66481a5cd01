package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/songshan0321/CPPND/pkg/config"
	"github.com/songshan0321/CPPND/pkg/game"
	"github.com/songshan0321/CPPND/pkg/input"
	"github.com/songshan0321/CPPND/pkg/renderer"
)

func main() {
	var (
		modelPath = flag.String("model", "", "ONNX policy model for the enemy (heuristic when empty)")
		dbPath    = flag.String("db", "data/results.db", "results database path (empty to skip)")
		recordDir = flag.String("record", "", "record the session as jsonl into this directory")
	)
	flag.Parse()

	keys := input.NewKeyboardHandler()
	if err := keys.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer keys.Stop()

	g, err := game.NewGame(config.GridWidth, config.GridHeight)
	if err != nil {
		log.Fatal("new game:", err)
	}

	if *modelPath != "" {
		if err := game.StartPolicyService(*modelPath, g.Board()); err != nil {
			log.Printf("policy service unavailable, using heuristic enemy: %v", err)
		} else {
			g.SetPolicy(game.OnnxPolicy{})
		}
	}

	var rec *game.Recorder
	if *recordDir != "" {
		rec, err = game.NewRecorder(*recordDir, fmt.Sprintf("%d", time.Now().UnixNano()))
		if err != nil {
			log.Fatal("recorder:", err)
		}
		defer rec.Close()
		g.AttachRecorder(rec)
	}

	ctrl := game.NewManualController()
	started := time.Now()

	simDone := make(chan struct{})
	go func() {
		g.Run(ctrl)
		close(simDone)
	}()

	render := renderer.NewTerminalRenderer(config.GridWidth, config.GridHeight)
	render.HideCursor()
	defer render.ShowCursor()

	frames := time.NewTicker(config.RenderInterval)
	defer frames.Stop()

loop:
	for {
		select {
		case ev := <-keys.Events():
			if input.IsQuit(ev) {
				ctrl.Quit()
				continue
			}
			if dir, ok := input.ParseDirection(ev); ok {
				ctrl.SetDirection(dir)
			}
		case <-simDone:
			break loop
		case <-frames.C:
			render.Render(g.Snapshot())
		}
	}

	render.ShowCursor()
	render.Render(g.Snapshot())

	playerScore, enemyScore := g.Scores()
	switch game.Outcome(playerScore, enemyScore) {
	case "player":
		fmt.Println("Congratulation, you have won our god level AI snake!")
	case "tie":
		fmt.Println("You are as good as our AI snake!")
	default:
		fmt.Println("Sorry, you have lost.")
	}
	fmt.Println("Your Score:", playerScore)
	fmt.Println("Enemy Score:", enemyScore)

	if rec != nil {
		rec.Close()
		fmt.Println("Session recorded to:", rec.Path())
	}

	if *dbPath != "" {
		saveResult(*dbPath, playerScore, enemyScore, time.Since(started))
	}
}

func saveResult(path string, playerScore, enemyScore int, duration time.Duration) {
	store, err := game.OpenResultStore(path)
	if err != nil {
		log.Printf("results db: %v", err)
		return
	}
	defer store.Close()

	err = store.Save(game.Result{
		PlayedAt:    time.Now(),
		PlayerScore: playerScore,
		EnemyScore:  enemyScore,
		Winner:      game.Outcome(playerScore, enemyScore),
		Duration:    duration,
	})
	if err != nil {
		log.Printf("save result: %v", err)
		return
	}

	top, err := store.Top(5)
	if err != nil {
		log.Printf("leaderboard: %v", err)
		return
	}
	fmt.Println("\nBest sessions:")
	for i, r := range top {
		fmt.Printf("  %d. %d vs %d (%s) at %s\n",
			i+1, r.PlayerScore, r.EnemyScore, r.Winner, r.PlayedAt.Format("2006-01-02 15:04"))
	}
}
