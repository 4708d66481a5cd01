package game

import (
	"path/filepath"
	"testing"
	"time"
)

func TestResultStoreRoundTrip(t *testing.T) {
	store, err := OpenResultStore(filepath.Join(t.TempDir(), "data", "results.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sessions := []Result{
		{PlayedAt: base, PlayerScore: 5, EnemyScore: 8, Winner: "enemy", Duration: 30 * time.Second},
		{PlayedAt: base.Add(time.Hour), PlayerScore: 12, EnemyScore: 4, Winner: "player", Duration: time.Minute},
		{PlayedAt: base.Add(2 * time.Hour), PlayerScore: 9, EnemyScore: 9, Winner: "tie", Duration: 45 * time.Second},
	}
	for _, res := range sessions {
		if err := store.Save(res); err != nil {
			t.Fatal(err)
		}
	}

	top, err := store.Top(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(top))
	}
	if top[0].PlayerScore != 12 || top[0].Winner != "player" {
		t.Fatalf("unexpected best row: %+v", top[0])
	}
	if top[1].PlayerScore != 9 || top[1].Duration != 45*time.Second {
		t.Fatalf("unexpected second row: %+v", top[1])
	}
}

func TestResultStoreEmptyTop(t *testing.T) {
	store, err := OpenResultStore(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	top, err := store.Top(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Fatalf("expected no rows, got %d", len(top))
	}
}
