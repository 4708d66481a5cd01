package game

import "testing"

func noOccupy(x, y int) bool { return false }

func foodsAt(points ...Point) []Food {
	foods := make([]Food, len(points))
	for i, p := range points {
		foods[i] = Food{Pos: p, Type: FoodNormal}
	}
	return foods
}

// TestNextMoveSteeringTable pins the turn rules: perpendicular when the food
// is behind, onto the food's row or column when aligned, straight otherwise.
func TestNextMoveSteeringTable(t *testing.T) {
	head := Point{X: 5, Y: 5}
	cases := []struct {
		name    string
		current Direction
		food    Point
		want    Direction
	}{
		{"food behind while up, same column", Up, Point{X: 5, Y: 9}, Right},
		{"food behind-left while up", Up, Point{X: 2, Y: 9}, Left},
		{"food behind-right while down", Down, Point{X: 7, Y: 2}, Right},
		{"food behind-below while left", Left, Point{X: 9, Y: 7}, Down},
		{"food behind-above while right", Right, Point{X: 2, Y: 3}, Up},
		{"aligned column while right", Right, Point{X: 5, Y: 2}, Up},
		{"aligned column while left", Left, Point{X: 5, Y: 9}, Down},
		{"aligned row while up", Up, Point{X: 9, Y: 5}, Right},
		{"aligned row while down", Down, Point{X: 2, Y: 5}, Left},
		{"food straight ahead", Up, Point{X: 5, Y: 2}, Up},
		{"food ahead diagonal", Up, Point{X: 8, Y: 2}, Up},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextMove(tc.current, head, foodsAt(tc.food), noOccupy, 32, 32)
			if got != tc.want {
				t.Fatalf("current=%v food=%v: got %v, want %v", tc.current, tc.food, got, tc.want)
			}
		})
	}
}

// TestNextMoveTieBreaksLowestSlot puts two foods at equal Manhattan distance
// and checks the lower slot wins.
func TestNextMoveTieBreaksLowestSlot(t *testing.T) {
	head := Point{X: 5, Y: 5}
	foods := foodsAt(
		Point{X: 2, Y: 5}, // slot 0, distance 3, aligned row to the left
		Point{X: 5, Y: 8}, // slot 1, distance 3, behind
	)

	got := NextMove(Up, head, foods, noOccupy, 32, 32)
	if got != Left {
		t.Fatalf("expected turn toward slot 0 (left), got %v", got)
	}
}

// TestNextMoveAvoidsBody blocks the proposed cell and checks the rotation
// finds the next free candidate.
func TestNextMoveAvoidsBody(t *testing.T) {
	head := Point{X: 5, Y: 5}
	foods := foodsAt(Point{X: 5, Y: 2}) // straight ahead, proposal up

	occ := func(x, y int) bool { return x == 5 && y == 4 }
	got := NextMove(Up, head, foods, occ, 32, 32)
	if got != Right {
		t.Fatalf("expected rotation to right around the blocked cell, got %v", got)
	}

	// Two blocked candidates rotate twice.
	occ2 := func(x, y int) bool { return (x == 5 && y == 4) || (x == 6 && y == 5) }
	got = NextMove(Up, head, foods, occ2, 32, 32)
	if got != Down {
		t.Fatalf("expected second rotation to down, got %v", got)
	}
}

// TestNextMoveAllBlocked checks that with no free candidate the last one
// tried is returned rather than looping.
func TestNextMoveAllBlocked(t *testing.T) {
	head := Point{X: 5, Y: 5}
	foods := foodsAt(Point{X: 5, Y: 2})

	all := func(x, y int) bool { return true }
	got := NextMove(Up, head, foods, all, 32, 32)
	if got != Left {
		t.Fatalf("expected the final candidate left, got %v", got)
	}
}

// TestNextMoveWrapsCandidates checks candidate cells are evaluated on the
// torus, never at negative coordinates.
func TestNextMoveWrapsCandidates(t *testing.T) {
	head := Point{X: 0, Y: 5}
	foods := foodsAt(Point{X: 30, Y: 3}) // behind while left, proposal up

	sawNegative := false
	occ := func(x, y int) bool {
		if x < 0 || y < 0 {
			sawNegative = true
		}
		switch {
		case x == 0 && y == 4: // up
			return true
		case x == 1 && y == 5: // right
			return true
		case x == 0 && y == 6: // down
			return true
		}
		return false
	}

	got := NextMove(Left, head, foods, occ, 32, 32)
	if got != Left {
		t.Fatalf("expected left through the wrapped cell (31,5), got %v", got)
	}
	if sawNegative {
		t.Fatal("candidate cell was evaluated at a negative coordinate")
	}
}

func TestNextMoveNoFoodKeepsHeading(t *testing.T) {
	got := NextMove(Right, Point{X: 5, Y: 5}, nil, noOccupy, 32, 32)
	if got != Right {
		t.Fatalf("expected unchanged heading, got %v", got)
	}
}
