package game

// NextMove picks a heading for an autonomous snake: steer toward the
// nearest food, then dodge the snake's own body. It is deterministic and
// stateless; everything it needs is passed in.
func NextMove(current Direction, head Point, foods []Food, occupies func(x, y int) bool, gridWidth, gridHeight int) Direction {
	if len(foods) == 0 {
		return current
	}

	// Nearest food by Manhattan distance. Strict less-than keeps the
	// lowest slot on ties.
	nearest := foods[0].Pos
	best := gridWidth + gridHeight
	for _, f := range foods {
		d := abs(f.Pos.X-head.X) + abs(f.Pos.Y-head.Y)
		if d < best {
			best = d
			nearest = f.Pos
		}
	}

	proposed := proposeTurn(current, head, nearest)

	// Try four candidates starting from the proposal, rotating through a
	// fixed cycle, each evaluated independently. The first whose next cell
	// is free of the snake's own body wins; if all four are blocked, the
	// last candidate tried stays.
	dir := proposed
	for i := 0; i < 4; i++ {
		next := nextCell(head, dir, gridWidth, gridHeight)
		if !occupies(next.X, next.Y) {
			return dir
		}
		if i < 3 {
			dir = rotate(dir)
		}
	}
	return dir
}

// proposeTurn applies the fixed steering table: turn perpendicular when the
// food is behind, turn onto the food's row or column when already aligned,
// otherwise keep going.
func proposeTurn(current Direction, head, food Point) Direction {
	switch {
	case (current == Up && food.Y > head.Y) || (current == Down && food.Y < head.Y):
		if food.X < head.X {
			return Left
		}
		return Right
	case (current == Left && food.X > head.X) || (current == Right && food.X < head.X):
		if food.Y < head.Y {
			return Up
		}
		return Down
	case food.X == head.X && (current == Left || current == Right):
		if food.Y > head.Y {
			return Down
		}
		return Up
	case food.Y == head.Y && (current == Up || current == Down):
		if food.X > head.X {
			return Right
		}
		return Left
	}
	return current
}

// rotate advances through the candidate cycle up, right, down, left.
func rotate(d Direction) Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

// nextCell is the cell one step ahead in the given direction, wrapped onto
// the torus.
func nextCell(head Point, d Direction, gridWidth, gridHeight int) Point {
	p := head
	switch d {
	case Up:
		p.Y--
	case Down:
		p.Y++
	case Left:
		p.X--
	case Right:
		p.X++
	}
	p.X = (p.X + gridWidth) % gridWidth
	p.Y = (p.Y + gridHeight) % gridHeight
	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
