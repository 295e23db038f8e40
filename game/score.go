package game

import "time"

// LockDelay is the grace period between a downward collision and the piece
// locking into the board.
const LockDelay = 500 * time.Millisecond

// linesPerLevel is how many cleared lines advance the level by one.
const linesPerLevel = 15

// gravityIntervals maps the current level to the gravity-tick period.
// The level never advances past the last entry.
var gravityIntervals = [...]time.Duration{
	800 * time.Millisecond,
	700 * time.Millisecond,
	600 * time.Millisecond,
	500 * time.Millisecond,
	400 * time.Millisecond,
	350 * time.Millisecond,
	300 * time.Millisecond,
	200 * time.Millisecond,
	150 * time.Millisecond,
	100 * time.Millisecond,
	75 * time.Millisecond,
	65 * time.Millisecond,
	50 * time.Millisecond,
	30 * time.Millisecond,
	15 * time.Millisecond,
}

// MaxLevel is the highest reachable level (0-based index into the interval
// table).
const MaxLevel = len(gravityIntervals) - 1

// ScoreForLines returns the score awarded for clearing the given number of
// lines in one lock event at the given 0-based level. Counts outside 1..4
// score nothing.
func ScoreForLines(lines, level int) int {
	switch lines {
	case 1:
		return 30 * (level + 1)
	case 2:
		return 150 * (level + 1)
	case 3:
		return 400 * (level + 1)
	case 4:
		return 1500 * (level + 1)
	}
	return 0
}
