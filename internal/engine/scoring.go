package engine

import (
	"fmt"
	"time"
)

const (
	linesPerLevel    = 10
	baseFallInterval = 1000 * time.Millisecond
	fallIntervalStep = 100 * time.Millisecond
	minFallInterval  = 100 * time.Millisecond
)

var lineScores = [...]int{0, 100, 300, 500, 800}

// LineScore returns the points for clearing rows lines with a single lock.
// A single tetromino spans at most four rows, so any other count means the
// board has been corrupted.
func LineScore(rows, level int) int {
	if rows < 1 || rows >= len(lineScores) {
		panic(fmt.Sprintf("engine: %d rows cleared by a single lock", rows))
	}
	return lineScores[rows] * level
}

func LevelFor(lines int) int {
	return 1 + lines/linesPerLevel
}

func FallInterval(level int) time.Duration {
	interval := baseFallInterval - time.Duration(level)*fallIntervalStep
	if interval < minFallInterval {
		return minFallInterval
	}
	return interval
}
