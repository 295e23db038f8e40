package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectStats(t *testing.T) {
	g := NewSeeded(1)

	stats := g.CollectStats()
	assert.Equal(t, PhaseFalling, stats.Phase)
	assert.Equal(t, 1, stats.Pieces)
	assert.GreaterOrEqual(t, stats.Rectangles, 1)

	var spawned int64
	for _, n := range stats.SpawnCounts {
		spawned += n
	}
	assert.Equal(t, int64(1), spawned)
}

func TestStatsCountBoardContents(t *testing.T) {
	g := NewSeeded(1)
	boardWith(g,
		testPiece(cells(0, 19, 4, 1)),
		testPiece(cells(0, 18, 2, 1), cells(2, 18, 2, 1)),
		NewPiece(KindO),
	)
	g.score = 90
	g.totalLines = 3

	stats := g.CollectStats()
	assert.Equal(t, 3, stats.Pieces)
	assert.Equal(t, 4, stats.Rectangles)
	assert.Equal(t, 90, stats.Score)
	assert.Equal(t, 3, stats.TotalLines)
}

func TestSpawnCountsSurviveReset(t *testing.T) {
	g := NewSeeded(1)
	g.Apply(CmdReset)
	g.Apply(CmdReset)

	var spawned int64
	for _, n := range g.CollectStats().SpawnCounts {
		spawned += n
	}
	assert.Equal(t, int64(3), spawned)
}
