package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotListsAllRectangles(t *testing.T) {
	g := NewSeeded(1)
	locked := testPiece(cells(0, 19, 10, 1))
	active := NewPiece(KindT)
	boardWith(g, locked, active)

	s := g.Snapshot()

	require.Len(t, s.Rects, 3)
	assert.Equal(t, cells(0, 19, 10, 1), s.Rects[0].Rect)
	assert.Equal(t, active.Color(), s.Rects[1].Color)
	assert.False(t, s.Paused)
	assert.False(t, s.GameOver)
	assert.Empty(t, s.Ghost)
}

func TestSnapshotGhostProjection(t *testing.T) {
	g := NewSeeded(1)
	active := NewPiece(KindO)
	boardWith(g, active)
	g.SetGhostEnabled(true)

	s := g.Snapshot()

	require.Len(t, s.Ghost, 1)
	assert.Equal(t, cells(4, 18, 2, 2), s.Ghost[0])
	// Projection must not move the real piece.
	assert.Equal(t, cells(4, 0, 2, 2), active.rects[0])
}

func TestSnapshotGhostStopsOnStack(t *testing.T) {
	g := NewSeeded(1)
	locked := testPiece(cells(0, 19, 10, 1))
	active := NewPiece(KindO)
	boardWith(g, locked, active)
	g.SetGhostEnabled(true)

	s := g.Snapshot()

	require.Len(t, s.Ghost, 1)
	assert.Equal(t, cells(4, 17, 2, 2), s.Ghost[0])
}

func TestSnapshotFlags(t *testing.T) {
	g := NewSeeded(1)

	g.Apply(CmdToggleDebugOverlay)
	g.Apply(CmdTogglePause)

	s := g.Snapshot()
	assert.True(t, s.Debug)
	assert.True(t, s.Paused)

	g.Apply(CmdTogglePause)
	g.phase = PhaseGameOver
	assert.True(t, g.Snapshot().GameOver)
}

func TestSnapshotDisplayValues(t *testing.T) {
	g := NewSeeded(1)
	g.level = 3
	g.score = 4200
	g.totalLines = 17

	s := g.Snapshot()
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, 4200, s.Score)
	assert.Equal(t, 17, s.TotalLines)
}
