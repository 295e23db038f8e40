package game

import (
	"image"
	"image/color"
)

// ColoredRect is one renderable rectangle of the board.
type ColoredRect struct {
	Rect  image.Rectangle
	Color color.RGBA
}

// Snapshot is everything a renderer needs for one frame. It is detached from
// the engine: mutating the engine afterwards does not change it.
type Snapshot struct {
	// Rects lists every rectangle of every piece in board order; the active
	// piece's rectangles come last.
	Rects []ColoredRect
	// Ghost holds the outline rectangles of the active piece projected down
	// to its landing position. Empty unless ghost mode is enabled.
	Ghost []image.Rectangle

	Paused   bool
	Debug    bool
	GameOver bool

	Level      int
	Score      int
	TotalLines int
}

// Snapshot captures the current render state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Paused:     g.phase == PhasePaused,
		Debug:      g.debug,
		GameOver:   g.phase == PhaseGameOver,
		Level:      g.level,
		Score:      g.score,
		TotalLines: g.totalLines,
	}
	for _, piece := range g.pieces {
		for _, r := range piece.rects {
			s.Rects = append(s.Rects, ColoredRect{Rect: r, Color: piece.color})
		}
	}
	if g.ghost && g.phase != PhaseGameOver && len(g.pieces) > 0 {
		s.Ghost = g.ghostRects()
	}
	return s
}

// ghostRects projects a copy of the active piece straight down until it would
// collide and returns its rectangles one cell above that point.
func (g *Game) ghostRects() []image.Rectangle {
	ghost := g.active().Clone()
	for !g.collides(ghost) {
		ghost.MoveDown()
	}
	ghost.MoveUp()
	return ghost.Rects()
}
