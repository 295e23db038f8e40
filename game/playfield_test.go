package game

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPiece builds a locked piece out of raw rectangles, bypassing the
// catalog.
func testPiece(rects ...image.Rectangle) *Piece {
	return &Piece{color: color.RGBA{R: 128, A: 255}, rects: rects}
}

// boardWith installs the given pieces; the last one is the active piece.
func boardWith(g *Game, pieces ...*Piece) {
	g.pieces = pieces
}

func cells(x, y, w, h int) image.Rectangle {
	return image.Rect(x*SideLength, y*SideLength, (x+w)*SideLength, (y+h)*SideLength)
}

func TestCollidesPlayfieldEdges(t *testing.T) {
	g := NewSeeded(1)

	tests := []struct {
		name string
		rect image.Rectangle
		want bool
	}{
		{"inside", cells(4, 10, 2, 2), false},
		{"past left", cells(-1, 0, 2, 1), true},
		{"past right", cells(9, 0, 2, 1), true},
		{"past bottom", cells(0, 19, 1, 2), true},
		{"on bottom row", cells(0, 19, 1, 1), false},
		{"above top", cells(4, -2, 1, 2), false},
		{"flush left", cells(0, 5, 1, 1), false},
		{"flush right", cells(9, 5, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.collides(testPiece(tt.rect)))
		})
	}
}

func TestCollidesWithLockedPieces(t *testing.T) {
	g := NewSeeded(1)
	locked := testPiece(cells(0, 19, 10, 1))
	boardWith(g, locked, NewPiece(KindO))

	assert.True(t, g.collides(testPiece(cells(4, 19, 1, 1))))
	assert.False(t, g.collides(testPiece(cells(4, 18, 1, 1))))
}

func TestCollidesSkipsActivePiece(t *testing.T) {
	g := NewSeeded(1)
	active := NewPiece(KindO)
	boardWith(g, active)

	// The active piece must never collide with itself.
	assert.False(t, g.collides(active))
}

func TestFilledLinesEmptyBoard(t *testing.T) {
	g := NewSeeded(1)
	assert.Empty(t, g.filledLines())
}

func TestFilledLinesBottomRow(t *testing.T) {
	g := NewSeeded(1)
	boardWith(g,
		testPiece(cells(0, 19, 6, 1)),
		testPiece(cells(6, 19, 4, 1)),
	)

	lines := g.filledLines()
	require.Len(t, lines, 1)
	assert.Equal(t, cells(0, 19, 10, 1), lines[0].Rect())
}

func TestFilledLinesAlmostFullRow(t *testing.T) {
	g := NewSeeded(1)
	boardWith(g, testPiece(cells(0, 19, 9, 1)))
	assert.Empty(t, g.filledLines())
}

func TestFilledLinesBottomFirstOrder(t *testing.T) {
	g := NewSeeded(1)
	boardWith(g,
		testPiece(cells(0, 18, 10, 1)),
		testPiece(cells(0, 19, 10, 1)),
	)

	lines := g.filledLines()
	require.Len(t, lines, 2)
	assert.Equal(t, cells(0, 19, 10, 1), lines[0].Rect())
	assert.Equal(t, cells(0, 18, 10, 1), lines[1].Rect())
}

func TestFilledLinesScansThroughGaps(t *testing.T) {
	g := NewSeeded(1)

	// A full row floating above an empty row must still be found.
	boardWith(g,
		testPiece(cells(0, 19, 10, 1)),
		testPiece(cells(0, 17, 10, 1)),
	)

	lines := g.filledLines()
	require.Len(t, lines, 2)
	assert.Equal(t, cells(0, 19, 10, 1), lines[0].Rect())
	assert.Equal(t, cells(0, 17, 10, 1), lines[1].Rect())
}

func TestClearSingleLineShrinksAndDrops(t *testing.T) {
	g := NewSeeded(1)

	// A two-row piece on the left, the rest of the bottom row filled by a
	// second piece.
	tall := testPiece(cells(0, 18, 2, 2))
	filler := testPiece(cells(2, 19, 8, 1))
	boardWith(g, tall, filler)

	lines := g.filledLines()
	require.Len(t, lines, 1)

	g.clearLines(lines)

	// The filler is gone entirely; the tall piece lost its bottom row and
	// then fell one cell, so its remaining row occupies the bottom row.
	require.Len(t, g.pieces, 1)
	require.Len(t, g.pieces[0].rects, 1)
	assert.Equal(t, cells(0, 19, 2, 1), g.pieces[0].rects[0])
	assert.Equal(t, 1, g.totalLines)
	assert.Equal(t, 1, g.linesTowardLevel)
}

func TestClearMultipleLinesCompoundsShift(t *testing.T) {
	g := NewSeeded(1)

	// Rows 18 and 19 full, with a lone block on row 17 that must fall two
	// cells.
	boardWith(g,
		testPiece(cells(0, 18, 10, 1)),
		testPiece(cells(0, 19, 10, 1)),
		testPiece(cells(3, 17, 1, 1)),
	)

	lines := g.filledLines()
	require.Len(t, lines, 2)

	g.clearLines(lines)

	require.Len(t, g.pieces, 1)
	require.Len(t, g.pieces[0].rects, 1)
	assert.Equal(t, cells(3, 19, 1, 1), g.pieces[0].rects[0])
	assert.Equal(t, 2, g.totalLines)
}

func TestClearNonAdjacentLines(t *testing.T) {
	g := NewSeeded(1)

	// Rows 17 and 19 full, row 18 holds a partial row that must end up on
	// the bottom, and a floater above must fall two cells.
	boardWith(g,
		testPiece(cells(0, 19, 10, 1)),
		testPiece(cells(0, 18, 4, 1)),
		testPiece(cells(0, 17, 10, 1)),
		testPiece(cells(5, 16, 1, 1)),
	)

	lines := g.filledLines()
	require.Len(t, lines, 2)

	g.clearLines(lines)

	require.Len(t, g.pieces, 2)
	assert.Equal(t, cells(0, 19, 4, 1), g.pieces[0].rects[0])
	assert.Equal(t, cells(5, 18, 1, 1), g.pieces[1].rects[0])
}
