package game_test

import (
	"fmt"
	"image"
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []game.Kind{
	game.KindZ, game.KindI, game.KindS, game.KindO, game.KindT, game.KindJ, game.KindL,
}

func TestRotateRoundTrip(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			p := game.NewPiece(kind)

			// The round trip must hold from every rotation state, not just
			// the spawn pose.
			for step := 0; step < 4; step++ {
				before := p.Rects()
				p.RotateCW()
				p.RotateCCW()
				assert.Equal(t, before, p.Rects(), "cw+ccw from step %d", step)
				p.RotateCW()
			}
		})
	}
}

func TestRotateFullCycle(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			p := game.NewPiece(kind)
			start := p.Rects()
			for i := 0; i < 4; i++ {
				p.RotateCW()
			}
			assert.Equal(t, start, p.Rects())
		})
	}
}

func TestOPieceNeverRotates(t *testing.T) {
	p := game.NewPiece(game.KindO)
	start := p.Rects()
	p.RotateCW()
	assert.Equal(t, start, p.Rects())
	p.RotateCCW()
	assert.Equal(t, start, p.Rects())
}

func TestPieceMoves(t *testing.T) {
	tests := []struct {
		name string
		move func(*game.Piece)
		want image.Point
	}{
		{"left", (*game.Piece).MoveLeft, image.Pt(-game.SideLength, 0)},
		{"right", (*game.Piece).MoveRight, image.Pt(game.SideLength, 0)},
		{"up", (*game.Piece).MoveUp, image.Pt(0, -game.SideLength)},
		{"down", (*game.Piece).MoveDown, image.Pt(0, game.SideLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := game.NewPiece(game.KindT)
			before := p.Rects()
			tt.move(p)
			after := p.Rects()
			require.Len(t, after, len(before))
			for i := range before {
				assert.Equal(t, before[i].Add(tt.want), after[i])
			}
		})
	}
}

func TestPieceBounds(t *testing.T) {
	p := game.NewPiece(game.KindI)

	// I spawns as a single 4x1 rectangle at cell (3,0).
	assert.Equal(t, 3*game.SideLength, p.Left())
	assert.Equal(t, 7*game.SideLength, p.Right())
	assert.Equal(t, 0, p.Top())
	assert.Equal(t, game.SideLength, p.Bottom())
}

func TestPieceIntersects(t *testing.T) {
	a := game.NewPiece(game.KindO)
	b := game.NewPiece(game.KindO)
	assert.True(t, a.Intersects(b))

	b.MoveDown()
	b.MoveDown()
	assert.False(t, a.Intersects(b))
}

func TestCloneIsIndependent(t *testing.T) {
	p := game.NewPiece(game.KindT)
	c := p.Clone()

	c.MoveDown()
	c.RotateCW()

	fresh := game.NewPiece(game.KindT)
	assert.Equal(t, fresh.Rects(), p.Rects())
}

func TestSpawnPosesAreCellAligned(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(fmt.Sprintf("kind=%s", kind), func(t *testing.T) {
			p := game.NewPiece(kind)
			for _, r := range p.Rects() {
				assert.Zero(t, r.Min.X%game.SideLength)
				assert.Zero(t, r.Min.Y%game.SideLength)
				assert.Zero(t, r.Dx()%game.SideLength)
				assert.Zero(t, r.Dy()%game.SideLength)
				assert.Positive(t, r.Dx())
				assert.Positive(t, r.Dy())
			}
		})
	}
}
