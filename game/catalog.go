package game

import (
	"image"
	"image/color"
)

// Kind identifies one of the seven piece shapes.
type Kind int

const (
	KindZ Kind = iota
	KindI
	KindS
	KindO
	KindT
	KindJ
	KindL

	kindCount = 7
)

func (k Kind) String() string {
	switch k {
	case KindZ:
		return "Z"
	case KindI:
		return "I"
	case KindS:
		return "S"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	}
	return "?"
}

// cellRect is a rectangle expressed in cell units, used only for the
// catalog literals below.
type cellRect struct {
	x, y, w, h int
}

func (c cellRect) pixels() image.Rectangle {
	return image.Rect(
		c.x*SideLength,
		c.y*SideLength,
		(c.x+c.w)*SideLength,
		(c.y+c.h)*SideLength,
	)
}

func tf(dx, dy, w, h int) Transform {
	return Transform{Delta: image.Pt(dx, dy), Size: image.Pt(w, h)}
}

// descriptor holds everything that varies between the seven kinds: color,
// starting rectangles, and one transform cycle per rotating rectangle.
type descriptor struct {
	color color.RGBA
	rects []cellRect
	arms  [][]Transform
}

var catalog = [kindCount]descriptor{
	KindZ: {
		color: color.RGBA{R: 255, G: 165, A: 255},
		rects: []cellRect{{3, 0, 2, 1}, {4, 1, 2, 1}},
		arms: [][]Transform{
			{tf(-2, 1, 2, 1), tf(2, -1, 1, 2)},
			{tf(0, 1, 2, 1), tf(0, -1, 1, 2)},
		},
	},
	KindI: {
		color: color.RGBA{R: 255, A: 255},
		rects: []cellRect{{3, 0, 4, 1}},
		arms: [][]Transform{
			{tf(-3, 2, 4, 1), tf(3, -2, 1, 4)},
		},
	},
	KindS: {
		color: color.RGBA{R: 255, G: 255, A: 255},
		rects: []cellRect{{4, 0, 2, 1}, {3, 1, 2, 1}},
		arms: [][]Transform{
			{tf(0, 1, 2, 1), tf(0, -1, 1, 2)},
			{tf(-2, 1, 2, 1), tf(2, -1, 1, 2)},
		},
	},
	KindO: {
		color: color.RGBA{G: 255, B: 255, A: 255},
		rects: []cellRect{{4, 0, 2, 2}},
	},
	KindT: {
		color: color.RGBA{G: 255, A: 255},
		rects: []cellRect{{4, 0, 1, 1}, {3, 1, 3, 1}},
		arms: [][]Transform{
			{tf(1, -1, 1, 1), tf(1, 1, 1, 1), tf(-1, 1, 1, 1), tf(-1, -1, 1, 1)},
			{tf(-1, 1, 3, 1), tf(1, -1, 1, 3)},
		},
	},
	KindJ: {
		color: color.RGBA{R: 255, B: 255, A: 255},
		rects: []cellRect{{3, 0, 1, 1}, {3, 1, 3, 1}},
		arms: [][]Transform{
			{tf(0, -2, 1, 1), tf(2, 0, 1, 1), tf(0, 2, 1, 1), tf(-2, 0, 1, 1)},
			{tf(-1, 1, 3, 1), tf(1, -1, 1, 3)},
		},
	},
	KindL: {
		color: color.RGBA{B: 255, A: 255},
		rects: []cellRect{{5, 0, 1, 1}, {3, 1, 3, 1}},
		arms: [][]Transform{
			{tf(2, 0, 1, 1), tf(0, 2, 1, 1), tf(-2, 0, 1, 1), tf(0, -2, 1, 1)},
			{tf(-1, 1, 3, 1), tf(1, -1, 1, 3)},
		},
	},
}

// NewPiece builds a fresh piece of the given kind in its canonical start
// pose at the top of the playfield.
func NewPiece(k Kind) *Piece {
	d := catalog[k]
	p := &Piece{kind: k, color: d.color}
	p.rects = make([]image.Rectangle, len(d.rects))
	for i, c := range d.rects {
		p.rects[i] = c.pixels()
	}
	p.arms = make([]transformRing, len(d.arms))
	for i, steps := range d.arms {
		p.arms[i] = transformRing{steps: steps}
	}
	return p
}

func (g *Game) randomPiece() *Piece {
	k := Kind(g.rng.IntN(kindCount))
	g.spawnCounts[k]++
	return NewPiece(k)
}
