package game

import (
	"image"
	"image/color"
)

// Transform moves one rectangle of a piece to its next rotation state.
// Delta is a translation in cells, Size the rectangle's new extent in cells.
type Transform struct {
	Delta image.Point
	Size  image.Point
}

// invert flips the translation while keeping the size.
func (t Transform) invert() Transform {
	return Transform{Delta: image.Pt(-t.Delta.X, -t.Delta.Y), Size: t.Size}
}

// transformRing is a fixed circular sequence of transforms with an explicit
// cursor. One ring ("arm") exists per rectangle that participates in rotation.
type transformRing struct {
	steps []Transform
	cur   int
}

func (r *transformRing) next() Transform {
	r.cur++
	if r.cur >= len(r.steps) {
		r.cur = 0
	}
	return r.steps[r.cur]
}

func (r *transformRing) current() Transform {
	return r.steps[r.cur]
}

func (r *transformRing) previous() Transform {
	if r.cur == 0 {
		r.cur = len(r.steps) - 1
	} else {
		r.cur--
	}
	return r.steps[r.cur]
}

// Piece is a set of cell-aligned rectangles of one color that moves and
// rotates as a unit until it locks into the board. Rectangle coordinates are
// in pixels and always multiples of SideLength.
type Piece struct {
	kind  Kind
	color color.RGBA
	rects []image.Rectangle
	arms  []transformRing
}

// Kind reports which of the seven catalog entries the piece was spawned from.
func (p *Piece) Kind() Kind { return p.kind }

// Color returns the piece's fill color.
func (p *Piece) Color() color.RGBA { return p.color }

// Rects returns a copy of the piece's rectangle set.
func (p *Piece) Rects() []image.Rectangle {
	out := make([]image.Rectangle, len(p.rects))
	copy(out, p.rects)
	return out
}

// Clone returns an independent copy, rotation cursors included.
func (p *Piece) Clone() *Piece {
	c := &Piece{kind: p.kind, color: p.color}
	c.rects = make([]image.Rectangle, len(p.rects))
	copy(c.rects, p.rects)
	c.arms = make([]transformRing, len(p.arms))
	for i := range p.arms {
		c.arms[i] = transformRing{steps: p.arms[i].steps, cur: p.arms[i].cur}
	}
	return c
}

// RotateCW advances every arm to its next transform in lock-step, realizing
// one clockwise rotation of the whole piece. Pieces without arms (O) are fixed.
func (p *Piece) RotateCW() {
	for i := range p.arms {
		p.apply(i, p.arms[i].next())
	}
}

// RotateCCW undoes a clockwise step. The translation comes from inverting the
// arm's current transform while the size comes from the previous entry;
// translation and size live on different entries of the cycle, so this exact
// pairing is what keeps rotation from drifting.
func (p *Piece) RotateCCW() {
	for i := range p.arms {
		undo := p.arms[i].current().invert()
		prev := p.arms[i].previous()
		p.apply(i, Transform{Delta: undo.Delta, Size: prev.Size})
	}
}

func (p *Piece) apply(i int, t Transform) {
	r := &p.rects[i]
	min := r.Min.Add(image.Pt(t.Delta.X*SideLength, t.Delta.Y*SideLength))
	*r = image.Rectangle{
		Min: min,
		Max: min.Add(image.Pt(t.Size.X*SideLength, t.Size.Y*SideLength)),
	}
}

func (p *Piece) translate(dx, dy int) {
	for i := range p.rects {
		p.rects[i] = p.rects[i].Add(image.Pt(dx, dy))
	}
}

// MoveLeft shifts the piece one cell to the left.
func (p *Piece) MoveLeft() { p.translate(-SideLength, 0) }

// MoveRight shifts the piece one cell to the right.
func (p *Piece) MoveRight() { p.translate(SideLength, 0) }

// MoveUp shifts the piece one cell up.
func (p *Piece) MoveUp() { p.translate(0, -SideLength) }

// MoveDown shifts the piece one cell down.
func (p *Piece) MoveDown() { p.translate(0, SideLength) }

// Top returns the smallest top edge of the piece's rectangles.
func (p *Piece) Top() int {
	min := GameHeight + SideLength
	for _, r := range p.rects {
		if r.Min.Y < min {
			min = r.Min.Y
		}
	}
	return min
}

// Bottom returns the largest bottom edge (exclusive) of the piece's rectangles.
func (p *Piece) Bottom() int {
	max := 0
	for _, r := range p.rects {
		if r.Max.Y > max {
			max = r.Max.Y
		}
	}
	return max
}

// Left returns the smallest left edge of the piece's rectangles.
func (p *Piece) Left() int {
	min := GameWidth + SideLength
	for _, r := range p.rects {
		if r.Min.X < min {
			min = r.Min.X
		}
	}
	return min
}

// Right returns the largest right edge (exclusive) of the piece's rectangles.
func (p *Piece) Right() int {
	max := 0
	for _, r := range p.rects {
		if r.Max.X > max {
			max = r.Max.X
		}
	}
	return max
}

// Intersects reports whether any rectangle of p overlaps any rectangle of o.
func (p *Piece) Intersects(o *Piece) bool {
	for _, a := range p.rects {
		for _, b := range o.rects {
			if a.Overlaps(b) {
				return true
			}
		}
	}
	return false
}

func (p *Piece) empty() bool { return len(p.rects) == 0 }
