package game

import "image"

// Playfield dimensions. All piece geometry is expressed in pixels and stays
// cell-aligned, so every coordinate below is a multiple of SideLength.
const (
	SideLength = 30
	Columns    = 10
	Rows       = 20
	GameWidth  = Columns * SideLength
	GameHeight = Rows * SideLength
)

// Line is a one-cell-tall strip spanning the full playfield width, used
// transiently while detecting and clearing full rows.
type Line struct {
	rect image.Rectangle
}

func newLine() Line {
	return Line{rect: image.Rect(0, GameHeight-SideLength, GameWidth, GameHeight)}
}

func (l *Line) moveUp() {
	l.rect = l.rect.Sub(image.Pt(0, SideLength))
}

// Rect returns the strip covered by the line.
func (l Line) Rect() image.Rectangle { return l.rect }

// collides reports whether the candidate piece pokes out of the playfield's
// bottom or sides, or overlaps a locked piece. The top edge is deliberately
// unchecked so pieces can rotate through the ceiling before descending.
// The last element of the piece set is the active piece and is skipped.
func (g *Game) collides(candidate *Piece) bool {
	if candidate.Bottom() > GameHeight || candidate.Left() < 0 || candidate.Right() > GameWidth {
		return true
	}
	for _, piece := range g.pieces[:len(g.pieces)-1] {
		if piece.Intersects(candidate) {
			return true
		}
	}
	return false
}

// filledLines scans rows from the bottom of the playfield upward and collects
// every row whose piece-rectangle intersections sum to the full playfield
// width. Locked pieces never overlap, so widths add up without double
// counting. The scan runs until it leaves the board through an empty row.
func (g *Game) filledLines() []Line {
	var filled []Line
	line := newLine()

	for {
		width := 0
		for _, piece := range g.pieces {
			for _, r := range piece.rects {
				width += line.rect.Intersect(r).Dx()
			}
		}

		if width == GameWidth {
			filled = append(filled, line)
		}

		line.moveUp()
		if line.rect.Min.Y <= 0 && width == 0 {
			return filled
		}
	}
}

// clearLines removes the given lines from the board. Every rectangle
// intersecting a cleared line loses one cell of height; rectangles shrunk to
// nothing are dropped, and pieces left without rectangles are removed. Then
// every rectangle whose top sits at or above a cleared line's top shifts down
// one cell per such line, using the pre-clear line positions so that clearing
// several lines in one lock compounds correctly.
func (g *Game) clearLines(lines []Line) {
	g.linesTowardLevel += len(lines)
	g.totalLines += len(lines)

	for _, line := range lines {
		for _, piece := range g.pieces {
			kept := piece.rects[:0]
			for _, r := range piece.rects {
				if line.rect.Overlaps(r) {
					r.Max.Y -= SideLength
				}
				if r.Dy() != 0 {
					kept = append(kept, r)
				}
			}
			piece.rects = kept
		}
	}

	kept := g.pieces[:0]
	for _, piece := range g.pieces {
		if !piece.empty() {
			kept = append(kept, piece)
		}
	}
	g.pieces = kept

	// Gravity: collect first, shift after, so one line's shift cannot feed
	// the next line's comparison.
	var drop []*image.Rectangle
	for _, line := range lines {
		for _, piece := range g.pieces {
			for i := range piece.rects {
				if piece.rects[i].Min.Y <= line.rect.Min.Y {
					drop = append(drop, &piece.rects[i])
				}
			}
		}
	}
	for _, r := range drop {
		*r = r.Add(image.Pt(0, SideLength))
	}
}
