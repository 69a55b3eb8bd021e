package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-mergetris/internal/core"
)

// Direction represents a piece movement direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// delta returns the anchor translation for the direction.
// Down is negative because the simulation is y-up.
func (d Direction) delta() (int, int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	default:
		return 0, 0
	}
}

// Piece is the single active falling tetromino: a shape, an anchor
// position, a rotation index and one tile value per cell. Its cells are
// validated against the board before every committed change and are never
// written into the board until the piece locks.
type Piece struct {
	Shape    Shape
	Anchor   core.Point
	Rotation int
	Values   [4]int // parallel to ShapeOffsets(Shape, Rotation)
}

// Cells returns the absolute board positions currently occupied by the
// piece.
func (p *Piece) Cells() [4]core.Point {
	return cellsAt(p.Shape, p.Rotation, p.Anchor)
}

// cellsAt computes absolute cell positions for a shape at a hypothetical
// anchor and rotation without mutating any piece.
func cellsAt(s Shape, rotation int, anchor core.Point) [4]core.Point {
	var out [4]core.Point
	for i, off := range ShapeOffsets(s, rotation) {
		out[i] = anchor.Add(off.X, off.Y)
	}
	return out
}

// fits reports whether the shape at the given anchor and rotation lies
// fully inside the board on unoccupied cells. Only locked blocks live in
// the board store, so "unoccupied" already excludes the piece itself.
func fits(b *Board, s Shape, rotation int, anchor core.Point) bool {
	for _, c := range cellsAt(s, rotation, anchor) {
		if !b.Empty(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Move attempts to translate the piece one cell in the given direction.
// The move commits and returns true only if every candidate cell is
// inside bounds and empty; otherwise the piece is unchanged.
func (p *Piece) Move(b *Board, d Direction) bool {
	dx, dy := d.delta()
	candidate := p.Anchor.Add(dx, dy)
	if !fits(b, p.Shape, p.Rotation, candidate) {
		return false
	}
	p.Anchor = candidate
	return true
}

// RotateCW attempts a clockwise rotation. If the rotated shape does not
// fit at the current anchor, the fixed wall-kick offsets are tried in
// order; the first anchor at which the rotated shape validates is
// committed. Returns false with the piece unchanged if no anchor works.
func (p *Piece) RotateCW(b *Board) bool {
	next := (p.Rotation + 1) % 4
	if fits(b, p.Shape, next, p.Anchor) {
		p.Rotation = next
		return true
	}
	for _, kick := range wallKicks {
		candidate := p.Anchor.Add(kick.X, kick.Y)
		if fits(b, p.Shape, next, candidate) {
			p.Anchor = candidate
			p.Rotation = next
			return true
		}
	}
	return false
}

// HardDrop moves the piece down until a downward move fails and returns
// the number of cells dropped.
func (p *Piece) HardDrop(b *Board) int {
	dropped := 0
	for p.Move(b, DirDown) {
		dropped++
	}
	return dropped
}

// Ghost projects the lowest valid anchor for the piece by repeated
// downward validation. It never mutates the piece; used for the landing
// preview.
func (p *Piece) Ghost(b *Board) core.Point {
	anchor := p.Anchor
	for {
		candidate := anchor.Add(0, -1)
		if !fits(b, p.Shape, p.Rotation, candidate) {
			return anchor
		}
		anchor = candidate
	}
}

// spawnValue draws one tile value from the weighted spawn set. Weights
// bias toward the lowest tier (default 2:3, 4:2, 8:1).
func spawnValue(rng *rand.Rand, values []int, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return values[0]
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return values[i]
		}
	}
	return values[len(values)-1]
}

// newPiece creates a piece of a random shape at the spawn anchor. Each of
// its four cells independently draws a value from the weighted set.
func newPiece(rng *rand.Rand, b *Board, values, weights []int) *Piece {
	p := &Piece{
		Shape:  Shape(rng.Intn(int(shapeCount))),
		Anchor: spawnAnchor(b),
	}
	for i := range p.Values {
		p.Values[i] = spawnValue(rng, values, weights)
	}
	return p
}

// spawnAnchor is the top-center spawn position. Anchored one row below
// the top so shapes with a +1 dy offset still fit.
func spawnAnchor(b *Board) core.Point {
	return core.Point{X: b.Width()/2 - 1, Y: b.Height() - 2}
}
