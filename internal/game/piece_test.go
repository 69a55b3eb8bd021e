package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-mergetris/internal/core"
)

func testPiece(s Shape, x, y int) *Piece {
	return &Piece{
		Shape:  s,
		Anchor: core.Point{X: x, Y: y},
		Values: [4]int{2, 2, 2, 2},
	}
}

func TestPieceMove(t *testing.T) {
	b := NewBoard(10, 20)
	p := testPiece(ShapeO, 4, 10)

	if !p.Move(b, DirLeft) {
		t.Fatal("move left on open board should succeed")
	}
	if p.Anchor.X != 3 {
		t.Errorf("anchor X = %d, want 3", p.Anchor.X)
	}
	if !p.Move(b, DirDown) {
		t.Fatal("move down on open board should succeed")
	}
	if p.Anchor.Y != 9 {
		t.Errorf("anchor Y = %d, want 9", p.Anchor.Y)
	}
}

func TestPieceMoveBlockedByWall(t *testing.T) {
	b := NewBoard(10, 20)

	// O piece occupies anchor..anchor+1 horizontally.
	p := testPiece(ShapeO, 0, 10)
	if p.Move(b, DirLeft) {
		t.Error("move into left wall should fail")
	}
	if p.Anchor.X != 0 {
		t.Errorf("failed move must not change anchor, X = %d", p.Anchor.X)
	}

	p = testPiece(ShapeO, 8, 10)
	if p.Move(b, DirRight) {
		t.Error("move into right wall should fail")
	}
}

func TestPieceMoveBlockedByBlocks(t *testing.T) {
	b := NewBoard(10, 20)
	b.Place(4, 4, 9)

	p := testPiece(ShapeO, 4, 10)
	if p.Move(b, DirDown) {
		t.Error("move onto occupied cell should fail")
	}
}

func TestPieceRotateInOpenField(t *testing.T) {
	b := NewBoard(10, 20)
	p := testPiece(ShapeT, 4, 10)

	if !p.RotateCW(b) {
		t.Fatal("rotation in open field should succeed")
	}
	if p.Rotation != 1 {
		t.Errorf("rotation = %d, want 1", p.Rotation)
	}
	if p.Anchor.X != 4 || p.Anchor.Y != 10 {
		t.Errorf("unkicked rotation must keep anchor, got %v", p.Anchor)
	}

	// Four rotations return to the original orientation.
	for i := 0; i < 3; i++ {
		if !p.RotateCW(b) {
			t.Fatalf("rotation %d should succeed", i+2)
		}
	}
	if p.Rotation != 0 {
		t.Errorf("after four rotations, rotation = %d, want 0", p.Rotation)
	}
}

func TestPieceRotateWallKick(t *testing.T) {
	b := NewBoard(10, 20)

	// Vertical I piece hugging the right wall: cells at x=9, y in [8..11].
	p := testPiece(ShapeI, 9, 10)
	p.Rotation = 1
	for _, c := range p.Cells() {
		if c.X != 9 {
			t.Fatalf("setup: expected vertical I at x=9, got cell %v", c)
		}
	}

	// The horizontal form spans x-2..x+1, so it fails at x=9 and at the
	// (+1, 0) kick; the (-1, 0) kick fits.
	if !p.RotateCW(b) {
		t.Fatal("rotation with available kick should succeed")
	}
	if p.Rotation != 2 {
		t.Errorf("rotation = %d, want 2", p.Rotation)
	}
	if p.Anchor.X != 8 {
		t.Errorf("kicked anchor X = %d, want 8", p.Anchor.X)
	}
	if p.Anchor.Y != 10 {
		t.Errorf("kick must not change Y, got %d", p.Anchor.Y)
	}
}

func TestPieceRotateFailsWhenNoKickFits(t *testing.T) {
	b := NewBoard(10, 20)

	// Box the T piece in so the rotated form collides at the current
	// anchor and at every kick offset.
	p := testPiece(ShapeT, 4, 1)
	for x := 0; x < 10; x++ {
		for y := 0; y < 4; y++ {
			if b.Empty(x, y) {
				occupied := false
				for _, c := range p.Cells() {
					if c.X == x && c.Y == y {
						occupied = true
						break
					}
				}
				if !occupied {
					b.Place(2, x, y)
				}
			}
		}
	}

	if p.RotateCW(b) {
		t.Error("rotation with every kick blocked should fail")
	}
	if p.Rotation != 0 {
		t.Errorf("failed rotation must not change rotation, got %d", p.Rotation)
	}
}

func TestPieceHardDrop(t *testing.T) {
	b := NewBoard(10, 20)
	p := testPiece(ShapeO, 4, 10)

	dropped := p.HardDrop(b)
	if dropped != 10 {
		t.Errorf("HardDrop() = %d cells, want 10", dropped)
	}
	if p.Anchor.Y != 0 {
		t.Errorf("anchor should rest on the floor, Y = %d", p.Anchor.Y)
	}
}

func TestPieceGhost(t *testing.T) {
	b := NewBoard(10, 20)
	b.Place(4, 4, 2)

	p := testPiece(ShapeO, 4, 10)
	ghost := p.Ghost(b)
	if ghost.Y != 3 {
		t.Errorf("ghost Y = %d, want 3", ghost.Y)
	}
	if p.Anchor.Y != 10 {
		t.Errorf("Ghost must not move the piece, anchor Y = %d", p.Anchor.Y)
	}
}

func TestSpawnValueWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := []int{2, 4, 8}
	weights := []int{3, 2, 1}

	counts := map[int]int{}
	for i := 0; i < 6000; i++ {
		v := spawnValue(rng, values, weights)
		counts[v]++
	}

	for _, v := range values {
		if counts[v] == 0 {
			t.Errorf("value %d was never drawn", v)
		}
	}
	// 3:2:1 weighting should order the frequencies.
	if !(counts[2] > counts[4] && counts[4] > counts[8]) {
		t.Errorf("weighted draw out of order: %v", counts)
	}
}

func TestNewPieceSpawnsAboveBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBoard(10, 20)

	for i := 0; i < 50; i++ {
		p := newPiece(rng, b, []int{2, 4, 8}, []int{3, 2, 1})
		if p.Anchor.X != 4 || p.Anchor.Y != 18 {
			t.Fatalf("spawn anchor = %v, want (4, 18)", p.Anchor)
		}
		for j, v := range p.Values {
			if v <= 0 || v&(v-1) != 0 {
				t.Fatalf("cell %d value %d is not a power of two", j, v)
			}
		}
	}
}
