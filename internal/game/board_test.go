package game

import "testing"

func TestBoardPlaceGet(t *testing.T) {
	b := NewBoard(10, 20)

	if !b.Place(4, 3, 0) {
		t.Fatal("Place(4, 3, 0) on empty cell should succeed")
	}
	if got := b.Get(3, 0); got != 4 {
		t.Errorf("Get(3, 0) = %d, want 4", got)
	}
	if b.Place(8, 3, 0) {
		t.Error("Place on occupied cell should fail")
	}
	if got := b.Get(3, 0); got != 4 {
		t.Errorf("failed Place must not change the cell, got %d", got)
	}
}

func TestBoardPlaceOutOfBounds(t *testing.T) {
	b := NewBoard(10, 20)

	tests := []struct {
		name string
		x, y int
	}{
		{"left of board", -1, 0},
		{"right of board", 10, 0},
		{"below board", 0, -1},
		{"above board", 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if b.Place(2, tt.x, tt.y) {
				t.Errorf("Place(2, %d, %d) should fail", tt.x, tt.y)
			}
		})
	}
}

func TestBoardPlaceRejectsNonPowerOfTwo(t *testing.T) {
	b := NewBoard(10, 20)

	for _, v := range []int{0, -2, 3, 6, 12} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Place(%d, 0, 0) should panic", v)
				}
			}()
			b.Place(v, 0, 0)
		}()
	}
}

func TestBoardRemove(t *testing.T) {
	b := NewBoard(10, 20)
	b.Place(2, 5, 5)
	b.Remove(5, 5)
	if !b.Empty(5, 5) {
		t.Error("cell should be empty after Remove")
	}
	// Removing an empty or out-of-bounds cell is a no-op.
	b.Remove(5, 5)
	b.Remove(-1, 30)
}

func TestBoardClearCompletedRows(t *testing.T) {
	b := NewBoard(4, 6)

	// Fill row 0 completely, row 1 partially, and put a marker above.
	for x := 0; x < 4; x++ {
		b.Place(2, x, 0)
	}
	b.Place(4, 0, 1)
	b.Place(8, 0, 2)

	if got := b.ClearCompletedRows(); got != 1 {
		t.Fatalf("ClearCompletedRows() = %d, want 1", got)
	}

	// Rows above shift down by one.
	if got := b.Get(0, 0); got != 4 {
		t.Errorf("Get(0, 0) = %d, want 4", got)
	}
	if got := b.Get(0, 1); got != 8 {
		t.Errorf("Get(0, 1) = %d, want 8", got)
	}
	if !b.Empty(0, 2) {
		t.Error("vacated top cell should be empty")
	}
}

func TestBoardClearConsecutiveRows(t *testing.T) {
	b := NewBoard(4, 6)

	// Two adjacent complete rows plus a survivor above them.
	for x := 0; x < 4; x++ {
		b.Place(2, x, 0)
		b.Place(4, x, 1)
	}
	b.Place(16, 2, 2)

	if got := b.ClearCompletedRows(); got != 2 {
		t.Fatalf("ClearCompletedRows() = %d, want 2", got)
	}
	if got := b.Get(2, 0); got != 16 {
		t.Errorf("survivor should land at (2, 0), got %d", got)
	}
	if got := b.CountBlocks(); got != 1 {
		t.Errorf("CountBlocks() = %d, want 1", got)
	}
}

func TestBoardApplyGravity(t *testing.T) {
	b := NewBoard(3, 5)

	b.Place(2, 0, 3)
	b.Place(4, 0, 1)
	b.Place(8, 2, 4)

	if !b.ApplyGravity() {
		t.Fatal("ApplyGravity should report movement")
	}

	// Column 0 compacts preserving vertical order.
	if got := b.Get(0, 0); got != 4 {
		t.Errorf("Get(0, 0) = %d, want 4", got)
	}
	if got := b.Get(0, 1); got != 2 {
		t.Errorf("Get(0, 1) = %d, want 2", got)
	}
	if got := b.Get(2, 0); got != 8 {
		t.Errorf("Get(2, 0) = %d, want 8", got)
	}

	// Settled board: second application changes nothing.
	if b.ApplyGravity() {
		t.Error("ApplyGravity on settled board should report no movement")
	}
}

func TestBoardTopRowOccupied(t *testing.T) {
	b := NewBoard(4, 5)
	if b.TopRowOccupied() {
		t.Error("empty board should have free top row")
	}
	b.Place(2, 1, 4)
	if !b.TopRowOccupied() {
		t.Error("top row should be occupied")
	}
}

func TestBoardMaxValueAndClearAll(t *testing.T) {
	b := NewBoard(4, 4)
	if got := b.MaxValue(); got != 0 {
		t.Errorf("MaxValue() on empty board = %d, want 0", got)
	}
	b.Place(2, 0, 0)
	b.Place(64, 1, 0)
	b.Place(16, 2, 2)
	if got := b.MaxValue(); got != 64 {
		t.Errorf("MaxValue() = %d, want 64", got)
	}
	b.ClearAll()
	if got := b.CountBlocks(); got != 0 {
		t.Errorf("CountBlocks() after ClearAll = %d, want 0", got)
	}
}

func TestBoardSnapshotIsCopy(t *testing.T) {
	b := NewBoard(3, 3)
	b.Place(2, 1, 1)
	snap := b.Snapshot()
	snap[1][1] = 999
	if got := b.Get(1, 1); got != 2 {
		t.Errorf("mutating snapshot changed board, Get(1, 1) = %d", got)
	}
}
