// Package game implements the mergetris simulation: a falling-piece board
// where locked tiles merge 2048-style, with cascading resolution, combo
// scoring and board-mutation power-ups. All state advances through integer
// ticks driven by the platform layer; nothing here touches the terminal.
package game

// Board owns the grid of locked blocks. Cells hold 0 (empty) or a
// power-of-two tile value. Coordinates use y=0 for the bottom row.
// The falling piece is never stored here; only locked blocks are.
type Board struct {
	width  int
	height int
	cells  [][]int // cells[y][x]
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("game: board dimensions must be positive")
	}
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	return &Board{width: width, height: height, cells: cells}
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Inside reports whether (x, y) is within the board bounds.
func (b *Board) Inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Empty reports whether (x, y) is inside the board and unoccupied.
func (b *Board) Empty(x, y int) bool {
	return b.Inside(x, y) && b.cells[y][x] == 0
}

// Get returns the locked block value at (x, y), or 0 if the cell is
// empty or out of bounds.
func (b *Board) Get(x, y int) int {
	if !b.Inside(x, y) {
		return 0
	}
	return b.cells[y][x]
}

// Place writes a locked block value into (x, y). Returns false if the
// cell is out of bounds or occupied; the board is unchanged in that case.
// Non-power-of-two values are programming errors and panic.
func (b *Board) Place(value, x, y int) bool {
	if value <= 0 || value&(value-1) != 0 {
		panic("game: block value must be a power of two")
	}
	if !b.Inside(x, y) || b.cells[y][x] != 0 {
		return false
	}
	b.cells[y][x] = value
	return true
}

// Remove clears the cell at (x, y). No-op if already empty or out of
// bounds. The removed block's identity is discarded; there is no undo.
func (b *Board) Remove(x, y int) {
	if !b.Inside(x, y) {
		return
	}
	b.cells[y][x] = 0
}

// rowComplete reports whether every column of row y is occupied.
func (b *Board) rowComplete(y int) bool {
	for x := 0; x < b.width; x++ {
		if b.cells[y][x] == 0 {
			return false
		}
	}
	return true
}

// removeRow destroys row y and shifts every row above it down by one.
func (b *Board) removeRow(y int) {
	for yy := y; yy < b.height-1; yy++ {
		copy(b.cells[yy], b.cells[yy+1])
	}
	for x := 0; x < b.width; x++ {
		b.cells[b.height-1][x] = 0
	}
}

// ClearCompletedRows scans rows bottom to top, destroying every complete
// row and shifting the rows above down. The same row index is re-checked
// after a shift so consecutive complete rows clear in one call.
// Returns the number of rows cleared.
func (b *Board) ClearCompletedRows() int {
	cleared := 0
	y := 0
	for y < b.height {
		if b.rowComplete(y) {
			b.removeRow(y)
			cleared++
			continue // re-check the same index after the shift
		}
		y++
	}
	return cleared
}

// ApplyGravity compacts every column downward, removing gaps while
// preserving the relative order of blocks within the column. Returns
// true if any block moved.
func (b *Board) ApplyGravity() bool {
	moved := false
	for x := 0; x < b.width; x++ {
		write := 0
		for y := 0; y < b.height; y++ {
			if b.cells[y][x] == 0 {
				continue
			}
			if write != y {
				b.cells[write][x] = b.cells[y][x]
				b.cells[y][x] = 0
				moved = true
			}
			write++
		}
	}
	return moved
}

// TopRowOccupied reports whether any cell in the top row holds a block.
// Used as the game-over signal.
func (b *Board) TopRowOccupied() bool {
	for x := 0; x < b.width; x++ {
		if b.cells[b.height-1][x] != 0 {
			return true
		}
	}
	return false
}

// ClearAll removes every block from the board.
func (b *Board) ClearAll() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = 0
		}
	}
}

// CountBlocks returns the number of occupied cells.
func (b *Board) CountBlocks() int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// MaxValue returns the largest tile value on the board, or 0 when empty.
func (b *Board) MaxValue() int {
	max := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] > max {
				max = b.cells[y][x]
			}
		}
	}
	return max
}

// Snapshot returns a copy of the cell grid for presentation code.
// Mutating the copy has no effect on the board.
func (b *Board) Snapshot() [][]int {
	out := make([][]int, b.height)
	for y := range b.cells {
		out[y] = make([]int, b.width)
		copy(out[y], b.cells[y])
	}
	return out
}
