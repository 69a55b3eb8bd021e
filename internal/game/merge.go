package game

import "github.com/vovakirdan/tui-mergetris/internal/core"

// mergePair records one pairwise merge: keep doubles in place, drop is
// removed from the board.
type mergePair struct {
	keep core.Point
	drop core.Point
}

// Resolver runs the cascading merge resolution over a board: pair
// scanning, merge execution, gravity compaction, iterated to a fixed
// point under a pass cap, then row clearing. The game loop paces the
// passes; power-up mutations reuse the same resolver.
type Resolver struct {
	board     *Board
	score     *Accumulator
	maxPasses int
}

// NewResolver creates a resolver over the given board and accumulator.
func NewResolver(board *Board, score *Accumulator, maxPasses int) *Resolver {
	if maxPasses <= 0 {
		maxPasses = 100
	}
	return &Resolver{board: board, score: score, maxPasses: maxPasses}
}

// MaxPasses returns the pass cap.
func (r *Resolver) MaxPasses() int { return r.maxPasses }

// findMergePairs scans the board in row-major order, y ascending from the
// bottom, x ascending. For each unpaired block the right neighbor is
// checked before the top neighbor, so a block prefers a horizontal merge
// over a vertical one; each block joins at most one pair per pass.
func (r *Resolver) findMergePairs() []mergePair {
	b := r.board
	used := make([]bool, b.Width()*b.Height())
	idx := func(x, y int) int { return y*b.Width() + x }

	var pairs []mergePair
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			v := b.Get(x, y)
			if v == 0 || used[idx(x, y)] {
				continue
			}
			// Right neighbor first: deliberate tie-break.
			if b.Get(x+1, y) == v && !used[idx(x+1, y)] {
				pairs = append(pairs, mergePair{keep: core.Point{X: x, Y: y}, drop: core.Point{X: x + 1, Y: y}})
				used[idx(x, y)] = true
				used[idx(x+1, y)] = true
				continue
			}
			if y+1 < b.Height() && b.Get(x, y+1) == v && !used[idx(x, y+1)] {
				pairs = append(pairs, mergePair{keep: core.Point{X: x, Y: y}, drop: core.Point{X: x, Y: y + 1}})
				used[idx(x, y)] = true
				used[idx(x, y+1)] = true
			}
		}
	}
	return pairs
}

// Pass runs one merge+gravity pass at the given play tick and returns the
// number of merges executed. A zero return means the fixed point has been
// reached.
func (r *Resolver) Pass(now uint64) int {
	pairs := r.findMergePairs()
	for _, p := range pairs {
		v := r.board.Get(p.keep.X, p.keep.Y)
		if v == 0 || r.board.Get(p.drop.X, p.drop.Y) != v {
			panic("game: merge pair invalidated mid-pass")
		}
		r.board.Remove(p.keep.X, p.keep.Y)
		r.board.Remove(p.drop.X, p.drop.Y)
		if !r.board.Place(v*2, p.keep.X, p.keep.Y) {
			panic("game: merge target occupied")
		}
		r.score.RegisterMerge(v*2, now)
	}
	if len(pairs) > 0 {
		r.board.ApplyGravity()
	}
	return len(pairs)
}

// Resolve runs passes to the fixed point synchronously, bounded by the
// pass cap. Returns the total merges and whether the cap was hit. Used by
// tests and anywhere pacing does not matter; interactive play paces the
// same passes across ticks instead.
func (r *Resolver) Resolve(now uint64) (merges int, capHit bool) {
	for pass := 0; pass < r.maxPasses; pass++ {
		n := r.Pass(now)
		if n == 0 {
			return merges, false
		}
		merges += n
	}
	return merges, true
}
