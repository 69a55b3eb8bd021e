package game

import (
	"testing"

	"github.com/vovakirdan/tui-mergetris/internal/config"
	"github.com/vovakirdan/tui-mergetris/internal/core"
)

func testAccumulator(events *[]core.Event) *Accumulator {
	emit := func(e core.Event) {
		if events != nil {
			*events = append(*events, e)
		}
	}
	return NewAccumulator(config.Default().Scoring, 1, 120, emit)
}

func TestResolverSimpleMerge(t *testing.T) {
	b := NewBoard(10, 20)
	b.Place(4, 3, 0)
	b.Place(4, 4, 0)

	var events []core.Event
	score := testAccumulator(&events)
	r := NewResolver(b, score, 100)

	merges, capHit := r.Resolve(1)
	if merges != 1 {
		t.Fatalf("Resolve() merges = %d, want 1", merges)
	}
	if capHit {
		t.Error("cap should not be hit")
	}

	// The scanned (left) block doubles, the neighbor is removed.
	if got := b.Get(3, 0); got != 8 {
		t.Errorf("Get(3, 0) = %d, want 8", got)
	}
	if !b.Empty(4, 0) {
		t.Error("(4, 0) should be empty after the merge")
	}

	// round(8 * (1 + 1*0.5)) = 12 with the combo already incremented.
	if got := score.Score(); got != 12 {
		t.Errorf("score = %d, want 12", got)
	}
	if got := score.Combo(); got != 1 {
		t.Errorf("combo = %d, want 1", got)
	}

	foundMerge := false
	for _, e := range events {
		if e.Kind == core.EventMerge {
			foundMerge = true
			if e.Value != 8 || e.Combo != 1 {
				t.Errorf("merge event = %+v, want Value=8 Combo=1", e)
			}
		}
	}
	if !foundMerge {
		t.Error("expected an EventMerge")
	}
}

func TestResolverRightNeighborBeforeTop(t *testing.T) {
	b := NewBoard(10, 20)
	b.Place(2, 0, 0)
	b.Place(2, 1, 0)
	b.Place(2, 0, 1)

	score := testAccumulator(nil)
	r := NewResolver(b, score, 100)
	r.Resolve(1)

	// (0,0) pairs with its right neighbor, leaving the block above
	// unmerged.
	if got := b.Get(0, 0); got != 4 {
		t.Errorf("Get(0, 0) = %d, want 4", got)
	}
	if got := b.Get(0, 1); got != 2 {
		t.Errorf("Get(0, 1) = %d, want 2", got)
	}
	if !b.Empty(1, 0) {
		t.Error("(1, 0) should be empty")
	}
}

func TestResolverBlockMergesOncePerPass(t *testing.T) {
	b := NewBoard(10, 20)
	for x := 0; x < 4; x++ {
		b.Place(2, x, 0)
	}

	score := testAccumulator(nil)
	r := NewResolver(b, score, 100)

	if merges := r.Pass(1); merges != 2 {
		t.Fatalf("Pass() merges = %d, want 2", merges)
	}
	if got := b.Get(0, 0); got != 4 {
		t.Errorf("Get(0, 0) = %d, want 4", got)
	}
	if got := b.Get(2, 0); got != 4 {
		t.Errorf("Get(2, 0) = %d, want 4", got)
	}
	if !b.Empty(1, 0) || !b.Empty(3, 0) {
		t.Error("merged-away cells should be empty")
	}
}

func TestResolverCascade(t *testing.T) {
	b := NewBoard(10, 20)
	b.Place(4, 0, 0)
	b.Place(2, 0, 1)
	b.Place(2, 0, 2)

	score := testAccumulator(nil)
	r := NewResolver(b, score, 100)

	merges, capHit := r.Resolve(1)
	if merges != 2 {
		t.Fatalf("Resolve() merges = %d, want 2", merges)
	}
	if capHit {
		t.Error("cap should not be hit")
	}

	// The 2+2 above becomes 4, which then merges into the 4 below.
	if got := b.Get(0, 0); got != 8 {
		t.Errorf("Get(0, 0) = %d, want 8", got)
	}
	if got := b.CountBlocks(); got != 1 {
		t.Errorf("CountBlocks() = %d, want 1", got)
	}
}

func TestResolverGravityBetweenPasses(t *testing.T) {
	b := NewBoard(10, 20)
	// A merge in the column drops the block resting above it.
	b.Place(2, 0, 0)
	b.Place(2, 1, 0)
	b.Place(16, 1, 1)

	score := testAccumulator(nil)
	r := NewResolver(b, score, 100)
	r.Pass(1)

	if got := b.Get(0, 0); got != 4 {
		t.Errorf("Get(0, 0) = %d, want 4", got)
	}
	if got := b.Get(1, 0); got != 16 {
		t.Errorf("block above the removed cell should fall, Get(1, 0) = %d", got)
	}
}

func TestResolverPassCap(t *testing.T) {
	b := NewBoard(10, 20)
	b.Place(4, 0, 0)
	b.Place(2, 0, 1)
	b.Place(2, 0, 2)

	score := testAccumulator(nil)
	r := NewResolver(b, score, 1)

	merges, capHit := r.Resolve(1)
	if merges != 1 {
		t.Errorf("Resolve() merges = %d, want 1", merges)
	}
	if !capHit {
		t.Error("cap should be hit with maxPasses=1")
	}
}

func TestResolverNoMerges(t *testing.T) {
	b := NewBoard(10, 20)
	b.Place(2, 0, 0)
	b.Place(4, 1, 0)
	b.Place(8, 0, 1)

	score := testAccumulator(nil)
	r := NewResolver(b, score, 100)

	merges, _ := r.Resolve(1)
	if merges != 0 {
		t.Errorf("Resolve() merges = %d, want 0", merges)
	}
	if got := score.Score(); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}
