package sweep

import (
	"bytes"
	"testing"

	"sweep-ca/internal/core"
)

func newPlaying(t *testing.T) *Context {
	t.Helper()
	c := New(DefaultWidth, DefaultHeight)
	c.TogglePause()
	if c.State() != Playing {
		t.Fatalf("expected Playing after toggle, got %v", c.State())
	}
	return c
}

func TestInitialState(t *testing.T) {
	c := New(DefaultWidth, DefaultHeight)

	if c.State() != Paused {
		t.Fatalf("expected initial state Paused, got %v", c.State())
	}
	want := [3]core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	if c.Scanner() != want {
		t.Fatalf("initial scanner = %v, want %v", c.Scanner(), want)
	}
	if !c.ValueAt(core.Point{X: 51, Y: 1}) {
		t.Fatal("seed cell at (51,1) should be live")
	}
	if c.Population() != 1 {
		t.Fatalf("expected exactly one live cell, got %d", c.Population())
	}
}

func TestTogglePauseTwiceIsIdentity(t *testing.T) {
	c := New(DefaultWidth, DefaultHeight)

	for _, start := range []RunState{Paused, Playing} {
		c.state = start
		c.TogglePause()
		c.TogglePause()
		if c.State() != start {
			t.Fatalf("double toggle from %v ended at %v", start, c.State())
		}
	}
}

func TestStepWhilePausedIsNoOp(t *testing.T) {
	c := New(DefaultWidth, DefaultHeight)

	gridBefore := append([]uint8(nil), c.Grid().Cells()...)
	scannerBefore := c.Scanner()

	c.Step()

	if !bytes.Equal(gridBefore, c.Grid().Cells()) {
		t.Fatal("paused Step modified the grid")
	}
	if c.Scanner() != scannerBefore {
		t.Fatalf("paused Step moved the scanner: %v", c.Scanner())
	}
	if c.State() != Paused {
		t.Fatalf("paused Step changed state to %v", c.State())
	}
}

// The reinsertion shuffle keeps order [newest, middle, oldest]. From
// the ascending seed order the first two ticks are transitional, then
// the window settles into a descending triple advancing one per tick.
func TestScannerShiftSequence(t *testing.T) {
	c := newPlaying(t)

	row := func(xs ...int) [3]core.Point {
		var s [3]core.Point
		for i, x := range xs {
			s[i] = core.Point{X: x, Y: 1}
		}
		return s
	}

	want := [][3]core.Point{
		row(1, 0, 1),
		row(2, 1, 0),
		row(3, 2, 1),
		row(4, 3, 2),
	}
	for i, w := range want {
		c.Step()
		if c.Scanner() != w {
			t.Fatalf("after tick %d scanner = %v, want %v", i+1, c.Scanner(), w)
		}
	}
}

func TestScannerWrapsToNextRow(t *testing.T) {
	c := newPlaying(t)
	c.scanner = [3]core.Point{{X: 100, Y: 1}, {X: 99, Y: 1}, {X: 98, Y: 1}}

	c.Step()

	want := [3]core.Point{{X: 0, Y: 2}, {X: 100, Y: 1}, {X: 99, Y: 1}}
	if c.Scanner() != want {
		t.Fatalf("post-wrap scanner = %v, want %v", c.Scanner(), want)
	}
}

func TestTickWritesRuleResultBelowMiddle(t *testing.T) {
	c := newPlaying(t)
	// One live cell at (50,1); the next shift centers the window on it.
	c.grid.Clear()
	c.grid.Set(50, 1, true)
	c.scanner = [3]core.Point{{X: 50, Y: 1}, {X: 49, Y: 1}, {X: 48, Y: 1}}

	c.Step()

	// Scanner is now {(51,1),(50,1),(49,1)}: p=false, q=true, r=false
	// => p XOR (q OR r) = true, written at (50,2).
	if !c.ValueAt(core.Point{X: 50, Y: 2}) {
		t.Fatal("expected rule result true at (50,2)")
	}
}

func TestTickAllDeadWritesFalse(t *testing.T) {
	c := newPlaying(t)
	c.grid.Clear()

	c.Step()

	if c.Population() != 0 {
		t.Fatalf("all-dead neighborhood produced %d live cells", c.Population())
	}
}

func TestValueAtIsIdempotent(t *testing.T) {
	c := New(DefaultWidth, DefaultHeight)
	pt := core.Point{X: 51, Y: 1}

	first := c.ValueAt(pt)
	for i := 0; i < 5; i++ {
		if c.ValueAt(pt) != first {
			t.Fatal("ValueAt changed without an intervening mutation")
		}
	}
}

// Rule is elementary rule 30 with p as the left (trailing) cell.
func TestRuleMatchesRule30(t *testing.T) {
	const wolfram = 30
	for n := 0; n < 8; n++ {
		p := n&4 != 0
		q := n&2 != 0
		r := n&1 != 0
		want := (wolfram>>n)&1 == 1
		if got := Rule(p, q, r); got != want {
			t.Errorf("Rule(%v,%v,%v) = %v, want %v", p, q, r, got, want)
		}
	}
}

// Sweeping a full row one cell at a time must agree with computing the
// whole next generation at once.
func TestRowSweepMatchesWholeRowRule(t *testing.T) {
	c := newPlaying(t)

	// Settle the window, then sweep until it leaves row 1.
	for c.Scanner()[1].Y < 2 {
		c.Step()
	}

	for x := 1; x < DefaultWidth-1; x++ {
		p := c.ValueAt(core.Point{X: x - 1, Y: 1})
		q := c.ValueAt(core.Point{X: x, Y: 1})
		r := c.ValueAt(core.Point{X: x + 1, Y: 1})
		if got := c.ValueAt(core.Point{X: x, Y: 2}); got != Rule(p, q, r) {
			t.Fatalf("row 2 cell %d = %v, want %v", x, got, Rule(p, q, r))
		}
	}
}

// The scan has no vertical bound: running past the last row must fault
// rather than clamp.
func TestOverrunPanics(t *testing.T) {
	c := newPlaying(t)
	c.scanner = [3]core.Point{{X: 100, Y: DefaultHeight - 1}, {X: 99, Y: DefaultHeight - 1}, {X: 98, Y: DefaultHeight - 1}}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic writing past the last row")
		}
	}()
	// Wraps the head to (0, H), then writes at middle y+1 = H.
	c.Step()
}

func TestResetRestoresSeedState(t *testing.T) {
	c := newPlaying(t)
	for i := 0; i < 250; i++ {
		c.Step()
	}

	c.Reset(0)

	fresh := New(DefaultWidth, DefaultHeight)
	if !bytes.Equal(c.Grid().Cells(), fresh.Grid().Cells()) {
		t.Fatal("Reset did not restore the seed grid")
	}
	if c.Scanner() != fresh.Scanner() {
		t.Fatalf("Reset scanner = %v, want %v", c.Scanner(), fresh.Scanner())
	}
	if c.State() != Paused {
		t.Fatalf("Reset state = %v, want Paused", c.State())
	}
}

func TestFromMap(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]string
		w, h int
	}{
		{"nil", nil, DefaultWidth, DefaultHeight},
		{"override", map[string]string{"w": "31", "h": "17"}, 31, 17},
		{"garbage ignored", map[string]string{"w": "x", "h": "-3"}, DefaultWidth, DefaultHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromMap(tc.in)
			if got.Width != tc.w || got.Height != tc.h {
				t.Fatalf("FromMap(%v) = %dx%d, want %dx%d", tc.in, got.Width, got.Height, tc.w, tc.h)
			}
		})
	}
}
