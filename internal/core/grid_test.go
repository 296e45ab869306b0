package core

import "testing"

func TestGridIndexIsRowMajor(t *testing.T) {
	g := NewGrid(101, 100)

	if got := g.Index(0, 0); got != 0 {
		t.Fatalf("Index(0,0) = %d", got)
	}
	if got := g.Index(100, 0); got != 100 {
		t.Fatalf("Index(100,0) = %d", got)
	}
	if got := g.Index(0, 1); got != 101 {
		t.Fatalf("Index(0,1) = %d", got)
	}
	if got := g.Index(100, 99); got != 101*100-1 {
		t.Fatalf("Index(100,99) = %d", got)
	}
}

func TestGridSetAt(t *testing.T) {
	g := NewGrid(7, 5)

	g.Set(3, 2, true)
	if !g.At(3, 2) {
		t.Fatal("cell (3,2) should be set")
	}
	if g.At(2, 3) {
		t.Fatal("transposed cell should not be set")
	}

	g.Set(3, 2, false)
	if g.At(3, 2) {
		t.Fatal("cell (3,2) should be cleared")
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(4, 4)
	for y := 0; y < 4; y++ {
		g.Set(y, y, true)
	}

	g.Clear()

	for _, v := range g.Cells() {
		if v != 0 {
			t.Fatal("Clear left a set cell")
		}
	}
}

func TestGridContains(t *testing.T) {
	g := NewGrid(101, 100)

	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{100, 99, true},
		{101, 0, false},
		{0, 100, false},
		{-1, 5, false},
		{5, -1, false},
	}
	for _, tc := range cases {
		if got := g.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

// Accessors deliberately skip bounds checks; an out-of-range write
// must fault instead of clamping.
func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(101, 100)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on out-of-range Set")
		}
	}()
	g.Set(0, 100, true)
}

func TestPointAdd(t *testing.T) {
	got := Point{X: 100, Y: 1}.Add(Point{X: 1})
	if got != (Point{X: 101, Y: 1}) {
		t.Fatalf("Add = %v", got)
	}
}
