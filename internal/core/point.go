package core

// Point is an integer grid coordinate. X is the automaton's spatial
// axis, Y is the generation row.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}
