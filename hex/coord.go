package hex

import "fmt"

// Coord is an axial hex coordinate. Q grows to the east and R to the
// southeast; the derived cube component S() keeps Q+R+S == 0.
type Coord struct {
	Q int
	R int
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// directions lists the six neighbor offsets in ring order:
// E, SE, SW, W, NW, NE. Callers rely on this order being stable.
var directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

// Add returns the componentwise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Q: c.Q + d.Q, R: c.R + d.R}
}

// Neighbors returns the six adjacent coordinates in ring order
// starting east.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range directions {
		out[i] = c.Add(d)
	}
	return out
}

// Distance returns the number of hex steps between a and b.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

// Adjacent reports whether a and b share an edge.
func Adjacent(a, b Coord) bool {
	return Distance(a, b) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
