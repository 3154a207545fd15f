package hex

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a coordinate outside a grid's universe.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid is a dense axial field of cells around the origin. A coordinate
// belongs to the universe iff |q| <= radius and |r| <= radius, giving a
// rhombus-shaped map of (2R+1)^2 cells. The universe is fixed at
// construction; accessing a coordinate outside it is an error, never a
// growth trigger.
//
// The zero value is not usable; create grids with New.
type Grid[T any] struct {
	radius int
	cells  map[Coord]T
	scan   []Coord // universe in a fixed scan order
}

// New returns a grid of the given radius with every cell set to the zero
// value of T. Radius 0 is the single origin cell.
func New[T any](radius int) (*Grid[T], error) {
	if radius < 0 {
		return nil, fmt.Errorf("cannot create grid: negative radius %d", radius)
	}
	side := 2*radius + 1
	g := &Grid[T]{
		radius: radius,
		cells:  make(map[Coord]T, side*side),
	}
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := Coord{Q: q, R: r}
			var zero T
			g.cells[c] = zero
			g.scan = append(g.scan, c)
		}
	}
	return g, nil
}

// Radius returns the universe radius.
func (g *Grid[T]) Radius() int {
	return g.radius
}

// Len returns the number of cells in the universe.
func (g *Grid[T]) Len() int {
	return len(g.scan)
}

// Contains reports whether c lies inside the universe.
func (g *Grid[T]) Contains(c Coord) bool {
	return abs(c.Q) <= g.radius && abs(c.R) <= g.radius
}

// Get returns the value at c.
func (g *Grid[T]) Get(c Coord) (T, error) {
	v, ok := g.cells[c]
	if !ok {
		var zero T
		return zero, fmt.Errorf("cannot read cell %v: %w", c, ErrOutOfBounds)
	}
	return v, nil
}

// Set stores v at c.
func (g *Grid[T]) Set(c Coord, v T) error {
	if !g.Contains(c) {
		return fmt.Errorf("cannot write cell %v: %w", c, ErrOutOfBounds)
	}
	g.cells[c] = v
	return nil
}

// Coords returns every coordinate of the universe in a fixed scan order,
// so iteration is deterministic across runs.
func (g *Grid[T]) Coords() []Coord {
	out := make([]Coord, len(g.scan))
	copy(out, g.scan)
	return out
}

// InBoundsNeighbors returns c's neighbors that lie inside the universe,
// preserving ring order. Cells on the rim get fewer than six.
func (g *Grid[T]) InBoundsNeighbors(c Coord) []Coord {
	out := make([]Coord, 0, 6)
	for _, n := range c.Neighbors() {
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
