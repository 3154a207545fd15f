package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordS(t *testing.T) {
	for q := -3; q <= 3; q++ {
		for r := -3; r <= 3; r++ {
			c := Coord{Q: q, R: r}
			require.Zero(t, c.Q+c.R+c.S(), "Cube components should sum to zero for %v", c)
		}
	}
}

func TestDistance(t *testing.T) {
	t.Run("zero iff equal", func(t *testing.T) {
		a := Coord{Q: 2, R: -1}
		require.Equal(t, 0, Distance(a, a), "Distance to self should be zero")
		require.NotZero(t, Distance(a, Coord{Q: 2, R: 0}), "Distance between distinct coords should be nonzero")
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][2]Coord{
			{{Q: 0, R: 0}, {Q: 3, R: -2}},
			{{Q: -1, R: 4}, {Q: 2, R: 2}},
			{{Q: 5, R: -5}, {Q: -5, R: 5}},
		}
		for _, p := range pairs {
			require.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]),
				"Distance should be symmetric for %v and %v", p[0], p[1])
		}
	})

	t.Run("known distances", func(t *testing.T) {
		origin := Coord{}
		cases := []struct {
			to   Coord
			want int
		}{
			{Coord{Q: 1, R: 0}, 1},
			{Coord{Q: 0, R: -1}, 1},
			{Coord{Q: 2, R: 0}, 2},
			{Coord{Q: 2, R: -1}, 2},
			{Coord{Q: -3, R: 3}, 3},
			{Coord{Q: 3, R: 3}, 6},
		}
		for _, tc := range cases {
			require.Equal(t, tc.want, Distance(origin, tc.to), "Distance from origin to %v", tc.to)
		}
	})

	t.Run("all neighbors at distance one", func(t *testing.T) {
		c := Coord{Q: -2, R: 3}
		for _, n := range c.Neighbors() {
			require.Equal(t, 1, Distance(c, n), "Neighbor %v should be one step from %v", n, c)
			require.True(t, Adjacent(c, n), "Neighbor %v should be adjacent to %v", n, c)
		}
	})
}

func TestNeighborOrder(t *testing.T) {
	// E, SE, SW, W, NW, NE around the origin.
	want := [6]Coord{
		{Q: 1, R: 0},
		{Q: 0, R: 1},
		{Q: -1, R: 1},
		{Q: -1, R: 0},
		{Q: 0, R: -1},
		{Q: 1, R: -1},
	}
	require.Equal(t, want, Coord{}.Neighbors(), "Neighbor order should be stable: E, SE, SW, W, NW, NE")

	// The order holds after translation too.
	c := Coord{Q: 4, R: -2}
	for i, n := range c.Neighbors() {
		require.Equal(t, want[i].Add(c), n, "Neighbor order should be translation invariant")
	}
}
