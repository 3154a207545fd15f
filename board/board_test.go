package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"terra/hex"
)

func TestNewBoard(t *testing.T) {
	b, err := New(5, Desert)
	require.NoError(t, err)
	require.Equal(t, 5, b.Radius())
	require.Equal(t, 121, b.Len(), "Radius-5 board should have 121 cells")
	require.True(t, b.Contains(hex.Coord{Q: 5, R: -5}))
	require.False(t, b.Contains(hex.Coord{Q: 6, R: 0}))

	for _, c := range b.Coords() {
		terr, err := b.TerrainAt(c)
		require.NoError(t, err)
		require.Equal(t, Desert, terr, "Every cell should start as the fill terrain")
		s, err := b.SettlementAt(c)
		require.NoError(t, err)
		require.Nil(t, s, "Every cell should start empty")
	}

	_, err = New(-2, Desert)
	require.Error(t, err, "Negative radius should fail at construction")
}

func TestSetTerrain(t *testing.T) {
	b, err := New(2, Mountains)
	require.NoError(t, err)

	t.Run("reshapes empty cells", func(t *testing.T) {
		c := hex.Coord{Q: 1, R: 0}
		require.NoError(t, b.SetTerrain(c, Forest))
		terr, err := b.TerrainAt(c)
		require.NoError(t, err)
		require.Equal(t, Forest, terr)
	})

	t.Run("out of bounds", func(t *testing.T) {
		err := b.SetTerrain(hex.Coord{Q: 3, R: 0}, Forest)
		require.ErrorIs(t, err, hex.ErrOutOfBounds)
	})

	t.Run("occupied cells are frozen", func(t *testing.T) {
		c := hex.Coord{Q: 0, R: 1}
		require.NoError(t, b.PlaceSettlement(c, "ada", Mountains))
		err := b.SetTerrain(c, Desert)
		require.ErrorIs(t, err, ErrOccupied, "Terrain under a settlement should never change")
		terr, _ := b.TerrainAt(c)
		require.Equal(t, Mountains, terr, "Failed reshape should leave terrain untouched")
	})
}

func TestPlaceSettlement(t *testing.T) {
	b, err := New(2, Forest)
	require.NoError(t, err)

	t.Run("places on matching terrain", func(t *testing.T) {
		c := hex.Coord{Q: 0, R: 0}
		require.NoError(t, b.PlaceSettlement(c, "ada", Forest))
		s, err := b.SettlementAt(c)
		require.NoError(t, err)
		require.NotNil(t, s)
		require.Equal(t, "ada", s.Owner)
	})

	t.Run("occupied cell rejects any owner", func(t *testing.T) {
		c := hex.Coord{Q: 0, R: 0}
		err := b.PlaceSettlement(c, "bo", Forest)
		require.ErrorIs(t, err, ErrOccupied)
		err = b.PlaceSettlement(c, "ada", Forest)
		require.ErrorIs(t, err, ErrOccupied, "One settlement per cell, even for the same owner")
	})

	t.Run("terrain must match", func(t *testing.T) {
		c := hex.Coord{Q: 1, R: 0}
		require.NoError(t, b.SetTerrain(c, Desert))
		err := b.PlaceSettlement(c, "ada", Forest)
		require.ErrorIs(t, err, ErrTerrainMismatch)
		s, _ := b.SettlementAt(c)
		require.Nil(t, s, "Failed placement should leave the cell empty")
	})

	t.Run("out of bounds", func(t *testing.T) {
		err := b.PlaceSettlement(hex.Coord{Q: 5, R: 5}, "ada", Forest)
		require.ErrorIs(t, err, hex.ErrOutOfBounds)
	})
}

func TestOwnershipQueries(t *testing.T) {
	b, err := New(3, Forest)
	require.NoError(t, err)

	require.False(t, b.HasAny("ada"))
	require.Zero(t, b.CountOf("ada"))
	require.Empty(t, b.Owners())

	require.NoError(t, b.PlaceSettlement(hex.Coord{Q: 0, R: 0}, "ada", Forest))
	require.NoError(t, b.PlaceSettlement(hex.Coord{Q: 2, R: 0}, "ada", Forest))
	require.NoError(t, b.PlaceSettlement(hex.Coord{Q: 0, R: 2}, "bo", Forest))

	require.True(t, b.HasAny("ada"))
	require.Equal(t, 2, b.CountOf("ada"))
	require.Equal(t, []hex.Coord{{Q: 0, R: 0}, {Q: 2, R: 0}}, b.SettlementsOf("ada"),
		"Settlement coords should come back in scan order")
	require.Equal(t, []string{"ada", "bo"}, b.Owners(), "Owners should be sorted")
}

func TestAdjacencyQueries(t *testing.T) {
	b, err := New(2, Forest)
	require.NoError(t, err)

	center := hex.Coord{Q: 0, R: 0}
	require.NoError(t, b.PlaceSettlement(hex.Coord{Q: 1, R: 0}, "ada", Forest))
	require.NoError(t, b.PlaceSettlement(hex.Coord{Q: 0, R: 1}, "ada", Forest))
	require.NoError(t, b.PlaceSettlement(hex.Coord{Q: -1, R: 0}, "bo", Forest))

	t.Run("counts own adjacent settlements", func(t *testing.T) {
		require.Equal(t, 2, b.AdjacentCountOf(center, "ada"))
		require.Equal(t, 1, b.AdjacentCountOf(center, "bo"))
		require.Zero(t, b.AdjacentCountOf(center, "cem"))
		require.True(t, b.AdjacentToOwner(center, "ada"))
		require.False(t, b.AdjacentToOwner(center, "cem"))
	})

	t.Run("rival owners are distinct and sorted", func(t *testing.T) {
		require.Equal(t, []string{"ada", "bo"}, b.AdjacentRivalOwners(center, "cem"))
		require.Equal(t, []string{"bo"}, b.AdjacentRivalOwners(center, "ada"),
			"The excluded owner should not appear")
	})

	t.Run("rim cells ignore out-of-bounds neighbors", func(t *testing.T) {
		corner := hex.Coord{Q: 2, R: 0}
		require.NoError(t, b.PlaceSettlement(hex.Coord{Q: 1, R: 1}, "bo", Forest))
		require.Equal(t, 1, b.AdjacentCountOf(corner, "ada"), "Only in-bounds neighbors should count")
		require.Equal(t, []string{"ada", "bo"}, b.AdjacentRivalOwners(corner, ""))
	})
}
