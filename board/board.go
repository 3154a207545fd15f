package board

import (
	"errors"
	"fmt"
	"sort"

	"terra/hex"
)

var (
	// ErrOccupied reports a cell that already holds a settlement.
	ErrOccupied = errors.New("cell is occupied")
	// ErrTerrainMismatch reports terrain that is not the kind an
	// operation requires.
	ErrTerrainMismatch = errors.New("terrain mismatch")
)

// Settlement is a player dwelling on a cell. This ruleset has a single
// settlement tier.
type Settlement struct {
	Owner string
}

// Cell is the content of one board position.
type Cell struct {
	Terrain    Terrain
	Settlement *Settlement
}

// Board is the authoritative play surface: terrain and settlements over a
// fixed hexagonal universe. Settlements are permanent once placed and the
// terrain beneath them is frozen.
type Board struct {
	grid *hex.Grid[Cell]
}

// New returns a board of the given radius with every cell set to fill.
func New(radius int, fill Terrain) (*Board, error) {
	g, err := hex.New[Cell](radius)
	if err != nil {
		return nil, fmt.Errorf("cannot create board: %w", err)
	}
	b := &Board{grid: g}
	for _, c := range g.Coords() {
		// writes within the universe cannot fail
		_ = g.Set(c, Cell{Terrain: fill})
	}
	return b, nil
}

// Radius returns the universe radius.
func (b *Board) Radius() int {
	return b.grid.Radius()
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return b.grid.Len()
}

// Contains reports whether c is on the board.
func (b *Board) Contains(c hex.Coord) bool {
	return b.grid.Contains(c)
}

// Coords returns every board coordinate in a fixed scan order.
func (b *Board) Coords() []hex.Coord {
	return b.grid.Coords()
}

// TerrainAt returns the terrain at c.
func (b *Board) TerrainAt(c hex.Coord) (Terrain, error) {
	cell, err := b.grid.Get(c)
	if err != nil {
		return 0, err
	}
	return cell.Terrain, nil
}

// SettlementAt returns the settlement at c, or nil for an empty cell.
func (b *Board) SettlementAt(c hex.Coord) (*Settlement, error) {
	cell, err := b.grid.Get(c)
	if err != nil {
		return nil, err
	}
	return cell.Settlement, nil
}

// Occupied reports whether an in-bounds cell holds a settlement.
func (b *Board) Occupied(c hex.Coord) bool {
	cell, err := b.grid.Get(c)
	return err == nil && cell.Settlement != nil
}

// SetTerrain reshapes the terrain at c. Occupied cells are frozen: their
// terrain can never change again.
func (b *Board) SetTerrain(c hex.Coord, t Terrain) error {
	cell, err := b.grid.Get(c)
	if err != nil {
		return err
	}
	if cell.Settlement != nil {
		return fmt.Errorf("cannot reshape %v: %w", c, ErrOccupied)
	}
	cell.Terrain = t
	return b.grid.Set(c, cell)
}

// PlaceSettlement puts owner's dwelling at c. The cell must be empty and
// its terrain must equal home. Placement is permanent.
func (b *Board) PlaceSettlement(c hex.Coord, owner string, home Terrain) error {
	cell, err := b.grid.Get(c)
	if err != nil {
		return err
	}
	if cell.Settlement != nil {
		return fmt.Errorf("cannot settle %v: %w", c, ErrOccupied)
	}
	if cell.Terrain != home {
		return fmt.Errorf("cannot settle %v: %v is not %v: %w", c, cell.Terrain, home, ErrTerrainMismatch)
	}
	cell.Settlement = &Settlement{Owner: owner}
	return b.grid.Set(c, cell)
}

// SettlementsOf returns the coordinates of owner's settlements in scan
// order.
func (b *Board) SettlementsOf(owner string) []hex.Coord {
	var out []hex.Coord
	for _, c := range b.grid.Coords() {
		cell, _ := b.grid.Get(c)
		if cell.Settlement != nil && cell.Settlement.Owner == owner {
			out = append(out, c)
		}
	}
	return out
}

// CountOf returns how many settlements owner has on the board.
func (b *Board) CountOf(owner string) int {
	return len(b.SettlementsOf(owner))
}

// HasAny reports whether owner has at least one settlement anywhere.
func (b *Board) HasAny(owner string) bool {
	for _, c := range b.grid.Coords() {
		cell, _ := b.grid.Get(c)
		if cell.Settlement != nil && cell.Settlement.Owner == owner {
			return true
		}
	}
	return false
}

// Owners returns every player with a settlement on the board, sorted.
func (b *Board) Owners() []string {
	seen := make(map[string]bool)
	for _, c := range b.grid.Coords() {
		cell, _ := b.grid.Get(c)
		if cell.Settlement != nil {
			seen[cell.Settlement.Owner] = true
		}
	}
	out := make([]string, 0, len(seen))
	for o := range seen {
		out = append(out, o)
	}
	sort.Strings(out)
	return out
}

// AdjacentToOwner reports whether any in-bounds neighbor of c holds one
// of owner's settlements.
func (b *Board) AdjacentToOwner(c hex.Coord, owner string) bool {
	return b.AdjacentCountOf(c, owner) > 0
}

// AdjacentCountOf returns how many in-bounds neighbors of c hold owner's
// settlements.
func (b *Board) AdjacentCountOf(c hex.Coord, owner string) int {
	n := 0
	for _, nb := range b.grid.InBoundsNeighbors(c) {
		cell, _ := b.grid.Get(nb)
		if cell.Settlement != nil && cell.Settlement.Owner == owner {
			n++
		}
	}
	return n
}

// AdjacentRivalOwners returns the distinct owners, excluding exclude,
// with settlements on in-bounds neighbors of c, sorted for deterministic
// notification order.
func (b *Board) AdjacentRivalOwners(c hex.Coord, exclude string) []string {
	seen := make(map[string]bool)
	for _, nb := range b.grid.InBoundsNeighbors(c) {
		cell, _ := b.grid.Get(nb)
		if cell.Settlement != nil && cell.Settlement.Owner != exclude {
			seen[cell.Settlement.Owner] = true
		}
	}
	out := make([]string, 0, len(seen))
	for o := range seen {
		out = append(out, o)
	}
	sort.Strings(out)
	return out
}
