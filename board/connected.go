package board

import (
	"sort"

	"github.com/Travis-Britz/structures/stack"

	"terra/hex"
)

// Network is the size of one owner's largest connected settlement group.
type Network struct {
	Owner string
	Size  int
}

// LargestNetwork returns the size of owner's largest group of settlements
// connected through hex adjacency, or 0 when the owner has none. The
// board is never mutated.
func (b *Board) LargestNetwork(owner string) int {
	visited := make(map[hex.Coord]bool)
	largest := 0

	for _, start := range b.SettlementsOf(owner) {
		if visited[start] {
			continue
		}
		visited[start] = true
		size := 0

		frontier := &stack.Stack[hex.Coord]{}
		for cur, more := start, true; more; cur, more = frontier.Pop() {
			size++
			for _, nb := range b.grid.InBoundsNeighbors(cur) {
				if visited[nb] {
					continue
				}
				cell, _ := b.grid.Get(nb)
				if cell.Settlement != nil && cell.Settlement.Owner == owner {
					visited[nb] = true
					frontier.Push(nb)
				}
			}
		}
		largest = max(largest, size)
	}
	return largest
}

// RankNetworks sizes every owner's largest network and orders them
// biggest first, ties broken by owner name so rankings are deterministic.
func (b *Board) RankNetworks(owners []string) []Network {
	nets := make([]Network, 0, len(owners))
	for _, o := range owners {
		nets = append(nets, Network{Owner: o, Size: b.LargestNetwork(o)})
	}
	sort.Slice(nets, func(i, j int) bool {
		if nets[i].Size != nets[j].Size {
			return nets[i].Size > nets[j].Size
		}
		return nets[i].Owner < nets[j].Owner
	})
	return nets
}
