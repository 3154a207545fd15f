// Package engine validates and executes player actions against the
// board. Every action is checked in full before anything moves: a
// returned error always means untouched state.
package engine

import (
	"errors"
	"fmt"
	"sort"

	"terra/board"
	"terra/hex"
	"terra/player"
	"terra/rules"
)

var (
	// ErrNotAdjacent reports a target cell that touches none of the
	// acting player's settlements.
	ErrNotAdjacent = errors.New("not adjacent to settlement network")
	// ErrInvalidConversion reports a conversion kind not on the menu.
	ErrInvalidConversion = errors.New("invalid conversion kind")
)

// Executor coordinates the board, the seated players and the ruleset.
type Executor struct {
	board   *board.Board
	cfg     rules.Config
	players map[string]*player.Player
}

// NewExecutor returns an executor over b running cfg.
func NewExecutor(b *board.Board, cfg rules.Config) *Executor {
	return &Executor{
		board:   b,
		cfg:     cfg,
		players: make(map[string]*player.Player),
	}
}

// Seat registers p so power offers can reach it when rivals build nearby.
func (e *Executor) Seat(p *player.Player) error {
	if _, ok := e.players[p.Name()]; ok {
		return fmt.Errorf("cannot seat %s: name already taken", p.Name())
	}
	e.players[p.Name()] = p
	return nil
}

// Board exposes the play surface.
func (e *Executor) Board() *board.Board {
	return e.board
}

// Config returns the active ruleset.
func (e *Executor) Config() rules.Config {
	return e.cfg
}

// Players returns the seated players in name order.
func (e *Executor) Players() []*player.Player {
	names := e.names()
	out := make([]*player.Player, 0, len(names))
	for _, n := range names {
		out = append(out, e.players[n])
	}
	return out
}

// Player looks up a seated player by name.
func (e *Executor) Player(name string) (*player.Player, bool) {
	p, ok := e.players[name]
	return p, ok
}

func (e *Executor) names() []string {
	names := make([]string, 0, len(e.players))
	for n := range e.players {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// TerrainAt returns the terrain at c.
func (e *Executor) TerrainAt(c hex.Coord) (board.Terrain, error) {
	return e.board.TerrainAt(c)
}

// SettlementAt returns the settlement at c, or nil.
func (e *Executor) SettlementAt(c hex.Coord) (*board.Settlement, error) {
	return e.board.SettlementAt(c)
}

// LargestNetwork returns the size of name's largest connected group.
func (e *Executor) LargestNetwork(name string) int {
	return e.board.LargestNetwork(name)
}

// RankNetworks ranks every seated player's largest network.
func (e *Executor) RankNetworks() []board.Network {
	return e.board.RankNetworks(e.names())
}

// DwellingScore returns the end-game points name earns for settlements.
func (e *Executor) DwellingScore(name string) int {
	return e.cfg.DwellingScore * e.board.CountOf(name)
}

// ConnectivityScore returns the end-game bonus for one slot of the
// network ranking, zero past the rewarded places.
func (e *Executor) ConnectivityScore(rank int) int {
	if rank < 0 || rank >= len(e.cfg.AreaBonuses) {
		return 0
	}
	return e.cfg.AreaBonuses[rank]
}

// PowerBalance returns the ledger balance of a seated player.
func (e *Executor) PowerBalance(name string) (int, error) {
	p, ok := e.players[name]
	if !ok {
		return 0, fmt.Errorf("cannot read power balance: unknown player %q", name)
	}
	return p.Ledger().Balance(), nil
}
