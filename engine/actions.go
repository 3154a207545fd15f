package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"terra/board"
	"terra/hex"
	"terra/player"
	"terra/rules"
)

// Transform reshapes the terrain at c into target for p. The cell must be
// in bounds, not already target, unoccupied, and adjacent to p's network;
// there is no first-action waiver for transforms. The spade cost is the
// ring distance run through p's faction ability, paid from banked credit
// first and workers at the exchange rate for the rest.
func (e *Executor) Transform(p *player.Player, c hex.Coord, target board.Terrain) error {
	current, err := e.board.TerrainAt(c)
	if err != nil {
		return err
	}
	if current == target {
		return fmt.Errorf("cannot transform %v: already %v: %w", c, target, board.ErrTerrainMismatch)
	}
	if e.board.Occupied(c) {
		return fmt.Errorf("cannot transform %v: %w", c, board.ErrOccupied)
	}
	if !e.board.AdjacentToOwner(c, p.Name()) {
		return fmt.Errorf("cannot transform %v: %w", c, ErrNotAdjacent)
	}
	spades := p.Faction().Ability.ModifyTransformCost(board.TransformCost(current, target))
	cost := rules.Cost{Spades: spades}
	if !p.CanAfford(cost) {
		return fmt.Errorf("cannot transform %v costing %v: %w", c, cost, player.ErrInsufficientResources)
	}

	if err := p.Pay(cost); err != nil {
		return fmt.Errorf("cannot transform %v: %w", c, err)
	}
	if err := e.board.SetTerrain(c, target); err != nil {
		return err
	}
	log.Debug().Msgf("%s transformed %v from %v to %v for %v", p.Name(), c, current, target, cost)
	return nil
}

// Build founds p's dwelling at c and then runs the power offer protocol.
// The first settlement may go anywhere on home terrain; every later one
// must touch p's network.
func (e *Executor) Build(p *player.Player, c hex.Coord) error {
	terr, err := e.board.TerrainAt(c)
	if err != nil {
		return err
	}
	if e.board.Occupied(c) {
		return fmt.Errorf("cannot build at %v: %w", c, board.ErrOccupied)
	}
	if terr != p.HomeTerrain() {
		return fmt.Errorf("cannot build at %v: %v is not home terrain %v: %w",
			c, terr, p.HomeTerrain(), board.ErrTerrainMismatch)
	}
	if e.board.HasAny(p.Name()) && !e.board.AdjacentToOwner(c, p.Name()) {
		return fmt.Errorf("cannot build at %v: %w", c, ErrNotAdjacent)
	}
	cost := p.Faction().Ability.ModifyBuildCost(e.cfg.DwellingCost)
	if !p.CanAfford(cost) {
		return fmt.Errorf("cannot build at %v costing %v: %w", c, cost, player.ErrInsufficientResources)
	}

	if err := p.Pay(cost); err != nil {
		return fmt.Errorf("cannot build at %v: %w", c, err)
	}
	if err := e.board.PlaceSettlement(c, p.Name(), p.HomeTerrain()); err != nil {
		return err
	}
	log.Debug().Msgf("%s built at %v for %v", p.Name(), c, cost)

	e.offerPower(c, p)
	return nil
}

// Convert spends power on one menu entry and credits its yield.
func (e *Executor) Convert(p *player.Player, kind rules.ConversionKind) error {
	conv, ok := e.cfg.Conversions[kind]
	if !ok {
		return fmt.Errorf("cannot convert %q: %w", kind, ErrInvalidConversion)
	}
	if err := p.Ledger().Spend(conv.Power); err != nil {
		return fmt.Errorf("cannot convert %q: %w", kind, err)
	}
	p.GainSpades(conv.Spades)
	p.GainWorkers(conv.Workers)
	log.Debug().Msgf("%s converted %d power into %q", p.Name(), conv.Power, kind)
	return nil
}

// offerPower notifies every rival adjacent to the settlement just built
// at c, in name order. Each rival is offered power equal to its own
// adjacent settlement count times the dwelling power value. Accepting
// credits the ledger, clipped at the ceiling, and costs offered-1 points
// off the full offer even when clipping reduced the credit. Declining
// changes nothing.
func (e *Executor) offerPower(c hex.Coord, builder *player.Player) {
	for _, name := range e.board.AdjacentRivalOwners(c, builder.Name()) {
		rival, ok := e.players[name]
		if !ok {
			log.Warn().Msgf("settlement owner %q is not seated, skipping power offer", name)
			continue
		}
		offered := e.board.AdjacentCountOf(c, name) * e.cfg.DwellingPowerValue
		if offered <= 0 {
			continue
		}
		if !rival.Decide(c, builder.Name(), offered) {
			log.Debug().Msgf("%s declined %d power from %s's build at %v", name, offered, builder.Name(), c)
			continue
		}
		credited := rival.GainPower(offered)
		points := offered - 1
		if points > 0 {
			rival.LosePoints(points)
		}
		log.Debug().Msgf("%s accepted %d power (%d credited) from %s's build at %v for %d points",
			name, offered, credited, builder.Name(), c, points)
	}
}
