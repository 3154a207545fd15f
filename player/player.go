// Package player holds one participant's mutable state: resources,
// banked spade credit, victory points, the power ledger and the hook that
// answers power offers.
package player

import (
	"errors"
	"fmt"

	"terra/board"
	"terra/faction"
	"terra/hex"
	"terra/power"
	"terra/rules"
)

// ErrInsufficientResources reports a cost the player cannot cover.
var ErrInsufficientResources = errors.New("insufficient resources")

// Decider answers a power offer made when builder settles next to one of
// this player's settlements: return true to take the offered power and
// pay the point cost, false to let it go.
type Decider func(pos hex.Coord, builder string, offered int) bool

// AcceptAll takes every power offer.
func AcceptAll(hex.Coord, string, int) bool { return true }

// DeclineAll refuses every power offer.
func DeclineAll(hex.Coord, string, int) bool { return false }

// Player is one seated participant.
type Player struct {
	name         string
	faction      faction.Faction
	workers      int
	coins        int
	spades       int // banked credit from power conversions, expires each round
	points       int
	exchangeRate int // workers bought per missing spade
	ledger       *power.Ledger
	decider      Decider
	passed       bool
	turns        int
}

// New seats a player with the faction's starting stock and a fresh power
// ledger.
func New(name string, f faction.Faction, cfg rules.Config) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("cannot seat player: empty name")
	}
	ledger, err := power.NewLedger(cfg.PowerStart, cfg.PowerCeiling)
	if err != nil {
		return nil, fmt.Errorf("cannot seat player %s: %w", name, err)
	}
	return &Player{
		name:         name,
		faction:      f,
		workers:      f.Workers,
		coins:        f.Coins,
		points:       cfg.StartingPoints,
		exchangeRate: cfg.SpadeExchangeRate,
		ledger:       ledger,
		decider:      DeclineAll,
	}, nil
}

func (p *Player) Name() string               { return p.name }
func (p *Player) Faction() faction.Faction   { return p.faction }
func (p *Player) HomeTerrain() board.Terrain { return p.faction.Home }
func (p *Player) Workers() int               { return p.workers }
func (p *Player) Coins() int                 { return p.coins }
func (p *Player) SpadeCredit() int           { return p.spades }
func (p *Player) Points() int                { return p.points }
func (p *Player) Ledger() *power.Ledger      { return p.ledger }

// spadeShortfall is the part of a spade charge not covered by banked
// credit.
func (p *Player) spadeShortfall(spades int) int {
	short := spades - p.spades
	if short < 0 {
		return 0
	}
	return short
}

// CanAfford reports whether Pay(c) would succeed. Spade charges draw
// banked credit first; the rest is bought with workers at the exchange
// rate.
func (p *Player) CanAfford(c rules.Cost) bool {
	if c.Workers < 0 || c.Coins < 0 || c.Power < 0 || c.Spades < 0 {
		return false
	}
	workers := c.Workers + p.spadeShortfall(c.Spades)*p.exchangeRate
	return workers <= p.workers &&
		c.Coins <= p.coins &&
		c.Power <= p.ledger.Balance()
}

// Pay deducts c, all or nothing.
func (p *Player) Pay(c rules.Cost) error {
	if !p.CanAfford(c) {
		return fmt.Errorf("%s cannot pay %v: %w", p.name, c, ErrInsufficientResources)
	}
	if c.Power > 0 {
		if err := p.ledger.Spend(c.Power); err != nil {
			return err
		}
	}
	fromCredit := min(c.Spades, p.spades)
	p.spades -= fromCredit
	p.workers -= c.Workers + (c.Spades-fromCredit)*p.exchangeRate
	p.coins -= c.Coins
	return nil
}

// GainWorkers credits n workers.
func (p *Player) GainWorkers(n int) {
	p.workers += mustNonNegative("workers", n)
}

// GainCoins credits n coins.
func (p *Player) GainCoins(n int) {
	p.coins += mustNonNegative("coins", n)
}

// GainSpades banks n spade credits for this round.
func (p *Player) GainSpades(n int) {
	p.spades += mustNonNegative("spades", n)
}

// GainPoints credits n victory points.
func (p *Player) GainPoints(n int) {
	p.points += mustNonNegative("points", n)
}

// LosePoints debits exactly n victory points; the total may go negative.
func (p *Player) LosePoints(n int) {
	p.points -= mustNonNegative("points", n)
}

// GainPower credits the ledger and returns the amount that fit under the
// ceiling.
func (p *Player) GainPower(n int) int {
	return p.ledger.Gain(n)
}

// SetDecider installs the power-offer callback.
func (p *Player) SetDecider(d Decider) {
	p.decider = d
}

// Decide answers a power offer. A player without a decider declines.
func (p *Player) Decide(pos hex.Coord, builder string, offered int) bool {
	if p.decider == nil {
		return false
	}
	return p.decider(pos, builder, offered)
}

// Passed reports whether the player has passed this round.
func (p *Player) Passed() bool {
	return p.passed
}

// MarkPassed takes the player out of the round.
func (p *Player) MarkPassed() {
	p.passed = true
}

// ResetForRound clears the passed flag and expires unused spade credit.
func (p *Player) ResetForRound() {
	p.passed = false
	p.spades = 0
}

// StartTurn bumps and returns the player's own turn count, which drives
// periodic income.
func (p *Player) StartTurn() int {
	p.turns++
	return p.turns
}

func mustNonNegative(what string, n int) int {
	if n < 0 {
		panic(fmt.Sprintf("player: negative %s amount %d", what, n))
	}
	return n
}
