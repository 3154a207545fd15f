// Package faction holds the playable faction catalog. Faction behavior
// is data: a home terrain, a starting stock and a cost-modifier ability,
// so adding a faction means registering an entry, not branching the
// engine.
package faction

import (
	"fmt"
	"sort"

	"terra/board"
	"terra/rules"
)

// Kind names a playable faction.
type Kind string

const (
	Witches   Kind = "witches"
	Engineers Kind = "engineers"
	Nomads    Kind = "nomads"
)

// Ability adjusts action costs for one faction. Implementations must be
// pure functions of their input.
type Ability interface {
	// ModifyBuildCost maps the base dwelling cost to this faction's cost.
	ModifyBuildCost(rules.Cost) rules.Cost
	// ModifyTransformCost maps a base spade count to this faction's count.
	ModifyTransformCost(spades int) int
}

// Faction binds a kind to its home terrain, starting stock and ability.
type Faction struct {
	Kind    Kind
	Home    board.Terrain
	Workers int
	Coins   int
	Ability Ability
}

type baseAbility struct{}

func (baseAbility) ModifyBuildCost(c rules.Cost) rules.Cost { return c }
func (baseAbility) ModifyTransformCost(spades int) int      { return spades }

// halfBuild builds dwellings at half price, rounded down. Only the
// worker and coin components shrink.
type halfBuild struct{ baseAbility }

func (halfBuild) ModifyBuildCost(c rules.Cost) rules.Cost {
	c.Workers /= 2
	c.Coins /= 2
	return c
}

// cheapSpades reshapes terrain for one spade less, never below one.
type cheapSpades struct{ baseAbility }

func (cheapSpades) ModifyTransformCost(spades int) int {
	return max(1, spades-1)
}

func builtins() []Faction {
	return []Faction{
		{Kind: Witches, Home: board.Forest, Workers: 3, Coins: 15, Ability: baseAbility{}},
		{Kind: Engineers, Home: board.Mountains, Workers: 4, Coins: 12, Ability: halfBuild{}},
		{Kind: Nomads, Home: board.Desert, Workers: 2, Coins: 18, Ability: cheapSpades{}},
	}
}

// Registry is the faction catalog for a match.
type Registry struct {
	factions map[Kind]Faction
}

// NewRegistry returns a catalog seeded with the built-in factions.
func NewRegistry() *Registry {
	r := &Registry{factions: make(map[Kind]Faction)}
	for _, f := range builtins() {
		r.factions[f.Kind] = f
	}
	return r
}

// Register adds a custom faction to the catalog.
func (r *Registry) Register(f Faction) error {
	if f.Kind == "" {
		return fmt.Errorf("cannot register faction: empty kind")
	}
	if _, ok := r.factions[f.Kind]; ok {
		return fmt.Errorf("cannot register faction: %q already present", f.Kind)
	}
	if f.Ability == nil {
		return fmt.Errorf("cannot register faction %q: nil ability", f.Kind)
	}
	if f.Workers < 0 || f.Coins < 0 {
		return fmt.Errorf("cannot register faction %q: negative starting stock", f.Kind)
	}
	r.factions[f.Kind] = f
	return nil
}

// Lookup returns the faction registered under k.
func (r *Registry) Lookup(k Kind) (Faction, error) {
	f, ok := r.factions[k]
	if !ok {
		return Faction{}, fmt.Errorf("cannot look up faction: unknown kind %q", k)
	}
	return f, nil
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.factions))
	for k := range r.factions {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
