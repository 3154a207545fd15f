// Package agent provides the baseline player used by the demo and the
// self-play experiments: found a dwelling when one is legal, dig a
// reachable cell toward home terrain while a dwelling is still
// affordable, buy workers with power, otherwise pass.
package agent

import (
	"golang.org/x/exp/rand"

	"terra/game"
	"terra/hex"
	"terra/player"
	"terra/rules"
	"terra/utils"
)

// Agent picks uniformly among the candidates of the best available
// action kind, so a seed fully determines its play.
type Agent struct {
	rng *rand.Rand
}

func New(seed int64) *Agent {
	return &Agent{rng: rand.New(rand.NewSource(uint64(seed)))}
}

// TakeTurn plays one turn for p on g. Coins only ever shrink, so the
// agent passes eventually and every match terminates.
func (a *Agent) TakeTurn(g *game.Game, p *player.Player) error {
	b := g.Board()
	name := p.Name()

	builds := utils.Filter(b.Coords(), func(c hex.Coord) bool {
		terr, err := b.TerrainAt(c)
		if err != nil || terr != p.HomeTerrain() || b.Occupied(c) {
			return false
		}
		return !b.HasAny(name) || b.AdjacentToOwner(c, name)
	})
	if len(builds) > 0 {
		if err := g.Build(name, builds[a.rng.Intn(len(builds))]); err == nil {
			return nil
		}
	}

	dwelling := p.Faction().Ability.ModifyBuildCost(g.Config().DwellingCost)
	if p.Coins() >= dwelling.Coins {
		digs := utils.Filter(b.Coords(), func(c hex.Coord) bool {
			terr, err := b.TerrainAt(c)
			if err != nil || terr == p.HomeTerrain() || b.Occupied(c) {
				return false
			}
			return b.AdjacentToOwner(c, name)
		})
		if len(digs) > 0 {
			if err := g.Transform(name, digs[a.rng.Intn(len(digs))], p.HomeTerrain()); err == nil {
				return nil
			}
		}
	}

	if err := g.Convert(name, rules.ConvertWorkers); err == nil {
		return nil
	}
	return g.Pass(name)
}
