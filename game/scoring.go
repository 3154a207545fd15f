package game

import (
	"github.com/rs/zerolog/log"
)

// Score is one player's end-game tally.
type Score struct {
	Player         string
	Points         int // accumulated during play, starting stock included
	Dwellings      int
	DwellingPoints int
	NetworkSize    int
	AreaBonus      int
	CoinPoints     int
	Total          int
}

// FinalScores tallies every player in seating order: points accumulated
// during play, dwelling points, the area bonus for the network ranking,
// and leftover coins and workers converted at the configured rate.
// Empty networks earn no area bonus regardless of rank.
func (g *Game) FinalScores() []Score {
	sizes := make(map[string]int, len(g.order))
	bonuses := make(map[string]int, len(g.order))
	for rank, nw := range g.exec.RankNetworks() {
		sizes[nw.Owner] = nw.Size
		if nw.Size > 0 {
			bonuses[nw.Owner] = g.exec.ConnectivityScore(rank)
		}
	}

	scores := make([]Score, 0, len(g.order))
	for _, name := range g.order {
		p, _ := g.exec.Player(name)
		s := Score{
			Player:         name,
			Points:         p.Points(),
			Dwellings:      g.exec.Board().CountOf(name),
			DwellingPoints: g.exec.DwellingScore(name),
			NetworkSize:    sizes[name],
			AreaBonus:      bonuses[name],
			CoinPoints:     (p.Coins() + p.Workers()) / g.cfg.CoinsPerPoint,
		}
		s.Total = s.Points + s.DwellingPoints + s.AreaBonus + s.CoinPoints
		scores = append(scores, s)
	}
	return scores
}

// Winner returns the winning player once the game is finished. Ties go
// to the earlier seat.
func (g *Game) Winner() (string, bool) {
	return g.winner, g.finished
}

func (g *Game) endGame() {
	g.finished = true
	scores := g.FinalScores()
	best := 0
	for i, s := range scores {
		log.Info().Msgf("%s finished with %d points: %d base, %d for %d dwellings, %d area bonus on a network of %d, %d from leftovers",
			s.Player, s.Total, s.Points, s.DwellingPoints, s.Dwellings, s.AreaBonus, s.NetworkSize, s.CoinPoints)
		if s.Total > scores[best].Total {
			best = i
		}
	}
	g.winner = scores[best].Player
	log.Info().Msgf("game %s over after round %d, %s wins with %d points",
		g.id, g.round, g.winner, scores[best].Total)
}
