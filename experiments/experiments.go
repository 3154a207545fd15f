// Package experiments runs batches of seeded self-play matches between
// the builtin factions and stores the outcomes for offline analysis.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"terra/agent"
	"terra/board"
	"terra/experiments/metrics"
	"terra/faction"
	"terra/game"
	"terra/player"
	"terra/rules"
)

type seat struct {
	name string
	kind faction.Kind
}

var lineup = []seat{
	{"wren", faction.Witches},
	{"edda", faction.Engineers},
	{"nils", faction.Nomads},
}

// RunSelfPlay plays games seeded matches, rotating the opening seat
// between games, and stores match and score tables under results/name.
func RunSelfPlay(name string, cfg rules.Config, games int, seed int64) error {
	rng := rand.New(rand.NewSource(uint64(seed)))
	wins := make(map[string]int)
	var matchRecords []metrics.MatchRecord
	var scoreRecords []metrics.ScoreRecord

	log.Info().Msgf("starting %s experiment: %d games with seed %d...", name, games, seed)

	for i := 0; i < games; i++ {
		matchSeed := rng.Int63()
		opener := i % len(lineup)

		log.Info().Msgf("starting game %d of %d with seed %d...", i+1, games, matchSeed)

		g, err := playMatch(cfg, matchSeed, opener)
		if err != nil {
			return fmt.Errorf("cannot play game %d: %w", i+1, err)
		}

		winner, _ := g.Winner()
		wins[winner]++
		matchRecords = append(matchRecords, metrics.MatchRecord{
			ID:     i + 1,
			Seed:   matchSeed,
			Opener: lineup[opener].name,
			Winner: winner,
			Rounds: g.Round(),
		})
		for _, s := range g.FinalScores() {
			p, _ := g.Player(s.Player)
			scoreRecords = append(scoreRecords, metrics.ScoreRecord{
				Game:    i + 1,
				Faction: string(p.Faction().Kind),
				Score:   s,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner %s", i+1, games, winner)
	}

	log.Info().Msgf("completed %s experiment, wins by player: %v", name, wins)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteMatches(matchRecords); err != nil {
		return err
	}
	log.Info().Msg("stored match records")
	if err := writer.WriteScores(scoreRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored score records under %s", writer.Dir())

	return nil
}

// playMatch runs one full match with the opening seat rotated to
// lineup[opener].
func playMatch(cfg rules.Config, seed int64, opener int) (*game.Game, error) {
	b, err := board.Generate(board.GenConfig{Radius: cfg.Radius, Seed: seed})
	if err != nil {
		return nil, err
	}
	g, err := game.New(cfg, b)
	if err != nil {
		return nil, err
	}

	for i := range lineup {
		s := lineup[(opener+i)%len(lineup)]
		p, err := g.AddPlayer(s.name, s.kind)
		if err != nil {
			return nil, err
		}
		p.SetDecider(player.AcceptAll)
	}
	if err := g.Start(); err != nil {
		return nil, err
	}

	a := agent.New(seed)
	for !g.Finished() {
		p, err := g.Current()
		if err != nil {
			return nil, err
		}
		if err := a.TakeTurn(g, p); err != nil {
			return nil, err
		}
	}
	return g, nil
}
