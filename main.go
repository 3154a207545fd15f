package main

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"terra/agent"
	"terra/board"
	"terra/experiments"
	"terra/faction"
	"terra/game"
	"terra/player"
	"terra/rules"
)

func main() {
	seed := flag.Int64("seed", 0, "Seed for board generation and the agents (0 picks one at random)")
	rulesPath := flag.String("rules", "", "Path to a YAML rules file overriding the defaults")
	games := flag.Int("games", 1, "Number of matches; more than one runs a self-play experiment")
	flag.Parse()

	cfg := rules.Default()
	if *rulesPath != "" {
		var err error
		cfg, err = rules.Load(*rulesPath)
		if err != nil {
			log.Fatal().Msgf("cannot load rules from %s: %v", *rulesPath, err)
		}
	}
	if *seed == 0 {
		*seed = rand.Int63()
	}

	if *games > 1 {
		if err := experiments.RunSelfPlay("self_play", cfg, *games, *seed); err != nil {
			log.Fatal().Msgf("self-play experiment failed: %v", err)
		}
		return
	}

	log.Info().Msgf("running demo match with seed %d", *seed)
	g := runMatch(cfg, *seed)

	fmt.Printf("Final scores after round %d:\n", g.Round())
	fmt.Printf("%-10s %7s %10s %8s %6s %9s %6s\n",
		"player", "points", "dwellings", "network", "bonus", "leftover", "total")
	for _, s := range g.FinalScores() {
		fmt.Printf("%-10s %7d %10d %8d %6d %9d %6d\n",
			s.Player, s.Points, s.Dwellings, s.NetworkSize, s.AreaBonus, s.CoinPoints, s.Total)
	}
	winner, _ := g.Winner()
	fmt.Printf("Winner: %s\n", winner)
}

// runMatch plays one full game between three baseline agents and
// returns the finished game.
func runMatch(cfg rules.Config, seed int64) *game.Game {
	b, err := board.Generate(board.GenConfig{Radius: cfg.Radius, Seed: seed})
	if err != nil {
		log.Fatal().Msgf("cannot generate board: %v", err)
	}
	g, err := game.New(cfg, b)
	if err != nil {
		log.Fatal().Msgf("cannot create game: %v", err)
	}

	for _, seat := range []struct {
		name string
		kind faction.Kind
	}{
		{"wren", faction.Witches},
		{"edda", faction.Engineers},
		{"nils", faction.Nomads},
	} {
		p, err := g.AddPlayer(seat.name, seat.kind)
		if err != nil {
			log.Fatal().Msgf("cannot seat %s: %v", seat.name, err)
		}
		p.SetDecider(player.AcceptAll)
	}
	if err := g.Start(); err != nil {
		log.Fatal().Msgf("cannot start game: %v", err)
	}

	a := agent.New(seed)
	for !g.Finished() {
		p, err := g.Current()
		if err != nil {
			log.Fatal().Msgf("cannot read current player: %v", err)
		}
		if err := a.TakeTurn(g, p); err != nil {
			log.Fatal().Msgf("agent %s cannot even pass: %v", p.Name(), err)
		}
	}
	return g
}
