package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Cost bundles the resource denominations an action can charge. Spades
// are a virtual denomination: players cover them with banked spade credit
// first and buy the rest with workers at the exchange rate.
type Cost struct {
	Workers int `yaml:"workers"`
	Coins   int `yaml:"coins"`
	Power   int `yaml:"power"`
	Spades  int `yaml:"spades"`
}

// Add returns the componentwise sum of c and o.
func (c Cost) Add(o Cost) Cost {
	return Cost{
		Workers: c.Workers + o.Workers,
		Coins:   c.Coins + o.Coins,
		Power:   c.Power + o.Power,
		Spades:  c.Spades + o.Spades,
	}
}

// IsZero reports whether the cost charges nothing.
func (c Cost) IsZero() bool {
	return c == Cost{}
}

func (c Cost) String() string {
	if c.IsZero() {
		return "free"
	}
	var parts []string
	for _, p := range []struct {
		n    int
		unit string
	}{
		{c.Workers, "w"},
		{c.Coins, "c"},
		{c.Power, "pw"},
		{c.Spades, "sp"},
	} {
		if p.n != 0 {
			parts = append(parts, fmt.Sprintf("%d%s", p.n, p.unit))
		}
	}
	return strings.Join(parts, " ")
}

// ConversionKind names an entry on the power conversion menu.
type ConversionKind string

const (
	ConvertSpades  ConversionKind = "spades"
	ConvertWorkers ConversionKind = "workers"
)

// Conversion is one power conversion: pay Power, receive the yields.
type Conversion struct {
	Power   int `yaml:"power"`
	Spades  int `yaml:"spades"`
	Workers int `yaml:"workers"`
}

// Config carries every tunable number of the ruleset. Zero values are not
// meaningful; start from Default and override, or use Load.
type Config struct {
	// Board
	Radius int `yaml:"radius"`

	// Power ledger bounds per player.
	PowerStart   int `yaml:"power_start"`
	PowerCeiling int `yaml:"power_ceiling"`

	// Workers bought per missing spade.
	SpadeExchangeRate int `yaml:"spade_exchange_rate"`

	DwellingCost Cost `yaml:"dwelling_cost"`

	Conversions map[ConversionKind]Conversion `yaml:"conversions"`

	// Power offered per adjacent dwelling when a rival builds.
	DwellingPowerValue int `yaml:"dwelling_power_value"`

	// Scoring
	DwellingScore  int   `yaml:"dwelling_score"`
	AreaBonuses    []int `yaml:"area_bonuses"`
	CoinsPerPoint  int   `yaml:"coins_per_point"`
	StartingPoints int   `yaml:"starting_points"`

	// Match flow
	IncomePeriod             int `yaml:"income_period"`
	IncomeWorkersPerDwelling int `yaml:"income_workers_per_dwelling"`
	MaxRounds                int `yaml:"max_rounds"`
}

// Default returns the standard ruleset.
func Default() Config {
	return Config{
		Radius:            5,
		PowerStart:        12,
		PowerCeiling:      12,
		SpadeExchangeRate: 3,
		DwellingCost:      Cost{Workers: 1, Coins: 2},
		Conversions: map[ConversionKind]Conversion{
			ConvertSpades:  {Power: 4, Spades: 2},
			ConvertWorkers: {Power: 3, Workers: 2},
		},
		DwellingPowerValue:       1,
		DwellingScore:            2,
		AreaBonuses:              []int{18, 12, 6},
		CoinsPerPoint:            3,
		StartingPoints:           20,
		IncomePeriod:             3,
		IncomeWorkersPerDwelling: 1,
		MaxRounds:                10,
	}
}

// Load reads a YAML tuning file over the defaults, so a file only needs
// the values it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("rules config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("rules config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run on.
func (c Config) Validate() error {
	switch {
	case c.Radius < 0:
		return fmt.Errorf("cannot use config: negative radius %d", c.Radius)
	case c.PowerStart < 0 || c.PowerCeiling < 0 || c.PowerStart > c.PowerCeiling:
		return fmt.Errorf("cannot use config: power start %d exceeds ceiling %d", c.PowerStart, c.PowerCeiling)
	case c.SpadeExchangeRate < 1:
		return fmt.Errorf("cannot use config: spade exchange rate %d below one", c.SpadeExchangeRate)
	case len(c.Conversions) == 0:
		return fmt.Errorf("cannot use config: empty conversion menu")
	case c.IncomePeriod < 1:
		return fmt.Errorf("cannot use config: income period %d below one", c.IncomePeriod)
	case c.MaxRounds < 1:
		return fmt.Errorf("cannot use config: max rounds %d below one", c.MaxRounds)
	case c.CoinsPerPoint < 1:
		return fmt.Errorf("cannot use config: coins per point %d below one", c.CoinsPerPoint)
	}
	for kind, conv := range c.Conversions {
		if conv.Power < 1 {
			return fmt.Errorf("cannot use config: conversion %q costs no power", kind)
		}
	}
	return nil
}
