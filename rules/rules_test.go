package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate(), "Default config should validate")
	require.Equal(t, 5, cfg.Radius)
	require.Equal(t, Cost{Workers: 1, Coins: 2}, cfg.DwellingCost)
	require.Contains(t, cfg.Conversions, ConvertSpades)
	require.Contains(t, cfg.Conversions, ConvertWorkers)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	err := os.WriteFile(path, []byte("radius: 3\nmax_rounds: 4\n"), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Radius, "File value should override the default")
	require.Equal(t, 4, cfg.MaxRounds, "File value should override the default")
	require.Equal(t, 12, cfg.PowerCeiling, "Untouched values should keep their defaults")
	require.Equal(t, 3, cfg.SpadeExchangeRate, "Untouched values should keep their defaults")
}

func TestLoadRejectsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	err := os.WriteFile(path, []byte("spade_exchange_rate: 0\n"), 0o644)
	require.NoError(t, err)

	_, err = Load(path)
	require.Error(t, err, "A zero exchange rate should fail validation")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative radius", func(c *Config) { c.Radius = -1 }},
		{"start above ceiling", func(c *Config) { c.PowerStart = 13 }},
		{"empty conversion menu", func(c *Config) { c.Conversions = nil }},
		{"free conversion", func(c *Config) {
			c.Conversions = map[ConversionKind]Conversion{ConvertSpades: {Power: 0, Spades: 1}}
		}},
		{"zero income period", func(c *Config) { c.IncomePeriod = 0 }},
		{"zero max rounds", func(c *Config) { c.MaxRounds = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate(), "Config with %s should not validate", tc.name)
		})
	}
}

func TestCost(t *testing.T) {
	require.True(t, Cost{}.IsZero())
	require.False(t, Cost{Coins: 1}.IsZero())

	sum := Cost{Workers: 1, Coins: 2}.Add(Cost{Workers: 2, Spades: 1})
	require.Equal(t, Cost{Workers: 3, Coins: 2, Spades: 1}, sum)

	require.Equal(t, "free", Cost{}.String())
	require.Equal(t, "1w 2c", Cost{Workers: 1, Coins: 2}.String())
	require.Equal(t, "4pw 2sp", Cost{Power: 4, Spades: 2}.String())
}
