package faction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"terra/board"
	"terra/rules"
)

func TestBuiltins(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		kind    Kind
		home    board.Terrain
		workers int
		coins   int
	}{
		{Witches, board.Forest, 3, 15},
		{Engineers, board.Mountains, 4, 12},
		{Nomads, board.Desert, 2, 18},
	}
	for _, tc := range cases {
		f, err := r.Lookup(tc.kind)
		require.NoError(t, err)
		require.Equal(t, tc.home, f.Home, "%s should live on %v", tc.kind, tc.home)
		require.Equal(t, tc.workers, f.Workers)
		require.Equal(t, tc.coins, f.Coins)
		require.NotNil(t, f.Ability)
	}

	require.Equal(t, []Kind{Engineers, Nomads, Witches}, r.Kinds(), "Kinds should be sorted")
}

func TestAbilities(t *testing.T) {
	r := NewRegistry()
	base := rules.Cost{Workers: 1, Coins: 2}

	t.Run("witches modify nothing", func(t *testing.T) {
		f, _ := r.Lookup(Witches)
		require.Equal(t, base, f.Ability.ModifyBuildCost(base))
		require.Equal(t, 1, f.Ability.ModifyTransformCost(1))
	})

	t.Run("engineers build at half cost rounded down", func(t *testing.T) {
		f, _ := r.Lookup(Engineers)
		require.Equal(t, rules.Cost{Workers: 0, Coins: 1}, f.Ability.ModifyBuildCost(base),
			"1w 2c should halve to 0w 1c")
		require.Equal(t, rules.Cost{Workers: 2, Coins: 3}, f.Ability.ModifyBuildCost(rules.Cost{Workers: 4, Coins: 6}))
		require.Equal(t, 1, f.Ability.ModifyTransformCost(1), "Transform cost should pass through")
	})

	t.Run("nomads reshape one spade cheaper with a floor of one", func(t *testing.T) {
		f, _ := r.Lookup(Nomads)
		require.Equal(t, 1, f.Ability.ModifyTransformCost(1), "The discount should never drop below one spade")
		require.Equal(t, 1, f.Ability.ModifyTransformCost(2))
		require.Equal(t, 2, f.Ability.ModifyTransformCost(3))
		require.Equal(t, base, f.Ability.ModifyBuildCost(base), "Build cost should pass through")
	})
}

func TestRegister(t *testing.T) {
	r := NewRegistry()

	t.Run("custom faction", func(t *testing.T) {
		err := r.Register(Faction{
			Kind:    "giants",
			Home:    board.Mountains,
			Workers: 3,
			Coins:   10,
			Ability: baseAbility{},
		})
		require.NoError(t, err)
		f, err := r.Lookup("giants")
		require.NoError(t, err)
		require.Equal(t, board.Mountains, f.Home)
	})

	t.Run("rejects duplicates and bad entries", func(t *testing.T) {
		require.Error(t, r.Register(Faction{Kind: Witches, Ability: baseAbility{}}), "Duplicate kind should fail")
		require.Error(t, r.Register(Faction{Kind: "", Ability: baseAbility{}}), "Empty kind should fail")
		require.Error(t, r.Register(Faction{Kind: "elves"}), "Nil ability should fail")
		require.Error(t, r.Register(Faction{Kind: "dwarves", Workers: -1, Ability: baseAbility{}}), "Negative stock should fail")
	})

	t.Run("unknown kind lookup fails", func(t *testing.T) {
		_, err := r.Lookup("merfolk")
		require.Error(t, err)
	})
}
