package boss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/dice"
)

var rarities = []boss.Rarity{
	boss.RarityCommon, boss.RarityUncommon, boss.RarityRare, boss.RarityEpic, boss.RarityLegendary,
}

func TestWeightedPool_SizeMatchesWeights(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		var templates []*boss.Template
		want := 0
		for i := 0; i < n; i++ {
			r := rapid.SampledFrom(rarities).Draw(rt, "rarity")
			templates = append(templates, &boss.Template{ID: int64(i + 1), Rarity: r})
			want += boss.RarityWeights[r]
		}
		pool := boss.WeightedPool(templates)
		if len(pool) != want {
			rt.Fatalf("pool size %d, want %d", len(pool), want)
		}
	})
}

func TestWeightedPool_Composition(t *testing.T) {
	common := &boss.Template{ID: 1, Rarity: boss.RarityCommon}
	legendary := &boss.Template{ID: 2, Rarity: boss.RarityLegendary}
	pool := boss.WeightedPool([]*boss.Template{common, legendary})
	require.Len(t, pool, 51)
	counts := map[int64]int{}
	for _, tm := range pool {
		counts[tm.ID]++
	}
	assert.Equal(t, 50, counts[1])
	assert.Equal(t, 1, counts[2])
}

func TestSelectTemplate(t *testing.T) {
	a := &boss.Template{ID: 1, Level: 5, Rarity: boss.RarityCommon}
	b := &boss.Template{ID: 2, Level: 1, Rarity: boss.RarityLegendary}
	c := &boss.Template{ID: 3, Level: 1, Rarity: boss.RarityRare}
	all := []*boss.Template{a, b, c}

	t.Run("empty", func(t *testing.T) {
		_, err := boss.SelectTemplate(boss.SelectRandom, nil, dice.NewScripted())
		assert.ErrorIs(t, err, boss.ErrNoTemplates)
	})

	t.Run("random indexes uniformly", func(t *testing.T) {
		got, err := boss.SelectTemplate(boss.SelectRandom, all, dice.NewScripted().WithInts(2))
		require.NoError(t, err)
		assert.Same(t, c, got)
	})

	t.Run("sequential takes lowest level then lowest id", func(t *testing.T) {
		got, err := boss.SelectTemplate(boss.SelectSequential, all, dice.NewScripted())
		require.NoError(t, err)
		assert.Same(t, b, got)
	})

	t.Run("weighted draws from pool", func(t *testing.T) {
		// pool order: 50x a, 1x b, 15x c
		got, err := boss.SelectTemplate(boss.SelectWeighted, all, dice.NewScripted().WithInts(50))
		require.NoError(t, err)
		assert.Same(t, b, got)
		got, err = boss.SelectTemplate(boss.SelectWeighted, all, dice.NewScripted().WithInts(65))
		require.NoError(t, err)
		assert.Same(t, c, got)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := boss.SelectTemplate("ROUND_ROBIN", all, dice.NewScripted())
		assert.ErrorIs(t, err, boss.ErrInvalidSettings)
	})
}
