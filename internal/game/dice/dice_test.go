package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/idlerealm/worldboss/internal/game/dice"
)

func TestCryptoSource_IntnInRange(t *testing.T) {
	src := dice.NewCryptoSource()
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(rt, "n")
		v := src.Intn(n)
		assert.GreaterOrEqual(rt, v, 0)
		assert.Less(rt, v, n)
	})
}

func TestCryptoSource_Float64InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 500; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestCryptoSource_PanicsOnNonPositive(t *testing.T) {
	assert.PanicsWithValue(t, "dice: Intn called with n <= 0", func() {
		dice.NewCryptoSource().Intn(0)
	})
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestBetween_Property(t *testing.T) {
	src := dice.NewSeededSource(7)
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-50, 50).Draw(rt, "lo")
		hi := rapid.IntRange(lo, lo+100).Draw(rt, "hi")
		v := dice.Between(src, lo, hi)
		assert.GreaterOrEqual(rt, v, lo)
		assert.LessOrEqual(rt, v, hi)
	})
}

func TestBetween_Scripted(t *testing.T) {
	src := dice.NewScripted().WithInts(0, 2, 99)
	assert.Equal(t, 1, dice.Between(src, 1, 3))
	assert.Equal(t, 3, dice.Between(src, 1, 3))
	assert.Equal(t, 1, dice.Between(src, 1, 3), "99 mod 3 == 0")
}

func TestUniform_Scripted(t *testing.T) {
	src := dice.NewScripted(0, 0.5)
	assert.InDelta(t, 0.8, dice.Uniform(src, 0.8, 1.2), 1e-9)
	assert.InDelta(t, 1.0, dice.Uniform(src, 0.8, 1.2), 1e-9)
}

func TestChance_Boundaries(t *testing.T) {
	src := dice.NewScripted(0)
	assert.False(t, dice.Chance(src, 0), "zero probability never succeeds even on a zero draw")
	assert.True(t, dice.Chance(dice.NewScripted(0.999999), 1))
	assert.True(t, dice.Chance(dice.NewScripted(0.25), 0.25), "draw equal to p succeeds")
	assert.False(t, dice.Chance(dice.NewScripted(0.26), 0.25))
}

func TestScripted_RepeatsLastValue(t *testing.T) {
	src := dice.NewScripted(0.1, 0.9)
	assert.Equal(t, 0.1, src.Float64())
	assert.Equal(t, 0.9, src.Float64())
	assert.Equal(t, 0.9, src.Float64())
	assert.Equal(t, 0, dice.NewScripted().Intn(5))
}

func TestLoggedSource_Delegates(t *testing.T) {
	src := dice.NewLoggedSource(dice.NewScripted(0.3).WithInts(4), zaptest.NewLogger(t))
	assert.Equal(t, 0.3, src.Float64())
	assert.Equal(t, 4, src.Intn(10))
}
