package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gridquest/internal/game/dice"
)

func TestCryptoSource_IntnRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 200; i++ {
		v := src.Intn(6)
		if v < 0 || v >= 6 {
			t.Fatalf("Intn(6) = %d, want [0, 6)", v)
		}
	}
}

func TestCryptoSource_Float64Range(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 200; i++ {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %f, want [0, 1)", v)
		}
	}
}

func TestCryptoSource_IntnPanicsOnNonPositive(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
	assert.Panics(t, func() { src.Intn(-3) })
}

func TestIntBetween_Inclusive(t *testing.T) {
	src := dice.NewCryptoSource()
	rapid.Check(t, func(t *rapid.T) {
		min := rapid.IntRange(-50, 50).Draw(t, "min")
		max := rapid.IntRange(min, min+100).Draw(t, "max")
		v := dice.IntBetween(src, min, max)
		if v < min || v > max {
			t.Fatalf("IntBetween(%d, %d) = %d", min, max, v)
		}
	})
}

func TestIntBetween_SingleValue(t *testing.T) {
	src := &dice.Sequence{Ints: []int{99}}
	assert.Equal(t, 7, dice.IntBetween(src, 7, 7))
}

func TestChance_Boundaries(t *testing.T) {
	always := &dice.Sequence{Floats: []float64{0.999999}}
	assert.True(t, dice.Chance(always, 1.0), "p=1 must always succeed")

	zeroDraw := &dice.Sequence{Floats: []float64{0}}
	assert.True(t, dice.Chance(zeroDraw, 0), "p=0 succeeds only on an exact zero draw")

	tiny := &dice.Sequence{Floats: []float64{0.0001}}
	assert.False(t, dice.Chance(tiny, 0))
}

func TestSequence_WrapsAround(t *testing.T) {
	src := &dice.Sequence{Ints: []int{1, 2}, Floats: []float64{0.5}}
	assert.Equal(t, 1, src.Intn(10))
	assert.Equal(t, 2, src.Intn(10))
	assert.Equal(t, 1, src.Intn(10))
	assert.Equal(t, 0.5, src.Float64())
	assert.Equal(t, 0.5, src.Float64())
}

func TestRealBetween_Range(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 100; i++ {
		v := dice.RealBetween(src, 2.0, 5.0)
		if v < 2.0 || v >= 5.0 {
			t.Fatalf("RealBetween(2, 5) = %f", v)
		}
	}
}
