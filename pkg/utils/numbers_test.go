package utils

import (
	"errors"
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessor(t *testing.T) {
	assert.Equal(t, 3, Successor(2))
	assert.Equal(t, 3, Successor1(2))
	assert.Equal(t, 5, Successor2(3))
	assert.Equal(t, 0, Successor(-1))
}

func TestSuccessorVariantsAgree(t *testing.T) {
	f := func(x int) bool {
		return Successor(x) == Successor1(x) && Successor2(x) == Successor(Successor1(x))
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestParity(t *testing.T) {
	tests := []struct {
		x    int
		even bool
	}{
		{0, true},
		{1, false},
		{2, true},
		{-1, false},
		{-2, true},
		{-7, false},
		{math.MaxInt, false},
		{math.MinInt, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.even, IsEven(tt.x), "IsEven(%d)", tt.x)
		assert.Equal(t, !tt.even, IsOdd(tt.x), "IsOdd(%d)", tt.x)
	}
}

func TestIsOddNegatesIsEven(t *testing.T) {
	f := func(x int) bool {
		return IsOdd(x) == !IsEven(x)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestFloorMod(t *testing.T) {
	assert.Equal(t, 1, FloorMod(-1, 2))
	assert.Equal(t, 1, FloorMod(7, 3))
	assert.Equal(t, 2, FloorMod(-7, 3))
	assert.Equal(t, -2, FloorMod(7, -3))
	assert.Equal(t, -1, FloorMod(-7, -3))
	assert.Equal(t, 0, FloorMod(-6, 3))

	f := func(x int, m int8) bool {
		if m == 0 {
			return true
		}
		mm := int(m)
		r := FloorMod(x, mm)
		if r == 0 {
			return true
		}
		return (r > 0) == (mm > 0) && Difference(r, 0) < Difference(mm, 0)
	}
	require.NoError(t, quick.Check(f, nil))

	assert.Panics(t, func() { FloorMod(1, 0) })
}

func TestDifference(t *testing.T) {
	assert.Equal(t, 965, Difference(999, 34))
	assert.Equal(t, 965, Difference(34, 999))
	assert.Equal(t, 0, Difference(5, 5))
	assert.Equal(t, 10, Difference(-5, 5))
}

func TestDifferenceSymmetric(t *testing.T) {
	f := func(x, y int32) bool {
		a, b := int(x), int(y)
		d := Difference(a, b)
		return d == Difference(b, a) && d >= 0
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestSignum(t *testing.T) {
	assert.Equal(t, -1, Signum(-26))
	assert.Equal(t, 0, Signum(0))
	assert.Equal(t, 1, Signum(5))
	assert.Equal(t, -1, Signum(math.MinInt))
	assert.Equal(t, 1, Signum(math.MaxInt))
}

func TestTurns(t *testing.T) {
	got, err := Turns(10.0, 50.0, 5.0)
	require.NoError(t, err)
	assert.InDelta(t, 40000/(10*math.Pi), got, 1e-9)
	assert.InDelta(t, 1273.2395, got, 1e-4)

	got, err = Turns(50, 10, 5)
	require.NoError(t, err)
	assert.Less(t, got, 0.0)
}

func TestTurnsClosedForm(t *testing.T) {
	f := func(start, end float32, r uint16) bool {
		radius := float64(r) + 0.5
		got, err := Turns(float64(start), float64(end), radius)
		if err != nil {
			return false
		}
		want := (float64(end) - float64(start)) * 1000 / (2 * math.Pi * radius)
		return got == want
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestTurnsInvalidRadius(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Turns(10, 50, r)
		assert.True(t, errors.Is(err, ErrInvalidRadius), "radius %v", r)
	}
}

func TestNumbersArePure(t *testing.T) {
	f := func(x, y int) bool {
		return Successor(x) == Successor(x) &&
			IsEven(x) == IsEven(x) &&
			IsOdd(x) == IsOdd(x) &&
			Difference(x, y) == Difference(x, y) &&
			Signum(x) == Signum(x)
	}
	require.NoError(t, quick.Check(f, nil))

	g := func(start, end float64, r uint8) bool {
		radius := float64(r) + 1
		a, errA := Turns(start, end, radius)
		b, errB := Turns(start, end, radius)
		return errA == nil && errB == nil && (a == b || (math.IsNaN(a) && math.IsNaN(b)))
	}
	require.NoError(t, quick.Check(g, nil))
}

func TestIntegerOverflowWraps(t *testing.T) {
	assert.Equal(t, math.MinInt, Successor(math.MaxInt))
	assert.Equal(t, math.MinInt+1, Successor2(math.MaxInt))
}
