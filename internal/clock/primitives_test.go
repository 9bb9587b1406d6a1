package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRange(t *testing.T) {
	assert.NoError(t, CheckRange("hour", 0, 0, 23))
	assert.NoError(t, CheckRange("hour", 23, 0, 23))

	err := CheckRange("hour", 24, 0, 23)
	require.Error(t, err)
	rangeErr, ok := err.(*ComponentRangeError)
	require.True(t, ok)
	assert.Equal(t, "hour", rangeErr.Name)
	assert.Equal(t, int64(24), rangeErr.Value)
	assert.False(t, rangeErr.Conditional)

	err = CheckRange("minute", -1, 0, 59)
	require.Error(t, err)
}

func TestCheckRangeConditional(t *testing.T) {
	assert.NoError(t, CheckRangeConditional("day", 29, 1, 29))

	err := CheckRangeConditional("day", 30, 1, 29)
	require.Error(t, err)
	rangeErr, ok := err.(*ComponentRangeError)
	require.True(t, ok)
	assert.True(t, rangeErr.Conditional)
	assert.Equal(t, "day must be in the range 1..=29, got 30, given the values of the other components", err.Error())
}

func TestCascade(t *testing.T) {
	tests := []struct {
		name             string
		from, to         int64
		min, max         int64
		wantFrom, wantTo int64
	}{
		{name: "in range untouched", from: 30, to: 5, min: 0, max: 60, wantFrom: 30, wantTo: 5},
		{name: "lower bound untouched", from: 0, to: 5, min: 0, max: 60, wantFrom: 0, wantTo: 5},
		{name: "overflow carries up", from: 60, to: 5, min: 0, max: 60, wantFrom: 0, wantTo: 6},
		{name: "overflow past bound", from: 119, to: 5, min: 0, max: 60, wantFrom: 59, wantTo: 6},
		{name: "underflow borrows", from: -1, to: 5, min: 0, max: 60, wantFrom: 59, wantTo: 4},
		{name: "nanosecond overflow", from: 1_500_000_000, to: 0, min: 0, max: 1_000_000_000, wantFrom: 500_000_000, wantTo: 1},
		{name: "nanosecond underflow", from: -250_000_000, to: 0, min: 0, max: 1_000_000_000, wantFrom: 750_000_000, wantTo: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := tt.from, tt.to
			cascade(&from, tt.min, tt.max, &to)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestDivFloor(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{7, 2, 3},
		{6, 2, 3},
		{-7, 2, -4},
		{-6, 2, -3},
		{7, -2, -4},
		{-7, -2, 3},
		{0, 5, 0},
		{-90, 60, -2},
		{90, 60, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DivFloor(tt.a, tt.b), "DivFloor(%d, %d)", tt.a, tt.b)
	}
}

func TestModFloor(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{7, 2, 1},
		{-7, 2, 1},
		{7, -2, -1},
		{-7, -2, -1},
		{6, 2, 0},
		{-90, 60, 30},
	}

	for _, tt := range tests {
		got := ModFloor(tt.a, tt.b)
		assert.Equal(t, tt.want, got, "ModFloor(%d, %d)", tt.a, tt.b)
		// Identity: a == b*DivFloor(a,b) + ModFloor(a,b).
		assert.Equal(t, tt.a, tt.b*DivFloor(tt.a, tt.b)+got)
	}
}
