package calc_test

import (
	"testing"
	"time"

	"daytime/internal/calc"
	"daytime/internal/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Times and durations carry unexported fields; == is the meaningful
// comparison for both.
var resultCmp = cmp.Options{
	cmp.Comparer(func(a, b clock.Time) bool { return a == b }),
	cmp.Comparer(func(a, b clock.Duration) bool { return a == b }),
}

func mustTime(t *testing.T, hour, minute, second, nanosecond int) clock.Time {
	t.Helper()
	tm, err := clock.FromHMSNano(hour, minute, second, nanosecond)
	require.NoError(t, err)
	return tm
}

func TestEvaluate(t *testing.T) {
	eval := calc.New(calc.RealClock{})

	tests := []struct {
		name string
		expr string
		want calc.Result
	}{
		{
			name: "bare time",
			expr: "12:34:56",
			want: calc.Result{Kind: calc.TimeResult, Time: mustTime(t, 12, 34, 56, 0)},
		},
		{
			name: "hour and minute only",
			expr: "9:05",
			want: calc.Result{Kind: calc.TimeResult, Time: mustTime(t, 9, 5, 0, 0)},
		},
		{
			name: "fractional seconds",
			expr: "9:05:07.5",
			want: calc.Result{Kind: calc.TimeResult, Time: mustTime(t, 9, 5, 7, 500_000_000)},
		},
		{
			name: "time plus duration",
			expr: "12:00 + 2h",
			want: calc.Result{Kind: calc.TimeResult, Time: mustTime(t, 14, 0, 0, 0)},
		},
		{
			name: "wrap past midnight",
			expr: "23:59:59 + 2s",
			want: calc.Result{Kind: calc.TimeResult, Time: mustTime(t, 0, 0, 1, 0), Adjustment: clock.NextDay},
		},
		{
			name: "negative duration wraps backward",
			expr: "0:01 + -90s",
			want: calc.Result{Kind: calc.TimeResult, Time: mustTime(t, 23, 59, 30, 0), Adjustment: clock.PreviousDay},
		},
		{
			name: "time minus duration",
			expr: "0:00:01 - 2s",
			want: calc.Result{Kind: calc.TimeResult, Time: mustTime(t, 23, 59, 59, 0), Adjustment: clock.PreviousDay},
		},
		{
			name: "time minus time",
			expr: "17:00 - 8:30",
			want: calc.Result{Kind: calc.DurationResult, Duration: clock.Minutes(510)},
		},
		{
			name: "time minus later time",
			expr: "0:00 - 23:00",
			want: calc.Result{Kind: calc.DurationResult, Duration: clock.Hours(-23)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval.Evaluate(tt.expr)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, resultCmp); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluate_Now(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 13, 45, 30, 0, time.UTC)
	mock := calc.NewMockClock(fixed)
	eval := calc.New(mock)

	got, err := eval.Evaluate("now")
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 13, 45, 30, 0), got.Time)

	got, err = eval.Evaluate("now + 1h")
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 14, 45, 30, 0), got.Time)
	assert.Equal(t, clock.NoAdjustment, got.Adjustment)

	mock.Advance(10 * time.Hour) // 23:45:30
	got, err = eval.Evaluate("now + 1h")
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, 0, 45, 30, 0), got.Time)
	assert.Equal(t, clock.NextDay, got.Adjustment)
}

func TestEvaluate_Errors(t *testing.T) {
	eval := calc.New(calc.RealClock{})

	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{name: "empty", expr: "", wantErr: calc.ErrEmptyExpression},
		{name: "blank", expr: "   ", wantErr: calc.ErrEmptyExpression},
		{name: "two tokens", expr: "12:00 +", wantErr: calc.ErrBadExpression},
		{name: "unknown operator", expr: "12:00 * 2h", wantErr: calc.ErrBadExpression},
		{name: "adding two times", expr: "12:00 + 13:00", wantErr: calc.ErrAddTwoTimes},
		{name: "duration on the left", expr: "2h + 12:00", wantErr: calc.ErrNotATime},
		{name: "bare duration", expr: "90s", wantErr: calc.ErrNotATime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eval.Evaluate(tt.expr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEvaluate_InvalidOperands(t *testing.T) {
	eval := calc.New(calc.RealClock{})

	_, err := eval.Evaluate("25:00:00")
	require.Error(t, err)
	var rangeErr *clock.ComponentRangeError
	assert.ErrorAs(t, err, &rangeErr)

	_, err = eval.Evaluate("12:00 + bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "12:00:00.0", calc.Result{Kind: calc.TimeResult, Time: mustTime(t, 12, 0, 0, 0)}.String())
	assert.Equal(
		t,
		"0:00:01.0 (next day)",
		calc.Result{Kind: calc.TimeResult, Time: mustTime(t, 0, 0, 1, 0), Adjustment: clock.NextDay}.String(),
	)
	assert.Equal(t, "-23h0m0s", calc.Result{Kind: calc.DurationResult, Duration: clock.Hours(-23)}.String())
}
