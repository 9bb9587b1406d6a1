package clock

import (
	"math"
	"time"
)

// Duration is a signed span of elapsed time, stored as whole seconds plus a
// sub-second nanosecond remainder.
//
// Invariant: seconds and nanoseconds always carry the same sign (or the
// remainder is zero). Every constructor reconciles the two components, which
// is what makes whole-unit decomposition of negative durations behave
// predictably in the Time arithmetic below.
type Duration struct {
	seconds     int64
	nanoseconds int32
}

// ZeroDuration is the Duration spanning no time. It is also the zero value.
var ZeroDuration = Duration{}

// NewDuration creates a Duration from seconds and nanoseconds. Nanoseconds
// at or beyond ±1e9 wrap into seconds, and the signs of the two components
// are reconciled.
func NewDuration(seconds, nanoseconds int64) Duration {
	seconds += nanoseconds / nanosPerSecond
	nanoseconds %= nanosPerSecond
	if seconds > 0 && nanoseconds < 0 {
		seconds--
		nanoseconds += nanosPerSecond
	} else if seconds < 0 && nanoseconds > 0 {
		seconds++
		nanoseconds -= nanosPerSecond
	}
	return Duration{seconds: seconds, nanoseconds: int32(nanoseconds)}
}

// Hours creates a Duration spanning the given number of hours.
func Hours(hours int64) Duration { return Duration{seconds: hours * secondsPerHour} }

// Minutes creates a Duration spanning the given number of minutes.
func Minutes(minutes int64) Duration { return Duration{seconds: minutes * secondsPerMinute} }

// Seconds creates a Duration spanning the given number of seconds.
func Seconds(seconds int64) Duration { return Duration{seconds: seconds} }

// Milliseconds creates a Duration spanning the given number of milliseconds.
func Milliseconds(milliseconds int64) Duration {
	return Duration{
		seconds:     milliseconds / millisPerSecond,
		nanoseconds: int32(milliseconds % millisPerSecond * nanosPerMilli),
	}
}

// Microseconds creates a Duration spanning the given number of microseconds.
func Microseconds(microseconds int64) Duration {
	return Duration{
		seconds:     microseconds / microsPerSecond,
		nanoseconds: int32(microseconds % microsPerSecond * nanosPerMicro),
	}
}

// Nanoseconds creates a Duration spanning the given number of nanoseconds.
func Nanoseconds(nanoseconds int64) Duration {
	return Duration{
		seconds:     nanoseconds / nanosPerSecond,
		nanoseconds: int32(nanoseconds % nanosPerSecond),
	}
}

// DurationFromStd converts a standard library duration.
func DurationFromStd(d time.Duration) Duration { return Nanoseconds(int64(d)) }

// WholeHours returns the number of whole hours, truncated toward zero.
func (d Duration) WholeHours() int64 { return d.seconds / secondsPerHour }

// WholeMinutes returns the number of whole minutes, truncated toward zero.
func (d Duration) WholeMinutes() int64 { return d.seconds / secondsPerMinute }

// WholeSeconds returns the number of whole seconds.
func (d Duration) WholeSeconds() int64 { return d.seconds }

// SubsecMilliseconds returns the sub-second part in milliseconds, truncated.
func (d Duration) SubsecMilliseconds() int32 { return d.nanoseconds / nanosPerMilli }

// SubsecMicroseconds returns the sub-second part in microseconds, truncated.
func (d Duration) SubsecMicroseconds() int32 { return d.nanoseconds / nanosPerMicro }

// SubsecNanoseconds returns the sub-second part in nanoseconds. The sign
// matches WholeSeconds unless the value is zero.
func (d Duration) SubsecNanoseconds() int32 { return d.nanoseconds }

// IsZero reports whether the duration spans no time.
func (d Duration) IsZero() bool { return d.seconds == 0 && d.nanoseconds == 0 }

// IsNegative reports whether the duration is negative.
func (d Duration) IsNegative() bool { return d.seconds < 0 || d.nanoseconds < 0 }

// IsPositive reports whether the duration is positive.
func (d Duration) IsPositive() bool { return d.seconds > 0 || d.nanoseconds > 0 }

// Neg returns the duration with its sign flipped.
func (d Duration) Neg() Duration {
	return Duration{seconds: -d.seconds, nanoseconds: -d.nanoseconds}
}

// Abs returns the absolute value of the duration.
func (d Duration) Abs() Duration {
	if d.IsNegative() {
		return d.Neg()
	}
	return d
}

// Add returns the sum of two durations.
func (d Duration) Add(other Duration) Duration {
	return NewDuration(d.seconds+other.seconds, int64(d.nanoseconds)+int64(other.nanoseconds))
}

// Sub returns the difference of two durations.
func (d Duration) Sub(other Duration) Duration { return d.Add(other.Neg()) }

// Std converts the duration to a standard library time.Duration, saturating
// at the int64 nanosecond bounds for spans too large to represent.
func (d Duration) Std() time.Duration {
	if d.seconds >= math.MaxInt64/nanosPerSecond {
		return time.Duration(math.MaxInt64)
	}
	if d.seconds <= math.MinInt64/nanosPerSecond {
		return time.Duration(math.MinInt64)
	}
	return time.Duration(d.seconds*nanosPerSecond + int64(d.nanoseconds))
}

// String renders the duration in the standard library's syntax, such as
// "1h30m0.5s" or "-90s". Spans beyond the time.Duration range saturate.
func (d Duration) String() string { return d.Std().String() }
