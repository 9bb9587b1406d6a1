package clock

import "time"

// DateAdjustment reports whether a sub-day arithmetic operation crossed
// midnight, and in which direction. The calendar layer that owns the date is
// the sole consumer; Time itself only wraps.
type DateAdjustment int

const (
	// NoAdjustment means the result stayed within the same day.
	NoAdjustment DateAdjustment = iota
	// NextDay means the operation wrapped forward past midnight.
	NextDay
	// PreviousDay means the operation wrapped backward past midnight.
	PreviousDay
)

func (a DateAdjustment) String() string {
	switch a {
	case NextDay:
		return "next day"
	case PreviousDay:
		return "previous day"
	default:
		return "same day"
	}
}

// AdjustingAdd adds the sub-day part of d to t, wrapping across midnight and
// reporting the crossing.
//
// The duration is decomposed into per-unit contributions modulo each unit's
// span (the same-sign invariant on Duration keeps the components
// sign-consistent for negative durations), the contributions are added
// field-wise, and carries then cascade from nanoseconds upward. An hour
// outside [0,24) wraps back into range instead of carrying into a day unit.
func (t Time) AdjustingAdd(d Duration) (DateAdjustment, Time) {
	nanoseconds := int64(t.nanosecond) + int64(d.SubsecNanoseconds())
	seconds := int64(t.second) + d.WholeSeconds()%secondsPerMinute
	minutes := int64(t.minute) + d.WholeMinutes()%minutesPerHour
	hours := int64(t.hour) + d.WholeHours()%hoursPerDay

	adjustment := NoAdjustment
	cascade(&nanoseconds, 0, nanosPerSecond, &seconds)
	cascade(&seconds, 0, secondsPerMinute, &minutes)
	cascade(&minutes, 0, minutesPerHour, &hours)
	if hours >= hoursPerDay {
		hours -= hoursPerDay
		adjustment = NextDay
	} else if hours < 0 {
		hours += hoursPerDay
		adjustment = PreviousDay
	}
	return adjustment, unchecked(hours, minutes, seconds, nanoseconds)
}

// AdjustingSub subtracts the sub-day part of d from t, wrapping across
// midnight and reporting the crossing.
func (t Time) AdjustingSub(d Duration) (DateAdjustment, Time) {
	nanoseconds := int64(t.nanosecond) - int64(d.SubsecNanoseconds())
	seconds := int64(t.second) - d.WholeSeconds()%secondsPerMinute
	minutes := int64(t.minute) - d.WholeMinutes()%minutesPerHour
	hours := int64(t.hour) - d.WholeHours()%hoursPerDay

	adjustment := NoAdjustment
	cascade(&nanoseconds, 0, nanosPerSecond, &seconds)
	cascade(&seconds, 0, secondsPerMinute, &minutes)
	cascade(&minutes, 0, minutesPerHour, &hours)
	if hours >= hoursPerDay {
		hours -= hoursPerDay
		adjustment = NextDay
	} else if hours < 0 {
		hours += hoursPerDay
		adjustment = PreviousDay
	}
	return adjustment, unchecked(hours, minutes, seconds, nanoseconds)
}

// AdjustingAddStd is AdjustingAdd for a standard library duration. Go's
// time.Duration is signed, so the crossing is reported with the same
// tri-state as the Duration variant.
func (t Time) AdjustingAddStd(d time.Duration) (DateAdjustment, Time) {
	return t.AdjustingAdd(DurationFromStd(d))
}

// AdjustingSubStd is AdjustingSub for a standard library duration.
func (t Time) AdjustingSubStd(d time.Duration) (DateAdjustment, Time) {
	return t.AdjustingSub(DurationFromStd(d))
}

// Add adds the sub-day part of d to t, wrapping across midnight.
func (t Time) Add(d Duration) Time {
	_, out := t.AdjustingAdd(d)
	return out
}

// Sub subtracts the sub-day part of d from t, wrapping across midnight.
func (t Time) Sub(d Duration) Time {
	_, out := t.AdjustingSub(d)
	return out
}

// AddStd adds a standard library duration to t, wrapping across midnight.
func (t Time) AddStd(d time.Duration) Time { return t.Add(DurationFromStd(d)) }

// SubStd subtracts a standard library duration from t, wrapping across
// midnight.
func (t Time) SubStd(d time.Duration) Time { return t.Sub(DurationFromStd(d)) }

// Since returns the duration t - u, assuming both times fall on the same
// calendar day: no wraparound across midnight is inferred, so
// Midnight.Since(23:00) is -23 hours, not +1 hour.
func (t Time) Since(u Time) Duration {
	hourDiff := int64(t.hour) - int64(u.hour)
	minuteDiff := int64(t.minute) - int64(u.minute)
	secondDiff := int64(t.second) - int64(u.second)
	nanosecondDiff := int64(t.nanosecond) - int64(u.nanosecond)

	// The whole-unit deltas fold directly into seconds; only the nanosecond
	// remainder needs its sign reconciled against the total.
	seconds := hourDiff*secondsPerHour + minuteDiff*secondsPerMinute + secondDiff
	switch {
	case seconds > 0 && nanosecondDiff < 0:
		seconds--
		nanosecondDiff += nanosPerSecond
	case seconds < 0 && nanosecondDiff > 0:
		seconds++
		nanosecondDiff -= nanosPerSecond
	}
	return Duration{seconds: seconds, nanoseconds: int32(nanosecondDiff)}
}
