package clock

import "time"

// Units per next-larger unit. Every minute is assumed to have exactly 60
// seconds; leap seconds (positive or negative) are not handled.
const (
	hoursPerDay      = 24
	minutesPerHour   = 60
	secondsPerMinute = 60
	secondsPerHour   = secondsPerMinute * minutesPerHour
	millisPerSecond  = 1_000
	microsPerSecond  = 1_000_000
	nanosPerSecond   = 1_000_000_000
	nanosPerMilli    = nanosPerSecond / millisPerSecond
	nanosPerMicro    = nanosPerSecond / microsPerSecond
)

// Time is a clock time within a day, with nanosecond precision.
//
// Time is a pure value type: every field is range-checked at construction
// and every "mutating" operation returns a new value. Two Times compare with
// == and are assumed to fall on the same calendar date.
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

// Midnight is the Time at exactly 00:00:00.0, the smallest representable value.
var Midnight = Time{}

// MaxTime is the largest representable value, 23:59:59.999999999.
var MaxTime = Time{23, 59, 59, nanosPerSecond - 1}

// unchecked assembles a Time from components already proven to be in range.
// Every arithmetic path below funnels through here after carry propagation.
func unchecked(hour, minute, second, nanosecond int64) Time {
	return Time{uint8(hour), uint8(minute), uint8(second), uint32(nanosecond)}
}

// checkHMS validates the three whole components in the fixed order
// hour, minute, second; the first violation short-circuits the rest.
func checkHMS(hour, minute, second int) error {
	if err := CheckRange("hour", int64(hour), 0, hoursPerDay-1); err != nil {
		return err
	}
	if err := CheckRange("minute", int64(minute), 0, minutesPerHour-1); err != nil {
		return err
	}
	return CheckRange("second", int64(second), 0, secondsPerMinute-1)
}

// FromHMS creates a Time from the hour, minute, and second.
func FromHMS(hour, minute, second int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	return unchecked(int64(hour), int64(minute), int64(second), 0), nil
}

// FromHMSMilli creates a Time from the hour, minute, second, and millisecond.
func FromHMSMilli(hour, minute, second, millisecond int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if err := CheckRange("millisecond", int64(millisecond), 0, millisPerSecond-1); err != nil {
		return Time{}, err
	}
	return unchecked(int64(hour), int64(minute), int64(second), int64(millisecond)*nanosPerMilli), nil
}

// FromHMSMicro creates a Time from the hour, minute, second, and microsecond.
func FromHMSMicro(hour, minute, second, microsecond int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if err := CheckRange("microsecond", int64(microsecond), 0, microsPerSecond-1); err != nil {
		return Time{}, err
	}
	return unchecked(int64(hour), int64(minute), int64(second), int64(microsecond)*nanosPerMicro), nil
}

// FromHMSNano creates a Time from the hour, minute, second, and nanosecond.
func FromHMSNano(hour, minute, second, nanosecond int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if err := CheckRange("nanosecond", int64(nanosecond), 0, nanosPerSecond-1); err != nil {
		return Time{}, err
	}
	return unchecked(int64(hour), int64(minute), int64(second), int64(nanosecond)), nil
}

// FromStdTime projects the wall-clock reading of a standard library instant
// onto a Time, discarding the date and location.
func FromStdTime(st time.Time) Time {
	h, m, s := st.Clock()
	return unchecked(int64(h), int64(m), int64(s), int64(st.Nanosecond()))
}

// Hour returns the clock hour, in the range 0..24.
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute within the hour, in the range 0..60.
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second within the minute, in the range 0..60.
func (t Time) Second() int { return int(t.second) }

// Millisecond returns the milliseconds within the second, truncated.
func (t Time) Millisecond() int { return int(t.nanosecond / nanosPerMilli) }

// Microsecond returns the microseconds within the second, truncated.
func (t Time) Microsecond() int { return int(t.nanosecond / nanosPerMicro) }

// Nanosecond returns the nanoseconds within the second.
func (t Time) Nanosecond() int { return int(t.nanosecond) }

// AsHMS returns the hour, minute, and second.
func (t Time) AsHMS() (hour, minute, second int) {
	return int(t.hour), int(t.minute), int(t.second)
}

// AsHMSMilli returns the hour, minute, second, and millisecond.
func (t Time) AsHMSMilli() (hour, minute, second, millisecond int) {
	return int(t.hour), int(t.minute), int(t.second), int(t.nanosecond / nanosPerMilli)
}

// AsHMSMicro returns the hour, minute, second, and microsecond.
func (t Time) AsHMSMicro() (hour, minute, second, microsecond int) {
	return int(t.hour), int(t.minute), int(t.second), int(t.nanosecond / nanosPerMicro)
}

// AsHMSNano returns the hour, minute, second, and nanosecond.
func (t Time) AsHMSNano() (hour, minute, second, nanosecond int) {
	return int(t.hour), int(t.minute), int(t.second), int(t.nanosecond)
}

// ReplaceHour returns a copy of t with the clock hour replaced.
func (t Time) ReplaceHour(hour int) (Time, error) {
	if err := CheckRange("hour", int64(hour), 0, hoursPerDay-1); err != nil {
		return Time{}, err
	}
	t.hour = uint8(hour)
	return t, nil
}

// ReplaceMinute returns a copy of t with the minute replaced.
func (t Time) ReplaceMinute(minute int) (Time, error) {
	if err := CheckRange("minute", int64(minute), 0, minutesPerHour-1); err != nil {
		return Time{}, err
	}
	t.minute = uint8(minute)
	return t, nil
}

// ReplaceSecond returns a copy of t with the second replaced.
func (t Time) ReplaceSecond(second int) (Time, error) {
	if err := CheckRange("second", int64(second), 0, secondsPerMinute-1); err != nil {
		return Time{}, err
	}
	t.second = uint8(second)
	return t, nil
}

// ReplaceMillisecond returns a copy of t with the whole sub-second part
// replaced by the given millisecond value.
func (t Time) ReplaceMillisecond(millisecond int) (Time, error) {
	if err := CheckRange("millisecond", int64(millisecond), 0, millisPerSecond-1); err != nil {
		return Time{}, err
	}
	t.nanosecond = uint32(millisecond) * nanosPerMilli
	return t, nil
}

// ReplaceMicrosecond returns a copy of t with the whole sub-second part
// replaced by the given microsecond value.
func (t Time) ReplaceMicrosecond(microsecond int) (Time, error) {
	if err := CheckRange("microsecond", int64(microsecond), 0, microsPerSecond-1); err != nil {
		return Time{}, err
	}
	t.nanosecond = uint32(microsecond) * nanosPerMicro
	return t, nil
}

// ReplaceNanosecond returns a copy of t with the nanosecond replaced.
func (t Time) ReplaceNanosecond(nanosecond int) (Time, error) {
	if err := CheckRange("nanosecond", int64(nanosecond), 0, nanosPerSecond-1); err != nil {
		return Time{}, err
	}
	t.nanosecond = uint32(nanosecond)
	return t, nil
}

// Compare returns -1 if t is before u, 0 if they are equal, and +1 if t is
// after u, assuming both fall on the same calendar date.
func (t Time) Compare(u Time) int {
	switch {
	case t == u:
		return 0
	case t.hour != u.hour:
		return cmpUint32(uint32(t.hour), uint32(u.hour))
	case t.minute != u.minute:
		return cmpUint32(uint32(t.minute), uint32(u.minute))
	case t.second != u.second:
		return cmpUint32(uint32(t.second), uint32(u.second))
	default:
		return cmpUint32(t.nanosecond, u.nanosecond)
	}
}

// Before reports whether t is earlier in the day than u.
func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }

// After reports whether t is later in the day than u.
func (t Time) After(u Time) bool { return t.Compare(u) > 0 }

func cmpUint32(a, b uint32) int {
	if a < b {
		return -1
	}
	return 1
}
