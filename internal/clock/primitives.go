package clock

// CheckRange passes value through if it lies within the inclusive
// [min, max] bound, and otherwise returns a ComponentRangeError naming the
// offending component.
func CheckRange(name string, value, min, max int64) error {
	if value < min || value > max {
		return &ComponentRangeError{Name: name, Minimum: min, Maximum: max, Value: value}
	}
	return nil
}

// CheckRangeConditional is CheckRange for components whose bounds depend on
// the value of another, already validated component. The resulting error is
// flagged so callers can distinguish the two cases.
func CheckRangeConditional(name string, value, min, max int64) error {
	if value < min || value > max {
		return &ComponentRangeError{Name: name, Minimum: min, Maximum: max, Value: value, Conditional: true}
	}
	return nil
}

// cascade normalizes *from into the half-open range [min, max) by carrying
// the excess or deficit into *to. It must be applied in ascending unit order
// (nanosecond, second, minute, hour) so a carry out of one unit is visible
// when the next is normalized.
func cascade(from *int64, min, max int64, to *int64) {
	if *from >= max {
		*from -= max - min
		*to++
	} else if *from < min {
		*from += max - min
		*to--
	}
}

// DivFloor divides a by b with the quotient rounded toward negative
// infinity rather than toward zero. The divisor must be nonzero.
func DivFloor(a, b int64) int64 {
	quotient, remainder := a/b, a%b
	if (remainder > 0 && b < 0) || (remainder < 0 && b > 0) {
		quotient--
	}
	return quotient
}

// ModFloor returns the remainder paired with DivFloor: zero or carrying the
// sign of the divisor.
func ModFloor(a, b int64) int64 {
	return a - b*DivFloor(a, b)
}
