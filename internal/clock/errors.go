package clock

import "fmt"

// ComponentRangeError reports a component value outside its valid range. It
// is the only failure mode of Time construction: validation is pure and
// deterministic, and the first out-of-range component short-circuits the
// rest.
//
// Conditional marks components whose valid bounds depend on the value of
// another, already validated component (a day-of-month that depends on the
// month and year, for example). No clock component is conditional, but the
// error shape is shared with calendar-layer consumers.
type ComponentRangeError struct {
	Name        string
	Minimum     int64
	Maximum     int64
	Value       int64
	Conditional bool
}

func (e *ComponentRangeError) Error() string {
	s := fmt.Sprintf("%s must be in the range %d..=%d, got %d", e.Name, e.Minimum, e.Maximum, e.Value)
	if e.Conditional {
		s += ", given the values of the other components"
	}
	return s
}
