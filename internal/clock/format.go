package clock

import (
	"fmt"
	"io"
	"strings"
)

// Formattable renders a Time into a writer, returning the number of bytes
// written. Implementations live outside this package so the arithmetic core
// has no dependency on text I/O.
type Formattable interface {
	FormatInto(w io.Writer, t Time) (int, error)
}

// Parsable parses a Time from textual input.
type Parsable interface {
	ParseTime(input string) (Time, error)
}

// Format renders t using the supplied formatter.
func (t Time) Format(f Formattable) (string, error) {
	var sb strings.Builder
	if _, err := f.FormatInto(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FormatInto renders t into w using the supplied formatter, returning the
// number of bytes written.
func (t Time) FormatInto(w io.Writer, f Formattable) (int, error) {
	return f.FormatInto(w, t)
}

// Parse delegates parsing of input entirely to the supplied parser.
func Parse(input string, p Parsable) (Time, error) {
	return p.ParseTime(input)
}

// String renders the time as H:MM:SS.fraction. The hour is unpadded, minute
// and second are zero-padded to two digits, and the fraction uses the fewest
// digits (1..=9) that represent the nanosecond field exactly.
func (t Time) String() string {
	var value uint32
	var width int
	switch nanos := t.nanosecond; {
	case nanos%10 != 0:
		value, width = nanos, 9
	case (nanos/10)%10 != 0:
		value, width = nanos/10, 8
	case (nanos/100)%10 != 0:
		value, width = nanos/100, 7
	case (nanos/1_000)%10 != 0:
		value, width = nanos/1_000, 6
	case (nanos/10_000)%10 != 0:
		value, width = nanos/10_000, 5
	case (nanos/100_000)%10 != 0:
		value, width = nanos/100_000, 4
	case (nanos/1_000_000)%10 != 0:
		value, width = nanos/1_000_000, 3
	case (nanos/10_000_000)%10 != 0:
		value, width = nanos/10_000_000, 2
	default:
		value, width = nanos/100_000_000, 1
	}
	return fmt.Sprintf("%d:%02d:%02d.%0*d", t.hour, t.minute, t.second, width, value)
}
