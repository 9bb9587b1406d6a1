package clockfmt

import (
	"fmt"
	"io"
	"strconv"

	"daytime/internal/clock"
)

var pow10 = [10]int{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000}

// FormatInto renders t into w following the description, returning the
// number of bytes written. It implements clock.Formattable.
func (d *Description) FormatInto(w io.Writer, t clock.Time) (int, error) {
	var total int
	for _, it := range d.items {
		var chunk string
		switch it.kind {
		case literalItem:
			chunk = it.literal
		case hourItem:
			if it.noPad {
				chunk = strconv.Itoa(t.Hour())
			} else {
				chunk = fmt.Sprintf("%02d", t.Hour())
			}
		case minuteItem:
			chunk = fmt.Sprintf("%02d", t.Minute())
		case secondItem:
			chunk = fmt.Sprintf("%02d", t.Second())
		case subsecondItem:
			value, width := t.Nanosecond(), it.digits
			if width > 0 {
				value /= pow10[9-width]
			} else {
				value, width = minimalSubsecond(value)
			}
			chunk = fmt.Sprintf("%0*d", width, value)
		}
		n, err := io.WriteString(w, chunk)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Format renders t to a string following the description.
func (d *Description) Format(t clock.Time) (string, error) {
	return t.Format(d)
}

// minimalSubsecond reduces a nanosecond value to the fewest digits that
// represent it exactly, from 1 up to the full 9.
func minimalSubsecond(nanos int) (value, width int) {
	value, width = nanos, 9
	for width > 1 && value%10 == 0 {
		value /= 10
		width--
	}
	return value, width
}
