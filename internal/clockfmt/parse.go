package clockfmt

import (
	"fmt"
	"strings"

	"daytime/internal/clock"
)

// ParseTime parses input following the description. It implements
// clock.Parsable. Components absent from the description default to zero;
// out-of-range component values surface as a ParseError wrapping the
// clock.ComponentRangeError.
func (d *Description) ParseTime(input string) (clock.Time, error) {
	rest := input
	var hour, minute, second, nanosecond int

	for _, it := range d.items {
		switch it.kind {
		case literalItem:
			if !strings.HasPrefix(rest, it.literal) {
				return clock.Time{}, &ParseError{Input: input, Reason: fmt.Sprintf("expected literal %q", it.literal)}
			}
			rest = rest[len(it.literal):]
		case hourItem:
			digits, remaining := takeDigits(rest, 2)
			if it.noPad && len(digits) == 0 || !it.noPad && len(digits) != 2 {
				return clock.Time{}, &ParseError{Component: "hour", Input: input, Reason: "expected digits"}
			}
			hour = atoi(digits)
			rest = remaining
		case minuteItem:
			digits, remaining := takeDigits(rest, 2)
			if len(digits) != 2 {
				return clock.Time{}, &ParseError{Component: "minute", Input: input, Reason: "expected two digits"}
			}
			minute = atoi(digits)
			rest = remaining
		case secondItem:
			digits, remaining := takeDigits(rest, 2)
			if len(digits) != 2 {
				return clock.Time{}, &ParseError{Component: "second", Input: input, Reason: "expected two digits"}
			}
			second = atoi(digits)
			rest = remaining
		case subsecondItem:
			want := it.digits
			if want == 0 {
				want = 9
			}
			digits, remaining := takeDigits(rest, want)
			if len(digits) == 0 || it.digits > 0 && len(digits) != it.digits {
				return clock.Time{}, &ParseError{Component: "subsecond", Input: input, Reason: "expected digits"}
			}
			nanosecond = atoi(digits) * pow10[9-len(digits)]
			rest = remaining
		}
	}
	if rest != "" {
		return clock.Time{}, &ParseError{Input: input, Reason: fmt.Sprintf("unexpected trailing input %q", rest)}
	}

	t, err := clock.FromHMSNano(hour, minute, second, nanosecond)
	if err != nil {
		return clock.Time{}, &ParseError{Input: input, Reason: "component out of range", Err: err}
	}
	return t, nil
}

// takeDigits consumes up to max leading ASCII digits.
func takeDigits(s string, max int) (digits, rest string) {
	n := 0
	for n < len(s) && n < max && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return s[:n], s[n:]
}

// atoi converts a string of already verified ASCII digits.
func atoi(digits string) int {
	v := 0
	for i := 0; i < len(digits); i++ {
		v = v*10 + int(digits[i]-'0')
	}
	return v
}
