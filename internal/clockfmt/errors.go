package clockfmt

import "fmt"

// InvalidDescriptionError reports a malformed format description.
type InvalidDescriptionError struct {
	Component string
	Reason    string
}

func (e *InvalidDescriptionError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("invalid format description: component %q: %s", e.Component, e.Reason)
	}
	return "invalid format description: " + e.Reason
}

// ParseError reports input that does not match a format description. It is
// distinct from the clock package's ComponentRangeError; when the input
// matched the shape but a component was out of range, the range error is
// wrapped and reachable through Unwrap.
type ParseError struct {
	Component string
	Input     string
	Reason    string
	Err       error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parsing %q", e.Input)
	if e.Component != "" {
		msg += fmt.Sprintf(": component %q", e.Component)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
