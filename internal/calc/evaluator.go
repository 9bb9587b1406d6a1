package calc

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"daytime/internal/clock"
	"daytime/internal/clockfmt"
)

var (
	// ErrEmptyExpression indicates a blank input line.
	ErrEmptyExpression = errors.New("expression is empty")

	// ErrBadExpression indicates input that is not OPERAND or
	// OPERAND OP OPERAND.
	ErrBadExpression = errors.New("expression must be a time, optionally followed by + or - and a second operand")

	// ErrAddTwoTimes indicates an attempt to add two clock times.
	ErrAddTwoTimes = errors.New("cannot add two clock times")

	// ErrNotATime indicates a left operand that is not a clock time.
	ErrNotATime = errors.New("operand is not a clock time")
)

// timeFormats are tried in order when parsing a time operand. The longest
// shape wins so "9:05:07.5" is not cut short by the "[hour]:[minute]" form.
var timeFormats = []*clockfmt.Description{
	clockfmt.MustParse("[hour padding:none]:[minute]:[second].[subsecond]"),
	clockfmt.MustParse("[hour padding:none]:[minute]:[second]"),
	clockfmt.MustParse("[hour padding:none]:[minute]"),
}

// ResultKind distinguishes what an expression evaluated to.
type ResultKind int

const (
	// TimeResult is a wrapped clock time plus a midnight-crossing flag.
	TimeResult ResultKind = iota
	// DurationResult is the signed span between two clock times.
	DurationResult
)

// Result is the outcome of evaluating an expression.
type Result struct {
	Kind       ResultKind
	Time       clock.Time
	Adjustment clock.DateAdjustment
	Duration   clock.Duration
}

// String renders the result, annotating midnight crossings.
func (r Result) String() string {
	if r.Kind == DurationResult {
		return r.Duration.String()
	}
	if r.Adjustment == clock.NoAdjustment {
		return r.Time.String()
	}
	return fmt.Sprintf("%s (%s)", r.Time, r.Adjustment)
}

// Evaluator evaluates clock arithmetic expressions such as
// "23:59:59 + 2s", "17:00 - 8:30", or "now + 1h30m".
type Evaluator struct {
	clock Clock
}

// New creates an Evaluator that resolves "now" through the given clock.
func New(clk Clock) *Evaluator {
	return &Evaluator{clock: clk}
}

// Evaluate parses and evaluates a single expression. Operands and the
// operator are separated by whitespace; durations use the standard library
// syntax ("90s", "-1h30m").
func (e *Evaluator) Evaluate(expr string) (Result, error) {
	fields := strings.Fields(expr)
	switch len(fields) {
	case 0:
		return Result{}, ErrEmptyExpression
	case 1:
		t, isTime, err := e.parseTime(fields[0])
		if err != nil {
			return Result{}, err
		}
		if !isTime {
			return Result{}, fmt.Errorf("%q: %w", fields[0], ErrNotATime)
		}
		return Result{Kind: TimeResult, Time: t}, nil
	case 3:
		return e.evaluateBinary(fields[0], fields[1], fields[2])
	default:
		return Result{}, ErrBadExpression
	}
}

func (e *Evaluator) evaluateBinary(lhsTok, opTok, rhsTok string) (Result, error) {
	if opTok != "+" && opTok != "-" {
		return Result{}, fmt.Errorf("operator %q: %w", opTok, ErrBadExpression)
	}

	lhs, isTime, err := e.parseTime(lhsTok)
	if err != nil {
		return Result{}, err
	}
	if !isTime {
		return Result{}, fmt.Errorf("%q: %w", lhsTok, ErrNotATime)
	}

	rhs, isTime, err := e.parseTime(rhsTok)
	if err != nil {
		return Result{}, err
	}
	if isTime {
		if opTok == "+" {
			return Result{}, ErrAddTwoTimes
		}
		return Result{Kind: DurationResult, Duration: lhs.Since(rhs)}, nil
	}

	d, err := parseDuration(rhsTok)
	if err != nil {
		return Result{}, err
	}
	var adj clock.DateAdjustment
	var out clock.Time
	if opTok == "+" {
		adj, out = lhs.AdjustingAdd(d)
	} else {
		adj, out = lhs.AdjustingSub(d)
	}
	return Result{Kind: TimeResult, Time: out, Adjustment: adj}, nil
}

// parseTime parses a time operand. The second return value reports whether
// the token had the shape of a time at all; a shaped token that still fails
// to parse returns the error.
func (e *Evaluator) parseTime(token string) (clock.Time, bool, error) {
	if token == "now" {
		return clock.FromStdTime(e.clock.Now()), true, nil
	}
	if !strings.Contains(token, ":") {
		return clock.Time{}, false, nil
	}

	var err error
	for _, format := range timeFormats {
		t, ferr := clock.Parse(token, format)
		if ferr == nil {
			return t, true, nil
		}
		// A range violation means the shape matched but a component was out
		// of bounds. That is the error worth reporting, not the literal
		// mismatch a shorter format would produce afterwards.
		var rangeErr *clock.ComponentRangeError
		if err == nil || errors.As(ferr, &rangeErr) {
			err = ferr
		}
	}
	return clock.Time{}, true, fmt.Errorf("invalid time %q: %w", token, err)
}

func parseDuration(token string) (clock.Duration, error) {
	d, err := time.ParseDuration(token)
	if err != nil {
		return clock.ZeroDuration, fmt.Errorf("invalid duration %q: %w", token, err)
	}
	return clock.DurationFromStd(d), nil
}
