// Package repl provides the interactive read-eval-print loop.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"daytime/internal/calc"
	"daytime/internal/history"
)

const (
	defaultPrompt   = "daytime> "
	defaultHistoryN = 10
)

// Config holds REPL configuration.
type Config struct {
	// Prompt is printed before each input line.
	Prompt string
	// HistoryN is how many entries the history builtin shows.
	HistoryN int
}

// REPL reads expressions line by line, evaluates them, and prints the
// results.
type REPL struct {
	cfg    Config
	eval   *calc.Evaluator
	store  *history.Store
	in     io.Reader
	out    io.Writer
	logger zerolog.Logger
}

// New creates a REPL reading from in and writing to out.
func New(cfg Config, eval *calc.Evaluator, store *history.Store, in io.Reader, out io.Writer, logger zerolog.Logger) *REPL {
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if cfg.HistoryN <= 0 {
		cfg.HistoryN = defaultHistoryN
	}
	return &REPL{
		cfg:    cfg,
		eval:   eval,
		store:  store,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run reads and evaluates lines until input is exhausted, a quit command is
// entered, or the context is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if _, err := fmt.Fprint(r.out, r.cfg.Prompt); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			quit, err := r.handle(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// handle processes a single input line. It returns true when the REPL
// should stop.
func (r *REPL) handle(ctx context.Context, line string) (bool, error) {
	switch line {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		r.printHelp()
		return false, nil
	case "clear":
		if err := r.store.Clear(ctx); err != nil {
			return false, err
		}
		fmt.Fprintln(r.out, "history cleared")
		return false, nil
	case "history":
		return false, r.printHistory(ctx)
	}

	start := time.Now()
	result, err := r.eval.Evaluate(line)
	elapsed := time.Since(start)

	if err != nil {
		r.logger.Debug().
			Str("expr", line).
			Dur("elapsed", elapsed).
			Err(err).
			Msg("evaluation failed")
		fmt.Fprintf(r.out, "error: %v\n", err)
		return false, nil
	}

	output := result.String()
	r.logger.Debug().
		Str("expr", line).
		Str("result", output).
		Dur("elapsed", elapsed).
		Msg("evaluated expression")
	fmt.Fprintln(r.out, output)

	return false, r.store.Append(ctx, history.Entry{
		Expr:   line,
		Output: output,
		At:     start,
	})
}

func (r *REPL) printHistory(ctx context.Context) error {
	entries, err := r.store.Recent(ctx, r.cfg.HistoryN)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "history is empty")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(r.out, "%s = %s\n", e.Expr, e.Output)
	}
	return nil
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.out, `Expressions:
  HH:MM[:SS[.fraction]]      a clock time, e.g. 9:05 or 23:59:59.5
  now                        the current wall-clock time
  TIME + DURATION            wrapped addition, e.g. 23:00 + 2h30m
  TIME - DURATION            wrapped subtraction
  TIME - TIME                signed difference, e.g. 17:00 - 8:30

Commands:
  history    show recent results
  clear      clear the history
  help       show this help
  quit       exit
`)
}
