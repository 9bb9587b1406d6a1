// Command daytime is a sub-day clock arithmetic calculator. With arguments
// it evaluates a single expression and exits; without, it starts a REPL.
//
//	daytime 23:59:59 + 2s
//	daytime
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"daytime/internal/calc"
	"daytime/internal/history"
	"daytime/internal/repl"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (defaults to $DAYTIME_CONFIG)")
	flag.Parse()

	if err := run(*configPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "daytime: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	eval := calc.New(calc.RealClock{})

	// One-shot mode: evaluate the arguments as a single expression.
	if len(args) > 0 {
		result, err := eval.Evaluate(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := history.NewStore(cfg.HistorySize)
	r := repl.New(repl.Config{
		Prompt:   cfg.Prompt,
		HistoryN: cfg.HistoryN,
	}, eval, store, os.Stdin, os.Stdout, logger)

	logger.Debug().Str("prompt", cfg.Prompt).Int("history_size", cfg.HistorySize).Msg("starting repl")

	if err := r.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
