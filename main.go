package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"dungeoncore/internal/config"
	"dungeoncore/internal/game"
	"dungeoncore/internal/logging"
	"dungeoncore/internal/term"

	"go.uber.org/zap"
	xterm "golang.org/x/term"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults are used if empty)")
	seed := flag.String("seed", "", "Seed phrase; overrides the config file")
	logPath := flag.String("log", "", "Write diagnostics to this file (disabled if empty)")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, seed, logPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}
	if seed != "" {
		cfg.Seed = seed
	}

	if !xterm.IsTerminal(int(os.Stdin.Fd())) || !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdin and stdout must be a terminal")
	}

	logger := zap.NewNop()
	if logPath != "" {
		var err error
		if logger, err = logging.New(cfg.Log.Level, cfg.Log.Format, logPath); err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck
	}

	sim, err := game.New(cfg, logger)
	if err != nil {
		return err
	}

	screen, err := term.OpenScreen()
	if err != nil {
		return err
	}
	// A broken invariant panics deep in the simulation. Restore the
	// terminal before reporting it, or the message is lost.
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			logger.Error("panic", zap.Any("value", r))
			fmt.Fprintf(os.Stderr, "fatal: %v\n%s", r, debug.Stack())
			os.Exit(2)
		}
	}()

	term.NewUI(screen, sim, cfg.Log.Window, logger).Run()
	return nil
}
