// Command blocks is a terminal block editor.
//
// Usage:
//
//	blocks [flags] [text ...]
//
// Each positional argument becomes one block of the initial document.
//
// Flags:
//
//	-mode string    Drag addressing: probe, hover (default $BLOCKS_MODE, else probe)
//	-log string     Path to a log file (default $BLOCKS_LOG, else no logging)
//	-debug          Log at debug level
//	-upload string  Print an image file, or every image under a directory, as a data URL and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fwojciec/blocks"
	bt "github.com/fwojciec/blocks/bubbletea"
	"github.com/fwojciec/blocks/goldmark"
	blockszap "github.com/fwojciec/blocks/zap"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blocks: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		modeFlag   = flag.String("mode", "", "Drag addressing: probe, hover (default $BLOCKS_MODE, else probe)")
		logFlag    = flag.String("log", "", "Path to a log file (default $BLOCKS_LOG)")
		debug      = flag.Bool("debug", false, "Log at debug level")
		uploadPath = flag.String("upload", "", "Print an image file, or every image under a directory, as a data URL and exit")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Env vars are read here and passed as values.
	cfg, err := resolveConfig(*modeFlag, *logFlag, os.Getenv("BLOCKS_MODE"), os.Getenv("BLOCKS_LOG"))
	if err != nil {
		return err
	}

	logger, err := blockszap.New(cfg.logPath, *debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if *uploadPath != "" {
		return upload(ctx, os.Stdout, *uploadPath, logger)
	}

	seq, err := seedSequence(flag.Args())
	if err != nil {
		return err
	}

	m := bt.New(seq, blocks.DefaultTheme(), bt.Config{
		Mode:      cfg.mode,
		Formatter: goldmark.Formatter{},
		Logger:    logger,
	})
	logger.Info("editor started",
		zap.Stringer("mode", cfg.mode),
		zap.Int("blocks", seq.Len()),
	)

	if err := bt.Run(ctx, m); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// seedSequence builds the initial document, one block per argument.
func seedSequence(args []string) (blocks.Sequence, error) {
	bs := make([]blocks.Block, 0, len(args))
	for _, text := range args {
		bs = append(bs, blocks.Block{ID: blocks.NewID(), Content: text})
	}
	seq, err := blocks.NewSequence(bs)
	if err != nil {
		return blocks.Sequence{}, fmt.Errorf("initial blocks: %w", err)
	}
	return seq, nil
}
