package main

import (
	"fmt"

	"github.com/fwojciec/blocks"
)

type config struct {
	mode    blocks.DragMode
	logPath string
}

// resolveConfig merges flags over env values. All env var values are passed
// in as parameters; env is only read in main().
func resolveConfig(modeFlag, logFlag, modeEnv, logEnv string) (config, error) {
	mode := modeFlag
	if mode == "" {
		mode = modeEnv
	}
	m, err := blocks.ParseDragMode(mode)
	if err != nil {
		return config{}, fmt.Errorf("mode: %w", err)
	}

	logPath := logFlag
	if logPath == "" {
		logPath = logEnv
	}
	return config{mode: m, logPath: logPath}, nil
}
