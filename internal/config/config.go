// Package config handles application configuration and setup
package config

import (
	"runtime"

	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Workers returns the number of sprite decoding workers, a value below 1
// selects one worker per CPU.
func Workers(requested int) int {
	if requested > 0 {
		return requested
	}
	return runtime.NumCPU()
}

// Scale returns the sprite upscale factor, at least 1.
func Scale(requested int) int {
	return max(requested, 1)
}
