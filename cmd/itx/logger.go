package main

import "go.uber.org/zap"

// zapLoggerCloser bundles a logger with the rotating sink's close function,
// so every subcommand can `defer lc.Close()` uniformly.
type zapLoggerCloser struct {
	logger  *zap.Logger
	closeFn func() error
}

func (lc *zapLoggerCloser) Close() {
	_ = lc.closeFn()
}
