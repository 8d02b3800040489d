package main

import "go.uber.org/zap"

// newLogger returns a production logger writing to stderr, or a development
// logger at debug level when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
