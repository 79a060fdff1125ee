// Package logging builds the zap logger shared by the application.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a logger writing to stderr at the given level ("debug",
// "info", "warn", "error"). Development mode switches to the console
// encoder with caller and stack information.
func New(level string, development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
