package parser

import (
	"go.uber.org/zap"

	"github.com/tsawler/minutes/dialect"
)

// Config configures extraction.
type Config struct {
	// Rules holds the labels and patterns of the report dialects.
	// Defaults to dialect.Default().
	Rules *dialect.Rules

	// Logger receives debug messages. Defaults to a no-op logger.
	Logger *zap.Logger
}

func (c *Config) defaults() {
	if c.Rules == nil {
		c.Rules = dialect.Default()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}
