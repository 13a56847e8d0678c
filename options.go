package minutes

import (
	"go.uber.org/zap"

	"github.com/tsawler/minutes/dialect"
	"github.com/tsawler/minutes/generator"
	"github.com/tsawler/minutes/parser"
)

// options holds the configuration shared by extraction and generation.
type options struct {
	rules  *dialect.Rules
	logger *zap.Logger
}

// defaultOptions returns the built-in dialect rules and a no-op logger.
func defaultOptions() options {
	return options{
		rules:  dialect.Default(),
		logger: zap.NewNop(),
	}
}

// clone returns a copy of the options. Rules are read-only once loaded, so
// the pointer is shared.
func (o options) clone() options {
	return options{rules: o.rules, logger: o.logger}
}

func (o options) parserConfig() parser.Config {
	return parser.Config{Rules: o.rules, Logger: o.logger}
}

func (o options) generatorConfig() generator.Config {
	return generator.Config{Rules: o.rules, Logger: o.logger}
}
