// Package cliutil holds the flag and logger plumbing shared by the commands
// under cmd/.
package cliutil

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFlags returns the logging flags every command accepts.
//
// BIBLIOALGO_LOG_LEVEL=debug|info|warn|error
//
// BIBLIOALGO_LOG_FMT=text|json
func LogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity (debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"BIBLIOALGO_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-fmt",
			Usage:   "log encoding (text or json)",
			Value:   "text",
			EnvVars: []string{"BIBLIOALGO_LOG_FMT"},
		},
	}
}

// SetupLogger builds the logger described by the LogFlags values of cctx.
func SetupLogger(cctx *cli.Context) (*zap.Logger, error) {
	return NewLogger(cctx.String("log-level"), cctx.String("log-fmt"))
}

// NewLogger builds a zap logger writing to stderr. Debug level is where the
// container packages report rejected indices and keys.
func NewLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, errors.Wrapf(err, "unknown log level %q", level)
	}

	var cfg zap.Config
	switch strings.ToLower(format) {
	case "", "text":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, errors.Newf("invalid log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return logger, nil
}
