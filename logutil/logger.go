// SPDX-License-Identifier: MIT

// Package logutil builds the zap loggers used by the citymst command.
package logutil

import (
	"github.com/pingcap/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encodings.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// New builds a production logger writing to stderr, so that reports on stdout
// stay machine-readable.
func New(level, encoding string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Annotatef(err, "log level %q", level)
	}
	switch encoding {
	case "":
		encoding = EncodingConsole
	case EncodingConsole, EncodingJSON:
	default:
		return nil, errors.Errorf("unknown log encoding %q", encoding)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = encoding
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		return nil, errors.Trace(err)
	}

	return logger, nil
}
