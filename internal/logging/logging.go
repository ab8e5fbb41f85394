// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the experiment harness.
// Library code in qmkp never constructs a logger itself; it receives one
// through options and falls back to zap.NewNop().
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned when a level string cannot be parsed.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ParseLevel maps "debug", "info", "warn", "error" (case-insensitive) to a
// zapcore level. The empty string means info.
func ParseLevel(level string) (zapcore.Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%q: %w", level, ErrUnknownLevel)
	}

	return l, nil
}

// New returns a production logger (JSON, sampled) at the given level, or a
// development logger (console, stack traces on warn) when development is set.
func New(level string, development bool) (*zap.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(l)

	return cfg.Build()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
