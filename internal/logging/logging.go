// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the binaries.
// Library packages never log; only cmd/ wiring does.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels accepted by --log-level.
const (
	INFO  = "info"
	DEBUG = "debug"
	WARN  = "warn"
	ERROR = "error"
)

// ParseLevel maps a --log-level value to a zap level (case-insensitive).
// An empty value means INFO.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case DEBUG:
		return zapcore.DebugLevel, nil
	case INFO, "":
		return zapcore.InfoLevel, nil
	case WARN:
		return zapcore.WarnLevel, nil
	case ERROR:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New returns a console logger writing to stderr at the given level.
func New(level string) (*zap.Logger, error) { return NewTo(level, os.Stderr) }

// NewTo returns a console logger writing to w at the given level.
func NewTo(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))

	return zap.New(core), nil
}
