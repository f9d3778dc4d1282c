// Package logging builds the process logger: a development console core on
// stderr, optionally teed with a rotating JSON file core.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the level and, when File is set, the rotated log file.
type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ParseLevel accepts the usual zap level names, case-insensitively.
// An empty string means "warn".
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.WarnLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return lvl, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}

// New returns a logger writing console lines to stderr. The returned closer
// syncs the logger and closes the rotator, if any.
func New(stderr io.Writer, o Options) (*zap.Logger, func() error, error) {
	lvl, err := ParseLevel(o.Level)
	if err != nil {
		return nil, nil, err
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(zapcore.AddSync(stderr)), lvl),
	}

	var rotator *lumberjack.Logger
	if o.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    orDefault(o.MaxSizeMB, 10),
			MaxBackups: orDefault(o.MaxBackups, 3),
			MaxAge:     orDefault(o.MaxAgeDays, 28),
			Compress:   true,
		}
		fileEnc := zap.NewProductionEncoderConfig()
		fileEnc.TimeKey = "timestamp"
		fileEnc.EncodeTime = zapcore.ISO8601TimeEncoder
		// the file always records debug detail regardless of the console level
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEnc), zapcore.AddSync(rotator), zapcore.DebugLevel))
	}

	l := zap.New(zapcore.NewTee(cores...))
	closer := func() error {
		_ = l.Sync()
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}
	return l, closer, nil
}

func orDefault(v, d int) int {
	if v <= 0 {
		return d
	}
	return v
}
