// Package logger builds the process-wide zerolog instance.
//
// Call Init once in main with the configured level and environment, then
// pass the returned logger down to whatever needs it.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Init builds the service logger. In the "development" environment logs are
// pretty-printed to the console; everywhere else they are JSON lines on
// stdout.
func Init(level, env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	ctx := zerolog.New(os.Stdout).With()
	if env == "development" {
		console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		ctx = zerolog.New(console).With()
	}

	lvl := parseLevel(level)
	zerolog.SetGlobalLevel(lvl)

	return ctx.
		Timestamp().
		Str("service", "gym-dashboard").
		Logger().
		Level(lvl)
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
