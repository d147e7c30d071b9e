package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. Development gets a human console
// writer, everything else structured JSON.
func New(env, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stdout
	if env == "development" || env == "dev" || env == "" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	return zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
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
