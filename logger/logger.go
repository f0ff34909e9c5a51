package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/degennews/web/config"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type zeroLogger struct {
	log zerolog.Logger
}

// New returns a Logger writing JSON to stdout, or pretty console output
// when running locally.
func New(cfg *config.Config) Logger {
	var log zerolog.Logger
	if cfg.App.Env == config.Local {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
	} else {
		log = zerolog.New(os.Stdout).
			With().Timestamp().Logger().Level(zerolog.InfoLevel)
	}
	return &zeroLogger{log: log}
}

func (l *zeroLogger) Debug(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *zeroLogger) Info(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *zeroLogger) Warn(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zeroLogger) Error(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
