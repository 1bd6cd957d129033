package main

import (
	"os"

	"github.com/rs/zerolog"
)

// zerologAdapter bridges the engine's Logger interface to zerolog so the
// simulation core stays free of any logging dependency.
type zerologAdapter struct {
	l zerolog.Logger
}

func newLogger(debug bool) zerologAdapter {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	return zerologAdapter{l: l}
}

func (z zerologAdapter) Debugf(format string, args ...any) { z.l.Debug().Msgf(format, args...) }
func (z zerologAdapter) Infof(format string, args ...any)  { z.l.Info().Msgf(format, args...) }
func (z zerologAdapter) Warnf(format string, args ...any)  { z.l.Warn().Msgf(format, args...) }
func (z zerologAdapter) Errorf(format string, args ...any) { z.l.Error().Msgf(format, args...) }
