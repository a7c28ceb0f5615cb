package app

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// ConsoleLogger writes human readable lines to w. Keep w off stdout; stdout
// carries only the confirmation line.
type ConsoleLogger struct{ log zerolog.Logger }

func NewConsoleLogger(w io.Writer) ConsoleLogger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	return ConsoleLogger{log: zerolog.New(consoleWriter).With().Timestamp().Logger()}
}

func (l ConsoleLogger) Infof(component string, format string, args ...interface{}) {
	l.log.Info().Str("component", component).Msgf(format, args...)
}

func (l ConsoleLogger) Errorf(component string, format string, args ...interface{}) {
	l.log.Error().Str("component", component).Msgf(format, args...)
}
