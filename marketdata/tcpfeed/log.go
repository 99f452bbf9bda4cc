package tcpfeed

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger receives the serializer's diagnostics, such as downgraded ticks.
type Logger interface {
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type zerologLogger struct {
	logger zerolog.Logger
}

var _ Logger = (*zerologLogger)(nil)

// NewZerologLogger adapts a zerolog.Logger to Logger. The level configured on
// l decides which messages are written.
func NewZerologLogger(l zerolog.Logger) Logger {
	return &zerologLogger{logger: l}
}

func (z *zerologLogger) Infof(format string, v ...interface{}) {
	z.logger.Info().Msgf(format, v...)
}

func (z *zerologLogger) Warnf(format string, v ...interface{}) {
	z.logger.Warn().Msgf(format, v...)
}

func (z *zerologLogger) Errorf(format string, v ...interface{}) {
	z.logger.Error().Msgf(format, v...)
}

var (
	defaultLogger   = newConsoleLogger(zerolog.WarnLevel)
	errorOnlyLogger = newConsoleLogger(zerolog.ErrorLevel)
)

func newConsoleLogger(level zerolog.Level) Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return NewZerologLogger(zerolog.New(output).Level(level).With().Timestamp().Logger())
}

// DefaultLogger writes warnings and errors to stderr. Downgraded ticks are
// reported at warning level.
func DefaultLogger() Logger {
	return defaultLogger
}

// ErrorOnlyLogger writes errors only. Use it to silence downgraded tick warnings.
func ErrorOnlyLogger() Logger {
	return errorOnlyLogger
}
