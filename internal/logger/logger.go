package logger

import (
	"bobber/internal/core"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var DefaultOpts = &Opts{
	Environment: core.Development,
}

type Opts struct {
	Environment core.Environment
}

func safe(opts ...Opts) *Opts {
	if len(opts) == 0 {
		return DefaultOpts
	}
	return &opts[0]
}

// Init configures the global logger: JSON at info level in production,
// pretty console output at debug level everywhere else.
func Init(opts ...Opts) {
	if safe(opts...).Environment.IsProduction() {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	} else {
		log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger()
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
