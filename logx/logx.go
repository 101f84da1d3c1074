package logx

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config controls log output.
type Config struct {
	Level  string
	Pretty bool
}

// New builds a zerolog logger writing to stderr, keeping stdout free
// for report output. Unknown levels fall back to info.
func New(conf Config) zerolog.Logger {
	var logger zerolog.Logger
	if conf.Pretty {
		logger = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
		})).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(strings.ToLower(conf.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}
