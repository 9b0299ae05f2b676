// Package logging builds the root zerolog logger. Services derive
// component-tagged children from it.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the root logger for the service. Production emits JSON at
// info level; everything else gets a console writer with debug enabled
// so game and tutor traces are readable during development.
func New(service, env string) zerolog.Logger {
	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel
	if env != "production" {
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339Nano,
		}
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).Level(level).With().
		Timestamp().
		Str("service", service).
		Str("env", env).
		Logger()
}
