// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"art-auction/internal/config"
)

var sink io.Writer = os.Stdout

// Init sets up the global logger from config. When a log file is
// configured it becomes the shared sink for both app and request logs,
// truncated once it outgrows its size cap.
func Init(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	sink = os.Stdout
	if cfg.File != "" {
		if w, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB); err == nil {
			sink = w
		}
	}

	output := sink
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: sink}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
}

// Writer exposes the configured sink for request logging.
func Writer() io.Writer {
	return sink
}
