package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"tripdash/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const prodStr string = "production"

// Init builds the base logger from config and installs it as the global logger.
func Init(cfg *config.Config) *zerolog.Logger {
	// Set global level based on environment
	switch cfg.Env {
	case prodStr:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	baseLogger := New(cfg.Env, cfg.ServiceName, os.Stdout)
	log.Logger = baseLogger

	return &baseLogger
}

// New builds a logger writing to out; JSON in production, console elsewhere.
func New(env, service string, out io.Writer) zerolog.Logger {
	var baseLogger zerolog.Logger

	if env == prodStr {
		baseLogger = zerolog.New(out)
	} else {
		baseLogger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    false, // Enable colors
			PartsOrder: []string{
				"time", "level", "caller", "service", "env", "message", "err",
			},
			FormatLevel: func(i any) string {
				return strings.ToUpper(fmt.Sprintf("[%s]", i))
			},
			FormatCaller: func(caller any) string {
				return fmt.Sprintf("(%s)", caller)
			},
		})
	}

	baseLogger = baseLogger.With().
		Timestamp().
		Str("service", service).
		Str("env", env).
		Logger() // finalize

	// Add caller info for dev
	if env != prodStr {
		baseLogger = baseLogger.With().Caller().Logger()
	}

	return baseLogger
}
