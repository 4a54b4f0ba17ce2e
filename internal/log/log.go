// Package log is a thin wrapper around zerolog used by the joins command.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the process wide logger.  It writes to stderr so that stdout
// only carries join results.
var Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// SetLevel sets the minimal level of messages that are written.  Unknown
// levels fall back to info.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		Logger.Warn().Msgf("unknown log level '%s', using 'info'", level)
	}
}

// SetApplication adds the application name to every message.
func SetApplication(app string) {
	Logger = Logger.With().Str("service", app).Logger()
}

// SetOutput redirects messages to w.
func SetOutput(w io.Writer) {
	Logger = Logger.Output(w)
}

// Debug prints message with DEBUG severity
func Debug(msg string) {
	Logger.Debug().Msg(msg)
}

// Debugf prints formatted message with DEBUG severity
func Debugf(format string, v ...any) {
	Logger.Debug().Msgf(format, v...)
}

// Info prints message with INFO severity
func Info(msg string) {
	Logger.Info().Msg(msg)
}

// Infof prints formatted message with INFO severity
func Infof(format string, v ...any) {
	Logger.Info().Msgf(format, v...)
}

// Infoln concatenates arguments and prints them with INFO severity
func Infoln(v ...any) {
	Logger.Info().Msg(fmt.Sprint(v...))
}

// Warnf prints formatted message with WARN severity
func Warnf(format string, v ...any) {
	Logger.Warn().Msgf(format, v...)
}

// Error prints message with ERROR severity
func Error(msg string) {
	Logger.Error().Msg(msg)
}

// Errorf prints formatted message with ERROR severity
func Errorf(format string, v ...any) {
	Logger.Error().Msgf(format, v...)
}

// Errorln concatenates arguments and prints them with ERROR severity
func Errorln(v ...any) {
	Logger.Error().Msg(fmt.Sprint(v...))
}
