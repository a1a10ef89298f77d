package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lmittmann/tint"
)

const (
	JSON  = "json"
	Text  = "text"
	Tint  = "tint"
	Charm = "charm"
)

// Types lists the supported logging types.
var Types = []string{JSON, Text, Tint, Charm}

// Initialize installs the default slog logger. Logs go to stderr so they
// never mix with the progress output on stdout.
func Initialize(loggingType string, logLevelName string) error {
	return InitializeWriter(os.Stderr, loggingType, logLevelName)
}

func InitializeWriter(w io.Writer, loggingType string, logLevelName string) error {
	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(logLevelName))
	if err != nil {
		return fmt.Errorf("could not parse log level: %v", err)
	}

	var (
		logHandlerOptions = slog.HandlerOptions{
			AddSource: true,
			Level:     logLevel,
		}
		logHandler slog.Handler
	)

	switch loggingType {
	case JSON:
		logHandler = slog.NewJSONHandler(w, &logHandlerOptions)
	case Text:
		logHandler = slog.NewTextHandler(w, &logHandlerOptions)
	case Tint:
		logHandler = tint.NewHandler(w, &tint.Options{
			AddSource: logHandlerOptions.AddSource,
			Level:     logHandlerOptions.Level,
		})
	case Charm:
		logHandler = log.NewWithOptions(w, log.Options{
			ReportCaller:    logHandlerOptions.AddSource,
			ReportTimestamp: true,
			Level:           log.Level(logLevel),
		})
	default:
		return fmt.Errorf("unknown logging type: %s", loggingType)

	}

	slog.SetDefault(slog.New(logHandler))
	slog.Info("logging initialized", "logLevel", logLevel)
	return nil
}
