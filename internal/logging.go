package internal

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// InitLogging builds the diagnostic logger: one plain-text line per event,
// no colours or timestamps, level shown as a word prefix.
func InitLogging(w io.Writer, level string) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
	cw.FormatLevel = func(i interface{}) string {
		l, _ := i.(string)
		return levelPrefix(l)
	}
	return zerolog.New(cw).Level(parseLevel(level))
}

func levelPrefix(level string) string {
	switch level {
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return "Error:"
	case zerolog.LevelWarnValue:
		return "Warning:"
	case zerolog.LevelDebugValue, zerolog.LevelTraceValue:
		return "Debug:"
	default:
		return ""
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
