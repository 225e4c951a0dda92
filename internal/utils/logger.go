package utils

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	CurrentLevel   LogLevel = LevelInfo
	ShowRaylibInfo bool
	ShowDebugUI    bool
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLevel maps a flag value like "debug" or "WARN" to a LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", name)
}

func logMessage(level LogLevel, format string, v ...interface{}) {
	if level < CurrentLevel {
		return
	}

	const (
		colorReset  = "\033[0m"
		colorCyan   = "\033[36m"
		colorBlue   = "\033[34m"
		colorYellow = "\033[33m"
		colorRed    = "\033[31m"
	)

	var colorCode string
	switch level {
	case LevelDebug:
		colorCode = colorCyan
	case LevelInfo:
		colorCode = colorBlue
	case LevelWarn:
		colorCode = colorYellow
	case LevelError:
		colorCode = colorRed
	}

	prefix := fmt.Sprintf("%s[%s]%s ", colorCode, level.String(), colorReset)
	log.Printf(prefix+format, v...)
}

func Info(format string, v ...interface{})  { logMessage(LevelInfo, format, v...) }
func Debug(format string, v ...interface{}) { logMessage(LevelDebug, format, v...) }
func Warn(format string, v ...interface{})  { logMessage(LevelWarn, format, v...) }
func Error(format string, v ...interface{}) { logMessage(LevelError, format, v...) }

// Slog returns a slog.Logger writing to stderr at the current level, for
// libraries (gogpu/gg) that take a *slog.Logger.
func Slog() *slog.Logger {
	var level slog.Level
	switch CurrentLevel {
	case LevelDebug:
		level = slog.LevelDebug
	case LevelInfo:
		level = slog.LevelInfo
	case LevelWarn:
		level = slog.LevelWarn
	default:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func RaylibLogCallback(level int, text string) {
	const colorMagenta = "\033[35m"
	const colorReset = "\033[0m"
	formattedText := colorMagenta + "[RAYLIB] " + colorReset + text
	switch level {
	case 1, 2: // LOG_TRACE, LOG_DEBUG
		Debug("%s", formattedText)
	case 3: // LOG_INFO
		if ShowRaylibInfo || CurrentLevel <= LevelDebug {
			Info("%s", formattedText)
		}
	case 4: // LOG_WARNING
		Warn("%s", formattedText)
	case 5, 6: // LOG_ERROR, LOG_FATAL
		Error("%s", formattedText)
	}
}
