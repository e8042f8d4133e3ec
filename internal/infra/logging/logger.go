// Package logging builds the slog logger used across khepri.
// Console output goes through charmbracelet/log; an optional JSON log file
// is rotated by lumberjack.
package logging

import (
	"io"
	"log/slog"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
	charmlog "github.com/charmbracelet/log"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger together with the log file it owns.
type Logger struct {
	*slog.Logger
	file io.Closer
}

// New creates a Logger writing to console at the configured level and,
// when cfg.File is set, to a rotated JSON log file as well.
// A nil console disables console output.
func New(cfg domain.LogConfig, console io.Writer) *Logger {
	level := ParseLevel(cfg.Level)
	var handlers []slog.Handler

	if console != nil {
		handlers = append(handlers, charmlog.NewWithOptions(console, charmlog.Options{
			Level:  charmlog.Level(level),
			Prefix: "khepri",
		}))
	}

	var file io.Closer
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		handlers = append(handlers, slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: level}))
		file = rotator
	}

	return &Logger{
		Logger: slog.New(slogmulti.Fanout(handlers...)),
		file:   file,
	}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slogmulti.Fanout())}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
