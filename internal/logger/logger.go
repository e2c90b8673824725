package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Custom log levels. Notice sits between Info and Warn and is the default
// console level, so normal command output is visible without -v.
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the log level.
var LevelVar = new(slog.LevelVar)

// NoColor forces color off regardless of TTY detection.
var NoColor bool

func init() {
	LevelVar.Set(LevelNotice)
}

// SetLevel changes the active log level.
func SetLevel(level slog.Level) {
	LevelVar.Set(level)
}

// log resolves, formats and dispatches one message, splitting multi-line
// messages into one record per line so timestamps and level labels stay
// aligned.
func log(ctx context.Context, level slog.Level, msg string, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	if len(args) > 0 && strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, args...)
	}

	now := time.Now()
	for _, line := range strings.Split(msg, "\n") {
		r := slog.NewRecord(now, level, line, 0)
		_ = h.Handle(ctx, r)
	}
}

// NewLogger builds the application logger: a tint handler on stderr with
// colored level labels when stderr is a terminal.
func NewLogger() *slog.Logger {
	wStderr := os.Stderr

	stat, _ := wStderr.Stat()
	isTTY := (stat.Mode() & os.ModeCharDevice) != 0
	useColor := isTTY && !NoColor

	var (
		ansiReset  string
		ansiBlue   string
		ansiGreen  string
		ansiYellow string
		ansiRed    string
		ansiRedBg  string
	)
	if useColor {
		ansiReset = "\033[0m"
		ansiBlue = "\033[34m"
		ansiGreen = "\033[32m"
		ansiYellow = "\033[33m"
		ansiRed = "\033[31m"
		ansiRedBg = "\033[41m\033[37m"
	}

	replaceAttr := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level := a.Value.Any().(slog.Level)
			switch level {
			case LevelTrace:
				a.Value = slog.StringValue(ansiBlue + "[TRACE ]" + ansiReset + "  ")
			case LevelDebug:
				a.Value = slog.StringValue(ansiBlue + "[DEBUG ]" + ansiReset + "  ")
			case LevelInfo:
				a.Value = slog.StringValue(ansiBlue + "[INFO  ]" + ansiReset + "  ")
			case LevelNotice:
				a.Value = slog.StringValue(ansiGreen + "[NOTICE]" + ansiReset + "  ")
			case LevelWarn:
				a.Value = slog.StringValue(ansiYellow + "[WARN  ]" + ansiReset + "  ")
			case LevelError:
				a.Value = slog.StringValue(ansiRed + "[ERROR ]" + ansiReset + "  ")
			case LevelFatal:
				a.Value = slog.StringValue(ansiRedBg + "[FATAL ]" + ansiReset + "  ")
			default:
				a.Value = slog.StringValue("[" + level.String() + "]")
			}
		}
		return a
	}

	opts := &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !useColor,
		ReplaceAttr: replaceAttr,
	}
	return slog.New(tint.NewHandler(wStderr, opts))
}

// Trace logs a message at trace level.
func Trace(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

// Info logs a message at info level.
func Info(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

// Notice logs a message at notice level, the default visible level.
func Notice(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

// Error logs a message at error level.
func Error(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelError, msg, args...)
}

// Fatal logs a message at fatal level and panics with FatalError so the
// main run loop can recover, clean up and exit nonzero.
func Fatal(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelFatal, msg, args...)
	panic(FatalError{})
}

// FatalError is the sentinel panic payload used by Fatal.
type FatalError struct{}
