// Package logger provides structured logging using zerolog.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Config represents logger configuration.
type Config struct {
	Output string // "stdout", "stderr", or "file"
	Level  string // "debug", "info", "warn", "error"
	File   string // log file path (used when Output is "file")
}

func (c Config) console() bool {
	switch strings.ToLower(c.Output) {
	case "stdout", "stderr", "":
		return true
	}
	return false
}

// Init initializes the global zerolog logger with the given configuration.
// The returned function closes the log file, if one was opened.
func Init(cfg Config) (func(), error) {
	level := ParseLevel(cfg.Level)
	closeFn := func() {}

	var writer io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout", "":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		if cfg.File == "" {
			return closeFn, errors.New("log file path is required for file output")
		}
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return closeFn, errors.Wrap(err, "failed to create log directory")
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closeFn, errors.Wrap(err, "failed to open log file")
		}
		writer = f
		closeFn = func() { _ = f.Close() }
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.TimeOnly
	zerolog.TimestampFieldName = "time"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, string(filepath.Separator))
		if len(parts) > 1 {
			return filepath.Join(parts[len(parts)-2:]...) + ":" + strconv.Itoa(line)
		}
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	zlog.Logger = newLogger(writer, level, cfg.console())
	zerolog.DefaultContextLogger = &zlog.Logger

	return closeFn, nil
}

// newLogger builds a console logger (colour) or a JSON logger.
// Caller information is attached only at debug level.
func newLogger(w io.Writer, level zerolog.Level, console bool) zerolog.Logger {
	debug := level == zerolog.DebugLevel

	if !console {
		ctx := zerolog.New(w).With().Timestamp()
		if debug {
			ctx = ctx.Caller()
		}
		return ctx.Logger()
	}

	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	if debug {
		cw.PartsOrder = []string{"time", "level", "message", "caller"}
		cw.FormatCaller = func(i interface{}) string {
			s, _ := i.(string)
			return "(" + s + ")"
		}
		return zerolog.New(cw).With().Timestamp().Caller().Logger()
	}
	return zerolog.New(cw).With().Timestamp().Logger()
}

// ParseLevel parses the log level string. Unknown values map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
