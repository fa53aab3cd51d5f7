package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/config"
)

// Levels outside the slog defaults.
const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)

	// levelOff is above every level a record can carry.
	levelOff = slog.Level(1 << 10)
)

// NewJSONLogger writes JSON records to logging.path/logging.file_name when
// both are set, otherwise to stdout. A log file that cannot be opened falls
// back to stdout and the failure is logged once.
func NewJSONLogger(cfg config.ConfigProvider) *slog.Logger {
	level := parseLevel(cfg.GetString(config.KeyLogLevel))

	out, openErr := openOutput(cfg.GetString(config.KeyLogPath), cfg.GetString(config.KeyLogFileName))
	logger := slog.New(newHandler(out, level))

	if openErr != nil {
		logger.Warn("log file unavailable, writing to stdout", "error", openErr)
	}

	return logger
}

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				return slog.String(slog.TimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
			case slog.LevelKey:
				if lvl, ok := attr.Value.Any().(slog.Level); ok {
					return slog.String(slog.LevelKey, levelName(lvl))
				}
			}
			return attr
		},
	})
}

func openOutput(dir, fileName string) (io.Writer, error) {
	dir, fileName = strings.TrimSpace(dir), strings.TrimSpace(fileName)
	if dir == "" || fileName == "" {
		return os.Stdout, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return os.Stdout, err
	}

	file, err := os.OpenFile(filepath.Join(dir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return os.Stdout, err
	}
	return file, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "fatal":
		return LevelFatal
	case "off", "none":
		return levelOff
	default:
		return slog.LevelInfo
	}
}

func levelName(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "TRACE"
	case level >= LevelFatal:
		return "FATAL"
	default:
		return level.String()
	}
}
