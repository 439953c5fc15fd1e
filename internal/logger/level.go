package logger

import (
	"log/slog"
	"strings"
)

// Level is the process-wide minimum log level. It starts at warn so that a
// successful run writes nothing to stderr.
var Level = newLevel(slog.LevelWarn)

type level struct {
	lvl *slog.LevelVar
}

func newLevel(l slog.Level) *level {
	v := &slog.LevelVar{}
	v.Set(l)
	return &level{lvl: v}
}

func (l *level) Enabled(level slog.Level) bool {
	return level >= l.lvl.Level()
}

func (l *level) Set(level slog.Level) {
	l.lvl.Set(level)
}

// SetByName sets the level from its name and reports whether the name was
// recognized. Unknown names leave the level unchanged.
func (l *level) SetByName(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "err", "error":
		l.lvl.Set(slog.LevelError)
	case "warn", "warning":
		l.lvl.Set(slog.LevelWarn)
	case "info":
		l.lvl.Set(slog.LevelInfo)
	case "debug":
		l.lvl.Set(slog.LevelDebug)
	default:
		return false
	}
	return true
}
