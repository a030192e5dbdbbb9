package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process logger writing to stdout.
func (c LoggerConfig) NewLogger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

func (c LoggerConfig) newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}

	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c LoggerConfig) level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
