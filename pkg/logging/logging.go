// Package logging builds the zerolog logger shared by the CLI and the TUI.
//
// Records go to an optional log file and to a StatusSink that forwards
// them into the running bubbletea program, where they appear in the status
// bar for a few seconds.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const filePermission = 0o664

// Options selects the sinks and levels of a logger
type Options struct {
	File        string // log file path; empty disables the file sink
	Level       string // minimum level written anywhere, default "info"
	StatusLevel string // minimum level forwarded to the status bar, default "warn"
}

// Logger bundles the zerolog logger with the resources behind it
type Logger struct {
	zerolog.Logger
	Status *StatusSink
	file   *os.File
}

// New builds a logger from opts. The returned logger must be closed to
// release the log file.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level, zerolog.InfoLevel)
	if err != nil {
		return nil, err
	}
	statusLevel, err := ParseLevel(opts.StatusLevel, zerolog.WarnLevel)
	if err != nil {
		return nil, err
	}

	l := &Logger{Status: NewStatusSink(statusLevel)}
	writers := []io.Writer{l.Status}

	if opts.File != "" {
		l.file, err = os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermission)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, zerolog.SyncWriter(l.file))
	}

	l.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	return l, nil
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel parses a level name, falling back to def when s is empty
func ParseLevel(s string, def zerolog.Level) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return def, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return def, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
