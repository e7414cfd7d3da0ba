package logging

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// StatusMsg delivers one log record to the bubbletea model for display in
// the status bar.
type StatusMsg struct {
	Summary    string // "message (key=value, ...)"
	Structured string // the raw JSON record
	Level      zerolog.Level
}

// StatusFadeMsg clears the status bar message
type StatusFadeMsg struct{}

// StatusFadeDelay is how long a record stays in the status bar
const StatusFadeDelay = 5 * time.Second

// FadeAfterDelay schedules a StatusFadeMsg
func FadeAfterDelay() tea.Cmd {
	return tea.Tick(StatusFadeDelay, func(time.Time) tea.Msg {
		return StatusFadeMsg{}
	})
}

// statusQueueSize bounds the records waiting for the event loop. Records
// past it are dropped.
const statusQueueSize = 64

// StatusSink is a zerolog.LevelWriter that turns records into StatusMsg
// values sent to a bubbletea program. Records arriving before SetProgram
// are dropped. Writes never block: records are queued and a pump
// goroutine hands them to the program, so logging from inside Update is
// safe.
type StatusSink struct {
	level   zerolog.Level
	program atomic.Pointer[tea.Program]
	queue   chan StatusMsg
	pump    sync.Once
}

// NewStatusSink creates a sink that forwards records at or above level
func NewStatusSink(level zerolog.Level) *StatusSink {
	return &StatusSink{level: level, queue: make(chan StatusMsg, statusQueueSize)}
}

// SetProgram attaches the program that receives messages and starts the
// pump. Safe to call from any goroutine.
func (s *StatusSink) SetProgram(p *tea.Program) {
	s.program.Store(p)
	s.pump.Do(func() { go s.run() })
}

func (s *StatusSink) run() {
	for msg := range s.queue {
		if program := s.program.Load(); program != nil {
			program.Send(msg)
		}
	}
}

// Write implements io.Writer for records that carry no level
func (s *StatusSink) Write(p []byte) (int, error) {
	return s.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter
func (s *StatusSink) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < s.level || s.program.Load() == nil {
		return len(p), nil
	}
	select {
	case s.queue <- summarize(level, p):
	default:
	}
	return len(p), nil
}

// summarize decodes a zerolog JSON line into a one-line summary
func summarize(level zerolog.Level, p []byte) StatusMsg {
	structured := string(trimNewline(p))
	msg := StatusMsg{Summary: structured, Structured: structured, Level: level}

	var fields map[string]any
	if err := json.Unmarshal(p, &fields); err != nil {
		return msg
	}

	summary, _ := fields[zerolog.MessageFieldName].(string)
	var keys []string
	for k := range fields {
		switch k {
		case zerolog.MessageFieldName, zerolog.LevelFieldName, zerolog.TimestampFieldName:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) > 0 {
		summary += " ("
		for i, k := range keys {
			if i > 0 {
				summary += ", "
			}
			summary += fmt.Sprintf("%s=%v", k, fields[k])
		}
		summary += ")"
	}
	msg.Summary = summary
	return msg
}

func trimNewline(p []byte) []byte {
	for len(p) > 0 && (p[len(p)-1] == '\n' || p[len(p)-1] == '\r') {
		p = p[:len(p)-1]
	}
	return p
}
