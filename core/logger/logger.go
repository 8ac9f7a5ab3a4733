package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// TaskStarted is recorded when a task file begins loading.
type TaskStarted struct{}

// CommandRun is recorded after a command is dispatched.
type CommandRun struct {
	Line       int    `json:"line"`
	Text       string `json:"text"`
	Kind       string `json:"kind"`
	Succeeded  bool   `json:"succeeded"`
	Terminates bool   `json:"terminates,omitempty"`
}

// InvalidCommand is recorded for a line that failed to parse.
type InvalidCommand struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
	Offset int    `json:"offset"`
}

// TaskFinished is recorded when a task reaches a terminal state.
type TaskFinished struct {
	State    string `json:"state"`
	Executed int    `json:"executed"`
}

// TaskError is recorded when a task file can't be loaded.
type TaskError struct {
	Error string `json:"error"`
}

// LogEntry is a single event. Exactly one of the event fields is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`
	Task            string `json:"task,omitempty"`

	TaskStarted    *TaskStarted    `json:"task_started,omitempty"`
	CommandRun     *CommandRun     `json:"command_run,omitempty"`
	InvalidCommand *InvalidCommand `json:"invalid_command,omitempty"`
	TaskFinished   *TaskFinished   `json:"task_finished,omitempty"`
	TaskError      *TaskError      `json:"task_error,omitempty"`
}

// Event is one of the event types that can be stored in a LogEntry.
type Event interface{}

// Event returns the event held by the entry or nil.
func (le *LogEntry) Event() Event {
	switch {
	case le.TaskStarted != nil:
		return le.TaskStarted
	case le.CommandRun != nil:
		return le.CommandRun
	case le.InvalidCommand != nil:
		return le.InvalidCommand
	case le.TaskFinished != nil:
		return le.TaskFinished
	case le.TaskError != nil:
		return le.TaskError
	}
	return nil
}

func (le *LogEntry) setEvent(event Event) error {
	switch e := event.(type) {
	case *TaskStarted:
		le.TaskStarted = e
	case *CommandRun:
		le.CommandRun = e
	case *InvalidCommand:
		le.InvalidCommand = e
	case *TaskFinished:
		le.TaskFinished = e
	case *TaskError:
		le.TaskError = e
	default:
		return fmt.Errorf("unknown event type %T", event)
	}
	return nil
}

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures task events.
type Logger struct {
	Record LogRecorder
	// Now is the clock used to timestamp entries.
	Now func() time.Time
}

// NewJsonLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
		Now: time.Now,
	}
}

// NewSession creates a logger that tags every entry with a fresh session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: uuid.NewString()}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

// SessionID returns the ID attached to every entry.
func (l *SessionLogger) SessionID() string {
	return l.sessionID
}

// Record stores an event about the named task.
func (l *SessionLogger) Record(task string, event Event) error {
	le := &LogEntry{
		SessionID: l.sessionID,
		Task:      task,
	}
	if err := le.setEvent(event); err != nil {
		return err
	}

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	le.TimestampMicros = now().UnixNano() / int64(time.Microsecond)

	return l.Logger.Record(le)
}

// EventRecorder receives task events.
type EventRecorder interface {
	Record(task string, event Event) error
}

var _ EventRecorder = (*SessionLogger)(nil)

// NopEventRecorder discards all events.
type NopEventRecorder struct{}

// Record implements EventRecorder.
func (NopEventRecorder) Record(string, Event) error {
	return nil
}
