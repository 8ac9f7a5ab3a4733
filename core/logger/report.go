package logger

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries int        `json:"unknown_log_entries,omitempty"`
	Sessions       StrCounter `json:"sessions"`

	Tasks           TaskReport           `json:"task_report"`
	Commands        CommandReport        `json:"command_report"`
	InvalidCommands InvalidCommandReport `json:"invalid_command_report"`
}

// Update adds the entry to the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	if le.SessionID != "" {
		r.Sessions.Increment(le.SessionID)
	}

	switch event := le.Event().(type) {
	case *TaskStarted:
		r.Tasks.Started++
	case *TaskFinished:
		r.Tasks.States.Increment(event.State)
	case *TaskError:
		r.Tasks.States.Increment("errored")
		r.Tasks.Errors = append(r.Tasks.Errors, event.Error)
	case *CommandRun:
		r.Commands.update(event)
	case *InvalidCommand:
		r.InvalidCommands.update(le.Task, event)
	default:
		r.InvalidEntries++
	}
}

type TaskReport struct {
	Started int `json:"started"`
	// Terminal states and their counts.
	States StrCounter `json:"states"`
	Errors []string   `json:"errors,omitempty"`
}

type CommandReport struct {
	// Kinds of executed commands and their counts.
	Kinds StrCounter `json:"kinds"`
	// Kinds of commands that failed and their counts.
	Failures StrCounter `json:"failures"`
}

func (r *CommandReport) update(cr *CommandRun) {
	r.Kinds.Increment(cr.Kind)
	if !cr.Succeeded {
		r.Failures.Increment(cr.Kind)
	}
}

type InvalidCommandReport struct {
	Count int `json:"count"`
	// Reasons lines failed to parse and their counts.
	Reasons StrCounter `json:"reasons"`
	// Locations as task:line.
	Locations []string `json:"locations,omitempty"`
}

func (r *InvalidCommandReport) update(task string, ic *InvalidCommand) {
	r.Count++
	r.Reasons.Increment(ic.Reason)
	r.Locations = append(r.Locations, fmt.Sprintf("%s:%d", task, ic.Line))
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}
