package task

import (
	"fmt"

	"github.com/josephlewis42/dirscript/commands"
)

// LoadError is returned when a task file can't be opened or read.
type LoadError struct {
	// Op is "open" or "read".
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot %s file %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SyntaxError is returned for a line that doesn't parse as a command.
type SyntaxError struct {
	Line   int
	Text   string
	Reason string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: invalid command %q: %s at offset %d", e.Line, e.Text, e.Reason, e.Offset)
}

// CommandError is returned for a command that didn't succeed.
type CommandError struct {
	Line    int
	Outcome commands.Outcome
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Outcome.Message)
}
