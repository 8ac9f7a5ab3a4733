// Package task runs script files against a directory store.
package task

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/josephlewis42/dirscript/commands"
	"github.com/josephlewis42/dirscript/core/directory"
	"github.com/josephlewis42/dirscript/core/logger"
	"github.com/josephlewis42/dirscript/core/script"
	"github.com/spf13/afero"
)

// Store is a directory that can be cleared between tasks.
type Store interface {
	commands.Directory
	Reset()
}

var _ Store = (*directory.Store)(nil)

// Result is the terminal report of a single task.
type Result struct {
	Task  string
	State State
	// Executed is the number of commands dispatched.
	Executed int
	// Err is a *LoadError, *SyntaxError or *CommandError when the task
	// didn't complete.
	Err error
}

// Runner executes task files one at a time. The store is reset before each
// task so no state is shared between them.
type Runner struct {
	Fs       afero.Fs
	Store    Store
	Registry *commands.Registry
	Printer  *commands.Printer
	Events   logger.EventRecorder
	Out      io.Writer
	// Log receives diagnostics, such as failures to record events.
	Log *log.Logger

	state State
}

// NewRunner creates a runner reading tasks from fs and writing the
// transcript to out without color.
func NewRunner(fs afero.Fs, out io.Writer) *Runner {
	return &Runner{
		Fs:       fs,
		Store:    directory.New(),
		Registry: commands.Builtins,
		Printer:  commands.NewPrinter(commands.ColorNever),
		Events:   logger.NopEventRecorder{},
		Out:      out,
		Log:      log.New(io.Discard, "", 0),
	}
}

// State returns the state of the current or most recent task.
func (r *Runner) State() State {
	return r.state
}

// RunAll runs every task in order. A failed task never stops the batch.
func (r *Runner) RunAll(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, r.Run(path))
	}
	return results
}

// Run executes the task file at path and reports its transcript.
func (r *Runner) Run(path string) Result {
	r.state = Idle
	res := Result{Task: path}
	r.record(path, &logger.TaskStarted{})
	r.Printer.Status(r.Out, "Processing task: %s", path)

	r.state = Loading
	r.Store.Reset()
	lines, err := Load(r.Fs, path)
	if err != nil {
		r.Printer.Failure(r.Out, "Error processing task %s: %v", path, err)
		r.record(path, &logger.TaskError{Error: err.Error()})
		return r.finish(res, Errored, err)
	}

	r.state = Running
	for _, line := range lines {
		cmd, err := script.Parse(line.Text)
		if err != nil {
			syntaxErr := &SyntaxError{Line: line.Number, Text: line.Text, Reason: err.Error()}
			var parseErr *script.SyntaxError
			if errors.As(err, &parseErr) {
				syntaxErr.Reason = parseErr.Reason
				syntaxErr.Offset = parseErr.Offset
			}

			r.Printer.Failure(r.Out, "Invalid command: %s", line.Text)
			r.record(path, &logger.InvalidCommand{
				Line:   line.Number,
				Text:   line.Text,
				Reason: syntaxErr.Reason,
				Offset: syntaxErr.Offset,
			})
			return r.finish(res, Aborted, syntaxErr)
		}

		outcome := r.Registry.Dispatch(cmd, r.Store)
		res.Executed++
		r.Printer.Outcome(r.Out, outcome)
		r.record(path, &logger.CommandRun{
			Line:       line.Number,
			Text:       line.Text,
			Kind:       cmd.Kind().String(),
			Succeeded:  outcome.Succeeded,
			Terminates: outcome.Terminates,
		})

		switch {
		case outcome.Terminates:
			return r.finish(res, Completed, nil)
		case !outcome.Succeeded:
			return r.finish(res, Aborted, &CommandError{Line: line.Number, Outcome: outcome})
		}
	}

	return r.finish(res, Completed, nil)
}

func (r *Runner) finish(res Result, state State, err error) Result {
	r.state = state
	res.State = state
	res.Err = err

	if state == Completed {
		r.Printer.Status(r.Out, "Task %s completed successfully", res.Task)
	} else {
		r.Printer.Status(r.Out, "Task %s stopped due to failure", res.Task)
	}
	fmt.Fprintln(r.Out)

	if state != Errored {
		r.record(res.Task, &logger.TaskFinished{State: state.String(), Executed: res.Executed})
	}
	return res
}

func (r *Runner) record(task string, event logger.Event) {
	if r.Events == nil {
		return
	}
	if err := r.Events.Record(task, event); err != nil && r.Log != nil {
		r.Log.Printf("couldn't record event for %s: %v", task, err)
	}
}
