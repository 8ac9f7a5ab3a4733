// Package shell is an interactive prompt for running commands against a
// single directory store.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/josephlewis42/dirscript/commands"
	"github.com/josephlewis42/dirscript/core/directory"
	"github.com/josephlewis42/dirscript/core/script"
	"github.com/josephlewis42/dirscript/core/task"
)

const DefaultPrompt = "dirscript> "

// Shell reads commands a line at a time. Unlike a task, a failed command
// doesn't end the session and state persists until reset.
type Shell struct {
	Store    task.Store
	Registry *commands.Registry
	Printer  *commands.Printer
	// Runner executes task files for the run builtin. It has its own store.
	Runner *task.Runner
	Out    io.Writer

	Prompt string
	// HistoryLimit bounds the history builtin, 0 keeps everything.
	HistoryLimit int

	Readline *readline.Instance

	history []string
	exited  bool
}

// New creates a shell that writes to the runner's output and shares its
// printer and registry.
func New(runner *task.Runner) *Shell {
	return &Shell{
		Store:    directory.New(),
		Registry: runner.Registry,
		Printer:  runner.Printer,
		Runner:   runner,
		Out:      runner.Out,
		Prompt:   DefaultPrompt,
	}
}

// Run reads lines from stdin until EOF or an exit.
func (s *Shell) Run(stdin io.Reader) error {
	cfg := &readline.Config{
		Prompt: s.Prompt,
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: s.Out,
	}
	if s.HistoryLimit > 0 {
		cfg.HistoryLimit = s.HistoryLimit
	}
	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()
	s.Readline = rl

	for !s.exited {
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue // Discard the line.

		case err != nil:
			return err
		}

		s.RunLine(line)
	}
	return nil
}

// Exited is true once the shell has been asked to quit.
func (s *Shell) Exited() bool {
	return s.exited
}

// RunLine handles a single line of input, returning false if the shell
// should quit.
func (s *Shell) RunLine(line string) bool {
	line = task.CleanLine(line)
	if line == "" {
		return !s.exited
	}
	s.addHistory(line)

	if name := strings.Fields(line)[0]; AllBuiltins[name] != nil {
		tokens, err := shlex.Split(line, true)
		if err != nil {
			fmt.Fprintf(s.Out, "%s: %v\n", name, err)
			return !s.exited
		}
		AllBuiltins[name].Main(s, tokens)
		return !s.exited
	}

	cmd, err := script.Parse(line)
	if err != nil {
		s.Printer.Failure(s.Out, "Invalid command: %s (%v)", line, err)
		return !s.exited
	}

	outcome := s.Registry.Dispatch(cmd, s.Store)
	s.Printer.Outcome(s.Out, outcome)
	if outcome.Terminates {
		s.exited = true
	}
	return !s.exited
}

func (s *Shell) addHistory(line string) {
	s.history = append(s.history, line)
	if s.HistoryLimit > 0 && len(s.history) > s.HistoryLimit {
		s.history = s.history[len(s.history)-s.HistoryLimit:]
	}
}

// History returns the lines entered so far, oldest first.
func (s *Shell) History() []string {
	return append([]string(nil), s.history...)
}
