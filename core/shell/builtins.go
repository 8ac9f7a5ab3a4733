package shell

import (
	"fmt"
	"sort"

	"github.com/pborman/getopt/v2"
)

// AllBuiltins holds a list of all registered shell builtins
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

var builtinSummaries = map[string]string{
	"exit":    "leave the shell",
	"help":    "show builtins and the command grammar",
	"history": "display or clear the history list",
	"reset":   "remove every user and group",
	"run":     "run task files in isolation",
}

// newOpts creates a flag set with a --help flag.
func newOpts(args []string, params string) (*getopt.Set, *bool) {
	opts := getopt.New()
	opts.SetProgram(args[0])
	opts.SetParameters(params)
	return opts, opts.BoolLong("help", 'h', "show help and exit")
}

// Help lists the builtins and the command grammar.
func Help(s *Shell, args []string) int {
	w := s.Out
	fmt.Fprintln(w, "Builtins:")

	var builtins []string
	for k := range AllBuiltins {
		builtins = append(builtins, k)
	}
	sort.Strings(builtins)
	for _, name := range builtins {
		fmt.Fprintf(w, "  %-8s %s\n", name, builtinSummaries[name])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, kind := range s.Registry.Kinds() {
		fmt.Fprintf(w, "  %s\n", kind.Usage())
	}
	return 0
}

// History displays the history list with line numbers.
func History(s *Shell, args []string) int {
	opts, helpOpt := newOpts(args, "")
	clearOpt := opts.Bool('c', "clear the history by deleting all entries")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		if err != nil {
			fmt.Fprintln(s.Out, err)
		}
		fmt.Fprintln(s.Out, "Display or manipulate the history list.")
		fmt.Fprintln(s.Out)
		opts.PrintUsage(s.Out)
		return 1
	}

	if *clearOpt {
		if s.Readline != nil {
			s.Readline.Operation.ResetHistory()
		}
		s.history = nil
		return 0
	}

	for i, line := range s.history {
		fmt.Fprintf(s.Out, "% 5d  %s\n", i+1, line)
	}
	return 0
}

// Reset clears the shell's directory.
func Reset(s *Shell, args []string) int {
	s.Store.Reset()
	s.Printer.Status(s.Out, "Directory reset")
	return 0
}

// Run executes task files through the task runner. The shell's own
// directory is untouched.
func Run(s *Shell, args []string) int {
	opts, helpOpt := newOpts(args, "FILE...")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt || opts.NArgs() == 0 {
		if err != nil {
			fmt.Fprintln(s.Out, err)
		}
		fmt.Fprintln(s.Out, "Run task files, each against an empty directory.")
		fmt.Fprintln(s.Out)
		opts.PrintUsage(s.Out)
		return 1
	}

	status := 0
	for _, res := range s.Runner.RunAll(opts.Args()) {
		if res.State.Failed() {
			status = 1
		}
	}
	return status
}

// Exit quits the shell
func Exit(s *Shell, args []string) int {
	s.exited = true
	return 0
}

func init() {
	AllBuiltins["help"] = ShellBuiltinFunc(Help)
	AllBuiltins["history"] = ShellBuiltinFunc(History)
	AllBuiltins["reset"] = ShellBuiltinFunc(Reset)
	AllBuiltins["run"] = ShellBuiltinFunc(Run)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
}
