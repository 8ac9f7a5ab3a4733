package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/josephlewis42/dirscript/core/directory"
)

// Directory is the user/group store that handlers mutate.
type Directory interface {
	CreateUser(name string) error
	DeleteUser(name string) error
	DisableUser(name string) error
	UserExists(name string) bool
	IsUserEnabled(name string) bool
	SendMessage(name, message string) error
	AddUserToGroup(name, group string) error
	RemoveUserFromGroup(name, group string) error
	ListUsers() []string
	ListGroups() []string
	MessageHistory(name string) ([]string, error)
}

var _ Directory = (*directory.Store)(nil)

const (
	successMark = "✅"
	failureMark = "❌"
)

// Outcome is the result of executing a single command.
type Outcome struct {
	Succeeded bool
	Message   string
	// Terminates stops the rest of the script whether or not the command
	// succeeded.
	Terminates bool
}

func succeeded(format string, a ...interface{}) Outcome {
	return Outcome{Succeeded: true, Message: successMark + " " + fmt.Sprintf(format, a...)}
}

func failed(err error, format string, a ...interface{}) Outcome {
	return Outcome{
		Message: fmt.Sprintf("%s %s (Failed: %s)", failureMark, fmt.Sprintf(format, a...), failureReason(err)),
	}
}

// failureReason turns a directory error into the sentence case reason shown
// to script authors.
func failureReason(err error) string {
	switch {
	case errors.Is(err, directory.ErrUserExists):
		return "User already exists"
	case errors.Is(err, directory.ErrUserNotFound):
		return "User does not exist"
	case errors.Is(err, directory.ErrUserDisabled):
		return "User is disabled"
	}

	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// UnknownCommand is returned when dispatching a command with no handler.
var UnknownCommand = Outcome{Message: failureMark + " Unknown command"}

// Handler executes one kind of command against a directory.
type Handler interface {
	Execute(cmd Command, dir Directory) Outcome
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(cmd Command, dir Directory) Outcome

// Execute implements Handler.
func (f HandlerFunc) Execute(cmd Command, dir Directory) Outcome {
	return f(cmd, dir)
}

var _ Handler = (HandlerFunc)(nil)

// Registry maps command kinds to their handlers. Registration is expected to
// finish before dispatching starts; the registry is not safe for concurrent
// mutation.
type Registry struct {
	handlers map[Kind]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Kind]Handler)}
}

// Register binds the handler to the kind.
func (r *Registry) Register(kind Kind, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("nil handler for %s", kind)
	}
	if _, ok := r.handlers[kind]; ok {
		return fmt.Errorf("handler for %s already registered", kind)
	}

	r.handlers[kind] = handler
	return nil
}

// Lookup returns the handler registered for the kind.
func (r *Registry) Lookup(kind Kind) (Handler, bool) {
	handler, ok := r.handlers[kind]
	return handler, ok
}

// Dispatch runs the handler registered for the command's kind.
func (r *Registry) Dispatch(cmd Command, dir Directory) Outcome {
	if cmd == nil {
		return UnknownCommand
	}

	handler, ok := r.Lookup(cmd.Kind())
	if !ok {
		return UnknownCommand
	}
	return handler.Execute(cmd, dir)
}

// Kinds returns the registered kinds in grammar order.
func (r *Registry) Kinds() []Kind {
	var out []Kind
	for kind := range r.handlers {
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Builtins holds a handler for every command kind.
var Builtins = NewRegistry()

// mustRegister adds a handler to Builtins, it panics on conflicts because
// those are programming errors caught at startup.
func mustRegister(kind Kind, handler HandlerFunc) {
	if err := Builtins.Register(kind, handler); err != nil {
		panic(err)
	}
}
