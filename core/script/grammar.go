package script

import (
	"fmt"

	"github.com/josephlewis42/dirscript/commands"
)

// SyntaxError describes a line that isn't a well formed command.
type SyntaxError struct {
	Reason string
	// Offset is the byte offset into the line where parsing stopped.
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Reason, e.Offset)
}

// spaced requires whitespace before p.
func spaced[T any](p Parser[T]) Parser[T] {
	return Skip(Whitespace, p)
}

var (
	createUserParser = Map(
		Skip(Keywords("CREATE", "USER"), spaced(Identifier)),
		func(name string) commands.Command {
			return commands.CreateUser{Username: name}
		})

	deleteUserParser = Map(
		Skip(Keywords("DELETE", "USER"), spaced(Identifier)),
		func(name string) commands.Command {
			return commands.DeleteUser{Username: name}
		})

	disableUserParser = Map(
		Skip(Keywords("DISABLE", "USER"), spaced(Identifier)),
		func(name string) commands.Command {
			return commands.DisableUser{Username: name}
		})

	sendMessageParser = Map(
		Seq(
			Skip(Keywords("SEND", "MESSAGE"), spaced(Identifier)),
			spaced(QuotedString),
		),
		func(p Pair[string, string]) commands.Command {
			return commands.SendMessage{Username: p.First, Message: p.Second}
		})

	pingParser = Map(
		Seq(
			Skip(Literal("PING"), spaced(Identifier)),
			spaced(Integer),
		),
		func(p Pair[string, int]) commands.Command {
			return commands.Ping{Username: p.First, Times: p.Second}
		})

	addUserToGroupParser = Map(
		Seq(
			Skip(Keywords("ADD", "USER"), spaced(Identifier)),
			Skip(spaced(Keywords("TO", "GROUP")), spaced(Identifier)),
		),
		func(p Pair[string, string]) commands.Command {
			return commands.AddUserToGroup{Username: p.First, Group: p.Second}
		})

	removeUserFromGroupParser = Map(
		Seq(
			Skip(Keywords("REMOVE", "USER"), spaced(Identifier)),
			Skip(spaced(Keywords("FROM", "GROUP")), spaced(Identifier)),
		),
		func(p Pair[string, string]) commands.Command {
			return commands.RemoveUserFromGroup{Username: p.First, Group: p.Second}
		})

	getUsersParser = Map(
		Keywords("GET", "USERS"),
		func(string) commands.Command {
			return commands.GetUsers{}
		})

	getGroupsParser = Map(
		Keywords("GET", "GROUPS"),
		func(string) commands.Command {
			return commands.GetGroups{}
		})

	getMessageHistoryParser = Map(
		Skip(Keywords("GET", "MESSAGE", "HISTORY"), spaced(Identifier)),
		func(name string) commands.Command {
			return commands.GetMessageHistory{Username: name}
		})

	exitParser = Map(
		Literal("EXIT"),
		func(string) commands.Command {
			return commands.Exit{}
		})
)

// CommandParser parses any command. It may succeed without consuming the
// whole line; use Parse to validate a complete line.
var CommandParser = OneOf(
	createUserParser,
	deleteUserParser,
	disableUserParser,
	sendMessageParser,
	pingParser,
	addUserToGroupParser,
	removeUserFromGroupParser,
	getUsersParser,
	getGroupsParser,
	getMessageHistoryParser,
	exitParser,
)

// Parse parses a complete line. Trailing input, including whitespace, makes
// the line invalid.
func Parse(line string) (commands.Command, error) {
	r := CommandParser(line, 0)
	switch {
	case !r.Ok():
		return nil, &SyntaxError{Reason: r.Reason, Offset: r.Pos}
	case r.Pos != len(line):
		return nil, &SyntaxError{Reason: "Unexpected input after command", Offset: r.Pos}
	}
	return r.Value, nil
}
