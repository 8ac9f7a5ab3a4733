package commands

// Kind identifies a Command variant.
type Kind int

const (
	KindCreateUser Kind = iota
	KindDeleteUser
	KindDisableUser
	KindSendMessage
	KindPing
	KindAddUserToGroup
	KindRemoveUserFromGroup
	KindGetUsers
	KindGetGroups
	KindGetMessageHistory
	KindExit
)

var kindInfo = []struct {
	name  string
	usage string
}{
	KindCreateUser:          {"CREATE USER", "CREATE USER <identifier>"},
	KindDeleteUser:          {"DELETE USER", "DELETE USER <identifier>"},
	KindDisableUser:         {"DISABLE USER", "DISABLE USER <identifier>"},
	KindSendMessage:         {"SEND MESSAGE", `SEND MESSAGE <identifier> "<text>"`},
	KindPing:                {"PING", "PING <identifier> <count>"},
	KindAddUserToGroup:      {"ADD USER TO GROUP", "ADD USER <identifier> TO GROUP <identifier>"},
	KindRemoveUserFromGroup: {"REMOVE USER FROM GROUP", "REMOVE USER <identifier> FROM GROUP <identifier>"},
	KindGetUsers:            {"GET USERS", "GET USERS"},
	KindGetGroups:           {"GET GROUPS", "GET GROUPS"},
	KindGetMessageHistory:   {"GET MESSAGE HISTORY", "GET MESSAGE HISTORY <identifier>"},
	KindExit:                {"EXIT", "EXIT"},
}

// AllKinds lists every Kind in grammar priority order.
func AllKinds() []Kind {
	out := make([]Kind, len(kindInfo))
	for i := range kindInfo {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kindInfo)
}

// String returns the keywords that introduce the command.
func (k Kind) String() string {
	if !k.valid() {
		return "UNKNOWN"
	}
	return kindInfo[k].name
}

// Usage returns a one line grammar for the command.
func (k Kind) Usage() string {
	if !k.valid() {
		return ""
	}
	return kindInfo[k].usage
}

// Command is one parsed script instruction. The set of implementations is
// closed: only the types in this file satisfy it.
type Command interface {
	Kind() Kind
	isCommand()
}

// CreateUser adds an enabled user with no messages or groups.
type CreateUser struct{ Username string }

// DeleteUser removes a user and any groups left without members.
type DeleteUser struct{ Username string }

// DisableUser stops a user from receiving messages.
type DisableUser struct{ Username string }

// SendMessage appends a message to an enabled user's history.
type SendMessage struct {
	Username string
	Message  string
}

// Ping reports Times pings to a user, received only if the user exists.
type Ping struct {
	Username string
	Times    int
}

// AddUserToGroup adds an existing user to a group, creating the group.
type AddUserToGroup struct {
	Username string
	Group    string
}

// RemoveUserFromGroup takes an existing user out of a group.
type RemoveUserFromGroup struct {
	Username string
	Group    string
}

// GetUsers lists every user name in sorted order.
type GetUsers struct{}

// GetGroups lists every group with at least one member in sorted order.
type GetGroups struct{}

// GetMessageHistory lists a user's messages oldest first.
type GetMessageHistory struct{ Username string }

// Exit ends the script successfully.
type Exit struct{}

func (CreateUser) Kind() Kind          { return KindCreateUser }
func (DeleteUser) Kind() Kind          { return KindDeleteUser }
func (DisableUser) Kind() Kind         { return KindDisableUser }
func (SendMessage) Kind() Kind         { return KindSendMessage }
func (Ping) Kind() Kind                { return KindPing }
func (AddUserToGroup) Kind() Kind      { return KindAddUserToGroup }
func (RemoveUserFromGroup) Kind() Kind { return KindRemoveUserFromGroup }
func (GetUsers) Kind() Kind            { return KindGetUsers }
func (GetGroups) Kind() Kind           { return KindGetGroups }
func (GetMessageHistory) Kind() Kind   { return KindGetMessageHistory }
func (Exit) Kind() Kind                { return KindExit }

func (CreateUser) isCommand()          {}
func (DeleteUser) isCommand()          {}
func (DisableUser) isCommand()         {}
func (SendMessage) isCommand()         {}
func (Ping) isCommand()                {}
func (AddUserToGroup) isCommand()      {}
func (RemoveUserFromGroup) isCommand() {}
func (GetUsers) isCommand()            {}
func (GetGroups) isCommand()           {}
func (GetMessageHistory) isCommand()   {}
func (Exit) isCommand()                {}
