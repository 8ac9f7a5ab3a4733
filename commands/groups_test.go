package commands

import (
	"testing"

	"github.com/josephlewis42/dirscript/core/directory"
	"github.com/stretchr/testify/assert"
)

func TestGroupCommands(t *testing.T) {
	dir := directory.New()
	out := dispatchAll(dir,
		GetGroups{},
		AddUserToGroup{Username: "alice", Group: "ops"},
		CreateUser{Username: "alice"},
		CreateUser{Username: "bob"},
		AddUserToGroup{Username: "alice", Group: "ops"},
		AddUserToGroup{Username: "bob", Group: "dev"},
		GetGroups{},
		RemoveUserFromGroup{Username: "carol", Group: "ops"},
		RemoveUserFromGroup{Username: "bob", Group: "ops"},
		RemoveUserFromGroup{Username: "alice", Group: "ops"},
		GetGroups{},
	)

	assert.Equal(t, Outcome{Succeeded: true, Message: "✅ GET GROUPS\nGroups: (none)"}, out[0])
	assert.Equal(t, "❌ ADD USER alice TO GROUP ops (Failed: User does not exist)", out[1].Message)
	assert.False(t, out[1].Succeeded)
	assert.Equal(t, Outcome{Succeeded: true, Message: "✅ ADD USER alice TO GROUP ops"}, out[4])
	assert.Equal(t, "✅ GET GROUPS\nGroups: dev, ops", out[6].Message)
	assert.Equal(t, "❌ REMOVE USER carol FROM GROUP ops (Failed: User does not exist)", out[7].Message)
	assert.True(t, out[8].Succeeded, "not a member is fine")
	assert.Equal(t, Outcome{Succeeded: true, Message: "✅ REMOVE USER alice FROM GROUP ops"}, out[9])
	assert.Equal(t, "✅ GET GROUPS\nGroups: dev", out[10].Message)
}

func TestGetUsers(t *testing.T) {
	dir := directory.New()
	out := dispatchAll(dir,
		GetUsers{},
		CreateUser{Username: "zed"},
		CreateUser{Username: "amy"},
		GetUsers{},
	)

	assert.Equal(t, Outcome{Succeeded: true, Message: "✅ GET USERS\nUsers: (none)"}, out[0])
	assert.Equal(t, Outcome{Succeeded: true, Message: "✅ GET USERS\nUsers: amy, zed"}, out[3])
}
