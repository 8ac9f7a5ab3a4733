package commands

import "strings"

// AddUserToGroupCmd adds a user to a group, creating the group if needed.
func AddUserToGroupCmd(cmd Command, dir Directory) Outcome {
	c, ok := cmd.(AddUserToGroup)
	if !ok {
		return UnknownCommand
	}

	if err := dir.AddUserToGroup(c.Username, c.Group); err != nil {
		return failed(err, "ADD USER %s TO GROUP %s", c.Username, c.Group)
	}
	return succeeded("ADD USER %s TO GROUP %s", c.Username, c.Group)
}

// RemoveUserFromGroupCmd removes a user from a group. Only a missing user is
// an error.
func RemoveUserFromGroupCmd(cmd Command, dir Directory) Outcome {
	c, ok := cmd.(RemoveUserFromGroup)
	if !ok {
		return UnknownCommand
	}

	if err := dir.RemoveUserFromGroup(c.Username, c.Group); err != nil {
		return failed(err, "REMOVE USER %s FROM GROUP %s", c.Username, c.Group)
	}
	return succeeded("REMOVE USER %s FROM GROUP %s", c.Username, c.Group)
}

// GetUsersCmd lists every user name.
func GetUsersCmd(_ Command, dir Directory) Outcome {
	return succeeded("GET USERS\nUsers: %s", joinOrNone(dir.ListUsers()))
}

// GetGroupsCmd lists every group name.
func GetGroupsCmd(_ Command, dir Directory) Outcome {
	return succeeded("GET GROUPS\nGroups: %s", joinOrNone(dir.ListGroups()))
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func init() {
	mustRegister(KindAddUserToGroup, AddUserToGroupCmd)
	mustRegister(KindRemoveUserFromGroup, RemoveUserFromGroupCmd)
	mustRegister(KindGetUsers, GetUsersCmd)
	mustRegister(KindGetGroups, GetGroupsCmd)
}
