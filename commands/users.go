package commands

// CreateUserCmd adds a new enabled user.
func CreateUserCmd(cmd Command, dir Directory) Outcome {
	c, ok := cmd.(CreateUser)
	if !ok {
		return UnknownCommand
	}

	if err := dir.CreateUser(c.Username); err != nil {
		return failed(err, "CREATE USER %s", c.Username)
	}
	return succeeded("CREATE USER %s", c.Username)
}

// DeleteUserCmd removes a user and the groups only it belonged to.
func DeleteUserCmd(cmd Command, dir Directory) Outcome {
	c, ok := cmd.(DeleteUser)
	if !ok {
		return UnknownCommand
	}

	if err := dir.DeleteUser(c.Username); err != nil {
		return failed(err, "DELETE USER %s", c.Username)
	}
	return succeeded("DELETE USER %s", c.Username)
}

// DisableUserCmd disables a user, it's idempotent.
func DisableUserCmd(cmd Command, dir Directory) Outcome {
	c, ok := cmd.(DisableUser)
	if !ok {
		return UnknownCommand
	}

	if err := dir.DisableUser(c.Username); err != nil {
		return failed(err, "DISABLE USER %s", c.Username)
	}
	return succeeded("DISABLE USER %s", c.Username)
}

func init() {
	mustRegister(KindCreateUser, CreateUserCmd)
	mustRegister(KindDeleteUser, DeleteUserCmd)
	mustRegister(KindDisableUser, DisableUserCmd)
}
