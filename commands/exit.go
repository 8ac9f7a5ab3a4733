package commands

// ExitCmd ends the script without failing it.
func ExitCmd(Command, Directory) Outcome {
	return Outcome{
		Succeeded:  true,
		Message:    successMark + " EXIT",
		Terminates: true,
	}
}

func init() {
	mustRegister(KindExit, ExitCmd)
}
