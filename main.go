package main

import "github.com/josephlewis42/dirscript/cmd"

func main() {
	cmd.Execute()
}
