package cmd

import (
	"fmt"
	"sort"

	"github.com/josephlewis42/dirscript/commands"
	"github.com/josephlewis42/dirscript/core/shell"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the command grammar and shell builtins
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands scripts can use and the shell builtins.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var builtins []string

		for _, kind := range commands.Builtins.Kinds() {
			builtins = append(builtins, kind.Usage())
		}

		for name := range shell.AllBuiltins {
			builtins = append(builtins, "shell:"+name)
		}

		sort.Strings(builtins)

		for _, v := range builtins {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
