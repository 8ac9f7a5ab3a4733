package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/josephlewis42/dirscript/core/script"
	"github.com/josephlewis42/dirscript/core/task"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// checkFiles writes a line for every problem in the given task files and
// returns the number of problems found. Columns are 1-based within the line
// after comments and surrounding whitespace are removed.
func checkFiles(fs afero.Fs, w io.Writer, paths []string) int {
	problems := 0
	for _, path := range paths {
		lines, err := task.Load(fs, path)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", path, err)
			problems++
			continue
		}

		for _, line := range lines {
			_, err := script.Parse(line.Text)
			if err == nil {
				continue
			}

			problems++
			var syntaxErr *script.SyntaxError
			if errors.As(err, &syntaxErr) {
				fmt.Fprintf(w, "%s:%d:%d: %s\n", path, line.Number, syntaxErr.Offset+1, syntaxErr.Reason)
			} else {
				fmt.Fprintf(w, "%s:%d: %v\n", path, line.Number, err)
			}
		}
	}
	return problems
}

// checkCmd validates task files without running them
var checkCmd = &cobra.Command{
	Use:   "check TASK...",
	Short: "Report every invalid line in task files without running them.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if problems := checkFiles(afero.NewOsFs(), cmd.OutOrStdout(), args); problems > 0 {
			return fmt.Errorf("found %d problem(s)", problems)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
