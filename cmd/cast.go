package cmd

import (
	"time"

	"github.com/josephlewis42/dirscript/core/ttylog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var idleTimeLimit time.Duration

var castCmd = &cobra.Command{
	Use:   "cast",
	Short: "Replay transcripts recorded with run --cast.",
}

// castPlayCommand replays a recording in real time
var castPlayCommand = &cobra.Command{
	Use:   "play FILE." + ttylog.AsciicastFileExt,
	Short: "Replay a recorded transcript in the terminal.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fd, err := afero.NewOsFs().Open(args[0])
		if err != nil {
			return err
		}
		defer fd.Close()

		return ttylog.Replay(fd, cmd.OutOrStdout(), idleTimeLimit)
	},
}

// castCatCommand prints a recording without pauses
var castCatCommand = &cobra.Command{
	Use:   "cat FILE." + ttylog.AsciicastFileExt,
	Short: "Print the full output of a recorded transcript.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fd, err := afero.NewOsFs().Open(args[0])
		if err != nil {
			return err
		}
		defer fd.Close()

		return ttylog.Replay(fd, cmd.OutOrStdout(), 0)
	},
}

func init() {
	rootCmd.AddCommand(castCmd)
	castCmd.AddCommand(castPlayCommand)
	castCmd.AddCommand(castCatCommand)

	castPlayCommand.Flags().DurationVarP(&idleTimeLimit, "idle-time-limit", "i", 3*time.Second, "Maximum time output can be idle. (e.g. 3s, 2m, 100ms)")
}
