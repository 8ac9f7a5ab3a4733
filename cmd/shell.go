package cmd

import (
	"log"

	"github.com/josephlewis42/dirscript/core/shell"
	"github.com/josephlewis42/dirscript/core/task"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// shellCmd runs an interactive prompt
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run commands interactively against a single directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		shellLogger := log.New(cmd.ErrOrStderr(), "[shell] ", 0)

		cfg, onDisk, err := loadConfigOrDefault()
		if err != nil {
			return err
		}

		events, closeEvents, err := openEventRecorder(cfg, onDisk)
		if err != nil {
			return err
		}
		defer closeEvents()

		runner := task.NewRunner(afero.NewOsFs(), cmd.OutOrStdout())
		runner.Printer = newPrinter(cmd, cfg)
		runner.Events = events
		runner.Log = shellLogger

		sh := shell.New(runner)
		sh.Prompt = cfg.Shell.Prompt
		sh.HistoryLimit = cfg.Shell.HistoryLimit

		shellLogger.Println("type 'help' for builtins and commands")
		return sh.Run(cmd.InOrStdin())
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
