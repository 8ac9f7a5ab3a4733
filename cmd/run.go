package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/josephlewis42/dirscript/core/task"
	"github.com/josephlewis42/dirscript/core/ttylog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	strict   bool
	castPath string
)

// runCmd runs task files in order
var runCmd = &cobra.Command{
	Use:   "run [TASK...]",
	Short: "Run task files, each against an empty directory.",
	Long: `Runs each task file in order. A task stops at its first invalid or
failed command; the next task always runs. With no arguments the tasks
listed in the configuration are run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		runLogger := log.New(cmd.ErrOrStderr(), "[run] ", 0)

		cfg, onDisk, err := loadConfigOrDefault()
		if err != nil {
			return err
		}

		taskFs := afero.NewOsFs()
		if len(args) == 0 {
			if !onDisk {
				return errors.New("no tasks given and no configuration found, did you run init?")
			}
			args = cfg.Tasks
			taskFs = cfg.Fs()
		}

		events, closeEvents, err := openEventRecorder(cfg, onDisk)
		if err != nil {
			return err
		}
		defer closeEvents()

		out := cmd.OutOrStdout()
		if castPath != "" {
			fd, err := afero.NewOsFs().Create(castPath)
			if err != nil {
				return err
			}
			defer fd.Close()
			out = io.MultiWriter(out, ttylog.NewAsciicastWriter(fd, "dirscript run"))
		}

		runner := task.NewRunner(taskFs, out)
		runner.Printer = newPrinter(cmd, cfg)
		runner.Events = events
		runner.Log = runLogger

		failed := 0
		for _, res := range runner.RunAll(args) {
			if res.State.Failed() {
				failed++
			}
		}

		if failed > 0 && (strict || cfg.Strict) {
			return fmt.Errorf("%d of %d tasks failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any task fails")
	runCmd.Flags().StringVar(&castPath, "cast", "", "also record the transcript to an asciicast (."+ttylog.AsciicastFileExt+") file")
}
