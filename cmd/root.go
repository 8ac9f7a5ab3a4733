package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/josephlewis42/dirscript/commands"
	"github.com/josephlewis42/dirscript/core/config"
	"github.com/josephlewis42/dirscript/core/logger"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	colorMode = commands.ColorAuto
)

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// loadConfigOrDefault falls back to the built-in configuration when the
// config directory doesn't exist. The returned bool is true if the
// configuration was loaded from disk.
func loadConfigOrDefault() (*config.Configuration, bool, error) {
	configuration, err := config.Load(cfgPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return config.Default(), false, nil
	case err != nil:
		return nil, false, err
	}
	return configuration, true, nil
}

// newPrinter uses the --color flag if set, otherwise the configured mode.
func newPrinter(cmd *cobra.Command, cfg *config.Configuration) *commands.Printer {
	mode := colorMode
	if flag := cmd.Flag("color"); (flag == nil || !flag.Changed) && cfg != nil {
		mode = cfg.Color
	}
	return commands.NewPrinter(mode)
}

// openEventRecorder opens the event log when recording is enabled. The
// returned close function is always non-nil.
func openEventRecorder(cfg *config.Configuration, onDisk bool) (logger.EventRecorder, func() error, error) {
	nop := func() error { return nil }
	if !onDisk || !cfg.RecordEvents {
		return logger.NopEventRecorder{}, nop, nil
	}

	fd, err := cfg.OpenEventLog()
	if err != nil {
		return nil, nop, err
	}
	return logger.NewJsonLinesLogRecorder(fd).NewSession(), fd.Close, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dirscript",
	Short: "Directory script runner",
	Long:  `Runs scripts that manage an in-memory directory of users, groups and messages.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.PersistentFlags().Var(&colorMode, "color", "colorize output: always, auto or never")
}
