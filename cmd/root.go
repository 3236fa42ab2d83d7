package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/creativeprojects/imapresp/cfg"
	"github.com/creativeprojects/imapresp/term"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "imapresp",
	Short:         "IMAP response parser: decode raw server output",
	Long:          "\nIMAP response parser: decode raw server output into mailbox names, messages, capabilities and status",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig, initLog)
	flag := rootCmd.PersistentFlags()
	flag.StringVarP(&global.configFile, "config", "c", "imapresp.yaml", "configuration file")
	flag.BoolVarP(&global.quiet, "quiet", "q", false, "only display warnings and errors")
	flag.BoolVarP(&global.verbose, "verbose", "v", false, "display debugging information")
}

func initConfig() {
	var err error
	config, err = cfg.LoadFromFile(global.configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !rootCmd.PersistentFlags().Changed("config") {
			// the default configuration file is optional
			config = cfg.New()
			return
		}
		term.Errorf("cannot open or read configuration file: %s", err)
		os.Exit(1)
	}
}

func initLog() {
	switch {
	case global.verbose:
		term.SetLevel(term.LevelDebug)
	case global.quiet:
		term.SetLevel(term.LevelWarn)
	}
	term.Debug("IMAP response parser")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		term.Error(err)
		os.Exit(1)
	}
}
