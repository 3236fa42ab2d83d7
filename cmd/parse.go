package cmd

import (
	"errors"
	"fmt"

	"github.com/creativeprojects/imapresp/cfg"
	"github.com/creativeprojects/imapresp/mailbox"
	"github.com/creativeprojects/imapresp/mdir"
	"github.com/creativeprojects/imapresp/response"
	"github.com/creativeprojects/imapresp/term"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <kind> <file>",
	Short: "Parse a file of raw server output",
	Long:  "Parse a file of raw server output. Kinds are: names, fetch, capabilities, mailbox, search, authenticate",
	RunE:  runParse,
}

type parseFlags struct {
	maildir   string
	mailbox   string
	delimiter string
}

var parseOptions parseFlags

func init() {
	rootCmd.AddCommand(parseCmd)
	flag := parseCmd.Flags()
	flag.StringVar(&parseOptions.maildir, "maildir", "", "export fetched messages into this maildir")
	flag.StringVar(&parseOptions.mailbox, "mailbox", "INBOX", "mailbox name of the fetched messages")
	flag.StringVar(&parseOptions.delimiter, "delimiter", "/", "hierarchy delimiter of the mailbox name")
}

func runParse(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("missing response kind")
	} else if len(args) < 2 {
		return errors.New("missing transcript file")
	}
	kind, err := cfg.ParseKind(args[0])
	if err != nil {
		return err
	}
	if parseOptions.maildir != "" && kind != cfg.KindFetch {
		return errors.New("maildir export needs fetch responses")
	}
	data, err := readTranscript(args[1])
	if err != nil {
		return err
	}
	result, err := decodeTranscript(response.NewParser(debugLogger()), kind, data)
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", args[1], err)
	}
	err = term.Table(result.table)
	if err != nil {
		return err
	}
	term.Info(result.summary)

	if parseOptions.maildir != "" {
		name := mailbox.Name{Name: parseOptions.mailbox, Delimiter: parseOptions.delimiter}
		count, err := exportFetches(parseOptions.maildir, name, result.fetches)
		if err != nil {
			return err
		}
		term.Infof("%d messages exported to %s", count, parseOptions.maildir)
	}
	return nil
}

func exportFetches(root string, name mailbox.Name, fetches []mailbox.Fetch) (int, error) {
	exporter, err := mdir.NewWithLogger(root, debugLogger())
	if err != nil {
		return 0, fmt.Errorf("cannot open maildir: %w", err)
	}
	return exporter.Export(name, fetches)
}
