package cmd

import (
	"fmt"
	"time"

	"github.com/creativeprojects/imapresp/cfg"
	"github.com/creativeprojects/imapresp/mailbox"
	"github.com/creativeprojects/imapresp/response"
	"github.com/creativeprojects/imapresp/store"
	"github.com/creativeprojects/imapresp/term"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [name...]",
	Short: "Parse the transcripts listed in the configuration",
	RunE:  runReplay,
}

var replaySave bool

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replaySave, "save", false, "save the mailbox statuses into the snapshot store")
}

type replayed struct {
	name   string
	kind   cfg.Kind
	result *decoded
	err    error
}

func runReplay(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.Names()
	}
	for _, name := range names {
		if _, ok := config.Transcripts[name]; !ok {
			return fmt.Errorf("transcript not found: %s", name)
		}
	}
	if len(names) == 0 {
		term.Warn("no transcript to replay")
		return nil
	}

	var snapshots *store.BoltStore
	if replaySave {
		var err error
		snapshots, err = openStore(config.Store)
		if err != nil {
			return err
		}
		defer snapshots.Close()
	}

	pbar := term.Progressbar("Replaying", len(names))
	results := replay(config, names, snapshots, newProgresser(pbar))
	if pbar != nil {
		_, _ = pbar.Stop()
	}

	table := pterm.TableData{
		{"Transcript", "Kind", "Result"},
	}
	failed := 0
	for _, result := range results {
		outcome := ""
		if result.err != nil {
			failed++
			outcome = pterm.FgLightRed.Sprint(result.err.Error())
		} else {
			outcome = result.result.summary
		}
		table = append(table, []string{result.name, string(result.kind), outcome})
	}
	err := term.Table(table)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d transcripts out of %d failed", failed, len(results))
	}
	return nil
}

// replay parses every transcript, exports fetched messages and saves snapshots.
// Errors are recorded per transcript so one bad file doesn't stop the others.
func replay(config *cfg.Config, names []string, snapshots *store.BoltStore, pbar Progresser) []replayed {
	parser := response.NewParser(debugLogger())
	results := make([]replayed, 0, len(names))
	for _, name := range names {
		transcript := config.Transcripts[name]
		result, err := replayTranscript(parser, name, transcript, snapshots)
		results = append(results, replayed{
			name:   name,
			kind:   transcript.Kind,
			result: result,
			err:    err,
		})
		if pbar != nil {
			pbar.Increment()
		}
	}
	return results
}

func replayTranscript(parser *response.Parser, name string, transcript cfg.Transcript, snapshots *store.BoltStore) (*decoded, error) {
	data, err := readTranscript(transcript.File)
	if err != nil {
		return nil, err
	}
	result, err := decodeTranscript(parser, transcript.Kind, data)
	if err != nil {
		return nil, err
	}
	if transcript.Maildir != "" {
		_, err = exportFetches(transcript.Maildir, mailbox.Name{Name: transcript.Mailbox, Delimiter: "/"}, result.fetches)
		if err != nil {
			return result, err
		}
	}
	if snapshots != nil && result.status != nil {
		err = snapshots.SaveSnapshot(store.Snapshot{
			Name:   name,
			Date:   time.Now(),
			Status: *result.status,
		})
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

func openStore(filename string) (*store.BoltStore, error) {
	snapshots, err := store.NewBoltStoreWithLogger(filename, debugLogger())
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot store: %w", err)
	}
	err = snapshots.Init()
	if err != nil {
		snapshots.Close()
		return nil, fmt.Errorf("cannot initialize snapshot store: %w", err)
	}
	return snapshots, nil
}
