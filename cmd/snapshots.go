package cmd

import (
	"strconv"

	"github.com/creativeprojects/imapresp/term"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Display the mailbox snapshots saved by replay",
	RunE:  runSnapshots,
}

var snapshotDelete string

func init() {
	rootCmd.AddCommand(snapshotsCmd)
	snapshotsCmd.Flags().StringVar(&snapshotDelete, "delete", "", "delete the snapshot with this name")
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	snapshots, err := openStore(config.Store)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	if snapshotDelete != "" {
		err = snapshots.DeleteSnapshot(snapshotDelete)
		if err != nil {
			return err
		}
		term.Infof("snapshot %s deleted", snapshotDelete)
		return nil
	}

	list, err := snapshots.ListSnapshots()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		term.Info("no snapshot saved")
		return nil
	}
	table := pterm.TableData{
		{"Name", "Date", "Exists", "Recent", "Unseen", "UID validity", "UID next"},
	}
	for _, snapshot := range list {
		table = append(table, []string{
			snapshot.Name,
			snapshot.Date.Format("2006-01-02 15:04:05"),
			strconv.FormatUint(uint64(snapshot.Status.Exists), 10),
			strconv.FormatUint(uint64(snapshot.Status.Recent), 10),
			displayOptional(snapshot.Status.Unseen),
			displayOptional(snapshot.Status.UidValidity),
			displayOptional(snapshot.Status.UidNext),
		})
	}
	return term.BoxedTable(table)
}
