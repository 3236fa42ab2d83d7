package mdir

import (
	"strings"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-maildir"
)

// toFlags keeps the system flags maildir knows about; keywords are dropped
func toFlags(source []string) []maildir.Flag {
	flags := make([]maildir.Flag, 0, len(source))
	for _, sourceFlag := range source {
		switch {
		case strings.EqualFold(sourceFlag, imap.SeenFlag):
			flags = append(flags, maildir.FlagSeen)

		case strings.EqualFold(sourceFlag, imap.AnsweredFlag):
			flags = append(flags, maildir.FlagReplied)

		case strings.EqualFold(sourceFlag, imap.FlaggedFlag):
			flags = append(flags, maildir.FlagFlagged)

		case strings.EqualFold(sourceFlag, imap.DeletedFlag):
			flags = append(flags, maildir.FlagTrashed)

		case strings.EqualFold(sourceFlag, imap.DraftFlag):
			flags = append(flags, maildir.FlagDraft)
		}
	}
	return flags
}
