package response

import (
	"github.com/creativeprojects/imapresp/mailbox"
	"github.com/creativeprojects/imapresp/record"
	"github.com/emersion/go-imap"
)

// ParseMailbox reads the untagged responses to SELECT or EXAMINE
func ParseMailbox(lines []byte) (*mailbox.Status, error) {
	return silent.Mailbox(lines)
}

// Mailbox folds the untagged responses to SELECT or EXAMINE into a mailbox status.
//
// Untagged OK responses carry the UNSEEN, UIDVALIDITY, UIDNEXT and PERMANENTFLAGS codes;
// EXISTS, RECENT and FLAGS carry the rest. An untagged status other than OK
// returns a *ProtocolError: the mailbox state cannot be trusted and callers must
// abort the selection, never retry it.
func (p *Parser) Mailbox(lines []byte) (*mailbox.Status, error) {
	status := &mailbox.Status{}
	for len(lines) > 0 {
		rest, rec, err := record.Parse(lines)
		if err != nil {
			return nil, newInvalidError(lines, err)
		}
		lines = rest

		switch rec := rec.(type) {
		case *record.Status:
			if rec.Tagged() {
				return nil, &UnexpectedError{Record: rec}
			}
			if rec.Type != imap.StatusRespOk {
				return nil, &ProtocolError{Status: rec}
			}
			err = applyStatusCode(status, rec)
			if err != nil {
				return nil, err
			}

		case *record.Exists:
			status.Exists = rec.Count

		case *record.Recent:
			status.Recent = rec.Count

		case *record.Flags:
			status.Flags = append(status.Flags, rec.Flags...)

		default:
			if !record.IsMailboxData(rec) {
				return nil, &UnexpectedError{Record: rec}
			}
			// LIST, LSUB and STATUS say nothing about the selected mailbox
			p.log.Printf("ignoring mailbox data %q", excerpt(rec.Raw()))
		}
	}
	return status, nil
}

func applyStatusCode(status *mailbox.Status, rec *record.Status) error {
	var err error
	switch rec.Code {
	case imap.CodeUidValidity:
		status.UidValidity, err = numberArgument(rec)
	case imap.CodeUidNext:
		status.UidNext, err = numberArgument(rec)
	case imap.CodeUnseen:
		status.Unseen, err = numberArgument(rec)
	case imap.CodePermanentFlags:
		var flags []string
		flags, err = imap.ParseStringList(argument(rec))
		status.PermanentFlags = append(status.PermanentFlags, flags...)
	}
	if err != nil {
		return newInvalidError(rec.Raw(), err)
	}
	return nil
}

func numberArgument(rec *record.Status) (uint32, error) {
	return imap.ParseNumber(argument(rec))
}

// argument returns the first argument of the response code, nil when there is none
func argument(rec *record.Status) interface{} {
	if len(rec.Arguments) == 0 {
		return nil
	}
	return rec.Arguments[0]
}
