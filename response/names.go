package response

import (
	"github.com/creativeprojects/imapresp/mailbox"
	"github.com/creativeprojects/imapresp/record"
)

// ParseNames reads the response to LIST or LSUB
func ParseNames(lines []byte) (*Owned[[]mailbox.Name], error) {
	return silent.Names(lines)
}

// Names reads the response to LIST or LSUB.
// STATUS responses returned along the names (LIST-STATUS, RFC 5819) are skipped.
func (p *Parser) Names(lines []byte) (*Owned[[]mailbox.Name], error) {
	return NewOwned(lines, func(lines []byte) ([]mailbox.Name, error) {
		return walk(p.log, lines, mapName)
	})
}

func mapName(rec record.Record) (mailbox.Name, outcome) {
	switch rec := rec.(type) {
	case *record.List:
		return mailbox.Name{
			Attributes: rec.Attributes,
			Delimiter:  rec.Delimiter,
			Name:       rec.Name,
		}, mapped
	case *record.MailboxStatus:
		return mailbox.Name{}, skipped
	}
	return mailbox.Name{}, unrelated
}
