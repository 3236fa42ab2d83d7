package response

import (
	"github.com/creativeprojects/imapresp/mailbox"
	"github.com/creativeprojects/imapresp/record"
)

// ParseFetches reads the response to FETCH or UID FETCH
func ParseFetches(lines []byte) (*Owned[[]mailbox.Fetch], error) {
	return silent.Fetches(lines)
}

// Fetches reads the response to FETCH or UID FETCH: one mailbox.Fetch per FETCH response.
func (p *Parser) Fetches(lines []byte) (*Owned[[]mailbox.Fetch], error) {
	return NewOwned(lines, func(lines []byte) ([]mailbox.Fetch, error) {
		return walk(p.log, lines, mapFetch)
	})
}

func mapFetch(rec record.Record) (mailbox.Fetch, outcome) {
	fetch, ok := rec.(*record.Fetch)
	if !ok {
		return mailbox.Fetch{}, unrelated
	}
	return foldFetch(fetch), mapped
}

// foldFetch merges the attributes in order: the last one of a kind wins, except flags
func foldFetch(rec *record.Fetch) mailbox.Fetch {
	fetch := mailbox.Fetch{
		Message: rec.SeqNum,
		Flags:   []string{},
	}
	for _, attribute := range rec.Attributes {
		switch attribute := attribute.(type) {
		case record.AttrFlags:
			fetch.Flags = append(fetch.Flags, attribute...)
		case record.AttrUID:
			fetch.Uid = uint32(attribute)
		case record.AttrRFC822:
			fetch.RFC822 = attribute
		case record.AttrRFC822Header:
			fetch.RFC822Header = attribute
		case record.AttrBodySection:
			fetch.Body = attribute.Data
		}
	}
	return fetch
}
