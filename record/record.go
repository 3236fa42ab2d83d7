// Package record turns raw IMAP server output into a closed set of typed responses.
//
// Tokenizing is delegated to the go-imap reader; this package only decides which
// kind of response each tokenized line is and extracts its arguments.
package record

import "github.com/emersion/go-imap"

// Record is one tokenized server response.
// The set of implementations is closed: only types of this package satisfy it.
type Record interface {
	// Raw returns the input bytes the record was read from.
	Raw() []byte
	record()
}

type line []byte

func (l line) Raw() []byte { return l }
func (l line) record()     {}

// Status is a status response: tagged completion, or untagged OK/NO/BAD/BYE/PREAUTH.
type Status struct {
	line
	// Tag is "*" for untagged responses.
	Tag       string
	Type      imap.StatusRespType
	Code      imap.StatusRespCode
	Arguments []interface{}
	Info      string
}

func (s *Status) Tagged() bool {
	return s.Tag != "*"
}

// Exists is the untagged "n EXISTS" mailbox data.
type Exists struct {
	line
	Count uint32
}

// Recent is the untagged "n RECENT" mailbox data.
type Recent struct {
	line
	Count uint32
}

// Flags is the untagged FLAGS mailbox data.
type Flags struct {
	line
	Flags []string
}

// List is one LIST (or LSUB when Subscribed) mailbox data.
type List struct {
	line
	Subscribed bool
	Attributes []string
	// Delimiter is empty when the server sent NIL.
	Delimiter string
	Name      string
}

// MailboxStatus is the untagged STATUS mailbox data.
type MailboxStatus struct {
	line
	Name  string
	Items map[imap.StatusItem]uint64
}

// Capability is the untagged CAPABILITY response.
type Capability struct {
	line
	Names []string
}

// Fetch is the untagged "n FETCH (...)" message data.
type Fetch struct {
	line
	SeqNum     uint32
	Attributes []Attribute
}

// Expunge is the untagged "n EXPUNGE" message data.
type Expunge struct {
	line
	SeqNum uint32
}

// Search is the untagged SEARCH response.
type Search struct {
	line
	IDs []uint32
}

// Continuation is a command continuation request ("+ ...").
type Continuation struct {
	line
	Info string
}

// Other is any well-formed response this package does not know more about.
type Other struct {
	line
	Tag    string
	Fields []interface{}
}

// IsMailboxData reports whether the record belongs to the mailbox-data family
// (RFC 3501 section 7.2 and 7.3).
func IsMailboxData(rec Record) bool {
	switch rec.(type) {
	case *Exists, *Recent, *Flags, *List, *MailboxStatus:
		return true
	}
	return false
}
