package mailbox

import (
	"strings"

	"github.com/emersion/go-imap/utf7"
)

// Name is one entry of a LIST or LSUB response.
type Name struct {
	// The mailbox attributes, in the order the server sent them.
	Attributes []string
	// The server's path separator. Empty when the server answered NIL.
	Delimiter string
	// The mailbox name, as received (modified UTF-7 is not decoded).
	Name string
}

func (n Name) HasDelimiter() bool {
	return n.Delimiter != ""
}

// DecodedName returns the mailbox name decoded from modified UTF-7
func (n Name) DecodedName() (string, error) {
	return utf7.Encoding.NewDecoder().String(n.Name)
}

// HasAttribute checks the server-declared attributes (case-insensitive)
func (n Name) HasAttribute(attribute string) bool {
	for _, current := range n.Attributes {
		if strings.EqualFold(current, attribute) {
			return true
		}
	}
	return false
}
