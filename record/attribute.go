package record

// Attribute is one item of a FETCH response.
type Attribute interface {
	attribute()
}

// AttrFlags is the FLAGS item.
type AttrFlags []string

// AttrUID is the UID item.
type AttrUID uint32

// AttrRFC822 is the RFC822 item; nil when the server sent NIL.
type AttrRFC822 []byte

// AttrRFC822Header is the RFC822.HEADER item; nil when the server sent NIL.
type AttrRFC822Header []byte

// AttrRFC822Text is the RFC822.TEXT item; nil when the server sent NIL.
type AttrRFC822Text []byte

// AttrBodySection is a BODY[section]<origin> item.
type AttrBodySection struct {
	// Section is the text between the brackets, e.g. "HEADER" or "1.2.TEXT".
	Section string
	// Origin is the partial offset, -1 when not partial.
	Origin int64
	// Data is nil when the server sent NIL.
	Data []byte
}

// AttrOther is any other item (ENVELOPE, INTERNALDATE, BODYSTRUCTURE, extensions...).
type AttrOther struct {
	Name  string
	Value interface{}
}

func (AttrFlags) attribute()        {}
func (AttrUID) attribute()          {}
func (AttrRFC822) attribute()       {}
func (AttrRFC822Header) attribute() {}
func (AttrRFC822Text) attribute()   {}
func (AttrBodySection) attribute()  {}
func (AttrOther) attribute()        {}
