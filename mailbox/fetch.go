package mailbox

// Fetch is the set of attributes carried by one FETCH response.
type Fetch struct {
	// The message sequence number.
	Message uint32
	// The message flags, accumulated over every FLAGS item of the response.
	Flags []string
	// The message unique identifier, 0 when the server did not send it.
	Uid uint32
	// RFC822.HEADER payload, nil when absent.
	RFC822Header []byte
	// RFC822 payload, nil when absent.
	RFC822 []byte
	// Payload of the last BODY[...] section, whatever the section specifier.
	Body []byte
}

func (f Fetch) HasUID() bool {
	return f.Uid > 0
}

// Payload returns the most complete message content available:
// RFC822 first, then the body section, then the header alone.
func (f Fetch) Payload() []byte {
	switch {
	case f.RFC822 != nil:
		return f.RFC822
	case f.Body != nil:
		return f.Body
	default:
		return f.RFC822Header
	}
}
