package response

import (
	"github.com/creativeprojects/imapresp/mailbox"
	"github.com/creativeprojects/imapresp/record"
)

// ParseCapabilities reads the response to CAPABILITY
func ParseCapabilities(lines []byte) (*Owned[mailbox.Capabilities], error) {
	return silent.Capabilities(lines)
}

// Capabilities merges every CAPABILITY response of the lines into one set.
// Any other response is an error.
func (p *Parser) Capabilities(lines []byte) (*Owned[mailbox.Capabilities], error) {
	return NewOwned(lines, func(lines []byte) (mailbox.Capabilities, error) {
		caps := mailbox.NewCapabilities()
		for len(lines) > 0 {
			rest, rec, err := record.Parse(lines)
			if err != nil {
				return nil, newInvalidError(lines, err)
			}
			capability, ok := rec.(*record.Capability)
			if !ok {
				return nil, &UnexpectedError{Record: rec}
			}
			caps.Add(capability.Names...)
			lines = rest
		}
		p.log.Printf("capabilities: %v", caps.List())
		return caps, nil
	})
}
