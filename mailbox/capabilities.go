package mailbox

import "sort"

// Capabilities is the set of capability names announced by a server.
// Names are kept as received and compared case-sensitively.
type Capabilities map[string]struct{}

func NewCapabilities(names ...string) Capabilities {
	caps := make(Capabilities, len(names))
	caps.Add(names...)
	return caps
}

func (c Capabilities) Add(names ...string) {
	for _, name := range names {
		c[name] = struct{}{}
	}
}

func (c Capabilities) Has(name string) bool {
	_, found := c[name]
	return found
}

func (c Capabilities) Len() int {
	return len(c)
}

// List returns the capability names sorted alphabetically
func (c Capabilities) List() []string {
	list := make([]string, 0, len(c))
	for name := range c {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
