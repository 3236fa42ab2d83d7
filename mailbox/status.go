package mailbox

// Status is the state of a mailbox as reported in the response to SELECT or EXAMINE.
type Status struct {
	// The number of messages in this mailbox.
	Exists uint32
	// The number of messages with the \Recent flag.
	Recent uint32
	// Sequence number of the first unseen message, 0 when not reported.
	Unseen uint32
	// Together with a UID, it is a unique identifier for a message.
	// 0 when not reported.
	UidValidity uint32
	// The next UID the server will assign, 0 when not reported.
	UidNext uint32

	// The mailbox flags.
	Flags []string
	// The mailbox permanent flags.
	PermanentFlags []string
}
