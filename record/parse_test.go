package record

import (
	"testing"

	"github.com/emersion/go-imap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsRemainingBytes(t *testing.T) {
	input := []byte("* 24 FETCH (FLAGS (\\Seen) UID 4827943)\r\n* 25 FETCH (FLAGS (\\Seen))\r\n")

	rest, rec, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, "* 24 FETCH (FLAGS (\\Seen) UID 4827943)\r\n", string(rec.Raw()))
	assert.Equal(t, "* 25 FETCH (FLAGS (\\Seen))\r\n", string(rest))

	fetch, ok := rec.(*Fetch)
	require.True(t, ok)
	assert.Equal(t, uint32(24), fetch.SeqNum)
	assert.Equal(t, []Attribute{AttrFlags{"\\Seen"}, AttrUID(4827943)}, fetch.Attributes)

	rest, rec, err = Parse(rest)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, uint32(25), rec.(*Fetch).SeqNum)
}

func TestParseRawDoesNotOverlapRest(t *testing.T) {
	input := []byte("* 1 EXISTS\r\n* 2 RECENT\r\n")
	rest, rec, err := Parse(input)
	require.NoError(t, err)

	raw := rec.Raw()
	assert.Equal(t, len(raw), cap(raw))
	_ = append(raw, 'X')
	assert.Equal(t, "* 2 RECENT\r\n", string(rest))
}

func TestParseKinds(t *testing.T) {
	fixtures := []struct {
		input    string
		expected Record
	}{
		{
			"* CAPABILITY IMAP4rev1 STARTTLS AUTH=GSSAPI LOGINDISABLED\r\n",
			&Capability{Names: []string{"IMAP4rev1", "STARTTLS", "AUTH=GSSAPI", "LOGINDISABLED"}},
		},
		{
			"* 3 EXISTS\r\n",
			&Exists{Count: 3},
		},
		{
			"* 1 RECENT\r\n",
			&Recent{Count: 1},
		},
		{
			"* 5 EXPUNGE\r\n",
			&Expunge{SeqNum: 5},
		},
		{
			"* FLAGS (\\Answered \\Flagged \\Deleted \\Seen \\Draft)\r\n",
			&Flags{Flags: []string{"\\Answered", "\\Flagged", "\\Deleted", "\\Seen", "\\Draft"}},
		},
		{
			"* LIST (\\HasNoChildren) \".\" \"INBOX\"\r\n",
			&List{Attributes: []string{"\\HasNoChildren"}, Delimiter: ".", Name: "INBOX"},
		},
		{
			"* LSUB () \"/\" Archive/2022\r\n",
			&List{Subscribed: true, Attributes: []string{}, Delimiter: "/", Name: "Archive/2022"},
		},
		{
			"* LIST (\\Noselect) NIL \"\"\r\n",
			&List{Attributes: []string{"\\Noselect"}, Delimiter: "", Name: ""},
		},
		{
			"* STATUS blurdybloop (MESSAGES 231 UIDNEXT 44292)\r\n",
			&MailboxStatus{Name: "blurdybloop", Items: map[imap.StatusItem]uint64{
				imap.StatusMessages: 231,
				imap.StatusUidNext:  44292,
			}},
		},
		{
			"* SEARCH 2 84 882\r\n",
			&Search{IDs: []uint32{2, 84, 882}},
		},
		{
			"* SEARCH\r\n",
			&Search{IDs: []uint32{}},
		},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.input, func(t *testing.T) {
			rest, rec, err := Parse([]byte(fixture.input))
			require.NoError(t, err)
			assert.Empty(t, rest)
			assert.Equal(t, fixture.input, string(rec.Raw()))
			assert.IsType(t, fixture.expected, rec)
			assert.Equal(t, withoutRaw(fixture.expected), withoutRaw(rec))
		})
	}
}

func TestParseStatus(t *testing.T) {
	_, rec, err := Parse([]byte("* OK [UIDVALIDITY 3857529045] UIDs valid\r\n"))
	require.NoError(t, err)

	status, ok := rec.(*Status)
	require.True(t, ok)
	assert.False(t, status.Tagged())
	assert.Equal(t, imap.StatusRespOk, status.Type)
	assert.Equal(t, imap.CodeUidValidity, status.Code)
	require.Len(t, status.Arguments, 1)
	uidValidity, err := imap.ParseNumber(status.Arguments[0])
	require.NoError(t, err)
	assert.Equal(t, uint32(3857529045), uidValidity)
	assert.Equal(t, "UIDs valid", status.Info)

	_, rec, err = Parse([]byte("a142 OK [READ-WRITE] SELECT completed\r\n"))
	require.NoError(t, err)
	status, ok = rec.(*Status)
	require.True(t, ok)
	assert.True(t, status.Tagged())
	assert.Equal(t, "a142", status.Tag)
	assert.Equal(t, imap.CodeReadWrite, status.Code)

	_, rec, err = Parse([]byte("* BYE server shutting down\r\n"))
	require.NoError(t, err)
	assert.Equal(t, imap.StatusRespBye, rec.(*Status).Type)
}

func TestParseContinuation(t *testing.T) {
	_, rec, err := Parse([]byte("+ YGgGCSqGSIb3EgECAgIAb1kwV6ADAgEFoQMCAQ+iSzBJoAMCAQGi\r\n"))
	require.NoError(t, err)
	continuation, ok := rec.(*Continuation)
	require.True(t, ok)
	assert.Equal(t, "YGgGCSqGSIb3EgECAgIAb1kwV6ADAgEFoQMCAQ+iSzBJoAMCAQGi", continuation.Info)
}

func TestParseOther(t *testing.T) {
	_, rec, err := Parse([]byte("* JUNK IMAP4rev1 STARTTLS\r\n"))
	require.NoError(t, err)
	other, ok := rec.(*Other)
	require.True(t, ok)
	assert.Equal(t, "*", other.Tag)
	assert.Equal(t, []interface{}{"JUNK", "IMAP4rev1", "STARTTLS"}, other.Fields)
}

func TestParseFetchPayloads(t *testing.T) {
	input := "* 12 FETCH (UID 44 RFC822 NIL BODY[HEADER] {18}\r\nSubject: hello\r\n\r\n BODY[]<0> \"partial\")\r\n"
	rest, rec, err := Parse([]byte(input))
	require.NoError(t, err)
	assert.Empty(t, rest)

	fetch, ok := rec.(*Fetch)
	require.True(t, ok)
	assert.Equal(t, uint32(12), fetch.SeqNum)
	require.Len(t, fetch.Attributes, 4)
	assert.Equal(t, AttrUID(44), fetch.Attributes[0])
	assert.Equal(t, AttrRFC822(nil), fetch.Attributes[1])
	assert.Equal(t, AttrBodySection{Section: "HEADER", Origin: -1, Data: []byte("Subject: hello\r\n\r\n")}, fetch.Attributes[2])
	assert.Equal(t, AttrBodySection{Section: "", Origin: 0, Data: []byte("partial")}, fetch.Attributes[3])
}

func TestParseInvalid(t *testing.T) {
	fixtures := []string{
		"garbage",
		"garbage\r\n",
		"* 3 FETCH\r\n",
		"* 3 FETCH (UID)\r\n",
		"* 3 FETCH (UID abc)\r\n",
		"* FLAGS\r\n",
		"* LIST (\\Noselect)\r\n",
	}

	for _, fixture := range fixtures {
		t.Run(fixture, func(t *testing.T) {
			input := []byte(fixture)
			rest, rec, err := Parse(input)
			assert.Error(t, err)
			assert.Nil(t, rec)
			assert.Equal(t, input, rest)
		})
	}
}

func TestParseSection(t *testing.T) {
	fixtures := []struct {
		key     string
		section string
		origin  int64
	}{
		{"BODY[]", "", -1},
		{"BODY[TEXT]", "TEXT", -1},
		{"BODY[1.2.MIME]", "1.2.MIME", -1},
		{"BODY[HEADER.FIELDS (From To)]", "HEADER.FIELDS (From To)", -1},
		{"BODY[]<1024>", "", 1024},
	}

	for _, fixture := range fixtures {
		section, origin, err := parseSection(fixture.key)
		require.NoError(t, err)
		assert.Equal(t, fixture.section, section)
		assert.Equal(t, fixture.origin, origin)
	}

	_, _, err := parseSection("BODY[]<abc>")
	assert.Error(t, err)
}

func TestIsMailboxData(t *testing.T) {
	assert.True(t, IsMailboxData(&Exists{}))
	assert.True(t, IsMailboxData(&Recent{}))
	assert.True(t, IsMailboxData(&Flags{}))
	assert.True(t, IsMailboxData(&List{}))
	assert.True(t, IsMailboxData(&MailboxStatus{}))
	assert.False(t, IsMailboxData(&Fetch{}))
	assert.False(t, IsMailboxData(&Status{}))
	assert.False(t, IsMailboxData(&Capability{}))
}

// withoutRaw clears the input bytes so records can be compared by content
func withoutRaw(rec Record) Record {
	switch rec := rec.(type) {
	case *Capability:
		copied := *rec
		copied.line = nil
		return &copied
	case *Exists:
		copied := *rec
		copied.line = nil
		return &copied
	case *Recent:
		copied := *rec
		copied.line = nil
		return &copied
	case *Expunge:
		copied := *rec
		copied.line = nil
		return &copied
	case *Flags:
		copied := *rec
		copied.line = nil
		return &copied
	case *List:
		copied := *rec
		copied.line = nil
		return &copied
	case *MailboxStatus:
		copied := *rec
		copied.line = nil
		return &copied
	case *Search:
		copied := *rec
		copied.line = nil
		return &copied
	}
	return rec
}
