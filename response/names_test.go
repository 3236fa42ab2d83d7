package response

import (
	"testing"

	"github.com/creativeprojects/imapresp/lib"
	"github.com/creativeprojects/imapresp/mailbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNames(t *testing.T) {
	lines := []byte("* LIST (\\HasNoChildren) \".\" \"INBOX\"\r\n")
	names, err := ParseNames(lines)
	require.NoError(t, err)
	require.Len(t, names.Value(), 1)

	name := names.Value()[0]
	assert.Equal(t, []string{"\\HasNoChildren"}, name.Attributes)
	assert.Equal(t, ".", name.Delimiter)
	assert.Equal(t, "INBOX", name.Name)
}

func TestParseNamesKeepsAttributeOrder(t *testing.T) {
	lines := []byte("* LIST (\\Marked \\HasChildren \\Archive) \"/\" Archive\r\n" +
		"* LSUB (\\Sent \\HasNoChildren) \"/\" Sent\r\n" +
		"* LIST (\\Noselect) NIL \"\"\r\n")
	names, err := NewParser(lib.NewTestLogger(t, "names")).Names(lines)
	require.NoError(t, err)

	assert.Equal(t, []mailbox.Name{
		{Attributes: []string{"\\Marked", "\\HasChildren", "\\Archive"}, Delimiter: "/", Name: "Archive"},
		{Attributes: []string{"\\Sent", "\\HasNoChildren"}, Delimiter: "/", Name: "Sent"},
		{Attributes: []string{"\\Noselect"}, Delimiter: "", Name: ""},
	}, names.Value())
}

func TestParseNamesWithUnilateralAndStatus(t *testing.T) {
	lines := []byte("* 4 EXISTS\r\n" +
		"* LIST () \"/\" INBOX\r\n" +
		"* STATUS INBOX (MESSAGES 4 UNSEEN 1)\r\n" +
		"* 1 RECENT\r\n" +
		"* LIST () \"/\" Drafts\r\n")
	names, err := ParseNames(lines)
	require.NoError(t, err)
	require.Len(t, names.Value(), 2)
	assert.Equal(t, "INBOX", names.Value()[0].Name)
	assert.Equal(t, "Drafts", names.Value()[1].Name)
}

func TestParseNamesUnexpected(t *testing.T) {
	lines := []byte("* LIST () \"/\" INBOX\r\n* CAPABILITY IMAP4rev1\r\n")
	names, err := ParseNames(lines)
	assert.Nil(t, names)
	assert.ErrorIs(t, err, ErrUnexpected)
}

func TestParseNamesEmpty(t *testing.T) {
	names, err := ParseNames([]byte{})
	require.NoError(t, err)
	assert.Empty(t, names.Value())
}

func TestParseNamesIsRepeatable(t *testing.T) {
	lines := []byte("* LIST (\\HasChildren) \"/\" Archive\r\n" +
		"* 3 EXISTS\r\n" +
		"* LSUB () \"/\" \"Entw&APw-rfe\"\r\n")
	first, err := ParseNames(lines)
	require.NoError(t, err)
	second, err := ParseNames(lines)
	require.NoError(t, err)
	assert.Equal(t, first.Value(), second.Value())
}
